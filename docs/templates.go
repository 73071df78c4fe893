package docs

import (
	"encoding/json"
	"fmt"
	"html"
	"sort"
	"strings"
)

// jsProperties renders config as JavaScript object properties in key
// order. Values that cannot be encoded are skipped.
func jsProperties(config map[string]any) []string {
	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	props := make([]string, 0, len(keys))
	for _, k := range keys {
		v, err := json.Marshal(config[k])
		if err != nil {
			continue
		}
		props = append(props, fmt.Sprintf("%q: %s", k, v))
	}
	return props
}

// htmlPage wraps head and body in the document skeleton shared by every UI.
func htmlPage(title, head, body string) string {
	if head != "" {
		head += "\n"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
%s</head>
<body>
%s
</body>
</html>`, html.EscapeString(title), head, body)
}

func swaggerUITemplate(title, specPath string, config map[string]any) string {
	var extra string
	if props := jsProperties(config); len(props) > 0 {
		extra = ", " + strings.Join(props, ", ")
	}

	return htmlPage(title,
		`<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">`,
		fmt.Sprintf(`<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: %q, dom_id: "#swagger-ui"%s});
</script>`, specPath, extra))
}

func rapidocTemplate(title, specPath string) string {
	return htmlPage(title,
		`<script type="module" src="https://unpkg.com/rapidoc/dist/rapidoc-min.js"></script>`,
		fmt.Sprintf(`<rapi-doc spec-url=%q></rapi-doc>`, specPath))
}

const redocBundle = `<script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>`

// redocTemplate uses the <redoc> element, or Redoc.init when options are set.
func redocTemplate(title, specPath string, options map[string]any) string {
	props := jsProperties(options)
	if len(props) == 0 {
		return htmlPage(title, "", fmt.Sprintf("<redoc spec-url=%q></redoc>\n%s", specPath, redocBundle))
	}

	return htmlPage(title, "", fmt.Sprintf(`<div id="redoc"></div>
%s
<script>
Redoc.init(%q, {%s}, document.getElementById("redoc"));
</script>`, redocBundle, specPath, strings.Join(props, ", ")))
}
