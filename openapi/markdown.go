package openapi

import (
	"fmt"
	"strings"
)

// lines joins description lines the way multi-line Description setters do.
func lines(parts []string) string {
	return strings.Join(parts, "\n")
}

// CodeBlock formats lines as a fenced Markdown code block, for use inside
// descriptions rendered by Redoc.
//
//	op.Description("Example request:", openapi.CodeBlock("bash", "curl https://api.example.com/pets"))
func CodeBlock(lang string, code ...string) string {
	return fmt.Sprintf("\n```%s\n%s\n```\n", lang, strings.Join(code, "\n"))
}

// Link formats a Markdown link.
func Link(text, url string) string {
	return fmt.Sprintf("[%s](%s)", text, url)
}
