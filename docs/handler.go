// Package docs serves a rendered OpenAPI document over HTTP as JSON, YAML
// and an interactive documentation page.
//
//	h, err := docs.NewHandler(builder, &docs.HandleConfig{BasePath: "/docs"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.Handle("/", h)
//
// The document is rendered on the first request and cached. Every response
// carries an ETag, so clients revalidate with If-None-Match.
package docs

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vitalvas/redocgen/openapi"
)

var (
	// ErrNilSource is returned by NewHandler when no document source is given.
	ErrNilSource = errors.New("docs: document source is nil")

	// ErrDuplicatePath is returned by NewHandler when two endpoints resolve
	// to the same route.
	ErrDuplicatePath = errors.New("docs: duplicate endpoint path")

	// ErrInvalidPath is returned by NewHandler when an endpoint path cannot
	// be used as a literal route.
	ErrInvalidPath = errors.New("docs: invalid endpoint path")
)

// Source renders the served document. *openapi.DocumentBuilder is a Source.
type Source interface {
	Render() (*openapi.Document, error)
}

// Static returns a Source for an already rendered document.
func Static(doc *openapi.Document) Source {
	return staticSource{doc: doc}
}

type staticSource struct {
	doc *openapi.Document
}

func (s staticSource) Render() (*openapi.Document, error) {
	if s.doc == nil {
		return nil, ErrNilSource
	}
	return s.doc, nil
}

// DocsUI selects which interactive documentation UI to serve.
type DocsUI int

const (
	DocsRedoc DocsUI = iota
	DocsSwaggerUI
	DocsRapiDoc
)

// HandleConfig configures the endpoints served by a Handler.
type HandleConfig struct {
	// BasePath prefixes the docs page and relative filenames (default: "/").
	// A trailing slash is stripped.
	BasePath string

	// UI selects the interactive docs UI (default: DocsRedoc).
	UI DocsUI

	// Title overrides the HTML page title (default: info.title).
	Title string

	// JSONFilename is the path for the JSON endpoint
	// (default: "schema.json"). Set to "-" to disable.
	//
	// Relative paths are joined with the base path:
	//
	//	"schema.json"       -> <BasePath>/schema.json
	//	"data/openapi.json" -> <BasePath>/data/openapi.json
	//
	// Absolute paths (starting with "/") are used as-is:
	//
	//	"/api/v1/openapi.json" -> /api/v1/openapi.json
	JSONFilename string

	// YAMLFilename is the path for the YAML endpoint
	// (default: "schema.yaml"). Set to "-" to disable.
	// Follows the same absolute/relative rules as JSONFilename.
	YAMLFilename string

	// DisableDocs disables the HTML docs page.
	DisableDocs bool

	// CacheControl is the Cache-Control header value of every response.
	// When empty, no header is set.
	CacheControl string

	// SwaggerUIConfig provides additional SwaggerUIBundle options, rendered
	// as JavaScript object properties after url and dom_id.
	//
	// See: https://swagger.io/docs/open-source-tools/swagger-ui/usage/configuration/
	SwaggerUIConfig map[string]any

	// RedocOptions are passed to Redoc.init. Without options the page uses
	// the <redoc> element.
	//
	// See: https://redocly.com/docs/redoc/config
	RedocOptions map[string]any
}

func (cfg HandleConfig) jsonFilename() string {
	if cfg.JSONFilename == "" {
		return "schema.json"
	}
	return cfg.JSONFilename
}

func (cfg HandleConfig) yamlFilename() string {
	if cfg.YAMLFilename == "" {
		return "schema.yaml"
	}
	return cfg.YAMLFilename
}

// resolvePath returns the full route path for a filename.
// Absolute filenames (starting with "/") are returned as-is.
// checkPath rejects paths that http.ServeMux would parse as wildcards or
// fail to parse at all.
func checkPath(path string) error {
	if !strings.HasPrefix(path, "/") || strings.ContainsAny(path, "{} \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return nil
}

func resolvePath(basePath, filename string) string {
	if strings.HasPrefix(filename, "/") {
		return filename
	}
	return basePath + "/" + filename
}

// Handler serves the document endpoints. It is safe for concurrent use.
type Handler struct {
	mux    *http.ServeMux
	source Source
	cfg    HandleConfig

	once sync.Once
	doc  *openapi.Document
	err  error

	// JSONPath, YAMLPath and DocsPath are the resolved routes, empty when
	// the endpoint is disabled.
	JSONPath string
	YAMLPath string
	DocsPath string
}

// NewHandler returns a handler serving the document of source. The
// config is optional; pass nil for defaults:
//
//	<BasePath>/            - interactive HTML docs (unless DisableDocs)
//	<JSONFilename path>    - document as JSON (unless JSONFilename is "-")
//	<YAMLFilename path>    - document as YAML (unless YAMLFilename is "-")
//
// The docs page points to the JSON endpoint, or the YAML one when JSON is
// disabled, and is not served when both are disabled. Only GET and HEAD
// are answered. Mount the handler at "/" when a filename is absolute.
func NewHandler(source Source, cfg *HandleConfig) (*Handler, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if cfg == nil {
		cfg = &HandleConfig{}
	}

	h := &Handler{
		mux:    http.NewServeMux(),
		source: source,
		cfg:    *cfg,
	}

	basePath := strings.TrimRight(cfg.BasePath, "/")

	if name := cfg.jsonFilename(); name != "-" {
		h.JSONPath = resolvePath(basePath, name)
	}
	if name := cfg.yamlFilename(); name != "-" {
		h.YAMLPath = resolvePath(basePath, name)
	}

	specURL := h.JSONPath
	if specURL == "" {
		specURL = h.YAMLPath
	}
	if !cfg.DisableDocs && specURL != "" {
		h.DocsPath = basePath + "/"
	}

	routes := make(map[string]bool)
	for _, path := range []string{h.JSONPath, h.YAMLPath, h.DocsPath} {
		if path == "" {
			continue
		}
		if err := checkPath(path); err != nil {
			return nil, err
		}
		if routes[path] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, path)
		}
		routes[path] = true
	}
	// the page also answers on the bare base path
	if h.DocsPath != "" && basePath != "" && routes[basePath] {
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, basePath)
	}

	if h.JSONPath != "" {
		h.handle(h.JSONPath, h.asset("application/json", "JSON", (*openapi.Document).JSON))
	}
	if h.YAMLPath != "" {
		h.handle(h.YAMLPath, h.asset("application/x-yaml", "YAML", (*openapi.Document).YAML))
	}

	if h.DocsPath != "" {
		page := h.asset("text/html; charset=utf-8", "HTML", func(doc *openapi.Document) ([]byte, error) {
			return h.page(doc, specURL)
		})

		if basePath == "" {
			h.mux.Handle("GET /{$}", page)
		} else {
			h.handle(basePath, page)
			h.mux.Handle("GET "+basePath+"/{$}", page)
		}
	}

	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handle(path string, handler http.Handler) {
	h.mux.Handle("GET "+path, handler)
}

// document renders the source once.
func (h *Handler) document() (*openapi.Document, error) {
	h.once.Do(func() {
		defer func() {
			if rv := recover(); rv != nil {
				h.err = fmt.Errorf("%v", rv)
			}
		}()
		h.doc, h.err = h.source.Render()
	})
	return h.doc, h.err
}

// asset is one cached response body.
type asset struct {
	h           *Handler
	contentType string
	format      string
	encode      func(*openapi.Document) ([]byte, error)

	once sync.Once
	data []byte
	etag string
	err  error
}

func (h *Handler) asset(contentType, format string, encode func(*openapi.Document) ([]byte, error)) *asset {
	return &asset{h: h, contentType: contentType, format: format, encode: encode}
}

func (a *asset) load() error {
	a.once.Do(func() {
		doc, err := a.h.document()
		if err != nil {
			a.err = err
			return
		}

		a.data, a.err = a.encode(doc)
		if a.err == nil {
			a.etag = etag(a.data)
		}
	})
	return a.err
}

func (a *asset) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := a.load(); err != nil {
		http.Error(w, "failed to serialize OpenAPI document as "+a.format, http.StatusInternalServerError)
		return
	}

	header := w.Header()
	header.Set("Content-Type", a.contentType)
	header.Set("ETag", a.etag)
	if a.h.cfg.CacheControl != "" {
		header.Set("Cache-Control", a.h.cfg.CacheControl)
	}

	http.ServeContent(w, r, "", time.Time{}, bytes.NewReader(a.data))
}

// etag is a strong validator derived from the body.
func etag(data []byte) string {
	return `"` + uuid.NewSHA1(uuid.NameSpaceURL, data).String() + `"`
}

func (h *Handler) page(doc *openapi.Document, specURL string) ([]byte, error) {
	title := h.cfg.Title
	if title == "" {
		title = doc.Info.Title
	}

	switch h.cfg.UI {
	case DocsSwaggerUI:
		return []byte(swaggerUITemplate(title, specURL, h.cfg.SwaggerUIConfig)), nil
	case DocsRapiDoc:
		return []byte(rapidocTemplate(title, specURL)), nil
	default:
		return []byte(redocTemplate(title, specURL, h.cfg.RedocOptions)), nil
	}
}
