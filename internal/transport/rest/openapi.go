package rest

import (
	"context"
	"net/http"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
	gerrors "github.com/go-faster/errors"
)

// OpenAPIDocument is the API contract loaded once at startup.
type OpenAPIDocument struct {
	doc  *openapi3.T
	raw  []byte
	path string
}

// LoadOpenAPI reads and validates the document at path so a broken contract fails the boot
// instead of the first Swagger UI visit.
func LoadOpenAPI(ctx context.Context, path string) (*OpenAPIDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, gerrors.Wrapf(err, "read openapi document %s", path)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, gerrors.Wrap(err, "parse openapi document")
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, gerrors.Wrap(err, "validate openapi document")
	}

	return &OpenAPIDocument{doc: doc, raw: raw, path: path}, nil
}

func (d *OpenAPIDocument) Version() string {
	if d.doc.Info == nil {
		return ""
	}
	return d.doc.Info.Version
}

// HasOperation reports whether the contract documents method on path, e.g. GET /talent-pool.
func (d *OpenAPIDocument) HasOperation(method, path string) bool {
	item := d.doc.Paths.Find(path)
	if item == nil {
		return false
	}
	return item.GetOperation(method) != nil
}

func (d *OpenAPIDocument) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(d.raw)
}
