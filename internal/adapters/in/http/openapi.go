package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

// APIDocument is the validated OpenAPI description of the REST API.
type APIDocument struct {
	doc  *openapi3.T
	json []byte
}

// LoadAPIDocument parses and validates the embedded document and registers it
// with swag, where the swagger UI reads it.
func LoadAPIDocument(ctx context.Context) (*APIDocument, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}

	api := &APIDocument{doc: doc, json: raw}
	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, api)
	}
	return api, nil
}

// ReadDoc implements swag.Swagger.
func (a *APIDocument) ReadDoc() string {
	return string(a.json)
}

// HasOperation reports whether the document describes method on an echo
// route path such as /api/v1/admin/shipments/:id.
func (a *APIDocument) HasOperation(method, echoPath string) bool {
	item := a.doc.Paths.Find(toOpenAPIPath(echoPath))
	if item == nil {
		return false
	}
	return item.GetOperation(method) != nil
}

func (a *APIDocument) serve(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, a.json)
}

// toOpenAPIPath turns ":id" segments into "{id}".
func toOpenAPIPath(echoPath string) string {
	out := make([]byte, 0, len(echoPath)+4)
	for i := 0; i < len(echoPath); i++ {
		if echoPath[i] != ':' {
			out = append(out, echoPath[i])
			continue
		}
		j := i + 1
		for j < len(echoPath) && echoPath[j] != '/' {
			j++
		}
		out = append(out, '{')
		out = append(out, echoPath[i+1:j]...)
		out = append(out, '}')
		i = j - 1
	}
	return string(out)
}
