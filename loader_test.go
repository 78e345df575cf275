package openapi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talav/c2openapi/internal/model"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestLoader_LoadsMinimalDocument(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.2",
		"info": {"title": "Pets", "version": "1.0.0"},
		"paths": {
			"/pets/{id}": {
				"get": {
					"operationId": "pet_get",
					"parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "integer"}}],
					"responses": {"200": {"description": "OK"}}
				}
			}
		}
	}`)

	ld := NewLoader()
	result, err := ld.Load(context.Background(), "file:///pets.json", root)
	require.NoError(t, err)
	require.NotNil(t, result.Spec)
	assert.Equal(t, "Pets", result.Spec.Info.Title)
	assert.Empty(t, result.JSON, "no JSON is produced unless WithReexport is set")
}

// Two operations sharing an operationId fail with a ConflictError.
func TestLoader_DuplicateOperationIDIsConflictError(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.2",
		"info": {"title": "Dup", "version": "1.0.0"},
		"paths": {
			"/a": {"get": {"operationId": "foo", "responses": {"200": {"description": "OK"}}}},
			"/b": {"get": {"operationId": "foo", "responses": {"200": {"description": "OK"}}}}
		}
	}`)

	_, err := NewLoader().Load(context.Background(), "file:///dup.json", root)
	require.Error(t, err)

	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.ConflictError, merr.Kind)
}

// A path parameter whose placeholder no longer matches the route is a
// SemanticError.
func TestLoader_PathTemplateMismatchIsSemanticError(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.2",
		"info": {"title": "Mismatch", "version": "1.0.0"},
		"paths": {
			"/a/{uid}/b": {
				"get": {
					"operationId": "get_b",
					"parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "integer"}}],
					"responses": {"200": {"description": "OK"}}
				}
			}
		}
	}`)

	_, err := NewLoader().Load(context.Background(), "file:///mismatch.json", root)
	require.Error(t, err)

	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.SemanticError, merr.Kind)
}

// Two paths that normalize to the same placeholder-free template
// collide.
func TestLoader_PathTemplateCollisionIsConflictError(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.2",
		"info": {"title": "Collide", "version": "1.0.0"},
		"paths": {
			"/a/{x}": {
				"get": {
					"operationId": "get_x",
					"parameters": [{"name": "x", "in": "path", "required": true, "schema": {"type": "string"}}],
					"responses": {"200": {"description": "OK"}}
				}
			},
			"/a/{y}": {
				"get": {
					"operationId": "get_y",
					"parameters": [{"name": "y", "in": "path", "required": true, "schema": {"type": "string"}}],
					"responses": {"200": {"description": "OK"}}
				}
			}
		}
	}`)

	_, err := NewLoader().Load(context.Background(), "file:///collide.json", root)
	require.Error(t, err)

	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.ConflictError, merr.Kind)
}

// An oauth2 flow missing a required URL is InvalidInput.
func TestLoader_OAuth2MissingTokenURLIsInvalidInput(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.2",
		"info": {"title": "Auth", "version": "1.0.0"},
		"paths": {},
		"components": {
			"securitySchemes": {
				"oauth": {
					"type": "oauth2",
					"flows": {
						"authorizationCode": {
							"authorizationUrl": "https://example.com/authorize",
							"scopes": {}
						}
					}
				}
			}
		}
	}`)

	_, err := NewLoader().Load(context.Background(), "file:///auth.json", root)
	require.Error(t, err)

	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.InvalidInput, merr.Kind)
}

func TestLoader_ReexportProjectsTheLoadedSpec(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.2",
		"info": {"title": "Pets", "version": "1.0.0"},
		"paths": {
			"/pets": {
				"get": {
					"operationId": "pets_list",
					"responses": {"200": {"description": "OK"}}
				}
			}
		}
	}`)

	ld := NewLoader(WithReexport("3.1.2"))
	result, err := ld.Load(context.Background(), "file:///pets.json", root)
	require.NoError(t, err)
	assert.NotEmpty(t, result.JSON)
}

func TestLoader_SharedRegistryResolvesCrossDocumentRefs(t *testing.T) {
	registry := model.NewDocRegistry()

	common := decode(t, `{
		"openapi": "3.1.2",
		"info": {"title": "Common", "version": "1.0.0"},
		"paths": {},
		"components": {
			"schemas": {
				"Pet": {"type": "object", "properties": {"id": {"type": "integer"}}}
			}
		}
	}`)

	_, err := NewLoader(WithRegistry(registry)).Load(context.Background(), "https://example.com/common.json", common)
	require.NoError(t, err)

	_, ok := registry.Lookup("https://example.com/common.json")
	assert.True(t, ok)
}
