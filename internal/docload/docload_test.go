package docload

import (
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

func TestLoad_MinimalDocument(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.0",
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

	spec, warnings, err := New(nil).Load("file:///pets.json", root)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "Pets", spec.Info.Title)
	require.Contains(t, spec.Paths, "/pets/{id}")
	op := spec.Paths["/pets/{id}"].Get
	require.NotNil(t, op)
	assert.Equal(t, "pet_get", op.OperationID)
	require.Len(t, op.Parameters, 1)
	assert.True(t, op.Parameters[0].RequiredSet)
	assert.True(t, op.Parameters[0].Required)
	require.Contains(t, op.Responses, "200")
}

func TestLoad_MissingInfoIsInvalidInput(t *testing.T) {
	root := decode(t, `{"openapi": "3.0.3", "paths": {}}`)
	_, _, err := New(nil).Load("file:///bad.json", root)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.InvalidInput, merr.Kind)
}

func TestLoad_InvalidResponseStatusKeyRejected(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.0.3",
		"info": {"title": "Pets", "version": "1.0.0"},
		"paths": {"/pets": {"get": {"operationId": "list", "responses": {"2xx": {"description": "bad"}}}}}
	}`)
	_, _, err := New(nil).Load("file:///bad.json", root)
	require.Error(t, err)
}

func TestLoad_QueryMethodAndAdditionalOperations(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.2.0",
		"info": {"title": "Pets", "version": "1.0.0"},
		"paths": {
			"/pets": {
				"query": {"operationId": "pet_search", "responses": {"200": {"description": "OK"}}},
				"additionalOperations": {"PURGE": {"operationId": "pet_purge", "responses": {"204": {"description": "No content"}}}}
			}
		}
	}`)

	spec, _, err := New(nil).Load("file:///pets.json", root)
	require.NoError(t, err)
	item := spec.Paths["/pets"]
	require.NotNil(t, item.Query)
	assert.Equal(t, "pet_search", item.Query.OperationID)
	require.Contains(t, item.AdditionalOperations, "PURGE")
	assert.True(t, item.AdditionalOperations["PURGE"].IsAdditional)
}

func TestLoad_DuplicateBaseURIConflict(t *testing.T) {
	root := decode(t, `{"openapi": "3.0.3", "info": {"title": "A", "version": "1.0.0"}, "paths": {}}`)
	other := decode(t, `{"openapi": "3.0.3", "info": {"title": "B", "version": "1.0.0"}, "paths": {}}`)

	reg := model.NewDocRegistry()
	_, _, err := New(reg).Load("file:///doc.json", root)
	require.NoError(t, err)

	_, _, err = New(reg).Load("file:///doc.json", other)
	require.Error(t, err)
}

func TestLoad_ExampleMutualExclusivityWarns(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.0",
		"info": {"title": "Pets", "version": "1.0.0"},
		"paths": {
			"/pets": {
				"get": {
					"operationId": "list",
					"responses": {"200": {
						"description": "OK",
						"content": {"application/json": {"schema": {"type": "object"},
							"examples": {"ex1": {"value": {"a": 1}, "externalValue": "http://example.com/ex1"}}}}
					}}
				}
			}
		}
	}`)

	_, warnings, err := New(nil).Load("file:///pets.json", root)
	require.NoError(t, err)
	assert.True(t, warnings.Has("INVALID_EXAMPLE_MUTUAL_EXCLUSIVITY"))
}

func TestLoad_OAuth2FlowsArePopulated(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.0",
		"info": {"title": "Auth", "version": "1.0.0"},
		"paths": {},
		"components": {
			"securitySchemes": {
				"oauth": {
					"type": "oauth2",
					"flows": {
						"authorizationCode": {
							"authorizationUrl": "https://example.com/authorize",
							"tokenUrl": "https://example.com/token",
							"scopes": {"read": "Read access"}
						}
					}
				}
			}
		}
	}`)

	spec, _, err := New(nil).Load("file:///auth.json", root)
	require.NoError(t, err)
	sc := spec.Components.SecuritySchemes["oauth"]
	require.NotNil(t, sc.Flows)
	require.NotNil(t, sc.Flows.AuthorizationCode)
	assert.Equal(t, "https://example.com/token", sc.Flows.AuthorizationCode.TokenURL)
	assert.Equal(t, "Read access", sc.Flows.AuthorizationCode.Scopes["read"])
}

func TestLoad_SchemaOnlyDocument(t *testing.T) {
	root := decode(t, `{"type": "object", "properties": {"name": {"type": "string"}}}`)
	spec, _, err := New(nil).Load("file:///schema.json", root)
	require.NoError(t, err)
	assert.True(t, spec.IsSchemaDocument)
	require.Contains(t, spec.Components.Schemas, "")
	assert.Equal(t, "object", spec.Components.Schemas[""].Type)
}

func TestLoad_UnresolvedRefRejected(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.0",
		"info": {"title": "Pets", "version": "1.0.0"},
		"paths": {
			"/pets": {
				"get": {
					"operationId": "list",
					"responses": {"200": {"description": "OK",
						"content": {"application/json": {"schema": {"$ref": "#/components/schemas/Missing"}}}}}
				}
			}
		}
	}`)

	_, _, err := New(nil).Load("file:///pets.json", root)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.ReferenceError, merr.Kind)
}

func TestLoad_ResolvedRefAccepted(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.0",
		"info": {"title": "Pets", "version": "1.0.0"},
		"paths": {
			"/pets": {
				"get": {
					"operationId": "list",
					"responses": {"200": {"description": "OK",
						"content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}}}
				}
			}
		},
		"components": {"schemas": {"Pet": {"type": "object"}}}
	}`)

	spec, _, err := New(nil).Load("file:///pets.json", root)
	require.NoError(t, err)
	schema := spec.Paths["/pets"].Get.Responses["200"].Content["application/json"].Schema
	assert.Equal(t, "#/components/schemas/Pet", schema.Ref)
}

func TestLoad_ComponentsLoadsAllReservedKinds(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.0",
		"info": {"title": "Pets", "version": "1.0.0"},
		"paths": {},
		"components": {
			"responses": {"NotFound": {"description": "missing"}},
			"headers": {"RateLimit": {"description": "requests left", "schema": {"type": "integer"}}},
			"requestBodies": {"PetBody": {"description": "a pet", "content": {"application/json": {"schema": {"type": "object"}}}}},
			"examples": {"PetExample": {"summary": "one pet", "value": {"name": "Rex"}}},
			"links": {"GetPetById": {"operationId": "pet_get"}},
			"callbacks": {"onEvent": {"{$request.body#/callbackUrl}": {"post": {"operationId": "cb", "responses": {"200": {"description": "ack"}}}}}},
			"pathItems": {"Shared": {"get": {"operationId": "shared_get", "responses": {"200": {"description": "ok"}}}}}
		}
	}`)

	spec, _, err := New(nil).Load("file:///pets.json", root)
	require.NoError(t, err)
	require.Contains(t, spec.Components.Responses, "NotFound")
	require.Contains(t, spec.Components.Headers, "RateLimit")
	require.Contains(t, spec.Components.RequestBodies, "PetBody")
	require.Contains(t, spec.Components.Examples, "PetExample")
	require.Contains(t, spec.Components.Links, "GetPetById")
	require.Contains(t, spec.Components.Callbacks, "onEvent")
	require.Contains(t, spec.Components.PathItems, "Shared")

	cb := spec.Components.Callbacks["onEvent"]
	require.Contains(t, cb.PathItems, "{$request.body#/callbackUrl}")
	assert.Equal(t, "cb", cb.PathItems["{$request.body#/callbackUrl}"].Post.OperationID)
}

func TestLoad_ResponseLinksAndOperationCallbacksPopulated(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.0",
		"info": {"title": "Pets", "version": "1.0.0"},
		"paths": {
			"/pets": {
				"post": {
					"operationId": "pet_create",
					"responses": {
						"201": {
							"description": "created",
							"links": {"GetCreatedPet": {"operationId": "pet_get", "description": "fetch it back"}}
						}
					},
					"callbacks": {
						"onCreated": {"{$request.body#/callbackUrl}": {"post": {"operationId": "pet_created_cb", "responses": {"200": {"description": "ack"}}}}}
					}
				}
			}
		}
	}`)

	spec, _, err := New(nil).Load("file:///pets.json", root)
	require.NoError(t, err)
	op := spec.Paths["/pets"].Post
	require.Contains(t, op.Responses["201"].Links, "GetCreatedPet")
	assert.Equal(t, "pet_get", op.Responses["201"].Links["GetCreatedPet"].OperationID)
	require.Contains(t, op.Callbacks, "onCreated")
}

func TestLoad_InlineObjectSchemaPromoted(t *testing.T) {
	root := decode(t, `{
		"openapi": "3.1.0",
		"info": {"title": "Pets", "version": "1.0.0"},
		"paths": {
			"/pets": {
				"post": {
					"operationId": "pet_create",
					"requestBody": {
						"content": {"application/json": {"schema": {
							"type": "object",
							"properties": {"name": {"type": "string"}}
						}}}
					},
					"responses": {"201": {"description": "created"}}
				}
			}
		}
	}`)

	spec, _, err := New(nil).Load("file:///pets.json", root)
	require.NoError(t, err)
	body := spec.Paths["/pets"].Post.RequestBody
	schema := body.Content["application/json"].Schema
	require.NotEmpty(t, schema.Ref)
	require.Contains(t, spec.Components.Schemas, "pet_createRequest")
	assert.Equal(t, "object", spec.Components.Schemas["pet_createRequest"].Type)
}
