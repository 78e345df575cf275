package specvalidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talav/c2openapi/internal/model"
)

func baseSpec() *model.Spec {
	return &model.Spec{
		Info:  model.Info{Title: "Pets", Version: "1.0.0"},
		Paths: map[string]*model.PathItem{},
	}
}

func TestValidate_OK(t *testing.T) {
	spec := baseSpec()
	spec.Paths["/pets/{id}"] = &model.PathItem{
		Get: &model.Operation{
			OperationID: "pet_get",
			Parameters:  []model.Parameter{{Name: "id", In: "path", Required: true}},
			Responses:   map[string]*model.Response{"200": {Description: "OK"}},
		},
	}
	assert.NoError(t, Validate(spec))
}

func TestValidate_MissingPathParameter(t *testing.T) {
	spec := baseSpec()
	spec.Paths["/pets/{id}"] = &model.PathItem{
		Get: &model.Operation{OperationID: "pet_get", Responses: map[string]*model.Response{"200": {}}},
	}
	err := Validate(spec)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.SemanticError, merr.Kind)
}

func TestValidate_PathParamNotRequired(t *testing.T) {
	spec := baseSpec()
	spec.Paths["/pets/{id}"] = &model.PathItem{
		Get: &model.Operation{
			OperationID: "pet_get",
			Parameters:  []model.Parameter{{Name: "id", In: "path", Required: false}},
			Responses:   map[string]*model.Response{"200": {}},
		},
	}
	require.Error(t, Validate(spec))
}

func TestValidate_DuplicateOperationID(t *testing.T) {
	spec := baseSpec()
	spec.Paths["/a"] = &model.PathItem{Get: &model.Operation{OperationID: "dup", Responses: map[string]*model.Response{"200": {}}}}
	spec.Paths["/b"] = &model.PathItem{Get: &model.Operation{OperationID: "dup", Responses: map[string]*model.Response{"200": {}}}}

	err := Validate(spec)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.ConflictError, merr.Kind)
}

func TestValidate_InvalidStyleForLocation(t *testing.T) {
	spec := baseSpec()
	spec.Paths["/pets"] = &model.PathItem{
		Get: &model.Operation{
			OperationID: "list",
			Parameters:  []model.Parameter{{Name: "q", In: "query", Style: "matrix"}},
			Responses:   map[string]*model.Response{"200": {}},
		},
	}
	err := Validate(spec)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.StyleError, merr.Kind)
}

func TestValidate_UndefinedSecurityScheme(t *testing.T) {
	spec := baseSpec()
	spec.Security = []model.SecurityRequirement{{"apiKeyAuth": nil}}
	err := Validate(spec)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.ReferenceError, merr.Kind)
}

func TestValidate_SecuritySchemeDefined(t *testing.T) {
	spec := baseSpec()
	spec.Components = &model.Components{SecuritySchemes: map[string]*model.SecurityScheme{
		"apiKeyAuth": {Type: model.SecuritySchemeAPIKey, Name: "X-API-Key", In: "header"},
	}}
	spec.Security = []model.SecurityRequirement{{"apiKeyAuth": nil}}
	assert.NoError(t, Validate(spec))
}

func TestValidate_ReservedExtensionPrefixRejected(t *testing.T) {
	spec := baseSpec()
	spec.Extensions = map[string]any{"x-oai-internal": true}
	err := Validate(spec)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.InvalidInput, merr.Kind)
}

func TestValidate_CyclicTagParent(t *testing.T) {
	spec := baseSpec()
	spec.Tags = []model.Tag{
		{Name: "a", Parent: "b"},
		{Name: "b", Parent: "a"},
	}
	err := Validate(spec)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.SemanticError, merr.Kind)
}

func TestValidate_UnresolvedTagParentRejected(t *testing.T) {
	spec := baseSpec()
	spec.Tags = []model.Tag{
		{Name: "a", Parent: "ghost"},
	}
	err := Validate(spec)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.ReferenceError, merr.Kind)
}

func TestValidate_PathTemplateCollision(t *testing.T) {
	spec := baseSpec()
	spec.Paths["/a/{x}"] = &model.PathItem{
		Get: &model.Operation{OperationID: "get_x", Parameters: []model.Parameter{{Name: "x", In: "path", Required: true}},
			Responses: map[string]*model.Response{"200": {}}},
	}
	spec.Paths["/a/{y}"] = &model.PathItem{
		Get: &model.Operation{OperationID: "get_y", Parameters: []model.Parameter{{Name: "y", In: "path", Required: true}},
			Responses: map[string]*model.Response{"200": {}}},
	}
	err := Validate(spec)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.ConflictError, merr.Kind)
}

func TestValidate_QuerystringExclusiveOfQuery(t *testing.T) {
	spec := baseSpec()
	spec.Paths["/search"] = &model.PathItem{
		Get: &model.Operation{
			OperationID: "search",
			Parameters: []model.Parameter{
				{In: "querystring", Content: map[string]*model.MediaType{"application/json": {}}},
				{Name: "q", In: "query"},
			},
			Responses: map[string]*model.Response{"200": {}},
		},
	}
	err := Validate(spec)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.SemanticError, merr.Kind)
}

func TestValidate_QuerystringRequiresContent(t *testing.T) {
	spec := baseSpec()
	spec.Paths["/search"] = &model.PathItem{
		Get: &model.Operation{
			OperationID: "search",
			Parameters:  []model.Parameter{{In: "querystring"}},
			Responses:   map[string]*model.Response{"200": {}},
		},
	}
	err := Validate(spec)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.SemanticError, merr.Kind)
}

func TestValidate_OAuth2MissingTokenURL(t *testing.T) {
	spec := baseSpec()
	spec.Components = &model.Components{SecuritySchemes: map[string]*model.SecurityScheme{
		"oauth": {
			Type: model.SecuritySchemeOAuth2,
			Flows: &model.OAuthFlows{
				AuthorizationCode: &model.OAuthFlow{AuthorizationURL: "https://example.com/authorize", Scopes: map[string]string{}},
			},
		},
	}}
	err := Validate(spec)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.InvalidInput, merr.Kind)
}

func TestValidate_OAuth2Valid(t *testing.T) {
	spec := baseSpec()
	spec.Components = &model.Components{SecuritySchemes: map[string]*model.SecurityScheme{
		"oauth": {
			Type: model.SecuritySchemeOAuth2,
			Flows: &model.OAuthFlows{
				AuthorizationCode: &model.OAuthFlow{
					AuthorizationURL: "https://example.com/authorize",
					TokenURL:         "https://example.com/token",
					Scopes:           map[string]string{},
				},
			},
		},
	}}
	assert.NoError(t, Validate(spec))
}

func TestValidate_HTTPSchemeRequiresScheme(t *testing.T) {
	spec := baseSpec()
	spec.Components = &model.Components{SecuritySchemes: map[string]*model.SecurityScheme{
		"bearerAuth": {Type: model.SecuritySchemeHTTP},
	}}
	err := Validate(spec)
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.InvalidInput, merr.Kind)
}
