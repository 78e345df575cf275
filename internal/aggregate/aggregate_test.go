package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talav/c2openapi/internal/model"
	"github.com/talav/c2openapi/internal/opbuild"
)

func TestAggregator_AddAndSort(t *testing.T) {
	agg := New(model.Info{Title: "Pets", Version: "1.0.0"})

	err := agg.Add(opbuild.Result{
		Path: "/pets/{id}",
		Operation: &model.Operation{
			Verb: model.VerbGet, Method: "GET", OperationID: "pet_get",
			Tags:       []string{"pets"},
			Responses:  map[string]*model.Response{"200": {Description: "OK"}},
			Parameters: []model.Parameter{{Name: "id", In: "path"}},
		},
	})
	require.NoError(t, err)

	agg.Sort()
	spec := agg.Spec()
	require.Contains(t, spec.Paths, "/pets/{id}")
	assert.NotNil(t, spec.Paths["/pets/{id}"].Get)
	require.Len(t, spec.Tags, 1)
	assert.Equal(t, "pets", spec.Tags[0].Name)
}

func TestAggregator_DuplicateOperationIDRejected(t *testing.T) {
	agg := New(model.Info{Title: "Pets", Version: "1.0.0"})

	mk := func(path, method string) opbuild.Result {
		return opbuild.Result{
			Path: path,
			Operation: &model.Operation{
				Verb: model.VerbGet, Method: method, OperationID: "dup",
				Responses: map[string]*model.Response{"200": {Description: "OK"}},
			},
		}
	}

	require.NoError(t, agg.Add(mk("/a", "GET")))
	err := agg.Add(mk("/b", "GET"))
	require.Error(t, err)

	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, model.ConflictError, merr.Kind)
}

func TestAggregator_WebhookRoutesIntoWebhooksNotPaths(t *testing.T) {
	agg := New(model.Info{Title: "Pets", Version: "1.0.0"})

	err := agg.Add(opbuild.Result{
		Path:      "/events/new-pet",
		IsWebhook: true,
		Operation: &model.Operation{
			Verb: model.VerbPost, Method: "POST", OperationID: "new_pet_webhook",
			Responses: map[string]*model.Response{"200": {Description: "OK"}},
		},
	})
	require.NoError(t, err)

	spec := agg.Spec()
	assert.NotContains(t, spec.Paths, "/events/new-pet")
	require.Contains(t, spec.Webhooks, "/events/new-pet")
	assert.NotNil(t, spec.Webhooks["/events/new-pet"].Post)
}

func TestAggregator_EmptyMethodRejected(t *testing.T) {
	agg := New(model.Info{Title: "Pets", Version: "1.0.0"})

	err := agg.Add(opbuild.Result{
		Path: "/broken",
		Operation: &model.Operation{
			Verb: model.VerbUnknown, OperationID: "broken",
			Responses: map[string]*model.Response{"200": {}},
		},
	})
	require.Error(t, err)
}

func TestAggregator_SamePathDifferentVerbsOK(t *testing.T) {
	agg := New(model.Info{Title: "Pets", Version: "1.0.0"})
	require.NoError(t, agg.Add(opbuild.Result{
		Path: "/pets", Operation: &model.Operation{Verb: model.VerbGet, Method: "GET", OperationID: "list", Responses: map[string]*model.Response{"200": {}}},
	}))
	require.NoError(t, agg.Add(opbuild.Result{
		Path: "/pets", Operation: &model.Operation{Verb: model.VerbPost, Method: "POST", OperationID: "create", Responses: map[string]*model.Response{"201": {}}},
	}))

	item := agg.Spec().Paths["/pets"]
	assert.NotNil(t, item.Get)
	assert.NotNil(t, item.Post)
}
