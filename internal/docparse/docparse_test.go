package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talav/c2openapi/internal/model"
)

const sampleComment = `/**
 * @route GET /pets/{id}
 * @summary Fetch a pet by id.
 * @description Looks a pet up by its numeric identifier.
 * @param id [in:path] [required] The pet identifier.
 * @param verbose [in:query] Include extended fields.
 * @return 200 The matching pet.
 * @return 404 [content-type:application/json] No pet with that id.
 * @tag pets
 * @deprecated
 */`

func TestParse_FullAnnotation(t *testing.T) {
	md := Parse(sampleComment)

	assert.Equal(t, "/pets/{id}", md.Route)
	assert.Equal(t, model.VerbGet, md.Verb)
	assert.Equal(t, "Fetch a pet by id.", md.Summary)
	assert.Equal(t, "Looks a pet up by its numeric identifier.", md.Description)
	assert.True(t, md.Deprecated)
	assert.Equal(t, []string{"pets"}, md.Tags)

	require.Len(t, md.Params, 2)
	assert.Equal(t, "id", md.Params[0].Name)
	assert.Equal(t, "path", md.Params[0].In)
	assert.True(t, md.Params[0].Flags["required"])
	assert.Equal(t, "The pet identifier.", md.Params[0].Description)

	assert.Equal(t, "verbose", md.Params[1].Name)
	assert.Equal(t, "query", md.Params[1].In)

	require.Len(t, md.Returns, 2)
	assert.Equal(t, "200", md.Returns[0].Status)
	assert.Equal(t, "The matching pet.", md.Returns[0].Description)
	assert.Equal(t, "404", md.Returns[1].Status)
	assert.Equal(t, "application/json", md.Returns[1].Attrs["content-type"])
}

func TestParse_BackslashDirectiveMarker(t *testing.T) {
	md := Parse("/** \\route POST /pets\n * \\body [required] New pet payload.\n */")
	assert.Equal(t, "/pets", md.Route)
	assert.Equal(t, model.VerbPost, md.Verb)
	require.NotNil(t, md.Body)
	assert.True(t, md.Body.Flags["required"])
}

func TestParse_RouteWithoutVerb(t *testing.T) {
	md := Parse("/** @route /pets/{id} */")
	assert.Equal(t, "/pets/{id}", md.Route)
	assert.Equal(t, model.VerbUnknown, md.Verb)
	assert.Equal(t, "", md.RawMethod)
}

func TestParse_Webhook(t *testing.T) {
	md := Parse("/**\n * @webhook POST /events/new-pet\n * @summary Fired when a pet is added.\n */")
	assert.True(t, md.IsWebhook)
	assert.Equal(t, "/events/new-pet", md.Route)
	assert.Equal(t, model.VerbPost, md.Verb)
}

func TestParse_DuplicateBodyWarns(t *testing.T) {
	md := Parse("/**\n * @body first\n * @body second\n */")
	require.NotEmpty(t, md.Warnings)
	assert.Contains(t, md.Warnings[0], "duplicate @body")
}

func TestParseBool(t *testing.T) {
	cases := map[string]bool{"true": true, "yes": true, "1": true, "": true, "false": false, "no": false, "0": false}
	for in, want := range cases {
		got, ok := ParseBool(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseBool("maybe")
	assert.False(t, ok)
}
