package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talav/c2openapi/internal/cscan"
)

func TestResolve_Primitives(t *testing.T) {
	r := New()

	sc, warnings := r.Resolve("int")
	require.Empty(t, warnings)
	assert.Equal(t, "integer", sc.Type)
	assert.Equal(t, "int32", sc.Format)

	sc, _ = r.Resolve("char *")
	assert.Equal(t, "string", sc.Type)

	sc, _ = r.Resolve("double")
	assert.Equal(t, "number", sc.Type)
	assert.Equal(t, "double", sc.Format)
}

func TestResolve_UnknownTypeWarns(t *testing.T) {
	r := New()
	sc, warnings := r.Resolve("FILE *")
	require.NotEmpty(t, warnings)
	assert.NotEmpty(t, sc.Description)
}

func TestResolve_StructBecomesComponent(t *testing.T) {
	r := New()
	r.RegisterTypes([]cscan.TypeDecl{
		{
			Kind: cscan.TypeStruct,
			Name: "pet",
			Fields: []cscan.Field{
				{Type: "int", Name: "id"},
				{Type: "char *", Name: "name"},
			},
		},
	})

	sc, warnings := r.Resolve("struct pet *")
	require.Empty(t, warnings)
	assert.Equal(t, "#/components/schemas/Pet", sc.Ref)

	schemas := r.Schemas()
	require.Contains(t, schemas, "Pet")
	petSchema := schemas["Pet"]
	assert.Equal(t, "object", petSchema.Type)
	assert.Contains(t, petSchema.Properties, "id")
	assert.Contains(t, petSchema.Properties, "name")
	assert.Contains(t, petSchema.Required, "id")
	assert.NotContains(t, petSchema.Required, "name")
}

func TestResolve_SelfReferentialStruct(t *testing.T) {
	r := New()
	r.RegisterTypes([]cscan.TypeDecl{
		{
			Kind: cscan.TypeStruct,
			Name: "node",
			Fields: []cscan.Field{
				{Type: "int", Name: "value"},
				{Type: "struct node *", Name: "next"},
			},
		},
	})

	sc, _ := r.Resolve("struct node *")
	assert.Equal(t, "#/components/schemas/Node", sc.Ref)
	nodeSchema := r.Schemas()["Node"]
	require.Contains(t, nodeSchema.Properties, "next")
	assert.Equal(t, "#/components/schemas/Node", nodeSchema.Properties["next"].Ref)
}

func TestResolve_EnumBecomesStringEnum(t *testing.T) {
	r := New()
	r.RegisterTypes([]cscan.TypeDecl{
		{Kind: cscan.TypeEnum, Name: "pet_status", Members: []string{"AVAILABLE", "SOLD"}},
	})
	sc, _ := r.Resolve("enum pet_status")
	assert.Equal(t, "#/components/schemas/PetStatus", sc.Ref)
	enumSchema := r.Schemas()["PetStatus"]
	assert.Equal(t, "string", enumSchema.Type)
	assert.Equal(t, []any{"AVAILABLE", "SOLD"}, enumSchema.Enum)
}

func TestResolve_ArrayType(t *testing.T) {
	r := New()
	sc, _ := r.Resolve("int[]")
	assert.Equal(t, "array", sc.Type)
	assert.Equal(t, "integer", sc.Items.Type)
}
