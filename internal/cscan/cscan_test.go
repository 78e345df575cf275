package cscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSrc = `
struct pet {
	int id;
	char *name;
};

/**
 * @route GET /pets/{id}
 * @summary Fetch a pet by id.
 */
struct pet *pet_get(int id);

enum pet_status {
	PET_AVAILABLE,
	PET_PENDING,
	PET_SOLD
};

typedef struct pet pet_t;
`

func TestScan_FunctionWithDocComment(t *testing.T) {
	f := Scan([]byte(sampleSrc))
	require.Len(t, f.Funcs, 1)

	fn := f.Funcs[0]
	assert.Equal(t, "pet_get", fn.Sig.Name)
	assert.Contains(t, fn.Sig.ReturnType, "pet")
	require.Len(t, fn.Sig.Params, 1)
	assert.Equal(t, "id", fn.Sig.Params[0].Name)
	assert.Equal(t, "int", fn.Sig.Params[0].Type)
	assert.Contains(t, fn.DocComment, "@route")
}

func TestScan_StructAndEnum(t *testing.T) {
	f := Scan([]byte(sampleSrc))

	var structDecl, enumDecl, aliasDecl *TypeDecl
	for i := range f.Types {
		switch f.Types[i].Kind {
		case TypeStruct:
			if f.Types[i].Name == "pet" {
				structDecl = &f.Types[i]
			}
		case TypeEnum:
			enumDecl = &f.Types[i]
		case TypeAlias:
			aliasDecl = &f.Types[i]
		}
	}

	require.NotNil(t, structDecl)
	require.Len(t, structDecl.Fields, 2)
	assert.Equal(t, "id", structDecl.Fields[0].Name)
	assert.Equal(t, "name", structDecl.Fields[1].Name)

	require.NotNil(t, enumDecl)
	assert.Equal(t, []string{"PET_AVAILABLE", "PET_PENDING", "PET_SOLD"}, enumDecl.Members)

	require.NotNil(t, aliasDecl)
	assert.Equal(t, "pet_t", aliasDecl.Name)
	assert.Contains(t, aliasDecl.Underlying, "pet")
}

func TestParseSignature_VoidParams(t *testing.T) {
	f := Scan([]byte(`int ping(void);`))
	require.Len(t, f.Funcs, 1)
	assert.Equal(t, "ping", f.Funcs[0].Sig.Name)
	assert.Empty(t, f.Funcs[0].Sig.Params)
}
