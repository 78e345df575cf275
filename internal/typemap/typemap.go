// Package typemap implements a schema registry and C-type mapper: a
// cache + namer + ref-or-inline schema generator driven by C type
// descriptor strings (as produced by internal/cscan's signature/field
// parsing) instead of reflect.Type.
package typemap

import (
	"strings"

	"github.com/talav/c2openapi/debug"
	"github.com/talav/c2openapi/internal/cscan"
	"github.com/talav/c2openapi/internal/model"
)

// Registry maps C type declarations to OpenAPI schemas, caching named
// component schemas so repeated references to the same C struct/enum
// resolve to a single shared component rather than being re-inlined.
type Registry struct {
	decls   map[string]cscan.TypeDecl // by tag/alias name
	schemas map[string]*model.Schema  // component name -> schema, the registry's cache
	namer   func(string) string
	seen    map[string]bool // in-progress names, breaks infinite recursion on self-referential structs
}

// New returns an empty Registry using the default namer.
func New() *Registry {
	return &Registry{
		decls:   make(map[string]cscan.TypeDecl),
		schemas: make(map[string]*model.Schema),
		namer:   defaultNamer,
		seen:    make(map[string]bool),
	}
}

// WithNamer overrides the component-name derivation function.
func (r *Registry) WithNamer(f func(string) string) *Registry {
	r.namer = f
	return r
}

// RegisterTypes indexes every struct/enum/union/typedef declaration found by
// a cscan.Scan pass so later calls to Resolve can turn a reference to one of
// them into a named component schema.
func (r *Registry) RegisterTypes(decls []cscan.TypeDecl) {
	for _, d := range decls {
		if d.Name == "" {
			continue
		}
		r.decls[d.Name] = d
	}
}

// Schemas returns every component schema generated so far, keyed by
// component name, ready to be placed under Components.Schemas.
func (r *Registry) Schemas() map[string]*model.Schema {
	return r.schemas
}

// Resolve maps a C type descriptor (e.g. "int", "char *", "struct pet *",
// "pet_t", "struct pet[]") to a Schema. A known struct/union/enum/typedef,
// with or without pointers, resolves to a $ref against the component
// generated for it (registered as a side effect); primitives and arrays
// resolve to an inline schema. Unknown/unmapped base types produce an untyped schema and a
// WarnUnmappedType warning.
func (r *Registry) Resolve(cType string) (*model.Schema, debug.Warnings) {
	var warnings debug.Warnings
	return r.resolve(cType, &warnings), warnings
}

func (r *Registry) resolve(cType string, warnings *debug.Warnings) *model.Schema {
	t := normalize(cType)

	if isArrayType(t) {
		elem := arrayElementType(t)
		return &model.Schema{Type: "array", Items: r.resolve(elem, warnings)}
	}

	ptrDepth, base := stripPointers(t)
	base = stripKeyword(base, "struct", "union", "enum")

	if sc, ok := primitiveSchema(base); ok {
		if ptrDepth > 0 {
			// A pointer to a primitive (e.g. "char *") is itself a
			// string; deeper pointer nesting is left as a plain
			// nullable wrapper, matching the common "out-param" idiom.
			sc.Nullable = ptrDepth > 1 || base == "char"
		}
		return sc
	}

	if decl, ok := r.decls[base]; ok {
		return r.resolveDecl(base, decl, warnings)
	}

	*warnings = append(*warnings, debug.NewWarning(debug.WarnUnmappedType, "", "no schema mapping for C type \""+cType+"\""))
	return &model.Schema{Description: "unmapped C type: " + cType}
}

func (r *Registry) resolveDecl(name string, decl cscan.TypeDecl, warnings *debug.Warnings) *model.Schema {
	compName := r.namer(name)

	if _, ok := r.schemas[compName]; ok {
		return &model.Schema{Ref: "#/components/schemas/" + compName}
	}
	if r.seen[compName] {
		// Recursive type: return the ref immediately; the outer call stores
		// the component in r.schemas once it returns.
		return &model.Schema{Ref: "#/components/schemas/" + compName}
	}
	r.seen[compName] = true
	defer delete(r.seen, compName)

	switch decl.Kind {
	case cscan.TypeEnum:
		enum := make([]any, 0, len(decl.Members))
		for _, m := range decl.Members {
			enum = append(enum, m)
		}
		sc := &model.Schema{Type: "string", Enum: enum, Description: firstLine(decl.DocComment)}
		r.schemas[compName] = sc
		return &model.Schema{Ref: "#/components/schemas/" + compName}

	case cscan.TypeAlias:
		r.schemas[compName] = r.resolve(decl.Underlying, warnings)
		return &model.Schema{Ref: "#/components/schemas/" + compName}

	default: // struct/union
		props := make(map[string]*model.Schema, len(decl.Fields))
		var required []string
		for _, f := range decl.Fields {
			props[f.Name] = r.resolve(f.Type, warnings)
			if !strings.Contains(f.Type, "*") {
				required = append(required, f.Name)
			}
		}
		sc := &model.Schema{
			Type:        "object",
			Properties:  props,
			Required:    required,
			Description: firstLine(decl.DocComment),
		}
		r.schemas[compName] = sc
		return &model.Schema{Ref: "#/components/schemas/" + compName}
	}
}

func firstLine(doc string) string {
	doc = strings.TrimSpace(doc)
	if i := strings.IndexByte(doc, '\n'); i >= 0 {
		doc = doc[:i]
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(doc, "/**"), "//"))
}

func normalize(t string) string {
	t = strings.TrimSpace(t)
	t = strings.ReplaceAll(t, "const ", "")
	t = strings.ReplaceAll(t, "const", "")
	return strings.Join(strings.Fields(t), " ")
}

func isArrayType(t string) bool {
	return strings.HasSuffix(t, "[]")
}

func arrayElementType(t string) string {
	return strings.TrimSpace(strings.TrimSuffix(t, "[]"))
}

func stripPointers(t string) (depth int, base string) {
	base = t
	for strings.HasSuffix(base, "*") {
		depth++
		base = strings.TrimSpace(strings.TrimSuffix(base, "*"))
	}
	return depth, base
}

func stripKeyword(t string, keywords ...string) string {
	fields := strings.Fields(t)
	if len(fields) == 0 {
		return t
	}
	for _, kw := range keywords {
		if fields[0] == kw {
			return strings.Join(fields[1:], " ")
		}
	}
	return t
}

// primitiveTable maps base C type names to (openapi type, format) pairs.
var primitiveTable = map[string][2]string{
	"void":           {"", ""},
	"_Bool":          {"boolean", ""},
	"bool":           {"boolean", ""},
	"char":           {"string", ""},
	"signed char":    {"integer", "int8"},
	"unsigned char":  {"integer", "uint8"},
	"short":          {"integer", "int16"},
	"short int":      {"integer", "int16"},
	"unsigned short": {"integer", "uint16"},
	"int":            {"integer", "int32"},
	"unsigned":       {"integer", "uint32"},
	"unsigned int":   {"integer", "uint32"},
	"long":           {"integer", "int64"},
	"long int":       {"integer", "int64"},
	"unsigned long":  {"integer", "uint64"},
	"long long":      {"integer", "int64"},
	"size_t":         {"integer", "uint64"},
	"ssize_t":        {"integer", "int64"},
	"int8_t":         {"integer", "int8"},
	"uint8_t":        {"integer", "uint8"},
	"int16_t":        {"integer", "int16"},
	"uint16_t":       {"integer", "uint16"},
	"int32_t":        {"integer", "int32"},
	"uint32_t":       {"integer", "uint32"},
	"int64_t":        {"integer", "int64"},
	"uint64_t":       {"integer", "uint64"},
	"float":          {"number", "float"},
	"double":         {"number", "double"},
}

func primitiveSchema(base string) (*model.Schema, bool) {
	if base == "char" {
		// A bare "char" (no pointer) is a single-character C value; the
		// common idiom "char *" for a C string is handled by the caller,
		// which strips the pointer before reaching here -- both map to
		// the same plain type: string schema.
		return &model.Schema{Type: "string"}, true
	}
	if entry, ok := primitiveTable[base]; ok {
		if entry[0] == "" {
			return nil, false
		}
		return &model.Schema{Type: entry[0], Format: entry[1]}, true
	}
	return nil, false
}

func defaultNamer(name string) string {
	if name == "" {
		return name
	}
	name = strings.TrimSuffix(name, "_t")
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
