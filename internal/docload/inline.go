package docload

import (
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/talav/c2openapi/internal/model"
)

var titleCaser = cases.Title(language.Und)

// promoteInlineSchemas implements inline schema promotion: a request or
// response's primary media type, when it is JSON-like and carries an
// anonymous object schema rather than a $ref, is lifted into a synthetic
// named component and the site is rewritten to reference it. This runs
// after paths/webhooks are fully loaded, since it needs Spec.Components to
// already exist and mutates schemas already attached to operations.
func (l *Loader) promoteInlineSchemas(spec *model.Spec) {
	if spec.Components == nil {
		spec.Components = &model.Components{}
	}
	if spec.Components.Schemas == nil {
		spec.Components.Schemas = map[string]*model.Schema{}
	}

	for _, paths := range []map[string]*model.PathItem{spec.Paths, spec.Webhooks} {
		for route, item := range paths {
			for _, op := range operationsForPromotion(item) {
				hint := op.OperationID
				if hint == "" {
					hint = routeNameHint(route, op.Method)
				}
				if op.RequestBody != nil {
					l.promoteContent(spec, op.RequestBody.Content, hint+"Request")
				}
				statuses := make([]string, 0, len(op.Responses))
				for status := range op.Responses {
					statuses = append(statuses, status)
				}
				sort.Strings(statuses)
				for _, status := range statuses {
					l.promoteContent(spec, op.Responses[status].Content, hint+"Response"+status)
				}
			}
		}
	}
}

func operationsForPromotion(item *model.PathItem) []*model.Operation {
	var ops []*model.Operation
	for _, op := range []*model.Operation{item.Get, item.Put, item.Post, item.Delete, item.Options, item.Head, item.Patch, item.Trace, item.Query} {
		if op != nil {
			ops = append(ops, op)
		}
	}
	methods := make([]string, 0, len(item.AdditionalOperations))
	for method := range item.AdditionalOperations {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	for _, method := range methods {
		ops = append(ops, item.AdditionalOperations[method])
	}
	return ops
}

// routeNameHint derives a promotion-site name for an operation that has no
// operationId, from its route and method (e.g. "/pets/{id}" + GET ->
// "GetPetsId").
func routeNameHint(route, method string) string {
	var b strings.Builder
	b.WriteString(titleCaser.String(strings.ToLower(method)))
	for _, seg := range strings.Split(route, "/") {
		seg = strings.Trim(seg, "{}")
		if seg == "" {
			continue
		}
		b.WriteString(titleCaser.String(seg))
	}
	return b.String()
}

// promoteContent promotes the content map's primary media type schema, if it
// qualifies, in place.
func (l *Loader) promoteContent(spec *model.Spec, content map[string]*model.MediaType, hint string) {
	mt, media := primaryMediaType(content)
	if media == nil || !isJSONLike(mt) {
		return
	}
	sc := media.Schema
	if sc == nil || sc.Ref != "" || sc.Type != "object" || len(sc.Properties) == 0 {
		return
	}

	name := l.uniqueComponentName(spec, sanitizeComponentName(hint))
	spec.Components.Schemas[name] = sc
	media.Schema = &model.Schema{Ref: "#/components/schemas/" + name}
}

// primaryMediaType picks the media type a promoted schema is read from: an
// exact "application/json" entry if present, otherwise the first JSON-like
// entry in sorted order so the choice is deterministic across runs.
func primaryMediaType(content map[string]*model.MediaType) (string, *model.MediaType) {
	if media, ok := content["application/json"]; ok {
		return "application/json", media
	}
	keys := make([]string, 0, len(content))
	for k := range content {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if isJSONLike(k) {
			return k, content[k]
		}
	}
	return "", nil
}

func isJSONLike(mt string) bool {
	return strings.Contains(mt, "json")
}

// sanitizeComponentName turns hint into a valid component-schema name: only
// letters, digits and underscores survive, and a name that would not start
// with a letter is prefixed with "Inline".
func sanitizeComponentName(hint string) string {
	var b strings.Builder
	for _, r := range hint {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	name := b.String()
	if name == "" {
		return "Inline"
	}
	if !unicode.IsLetter(rune(name[0])) {
		name = "Inline" + name
	}
	return name
}

// uniqueComponentName returns name unmodified if it does not collide with an
// existing component schema, otherwise appends a short uuid suffix so two
// inline schemas that sanitize to the same name still get distinct
// components instead of one silently overwriting the other.
func (l *Loader) uniqueComponentName(spec *model.Spec, name string) string {
	if _, exists := spec.Components.Schemas[name]; !exists {
		return name
	}
	return name + "_" + uuid.New().String()[:8]
}
