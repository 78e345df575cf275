// Package docload walks an already-decoded JSON document tree (the output
// of encoding/json) and populates a model.Spec, resolving local
// $ref/$dynamicRef pointers against the document's own Components and
// registering the document in a model.DocRegistry for cross-document
// resolution.
package docload

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/talav/c2openapi/debug"
	"github.com/talav/c2openapi/internal/model"
)

// Loader reads one OpenAPI (or bare JSON Schema) document tree into a Spec.
type Loader struct {
	registry *model.DocRegistry
	warnings debug.Warnings

	baseURI string
	// rawComponents holds each components/<kind> object's raw JSON map,
	// captured once up front so $ref existence can be checked against the
	// document's own declarations regardless of map iteration order or
	// whether the referenced component has been converted to a model type
	// yet (including self/forward references within components itself).
	rawComponents map[string]map[string]any
	// refErr records the first $ref/$dynamicRef resolution failure seen
	// during this Load call; later failures are not reported, matching the
	// loader's "stop at the first fatal error" policy for reference checks.
	refErr error
}

// New returns a Loader backed by registry. If registry is nil, a private
// one-document registry is created.
func New(registry *model.DocRegistry) *Loader {
	if registry == nil {
		registry = model.NewDocRegistry()
	}
	return &Loader{registry: registry}
}

// reservedComponentKinds lists the component map names a $ref's fragment
// may target under #/components/<kind>/<name>; any other fragment shape is
// rejected rather than followed as a nested JSON pointer.
var reservedComponentKinds = []string{
	"schemas", "responses", "parameters", "examples", "requestBodies",
	"headers", "securitySchemes", "links", "callbacks", "pathItems", "mediaTypes",
}

// Load parses root (a tree as produced by encoding/json.Unmarshal into
// `any`) into a Spec and registers it under baseURI. The root must be a
// JSON object; any other root, including a boolean, is rejected with
// InvalidInput.
func (l *Loader) Load(baseURI string, root any) (*model.Spec, debug.Warnings, error) {
	doc, ok := root.(map[string]any)
	if !ok {
		return nil, nil, model.NewError(model.InvalidInput, "", "document root must be a JSON object")
	}

	l.baseURI = baseURI
	l.rawComponents = map[string]map[string]any{}

	spec := &model.Spec{SelfURI: baseURI, RetrievalURI: baseURI}

	if v, ok := doc["openapi"].(string); ok {
		spec.OpenAPIVersion = v
	} else if _, hasSchemaKeyword := doc["$schema"]; hasSchemaKeyword || looksLikeSchema(doc) {
		spec.IsSchemaDocument = true
	} else {
		return nil, nil, model.NewError(model.InvalidInput, "", "document has neither \"openapi\" nor JSON Schema keywords")
	}

	if v, ok := doc["$self"].(string); ok {
		spec.DocumentURI = v
	}
	if v, ok := doc["jsonSchemaDialect"].(string); ok {
		spec.JSONSchemaDialect = v
	}

	if spec.IsSchemaDocument {
		spec.Components = &model.Components{Schemas: map[string]*model.Schema{"": l.loadSchema(doc, "")}}
		if l.refErr != nil {
			return nil, l.warnings, l.refErr
		}
		if err := l.registry.Register(baseURI, spec); err != nil {
			return nil, l.warnings, err
		}
		return spec, l.warnings, nil
	}

	infoRaw, _ := doc["info"].(map[string]any)
	if infoRaw == nil {
		return nil, nil, model.NewError(model.InvalidInput, "/info", "info object is required")
	}
	spec.Info = l.loadInfo(infoRaw)
	if spec.Info.Title == "" {
		return nil, nil, model.NewError(model.InvalidInput, "/info/title", "title is required")
	}
	if spec.Info.Version == "" {
		return nil, nil, model.NewError(model.InvalidInput, "/info/version", "version is required")
	}

	spec.Servers = l.loadServers(doc["servers"], "/servers")
	components, err := l.loadComponents(doc["components"])
	if err != nil {
		return nil, l.warnings, err
	}
	spec.Components = components

	if pathsRaw, ok := doc["paths"].(map[string]any); ok {
		paths, err := l.loadPaths(pathsRaw, "/paths")
		if err != nil {
			return nil, l.warnings, err
		}
		spec.Paths = paths
	}

	if webhooksRaw, ok := doc["webhooks"].(map[string]any); ok {
		webhooks, err := l.loadPaths(webhooksRaw, "/webhooks")
		if err != nil {
			return nil, l.warnings, err
		}
		spec.Webhooks = webhooks
	}

	if tagsRaw, ok := doc["tags"].([]any); ok {
		for _, t := range tagsRaw {
			if tm, ok := t.(map[string]any); ok {
				spec.Tags = append(spec.Tags, model.Tag{
					Name:        str(tm["name"]),
					Description: str(tm["description"]),
					Parent:      str(tm["parent"]),
					Extensions:  extractExtensions(tm),
				})
			}
		}
	}

	if secRaw, hasSecurity := doc["security"]; hasSecurity {
		spec.HasSecurity = true
		spec.Security = l.loadSecurityRequirements(secRaw)
	}

	spec.Extensions = extractExtensions(doc)

	l.promoteInlineSchemas(spec)

	if l.refErr != nil {
		return nil, l.warnings, l.refErr
	}

	if err := l.registry.Register(baseURI, spec); err != nil {
		return nil, l.warnings, err
	}
	return spec, l.warnings, nil
}

// cutRef splits ref at its first "#", separating a URI reference prefix
// (empty for a same-document ref) from the fragment that follows it.
func cutRef(ref string) (uriPart, fragment string, hasFragment bool) {
	i := strings.IndexByte(ref, '#')
	if i < 0 {
		return ref, "", false
	}
	return ref[:i], ref[i+1:], true
}

// parseComponentPointer recognizes a fragment of the form
// "/components/<kind>/<name>", where kind is one of reservedComponentKinds
// and name carries no further path segments -- a $ref is never followed as
// a nested JSON pointer past the named component.
func parseComponentPointer(fragment string) (kind, name string, ok bool) {
	const prefix = "/components/"
	if !strings.HasPrefix(fragment, prefix) {
		return "", "", false
	}
	rest := fragment[len(prefix):]
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[1] == "" || strings.Contains(parts[1], "/") {
		return "", "", false
	}
	for _, k := range reservedComponentKinds {
		if parts[0] == k {
			return k, unescapeJSONPointerToken(parts[1]), true
		}
	}
	return "", "", false
}

func unescapeJSONPointerToken(s string) string {
	s = strings.ReplaceAll(s, "~1", "/")
	s = strings.ReplaceAll(s, "~0", "~")
	return s
}

// resolveURIReference composes ref against base per RFC 3986, the way a
// browser resolves a relative href -- used to turn a $ref's URI prefix into
// the document_uri a cross-document ref should be looked up under.
func resolveURIReference(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

func rawComponentExists(raw map[string]map[string]any, kind, name string) bool {
	km, ok := raw[kind]
	if !ok {
		return false
	}
	_, ok = km[name]
	return ok
}

func componentKeyExists(c *model.Components, kind, name string) bool {
	if c == nil {
		return false
	}
	switch kind {
	case "schemas":
		_, ok := c.Schemas[name]
		return ok
	case "responses":
		_, ok := c.Responses[name]
		return ok
	case "parameters":
		_, ok := c.Parameters[name]
		return ok
	case "examples":
		_, ok := c.Examples[name]
		return ok
	case "requestBodies":
		_, ok := c.RequestBodies[name]
		return ok
	case "headers":
		_, ok := c.Headers[name]
		return ok
	case "securitySchemes":
		_, ok := c.SecuritySchemes[name]
		return ok
	case "links":
		_, ok := c.Links[name]
		return ok
	case "callbacks":
		_, ok := c.Callbacks[name]
		return ok
	case "pathItems":
		_, ok := c.PathItems[name]
		return ok
	case "mediaTypes":
		_, ok := c.MediaTypes[name]
		return ok
	default:
		return false
	}
}

// resolveRef implements resolve_ref_target: split at "#", compose the URI
// prefix against the current document's base URI, then check that the
// fragment names a component that is actually defined -- in this document's
// own (not-yet-fully-built) components when the composed base is this
// document's own base URI, or in an already-registered document otherwise.
func (l *Loader) resolveRef(ref, path string) error {
	uriPart, fragment, hasFragment := cutRef(ref)
	if !hasFragment {
		return model.Errorf(model.ReferenceError, path, "ref %q has no \"#\" fragment", ref)
	}
	kind, name, ok := parseComponentPointer(fragment)
	if !ok {
		return model.Errorf(model.ReferenceError, path, "ref %q does not target a reserved #/components/<kind>/<name> location", ref)
	}

	base := l.baseURI
	if uriPart != "" {
		base = resolveURIReference(l.baseURI, uriPart)
	}

	if base == l.baseURI {
		if !rawComponentExists(l.rawComponents, kind, name) {
			return model.Errorf(model.ReferenceError, path, "ref %q does not resolve to a defined component", ref)
		}
		return nil
	}

	target, err := l.registry.MustLookup(base)
	if err != nil {
		return model.Wrap(model.ReferenceError, path, err)
	}
	if !componentKeyExists(target.Components, kind, name) {
		return model.Errorf(model.ReferenceError, path, "ref %q does not resolve to a defined component in %q", ref, base)
	}
	return nil
}

// checkRef validates ref, recording only the first resolution failure seen
// during this Load call -- later calls are skipped once one is recorded.
func (l *Loader) checkRef(ref, path string) {
	if l.refErr != nil || ref == "" {
		return
	}
	if err := l.resolveRef(ref, path); err != nil {
		l.refErr = err
	}
}

func looksLikeSchema(doc map[string]any) bool {
	for _, k := range []string{"type", "properties", "allOf", "anyOf", "oneOf", "$ref", "enum"} {
		if _, ok := doc[k]; ok {
			return true
		}
	}
	return false
}

func (l *Loader) loadInfo(m map[string]any) model.Info {
	info := model.Info{
		Title:          str(m["title"]),
		Summary:        str(m["summary"]),
		Description:    str(m["description"]),
		TermsOfService: str(m["termsOfService"]),
		Version:        str(m["version"]),
	}
	if c, ok := m["contact"].(map[string]any); ok {
		info.Contact = &model.Contact{Name: str(c["name"]), URL: str(c["url"]), Email: str(c["email"])}
	}
	if lic, ok := m["license"].(map[string]any); ok {
		name := str(lic["name"])
		identifier := str(lic["identifier"])
		url := str(lic["url"])
		if identifier != "" && url != "" {
			l.warnings = append(l.warnings, debug.NewWarning(debug.WarnInvalidLicenseMutualExclusivity,
				"/info/license", "license identifier and url are mutually exclusive; identifier takes precedence"))
			url = ""
		}
		info.License = &model.License{Name: name, Identifier: identifier, URL: url}
	}
	info.Extensions = extractExtensions(m)
	return info
}

func (l *Loader) loadServers(raw any, path string) []model.Server {
	arr, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]model.Server, 0, len(arr))
	for i, s := range arr {
		sm, ok := s.(map[string]any)
		if !ok {
			continue
		}
		url := str(sm["url"])
		srv := model.Server{URL: url, Description: str(sm["description"])}
		if varsRaw, ok := sm["variables"].(map[string]any); ok {
			if url == "" {
				l.warnings = append(l.warnings, debug.NewWarning(debug.WarnServerVariableWithoutURL,
					fmt.Sprintf("%s/%d", path, i), "server variables require a server URL"))
			}
			srv.Variables = map[string]*model.ServerVariable{}
			for name, v := range varsRaw {
				vm, _ := v.(map[string]any)
				sv := &model.ServerVariable{Default: str(vm["default"]), Description: str(vm["description"])}
				if enumRaw, ok := vm["enum"].([]any); ok {
					for _, e := range enumRaw {
						sv.Enum = append(sv.Enum, str(e))
					}
				}
				srv.Variables[name] = sv
			}
		}
		out = append(out, srv)
	}
	return out
}

func (l *Loader) loadPaths(raw map[string]any, base string) (map[string]*model.PathItem, error) {
	out := make(map[string]*model.PathItem, len(raw))
	for route, v := range raw {
		im, ok := v.(map[string]any)
		if !ok {
			continue
		}
		item, err := l.loadPathItem(im, base+jsonPointerEscape(route))
		if err != nil {
			return nil, err
		}
		out[route] = item
	}
	return out, nil
}

var fixedVerbs = map[string]model.Verb{
	"get": model.VerbGet, "put": model.VerbPut, "post": model.VerbPost,
	"delete": model.VerbDelete, "options": model.VerbOptions, "head": model.VerbHead,
	"patch": model.VerbPatch, "trace": model.VerbTrace, "query": model.VerbQuery,
}

func (l *Loader) loadPathItem(m map[string]any, path string) (*model.PathItem, error) {
	item := &model.PathItem{
		Ref:         str(m["$ref"]),
		Summary:     str(m["summary"]),
		Description: str(m["description"]),
	}
	l.checkRef(item.Ref, path)

	for key, verb := range fixedVerbs {
		opRaw, ok := m[key].(map[string]any)
		if !ok {
			continue
		}
		op, err := l.loadOperation(opRaw, verb, key, path+"/"+key)
		if err != nil {
			return nil, err
		}
		assignVerb(item, verb, op)
	}

	if parametersRaw, ok := m["parameters"].([]any); ok {
		item.Parameters = l.loadParameters(parametersRaw, path+"/parameters")
	}
	item.Servers = l.loadServers(m["servers"], path+"/servers")
	item.Extensions = extractExtensions(m)

	for key, v := range m {
		if _, isFixed := fixedVerbs[key]; isFixed {
			continue
		}
		if !isAdditionalMethodKey(key) {
			continue
		}
		container, ok := v.(map[string]any)
		if !ok {
			continue
		}
		for method, ov := range container {
			opRaw, ok := ov.(map[string]any)
			if !ok {
				continue
			}
			op, err := l.loadOperation(opRaw, model.VerbUnknown, method, path+"/"+key+"/"+jsonPointerEscape(method))
			if err != nil {
				return nil, err
			}
			op.IsAdditional = true
			op.Method = strings.ToUpper(method)
			if item.AdditionalOperations == nil {
				item.AdditionalOperations = map[string]*model.Operation{}
			}
			item.AdditionalOperations[op.Method] = op
		}
	}

	return item, nil
}

// isAdditionalMethodKey recognizes the "additionalOperations" container key
// used by OAS 3.2 for custom HTTP methods.
func isAdditionalMethodKey(key string) bool {
	return key == "additionalOperations"
}

func assignVerb(item *model.PathItem, verb model.Verb, op *model.Operation) {
	switch verb {
	case model.VerbGet:
		item.Get = op
	case model.VerbPut:
		item.Put = op
	case model.VerbPost:
		item.Post = op
	case model.VerbDelete:
		item.Delete = op
	case model.VerbOptions:
		item.Options = op
	case model.VerbHead:
		item.Head = op
	case model.VerbPatch:
		item.Patch = op
	case model.VerbTrace:
		item.Trace = op
	case model.VerbQuery:
		item.Query = op
	}
}

func (l *Loader) loadOperation(m map[string]any, verb model.Verb, method, path string) (*model.Operation, error) {
	op := &model.Operation{
		Verb:        verb,
		Method:      strings.ToUpper(method),
		OperationID: str(m["operationId"]),
		Summary:     str(m["summary"]),
		Description: str(m["description"]),
		Deprecated:  toBool(m["deprecated"]),
	}
	if tagsRaw, ok := m["tags"].([]any); ok {
		for _, t := range tagsRaw {
			op.Tags = append(op.Tags, str(t))
		}
	}
	if parametersRaw, ok := m["parameters"].([]any); ok {
		op.Parameters = l.loadParameters(parametersRaw, path+"/parameters")
	}
	if bodyRaw, ok := m["requestBody"].(map[string]any); ok {
		op.RequestBody = l.loadRequestBody(bodyRaw, path+"/requestBody")
	}
	if responsesRaw, ok := m["responses"].(map[string]any); ok {
		responses, err := l.loadResponses(responsesRaw, path+"/responses")
		if err != nil {
			return nil, err
		}
		op.Responses = responses
	}
	if secRaw, hasSecurity := m["security"]; hasSecurity {
		op.HasSecurity = true
		op.Security = l.loadSecurityRequirements(secRaw)
	}
	if _, hasServers := m["servers"]; hasServers {
		op.HasServers = true
		op.Servers = l.loadServers(m["servers"], path+"/servers")
	}
	if callbacksRaw, ok := m["callbacks"].(map[string]any); ok {
		op.Callbacks = map[string]*model.Callback{}
		for name, v := range callbacksRaw {
			cm, ok := v.(map[string]any)
			if !ok {
				continue
			}
			cb, err := l.loadCallback(cm, path+"/callbacks/"+jsonPointerEscape(name))
			if err != nil {
				return nil, err
			}
			op.Callbacks[name] = cb
		}
	}
	op.Extensions = extractExtensions(m)
	return op, nil
}

// loadCallback loads a Callback's expression -> PathItem map. An expression
// key is itself a runtime expression, not a JSON-pointer-escaped literal, so
// it is used as-is for both the map key and (escaped) the error path.
func (l *Loader) loadCallback(m map[string]any, path string) (*model.Callback, error) {
	cb := &model.Callback{Ref: str(m["$ref"])}
	l.checkRef(cb.Ref, path)
	if cb.Ref != "" {
		return cb, nil
	}

	cb.PathItems = map[string]*model.PathItem{}
	for expr, v := range m {
		if strings.HasPrefix(expr, "x-") {
			continue
		}
		im, ok := v.(map[string]any)
		if !ok {
			continue
		}
		item, err := l.loadPathItem(im, path+"/"+jsonPointerEscape(expr))
		if err != nil {
			return nil, err
		}
		cb.PathItems[expr] = item
	}
	cb.Extensions = extractExtensions(m)
	return cb, nil
}

func (l *Loader) loadLink(m map[string]any, path string) *model.Link {
	link := &model.Link{
		Ref:          str(m["$ref"]),
		OperationRef: str(m["operationRef"]),
		OperationID:  str(m["operationId"]),
		Description:  str(m["description"]),
	}
	l.checkRef(link.Ref, path)
	if paramsRaw, ok := m["parameters"].(map[string]any); ok {
		link.Parameters = paramsRaw
	}
	if rb, ok := m["requestBody"]; ok {
		link.RequestBody = rb
	}
	if serverRaw, ok := m["server"].(map[string]any); ok {
		link.Server = &model.Server{URL: str(serverRaw["url"]), Description: str(serverRaw["description"])}
	}
	link.Extensions = extractExtensions(m)
	return link
}

func (l *Loader) loadParameters(arr []any, path string) []model.Parameter {
	out := make([]model.Parameter, 0, len(arr))
	for i, p := range arr {
		pm, ok := p.(map[string]any)
		if !ok {
			continue
		}
		ppath := fmt.Sprintf("%s/%d", path, i)
		param := model.Parameter{
			Ref:         str(pm["$ref"]),
			Name:        str(pm["name"]),
			In:          str(pm["in"]),
			Description: str(pm["description"]),
			Style:       str(pm["style"]),
			Deprecated:  toBool(pm["deprecated"]),
		}
		l.checkRef(param.Ref, ppath)
		if v, ok := pm["required"]; ok {
			param.Required = toBool(v)
			param.RequiredSet = true
		}
		if v, ok := pm["allowEmptyValue"]; ok {
			param.AllowEmptyValue = toBool(v)
			param.AllowEmptyValueSet = true
		}
		if v, ok := pm["explode"]; ok {
			param.Explode = toBool(v)
			param.ExplodeSet = true
		}
		if v, ok := pm["allowReserved"]; ok {
			param.AllowReserved = toBool(v)
			param.AllowReservedSet = true
		}
		if param.In != "" && param.In != "path" && param.In != "query" && param.In != "querystring" &&
			param.In != "header" && param.In != "cookie" {
			l.warnings = append(l.warnings, debug.NewWarning(debug.WarnUnrecognizedParameterLocation, ppath, "unrecognized parameter location "+param.In))
		}
		if schemaRaw, ok := pm["schema"].(map[string]any); ok {
			param.Schema = l.loadSchema(schemaRaw, ppath+"/schema")
		}
		if contentRaw, ok := pm["content"].(map[string]any); ok {
			param.Content = l.loadContent(contentRaw, ppath+"/content")
		}
		param.Extensions = extractExtensions(pm)
		out = append(out, param)
	}
	return out
}

func (l *Loader) loadRequestBody(m map[string]any, path string) *model.RequestBody {
	rb := &model.RequestBody{
		Ref:         str(m["$ref"]),
		Description: str(m["description"]),
		Required:    toBool(m["required"]),
	}
	l.checkRef(rb.Ref, path)
	if contentRaw, ok := m["content"].(map[string]any); ok {
		rb.Content = l.loadContent(contentRaw, path+"/content")
	}
	rb.Extensions = extractExtensions(m)
	return rb
}

func (l *Loader) loadContent(m map[string]any, path string) map[string]*model.MediaType {
	out := make(map[string]*model.MediaType, len(m))
	for mt, v := range m {
		mm, ok := v.(map[string]any)
		if !ok {
			continue
		}
		mtPath := path + "/" + jsonPointerEscape(mt)
		media := &model.MediaType{Ref: str(mm["$ref"])}
		l.checkRef(media.Ref, mtPath)
		if schemaRaw, ok := mm["schema"].(map[string]any); ok {
			media.Schema = l.loadSchema(schemaRaw, mtPath+"/schema")
		}
		if itemSchemaRaw, ok := mm["itemSchema"].(map[string]any); ok {
			media.ItemSchema = l.loadSchema(itemSchemaRaw, mtPath+"/itemSchema")
		}
		if ex, ok := mm["example"]; ok {
			media.Example = ex
		}
		if examplesRaw, ok := mm["examples"].(map[string]any); ok {
			media.Examples = l.loadExamples(examplesRaw)
		}
		if encodingRaw, ok := mm["encoding"].(map[string]any); ok {
			media.Encoding = map[string]*model.Encoding{}
			for name, ev := range encodingRaw {
				em, _ := ev.(map[string]any)
				media.Encoding[name] = loadEncoding(em)
			}
		}
		if prefixRaw, ok := mm["prefixEncoding"].([]any); ok {
			for _, ev := range prefixRaw {
				em, _ := ev.(map[string]any)
				media.PrefixEncoding = append(media.PrefixEncoding, loadEncoding(em))
			}
		}
		if itemEncodingRaw, ok := mm["itemEncoding"].(map[string]any); ok {
			media.ItemEncoding = loadEncoding(itemEncodingRaw)
		}
		out[mt] = media
	}
	return out
}

func loadEncoding(m map[string]any) *model.Encoding {
	enc := &model.Encoding{
		ContentType: str(m["contentType"]),
		Style:       str(m["style"]),
		Extensions:  extractExtensions(m),
	}
	enc.Explode = toBool(m["explode"])
	enc.AllowReserved = toBool(m["allowReserved"])
	if headersRaw, ok := m["headers"].(map[string]any); ok {
		enc.Headers = map[string]*model.Header{}
		for name, hv := range headersRaw {
			hm, _ := hv.(map[string]any)
			enc.Headers[name] = &model.Header{Description: str(hm["description"]), Required: toBool(hm["required"])}
		}
	}
	return enc
}

func (l *Loader) loadExamples(m map[string]any) map[string]*model.Example {
	out := make(map[string]*model.Example, len(m))
	for name, v := range m {
		em, ok := v.(map[string]any)
		if !ok {
			continue
		}
		out[name] = l.loadExample(em, "/components/examples/"+jsonPointerEscape(name))
	}
	return out
}

func (l *Loader) loadExample(m map[string]any, path string) *model.Example {
	ex := &model.Example{
		Ref:         str(m["$ref"]),
		Summary:     str(m["summary"]),
		Description: str(m["description"]),
	}
	l.checkRef(ex.Ref, path)

	present := 0
	if v, ok := m["value"]; ok {
		ex.Value, ex.ValueKind, present = v, model.ExampleValueLiteral, present+1
	}
	if v, ok := m["dataValue"]; ok {
		ex.DataValue, ex.ValueKind, present = v, model.ExampleValueData, present+1
	}
	if v, ok := m["serializedValue"]; ok {
		ex.SerializedValue, ex.ValueKind, present = str(v), model.ExampleValueSerialized, present+1
	}
	if v, ok := m["externalValue"]; ok {
		ex.ExternalValue, ex.ValueKind, present = str(v), model.ExampleValueExternal, present+1
	}
	if present > 1 {
		l.warnings = append(l.warnings, debug.NewWarning(debug.WarnInvalidExampleMutualExclusivity, path,
			"more than one of value/dataValue/serializedValue/externalValue set; keeping the last one read"))
	}

	ex.Extensions = extractExtensions(m)
	return ex
}

func (l *Loader) loadResponses(m map[string]any, path string) (map[string]*model.Response, error) {
	out := make(map[string]*model.Response, len(m))
	for status, v := range m {
		if strings.HasPrefix(status, "x-") {
			continue
		}
		if path != "/components/responses" && !validStatusKey(status) {
			return nil, model.Errorf(model.InvalidInput, path+"/"+status, "invalid response status key %q", status)
		}
		rm, ok := v.(map[string]any)
		if !ok {
			continue
		}
		resp := &model.Response{
			Ref:         str(rm["$ref"]),
			Description: str(rm["description"]),
		}
		l.checkRef(resp.Ref, path+"/"+status)
		if contentRaw, ok := rm["content"].(map[string]any); ok {
			resp.Content = l.loadContent(contentRaw, path+"/"+status+"/content")
		}
		if headersRaw, ok := rm["headers"].(map[string]any); ok {
			resp.Headers = map[string]*model.Header{}
			for name, hv := range headersRaw {
				hm, _ := hv.(map[string]any)
				resp.Headers[name] = l.loadHeader(hm, path+"/"+status+"/headers/"+name)
			}
		}
		if linksRaw, ok := rm["links"].(map[string]any); ok {
			resp.Links = map[string]*model.Link{}
			for name, lv := range linksRaw {
				lm, _ := lv.(map[string]any)
				resp.Links[name] = l.loadLink(lm, path+"/"+status+"/links/"+jsonPointerEscape(name))
			}
		}
		out[status] = resp
	}
	return out, nil
}

func (l *Loader) loadHeader(m map[string]any, path string) *model.Header {
	h := &model.Header{
		Ref:         str(m["$ref"]),
		Description: str(m["description"]),
		Required:    toBool(m["required"]),
		Deprecated:  toBool(m["deprecated"]),
	}
	l.checkRef(h.Ref, path)
	if schemaRaw, ok := m["schema"].(map[string]any); ok {
		h.Schema = l.loadSchema(schemaRaw, path+"/schema")
	}
	return h
}

// validStatusKey accepts 3-digit codes, NXX wildcard ranges, and "default".
func validStatusKey(key string) bool {
	if key == "default" {
		return true
	}
	if len(key) != 3 {
		return false
	}
	if key[1] == 'X' && key[2] == 'X' {
		return key[0] >= '1' && key[0] <= '5'
	}
	n, err := strconv.Atoi(key)
	return err == nil && n >= 100 && n < 600
}

// loadComponents loads every reusable object kind listed in
// reservedComponentKinds. It captures each kind's raw JSON map into
// l.rawComponents before converting anything, so $ref existence checks made
// while loading (including self-referential ones) see the whole component
// set regardless of load order.
func (l *Loader) loadComponents(raw any) (*model.Components, error) {
	m, ok := raw.(map[string]any)
	c := &model.Components{Schemas: map[string]*model.Schema{}}
	if !ok {
		return c, nil
	}
	for _, kind := range reservedComponentKinds {
		if km, ok := m[kind].(map[string]any); ok {
			l.rawComponents[kind] = km
		}
	}

	if schemasRaw, ok := m["schemas"].(map[string]any); ok {
		for name, v := range schemasRaw {
			sm, ok := v.(map[string]any)
			if !ok {
				continue
			}
			c.Schemas[name] = l.loadSchema(sm, "/components/schemas/"+jsonPointerEscape(name))
		}
	}
	if schemesRaw, ok := m["securitySchemes"].(map[string]any); ok {
		c.SecuritySchemes = map[string]*model.SecurityScheme{}
		for name, v := range schemesRaw {
			sm, ok := v.(map[string]any)
			if !ok {
				continue
			}
			c.SecuritySchemes[name] = l.loadSecurityScheme(sm)
		}
	}
	if paramsRaw, ok := m["parameters"].(map[string]any); ok {
		params := l.loadParameters(mapValues(paramsRaw), "/components/parameters")
		c.Parameters = map[string]*model.Parameter{}
		names := sortedKeys(paramsRaw)
		for i, name := range names {
			p := params[i]
			c.Parameters[name] = &p
		}
	}
	if responsesRaw, ok := m["responses"].(map[string]any); ok {
		responses, err := l.loadResponses(responsesRaw, "/components/responses")
		if err != nil {
			return nil, err
		}
		c.Responses = responses
	}
	if headersRaw, ok := m["headers"].(map[string]any); ok {
		c.Headers = map[string]*model.Header{}
		for name, v := range headersRaw {
			hm, ok := v.(map[string]any)
			if !ok {
				continue
			}
			c.Headers[name] = l.loadHeader(hm, "/components/headers/"+jsonPointerEscape(name))
		}
	}
	if bodiesRaw, ok := m["requestBodies"].(map[string]any); ok {
		c.RequestBodies = map[string]*model.RequestBody{}
		for name, v := range bodiesRaw {
			bm, ok := v.(map[string]any)
			if !ok {
				continue
			}
			c.RequestBodies[name] = l.loadRequestBody(bm, "/components/requestBodies/"+jsonPointerEscape(name))
		}
	}
	if mediaTypesRaw, ok := m["mediaTypes"].(map[string]any); ok {
		c.MediaTypes = l.loadContent(mediaTypesRaw, "/components/mediaTypes")
	}
	if examplesRaw, ok := m["examples"].(map[string]any); ok {
		c.Examples = l.loadExamples(examplesRaw)
	}
	if linksRaw, ok := m["links"].(map[string]any); ok {
		c.Links = map[string]*model.Link{}
		for name, v := range linksRaw {
			lm, ok := v.(map[string]any)
			if !ok {
				continue
			}
			c.Links[name] = l.loadLink(lm, "/components/links/"+jsonPointerEscape(name))
		}
	}
	if callbacksRaw, ok := m["callbacks"].(map[string]any); ok {
		c.Callbacks = map[string]*model.Callback{}
		for name, v := range callbacksRaw {
			cm, ok := v.(map[string]any)
			if !ok {
				continue
			}
			cb, err := l.loadCallback(cm, "/components/callbacks/"+jsonPointerEscape(name))
			if err != nil {
				return nil, err
			}
			c.Callbacks[name] = cb
		}
	}
	if pathItemsRaw, ok := m["pathItems"].(map[string]any); ok {
		c.PathItems = map[string]*model.PathItem{}
		for name, v := range pathItemsRaw {
			pim, ok := v.(map[string]any)
			if !ok {
				continue
			}
			item, err := l.loadPathItem(pim, "/components/pathItems/"+jsonPointerEscape(name))
			if err != nil {
				return nil, err
			}
			c.PathItems[name] = item
		}
	}
	return c, nil
}

func (l *Loader) loadSecurityScheme(m map[string]any) *model.SecurityScheme {
	sc := &model.SecurityScheme{
		Type:             str(m["type"]),
		Description:      str(m["description"]),
		Name:             str(m["name"]),
		In:               str(m["in"]),
		Scheme:           str(m["scheme"]),
		BearerFormat:     str(m["bearerFormat"]),
		OpenIDConnectURL: str(m["openIdConnectUrl"]),
		Extensions:       extractExtensions(m),
	}
	if flowsRaw, ok := m["flows"].(map[string]any); ok {
		sc.Flows = l.loadOAuthFlows(flowsRaw)
	}
	return sc
}

var oauthFlowKeys = map[string]func(*model.OAuthFlows) **model.OAuthFlow{
	"implicit":          func(f *model.OAuthFlows) **model.OAuthFlow { return &f.Implicit },
	"password":          func(f *model.OAuthFlows) **model.OAuthFlow { return &f.Password },
	"clientCredentials": func(f *model.OAuthFlows) **model.OAuthFlow { return &f.ClientCredentials },
	"authorizationCode": func(f *model.OAuthFlows) **model.OAuthFlow { return &f.AuthorizationCode },
}

func (l *Loader) loadOAuthFlows(m map[string]any) *model.OAuthFlows {
	flows := &model.OAuthFlows{Extensions: extractExtensions(m)}
	for key, slot := range oauthFlowKeys {
		fm, ok := m[key].(map[string]any)
		if !ok {
			continue
		}
		*slot(flows) = l.loadOAuthFlow(fm)
	}
	return flows
}

func (l *Loader) loadOAuthFlow(m map[string]any) *model.OAuthFlow {
	flow := &model.OAuthFlow{
		AuthorizationURL: str(m["authorizationUrl"]),
		TokenURL:         str(m["tokenUrl"]),
		RefreshURL:       str(m["refreshUrl"]),
		Scopes:           map[string]string{},
		Extensions:       extractExtensions(m),
	}
	if scopesRaw, ok := m["scopes"].(map[string]any); ok {
		for k, v := range scopesRaw {
			flow.Scopes[k] = str(v)
		}
	}
	return flow
}

func (l *Loader) loadSecurityRequirements(raw any) []model.SecurityRequirement {
	arr, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]model.SecurityRequirement, 0, len(arr))
	for _, r := range arr {
		rm, ok := r.(map[string]any)
		if !ok {
			continue
		}
		req := model.SecurityRequirement{}
		for name, scopesRaw := range rm {
			scopesArr, _ := scopesRaw.([]any)
			scopes := make([]string, 0, len(scopesArr))
			for _, s := range scopesArr {
				scopes = append(scopes, str(s))
			}
			req[name] = scopes
		}
		out = append(out, req)
	}
	return out
}

// loadSchema recursively loads a Schema node, resolving a local $ref into a
// logical reference (model.Schema.Ref) rather than eagerly inlining it --
// the actual target is looked up at traversal/export time.
func (l *Loader) loadSchema(m map[string]any, path string) *model.Schema {
	if ref, ok := m["$ref"].(string); ok {
		l.checkRef(ref, path)
		return &model.Schema{Ref: ref}
	}
	if ref, ok := m["$dynamicRef"].(string); ok {
		l.checkRef(ref, path)
		return &model.Schema{Ref: ref, IsDynamicRef: true}
	}

	sc := &model.Schema{
		Type:             typeString(m["type"]),
		Title:            str(m["title"]),
		Description:      str(m["description"]),
		Format:           str(m["format"]),
		Pattern:          str(m["pattern"]),
		ContentEncoding:  str(m["contentEncoding"]),
		ContentMediaType: str(m["contentMediaType"]),
		Deprecated:       toBool(m["deprecated"]),
		ReadOnly:         toBool(m["readOnly"]),
		WriteOnly:        toBool(m["writeOnly"]),
	}
	if v, ok := m["nullable"]; ok {
		sc.Nullable = toBool(v)
	}
	if arr, ok := m["type"].([]any); ok {
		for _, t := range arr {
			if t == "null" {
				sc.Nullable = true
			}
		}
	}
	if v, ok := m["example"]; ok {
		sc.Example = v
	}
	if arr, ok := m["examples"].([]any); ok {
		sc.Examples = arr
	}
	if v, ok := m["default"]; ok {
		sc.Default = v
	}
	if v, ok := m["const"]; ok {
		sc.Const = v
	}
	if arr, ok := m["enum"].([]any); ok {
		sc.Enum = arr
	}
	if v, ok := m["minLength"]; ok {
		sc.MinLength = intPtr(v)
	}
	if v, ok := m["maxLength"]; ok {
		sc.MaxLength = intPtr(v)
	}
	if v, ok := m["minItems"]; ok {
		sc.MinItems = intPtr(v)
	}
	if v, ok := m["maxItems"]; ok {
		sc.MaxItems = intPtr(v)
	}
	if v, ok := m["minProperties"]; ok {
		sc.MinProperties = intPtr(v)
	}
	if v, ok := m["maxProperties"]; ok {
		sc.MaxProperties = intPtr(v)
	}
	if v, ok := m["uniqueItems"]; ok {
		sc.UniqueItems = toBool(v)
	}
	if v, ok := m["multipleOf"]; ok {
		f := toFloat(v)
		sc.MultipleOf = &f
	}
	sc.Minimum = loadBound(m, "minimum", "exclusiveMinimum")
	sc.Maximum = loadBound(m, "maximum", "exclusiveMaximum")

	if itemsRaw, ok := m["items"].(map[string]any); ok {
		sc.Items = l.loadSchema(itemsRaw, path+"/items")
	}
	if propsRaw, ok := m["properties"].(map[string]any); ok {
		sc.Properties = map[string]*model.Schema{}
		for name, v := range propsRaw {
			pm, ok := v.(map[string]any)
			if !ok {
				continue
			}
			sc.Properties[name] = l.loadSchema(pm, path+"/properties/"+jsonPointerEscape(name))
		}
	}
	if reqRaw, ok := m["required"].([]any); ok {
		for _, r := range reqRaw {
			sc.Required = append(sc.Required, str(r))
		}
	}
	if depReqRaw, ok := m["dependentRequired"].(map[string]any); ok {
		sc.DependentRequired = map[string][]string{}
		for k, v := range depReqRaw {
			arr, _ := v.([]any)
			for _, item := range arr {
				sc.DependentRequired[k] = append(sc.DependentRequired[k], str(item))
			}
		}
	}
	sc.Additional = loadAdditional(m["additionalProperties"], l, path)
	if patternPropsRaw, ok := m["patternProperties"].(map[string]any); ok {
		sc.PatternProps = map[string]*model.Schema{}
		for pat, v := range patternPropsRaw {
			pm, _ := v.(map[string]any)
			sc.PatternProps[pat] = l.loadSchema(pm, path+"/patternProperties/"+jsonPointerEscape(pat))
		}
	}
	for _, comp := range []struct {
		key    string
		target *[]*model.Schema
	}{{"allOf", &sc.AllOf}, {"anyOf", &sc.AnyOf}, {"oneOf", &sc.OneOf}} {
		if arr, ok := m[comp.key].([]any); ok {
			for i, v := range arr {
				cm, ok := v.(map[string]any)
				if !ok {
					continue
				}
				*comp.target = append(*comp.target, l.loadSchema(cm, fmt.Sprintf("%s/%s/%d", path, comp.key, i)))
			}
		}
	}
	if notRaw, ok := m["not"].(map[string]any); ok {
		sc.Not = l.loadSchema(notRaw, path+"/not")
	}
	if unevalRaw, ok := m["unevaluatedProperties"].(map[string]any); ok {
		sc.Unevaluated = l.loadSchema(unevalRaw, path+"/unevaluatedProperties")
	}
	if discRaw, ok := m["discriminator"].(map[string]any); ok {
		d := &model.Discriminator{PropertyName: str(discRaw["propertyName"])}
		if mapRaw, ok := discRaw["mapping"].(map[string]any); ok {
			d.Mapping = map[string]string{}
			for k, v := range mapRaw {
				d.Mapping[k] = str(v)
			}
		}
		sc.Discriminator = d
	}
	if xmlRaw, ok := m["xml"].(map[string]any); ok {
		sc.XML = &model.XML{
			Name: str(xmlRaw["name"]), Namespace: str(xmlRaw["namespace"]), Prefix: str(xmlRaw["prefix"]),
			Attribute: toBool(xmlRaw["attribute"]), Wrapped: toBool(xmlRaw["wrapped"]),
		}
	}

	sc.Extensions = extractExtensions(m)
	return sc
}

func loadAdditional(raw any, l *Loader, path string) *model.Additional {
	switch v := raw.(type) {
	case nil:
		return nil
	case bool:
		b := v
		return &model.Additional{Allow: &b}
	case map[string]any:
		return &model.Additional{Schema: l.loadSchema(v, path+"/additionalProperties")}
	default:
		return nil
	}
}

func loadBound(m map[string]any, minMaxKey, exclusiveKey string) *model.Bound {
	if v, ok := m[minMaxKey]; ok {
		b := &model.Bound{Value: toFloat(v)}
		if ev, ok := m[exclusiveKey]; ok {
			if eb, isBool := ev.(bool); isBool {
				b.Exclusive = eb // OAS 3.0 boolean-flag form
			}
		}
		return b
	}
	if ev, ok := m[exclusiveKey]; ok {
		if _, isBool := ev.(bool); !isBool {
			// OAS 3.1/JSON Schema 2020-12 numeric exclusive-bound form.
			return &model.Bound{Value: toFloat(ev), Exclusive: true}
		}
	}
	return nil
}

func typeString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		// OAS 3.1 allows type: ["string", "null"]; the IR keeps one
		// primary type string and represents the null branch via Nullable
		// (see model.Schema.Nullable doc comment).
		for _, item := range t {
			if s, ok := item.(string); ok && s != "null" {
				return s
			}
		}
	}
	return ""
}

func mapValues(m map[string]any) []any {
	keys := sortedKeys(m)
	out := make([]any, 0, len(m))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func extractExtensions(m map[string]any) map[string]any {
	var out map[string]any
	for k, v := range m {
		if strings.HasPrefix(k, "x-") {
			if out == nil {
				out = map[string]any{}
			}
			out[k] = v
		}
	}
	return out
}

func jsonPointerEscape(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func toBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	default:
		return 0
	}
}

func intPtr(v any) *int {
	f := toFloat(v)
	i := int(f)
	return &i
}
