// Package specvalidate implements a target-version-independent pass over a
// loaded model.Spec that checks cross-cutting structural rules no single
// loader call site can see on its own -- path-template/parameter
// consistency, operationId uniqueness, extension key well-formedness,
// tag-parent acyclicity, and security-scheme references. It runs once,
// before any version-specific projection.
package specvalidate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/talav/c2openapi/internal/model"
)

var pathParamPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Validate checks spec against the structural rules every OpenAPI document
// must satisfy regardless of target version, returning the first violation
// found as a *model.Error. It performs no mutation.
func Validate(spec *model.Spec) error {
	if spec.Info.Title == "" {
		return model.NewError(model.InvalidInput, "/info/title", "title is required")
	}
	if spec.Info.Version == "" {
		return model.NewError(model.InvalidInput, "/info/version", "version is required")
	}

	for i, server := range spec.Servers {
		if len(server.Variables) > 0 && server.URL == "" {
			return model.Errorf(model.SemanticError, serversPath(i), "server variables require a server URL")
		}
		if err := validateServerVariables(server, serversPath(i)); err != nil {
			return err
		}
	}

	if err := validateExtensions(spec.Extensions, "/"); err != nil {
		return err
	}
	if err := validateExtensions(spec.Info.Extensions, "/info"); err != nil {
		return err
	}

	operationIDs := map[string]string{}
	for route, item := range spec.Paths {
		if err := validatePathItem(route, item, operationIDs); err != nil {
			return err
		}
	}

	if err := validatePathTemplateCollisions(spec.Paths); err != nil {
		return err
	}
	if err := validatePathTemplateCollisions(spec.Webhooks); err != nil {
		return err
	}

	if err := validateTagHierarchy(spec.Tags); err != nil {
		return err
	}

	if err := validateSecuritySchemes(spec); err != nil {
		return err
	}

	return validateSecurityReferences(spec)
}

func serversPath(i int) string {
	return "/servers/" + strconv.Itoa(i)
}

func validateServerVariables(server model.Server, path string) error {
	for name, v := range server.Variables {
		if len(v.Enum) > 0 {
			found := false
			for _, e := range v.Enum {
				if e == v.Default {
					found = true
					break
				}
			}
			if !found {
				return model.Errorf(model.SemanticError, path+"/variables/"+name,
					"default %q is not one of the declared enum values", v.Default)
			}
		}
	}
	return nil
}

func validatePathItem(route string, item *model.PathItem, operationIDs map[string]string) error {
	declaredParams := pathTemplateParams(route)
	pathPath := "/paths/" + jsonPointerEscape(route)

	ops := map[string]*model.Operation{}
	if item.Get != nil {
		ops["get"] = item.Get
	}
	if item.Put != nil {
		ops["put"] = item.Put
	}
	if item.Post != nil {
		ops["post"] = item.Post
	}
	if item.Delete != nil {
		ops["delete"] = item.Delete
	}
	if item.Options != nil {
		ops["options"] = item.Options
	}
	if item.Head != nil {
		ops["head"] = item.Head
	}
	if item.Patch != nil {
		ops["patch"] = item.Patch
	}
	if item.Trace != nil {
		ops["trace"] = item.Trace
	}
	if item.Query != nil {
		ops["query"] = item.Query
	}
	for method, op := range item.AdditionalOperations {
		ops["additionalOperations/"+method] = op
	}

	for key, op := range ops {
		opPath := pathPath + "/" + key
		if err := validateOperation(opPath, op, declaredParams, item.Parameters); err != nil {
			return err
		}
		if op.OperationID != "" {
			if owner, ok := operationIDs[op.OperationID]; ok && owner != opPath {
				return model.Errorf(model.ConflictError, opPath,
					"duplicate operationId %q (already used by %s)", op.OperationID, owner)
			}
			operationIDs[op.OperationID] = opPath
		}
	}

	return nil
}

// validateOperation checks that every {placeholder} in the path template has
// a corresponding "in: path" parameter declared (on the operation or
// inherited from the enclosing PathItem), that every declared path parameter
// is required, and that parameter locations/styles are internally
// consistent.
func validateOperation(opPath string, op *model.Operation, declaredParams map[string]bool, inherited []model.Parameter) error {
	seen := map[string]bool{}
	have := map[string]bool{}
	querystringCount := 0
	hasQuery := false

	check := func(p model.Parameter, path string) error {
		key := p.In + ":" + p.Name
		if seen[key] {
			return model.Errorf(model.ConflictError, path, "duplicate parameter %q in %q", p.Name, p.In)
		}
		seen[key] = true

		if p.In == "path" {
			have[p.Name] = true
			if !p.Required {
				return model.Errorf(model.SemanticError, path, "path parameter %q must be required", p.Name)
			}
		}
		if p.In == "querystring" {
			if p.Name != "" {
				return model.Errorf(model.SemanticError, path, "querystring parameters must not declare a name")
			}
			querystringCount++
			if len(p.Content) == 0 {
				return model.Errorf(model.SemanticError, path, "querystring parameter requires a content map, not a schema")
			}
		}
		if p.In == "query" {
			hasQuery = true
		}
		if err := validateStyle(p, path); err != nil {
			return err
		}
		return nil
	}

	for i, p := range inherited {
		if err := check(p, opPath+"/../parameters/"+strconv.Itoa(i)); err != nil {
			return err
		}
	}
	for i, p := range op.Parameters {
		if err := check(p, opPath+"/parameters/"+strconv.Itoa(i)); err != nil {
			return err
		}
	}

	if querystringCount > 1 {
		return model.Errorf(model.SemanticError, opPath, "at most one in:querystring parameter is allowed per operation")
	}
	if querystringCount > 0 && hasQuery {
		return model.Errorf(model.SemanticError, opPath, "in:querystring cannot coexist with in:query parameters in the same operation")
	}

	for name := range declaredParams {
		if !have[name] {
			return model.Errorf(model.SemanticError, opPath,
				"path template references {%s} but no matching path parameter is declared", name)
		}
	}

	return nil
}

// validatePathTemplateCollisions requires that two routes whose placeholders
// are stripped to the same normalized shape ({x} -> {}) be textually
// identical, i.e. there cannot be two distinct routes that normalize the
// same way.
func validatePathTemplateCollisions(paths map[string]*model.PathItem) error {
	seen := map[string]string{}
	for route := range paths {
		if !strings.HasPrefix(route, "/") {
			continue
		}
		norm := pathParamPattern.ReplaceAllString(route, "{}")
		if other, ok := seen[norm]; ok && other != route {
			return model.Errorf(model.ConflictError, "/paths/"+jsonPointerEscape(route),
				"path template %q collides with %q after placeholder normalization", route, other)
		}
		seen[norm] = route
	}
	return nil
}

// validateSecuritySchemes enforces per-type well-formedness rules for
// every registered security scheme.
func validateSecuritySchemes(spec *model.Spec) error {
	if spec.Components == nil {
		return nil
	}
	for name, sc := range spec.Components.SecuritySchemes {
		path := "/components/securitySchemes/" + name
		if err := validateSecurityScheme(path, sc); err != nil {
			return err
		}
	}
	return nil
}

func validateSecurityScheme(path string, sc *model.SecurityScheme) error {
	switch sc.Type {
	case model.SecuritySchemeAPIKey:
		if sc.Name == "" {
			return model.Errorf(model.InvalidInput, path, "apiKey security scheme requires \"name\"")
		}
		if sc.In == "" {
			return model.Errorf(model.InvalidInput, path, "apiKey security scheme requires \"in\"")
		}
	case model.SecuritySchemeHTTP:
		if sc.Scheme == "" {
			return model.Errorf(model.InvalidInput, path, "http security scheme requires \"scheme\"")
		}
	case model.SecuritySchemeOpenIDConnect:
		if sc.OpenIDConnectURL == "" {
			return model.Errorf(model.InvalidInput, path, "openIdConnect security scheme requires \"openIdConnectUrl\"")
		}
	case model.SecuritySchemeOAuth2:
		if sc.Flows == nil {
			return model.Errorf(model.InvalidInput, path, "oauth2 security scheme requires a non-empty \"flows\" object")
		}
		flows := map[string]*model.OAuthFlow{
			"implicit": sc.Flows.Implicit, "password": sc.Flows.Password,
			"clientCredentials": sc.Flows.ClientCredentials, "authorizationCode": sc.Flows.AuthorizationCode,
		}
		hasFlow := false
		for name, flow := range flows {
			if flow == nil {
				continue
			}
			hasFlow = true
			if flow.Scopes == nil {
				return model.Errorf(model.InvalidInput, path+"/flows/"+name, "flow requires a (possibly empty) \"scopes\" object")
			}
			switch name {
			case "implicit":
				if flow.AuthorizationURL == "" {
					return model.Errorf(model.InvalidInput, path+"/flows/"+name, "implicit flow requires \"authorizationUrl\"")
				}
			case "password", "clientCredentials":
				if flow.TokenURL == "" {
					return model.Errorf(model.InvalidInput, path+"/flows/"+name, name+" flow requires \"tokenUrl\"")
				}
			case "authorizationCode":
				if flow.AuthorizationURL == "" {
					return model.Errorf(model.InvalidInput, path+"/flows/"+name, "authorizationCode flow requires \"authorizationUrl\"")
				}
				if flow.TokenURL == "" {
					return model.Errorf(model.InvalidInput, path+"/flows/"+name, "authorizationCode flow requires \"tokenUrl\"")
				}
			}
		}
		if !hasFlow {
			return model.Errorf(model.InvalidInput, path, "oauth2 security scheme requires at least one flow")
		}
	case model.SecuritySchemeMutualTLS:
		// mutualTLS carries no type-specific required fields beyond type itself.
	default:
		return model.Errorf(model.InvalidInput, path, "unrecognized security scheme type %q", sc.Type)
	}
	return nil
}

var validStyles = map[string]map[string]bool{
	"path":   {"simple": true, "label": true, "matrix": true},
	"query":  {"form": true, "spaceDelimited": true, "pipeDelimited": true, "deepObject": true},
	"header": {"simple": true},
	"cookie": {"form": true},
}

func validateStyle(p model.Parameter, path string) error {
	if p.Style == "" {
		return nil
	}
	allowed, ok := validStyles[p.In]
	if !ok {
		return nil // querystring/unrecognized locations carry no style constraint
	}
	if !allowed[p.Style] {
		return model.Errorf(model.StyleError, path, "style %q is not valid for parameter location %q", p.Style, p.In)
	}
	return nil
}

// validateTagHierarchy checks that every tag's parent resolves to another
// declared tag and that the parent graph has no cycles, by walking each
// tag's parent chain and tracking the names visited on that walk.
func validateTagHierarchy(tags []model.Tag) error {
	byName := map[string]model.Tag{}
	for _, t := range tags {
		byName[t.Name] = t
	}
	parentOf := func(t model.Tag) (string, bool) {
		return t.Parent, t.Parent != ""
	}

	for _, t := range tags {
		visited := map[string]bool{t.Name: true}
		cur := t
		for {
			parent, ok := parentOf(cur)
			if !ok {
				break
			}
			if visited[parent] {
				return model.Errorf(model.SemanticError, "/tags", "tag %q has a cyclic parent chain", t.Name)
			}
			visited[parent] = true
			next, ok := byName[parent]
			if !ok {
				return model.Errorf(model.ReferenceError, "/tags", "tag %q has parent %q, which is not a declared tag", cur.Name, parent)
			}
			cur = next
		}
	}
	return nil
}

func validateSecurityReferences(spec *model.Spec) error {
	schemes := map[string]bool{}
	if spec.Components != nil {
		for name := range spec.Components.SecuritySchemes {
			schemes[name] = true
		}
	}

	check := func(reqs []model.SecurityRequirement, path string) error {
		for i, req := range reqs {
			for name := range req {
				if !schemes[name] {
					return model.Errorf(model.ReferenceError, path+"/"+strconv.Itoa(i),
						"security requirement references undefined scheme %q", name)
				}
			}
		}
		return nil
	}

	if err := check(spec.Security, "/security"); err != nil {
		return err
	}
	for route, item := range spec.Paths {
		for _, op := range allOperations(item) {
			if err := check(op.Security, "/paths/"+jsonPointerEscape(route)+"/security"); err != nil {
				return err
			}
		}
	}
	return nil
}

func allOperations(item *model.PathItem) []*model.Operation {
	var ops []*model.Operation
	for _, op := range []*model.Operation{item.Get, item.Put, item.Post, item.Delete, item.Options, item.Head, item.Patch, item.Trace, item.Query} {
		if op != nil {
			ops = append(ops, op)
		}
	}
	for _, op := range item.AdditionalOperations {
		ops = append(ops, op)
	}
	return ops
}

func validateExtensions(ext map[string]any, placement string) error {
	for key := range ext {
		if !strings.HasPrefix(key, "x-") {
			return model.Errorf(model.InvalidInput, placement, "extension key must start with \"x-\": "+key)
		}
		if strings.HasPrefix(key, "x-oai-") || strings.HasPrefix(key, "x-oas-") {
			return model.Errorf(model.InvalidInput, placement, "extension key uses a reserved prefix: "+key)
		}
	}
	return nil
}

func pathTemplateParams(route string) map[string]bool {
	out := map[string]bool{}
	for _, m := range pathParamPattern.FindAllStringSubmatch(route, -1) {
		out[m[1]] = true
	}
	return out
}

func jsonPointerEscape(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}

