// Package opbuild fuses a parsed C function signature (internal/cscan) with
// its parsed doc annotations (internal/docparse) into a normalized
// model.Operation, resolving parameter locations, request body, and
// response shape through a mix of explicit directive overrides and
// heuristics over the underlying C types.
package opbuild

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/talav/c2openapi/debug"
	"github.com/talav/c2openapi/internal/cscan"
	"github.com/talav/c2openapi/internal/docparse"
	"github.com/talav/c2openapi/internal/model"
	"github.com/talav/c2openapi/internal/typemap"
)

// Result is the outcome of building one Operation.
type Result struct {
	Path      string
	Operation *model.Operation
	Warnings  debug.Warnings
	IsWebhook bool
}

// Build constructs an Operation from a function's signature and doc
// metadata. hasDoc distinguishes "the function has a doc comment but it
// carries no usable @route" (dropped with WarnOperationDropped -- the
// annotation author presumably meant to document it) from "the function has
// no doc comment at all" (route and verb are instead synthesized from the
// function's own name and signature, per the builder's verb-selection
// step 3). Build returns ok == false only in the former case.
func Build(sig cscan.Signature, md docparse.DocMetadata, types *typemap.Registry, hasDoc bool) (Result, bool) {
	var warnings debug.Warnings
	for _, w := range md.Warnings {
		warnings = append(warnings, debug.NewWarning(debug.WarnDirectiveIgnored, "", w))
	}

	route := md.Route
	if route == "" {
		if hasDoc {
			warnings = append(warnings, debug.NewWarning(debug.WarnOperationDropped, "",
				fmt.Sprintf("function %q has no recognized @route directive", sig.Name)))
			return Result{Warnings: warnings}, false
		}
		route = "/" + sig.Name
	}

	verb := md.Verb
	rawMethod := md.RawMethod
	isAdditional := false
	if verb == "" || verb == model.VerbUnknown {
		if rawMethod != "" {
			// Explicit but unrecognized method: carry it through as a
			// custom "additional operation" rather than guessing a verb.
			isAdditional = true
		} else {
			verb = verbFromName(sig.Name)
			rawMethod = verbNames[verb]
		}
	}

	op := &model.Operation{
		Verb:         verb,
		Method:       rawMethod,
		IsAdditional: isAdditional,
		Summary:      md.Summary,
		Description:  md.Description,
		Tags:         md.Tags,
		Deprecated:   md.Deprecated,
		OperationID:  operationID(md, sig),
		Responses:    map[string]*model.Response{},
	}

	pathParamNames := extractPathParams(route)
	matched := make(map[string]bool, len(md.Params))

	for _, pd := range md.Params {
		matched[pd.Name] = true
		sigType := lookupParamType(sig, pd.Name)

		in := pd.In
		if in == "" {
			if pathParamNames[pd.Name] {
				in = "path"
			} else {
				in = "query"
			}
		}

		required := pathParamNames[pd.Name] // path params are always required
		requiredSet := false
		if v, ok := pd.Flags["required"]; ok {
			required = v
			requiredSet = true
		} else if v, ok := pd.Attrs["required"]; ok {
			if b, parsed := docparse.ParseBool(v); parsed {
				required = b
				requiredSet = true
			}
		}
		if in == "path" {
			required = true
			requiredSet = true
		}

		sc, w := types.Resolve(sigType)
		warnings = append(warnings, w...)

		param := model.Parameter{
			Name:        pd.Name,
			In:          in,
			Description: pd.Description,
			Required:    required,
			RequiredSet: requiredSet,
			Schema:      sc,
		}
		op.Parameters = append(op.Parameters, param)
	}

	// An unmatched double-pointer (T**) argument is an output parameter: it
	// contributes a response schema instead of becoming a parameter, and is
	// removed from consideration for body/path classification below.
	outType, hasOutput := outputParamType(sig, matched)

	for name := range pathParamNames {
		if !matched[name] {
			matched[name] = true
			sc, w := types.Resolve(lookupParamType(sig, name))
			warnings = append(warnings, w...)
			op.Parameters = append(op.Parameters, model.Parameter{
				Name: name, In: "path", Required: true, RequiredSet: true, Schema: sc,
			})
		}
	}

	var outSchema *model.Schema
	if hasOutput {
		sc, w := types.Resolve(outType)
		warnings = append(warnings, w...)
		outSchema = sc
	}

	if md.Body != nil {
		bodyType := bodyParamType(sig, matched)
		sc, w := types.Resolve(bodyType)
		warnings = append(warnings, w...)

		required := true
		if v, ok := md.Body.Flags["required"]; ok {
			required = v
		} else if v, ok := md.Body.Attrs["required"]; ok {
			if b, parsed := docparse.ParseBool(v); parsed {
				required = b
			}
		}

		op.RequestBody = &model.RequestBody{
			Description: md.Body.Description,
			Required:    required,
			Content: map[string]*model.MediaType{
				contentType(md.Body.Attrs): {Schema: sc},
			},
		}
	}

	explicitStatuses := make(map[string]bool, len(md.Returns))
	for _, ret := range md.Returns {
		explicitStatuses[ret.Status] = true

		resp := &model.Response{Description: ret.Description}
		if resp.Description == "" {
			resp.Description = httpStatusText(ret.Status)
		}
		if isSuccessStatus(ret.Status) {
			switch {
			case hasOutput:
				resp.Content = map[string]*model.MediaType{
					contentType(ret.Attrs): {Schema: outSchema},
				}
			case sig.ReturnType != "" && sig.ReturnType != "void":
				sc, w := types.Resolve(sig.ReturnType)
				warnings = append(warnings, w...)
				resp.Content = map[string]*model.MediaType{
					contentType(ret.Attrs): {Schema: sc},
				}
			}
		}
		op.Responses[ret.Status] = resp
	}

	// An explicit @return replaces a synthesized response for that status;
	// an undocumented function (no @return at all, or none claiming 200)
	// gets a plain 200 Success, with content only when an output parameter
	// supplies a schema for it.
	if !explicitStatuses["200"] {
		resp := &model.Response{Description: "Success"}
		if hasOutput {
			resp.Content = map[string]*model.MediaType{
				"application/json": {Schema: outSchema},
			}
		}
		op.Responses["200"] = resp
	}

	return Result{Path: route, Operation: op, IsWebhook: md.IsWebhook, Warnings: warnings}, true
}

// outputParamType finds the first signature parameter not already claimed
// by an explicit @param directive whose C type is a double pointer (T**),
// marks it claimed, and reports the type string to resolve a response
// schema from. types.Resolve strips pointer depth uniformly, so passing the
// full "T**" type string resolves to the same schema as "T*" would.
func outputParamType(sig cscan.Signature, matched map[string]bool) (string, bool) {
	for _, p := range sig.Params {
		if matched[p.Name] {
			continue
		}
		if strings.Count(p.Type, "*") >= 2 {
			matched[p.Name] = true
			return p.Type, true
		}
	}
	return "", false
}

// verbFromName derives a verb from a function name's suffix/infix when no
// doc.verb is available at all, per the builder's verb-selection step 3.
func verbFromName(name string) model.Verb {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "_get") || strings.HasPrefix(n, "get_") ||
		strings.HasSuffix(n, "_read") || strings.HasSuffix(n, "_list"):
		return model.VerbGet
	case strings.HasSuffix(n, "_create") || strings.HasSuffix(n, "_post") || strings.HasSuffix(n, "_add"):
		return model.VerbPost
	case strings.HasSuffix(n, "_update") || strings.HasSuffix(n, "_put") || strings.HasSuffix(n, "_replace"):
		return model.VerbPut
	case strings.HasSuffix(n, "_delete") || strings.HasSuffix(n, "_remove"):
		return model.VerbDelete
	case strings.HasSuffix(n, "_patch") || strings.HasSuffix(n, "_modify"):
		return model.VerbPatch
	default:
		return model.VerbPost
	}
}

var verbNames = map[model.Verb]string{
	model.VerbGet: "GET", model.VerbPut: "PUT", model.VerbPost: "POST",
	model.VerbDelete: "DELETE", model.VerbOptions: "OPTIONS", model.VerbHead: "HEAD",
	model.VerbPatch: "PATCH", model.VerbTrace: "TRACE", model.VerbQuery: "QUERY",
}

func operationID(md docparse.DocMetadata, sig cscan.Signature) string {
	if md.OperationID != "" {
		return md.OperationID
	}
	return sig.Name
}

func extractPathParams(route string) map[string]bool {
	out := map[string]bool{}
	for {
		start := strings.IndexByte(route, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(route[start:], '}')
		if end < 0 {
			break
		}
		name := route[start+1 : start+end]
		out[name] = true
		route = route[start+end+1:]
	}
	return out
}

func lookupParamType(sig cscan.Signature, name string) string {
	for _, p := range sig.Params {
		if p.Name == name {
			return p.Type
		}
	}
	return ""
}

// bodyParamType picks the first signature parameter not already consumed by
// an explicit @param directive and not a path parameter, treating it as the
// request body carrier.
func bodyParamType(sig cscan.Signature, matched map[string]bool) string {
	for _, p := range sig.Params {
		if !matched[p.Name] {
			return p.Type
		}
	}
	return ""
}

func contentType(attrs map[string]string) string {
	if ct, ok := attrs["content-type"]; ok && ct != "" {
		return ct
	}
	return "application/json"
}

func isSuccessStatus(status string) bool {
	n, err := strconv.Atoi(status)
	if err != nil {
		return strings.HasPrefix(status, "2")
	}
	return n >= 200 && n < 300
}

var statusText = map[string]string{
	"200": "OK",
	"201": "Created",
	"202": "Accepted",
	"204": "No Content",
	"400": "Bad Request",
	"401": "Unauthorized",
	"403": "Forbidden",
	"404": "Not Found",
	"409": "Conflict",
	"422": "Unprocessable Entity",
	"500": "Internal Server Error",
}

func httpStatusText(status string) string {
	if t, ok := statusText[status]; ok {
		return t
	}
	return "Response " + status
}
