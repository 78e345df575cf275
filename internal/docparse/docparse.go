// Package docparse turns the body of a C doc comment into a structured
// DocMetadata of directives. The grammar is line-oriented:
//
//	@directive arg [key:value] [flag] rest of line is the description
//
// A directive may also be introduced with a backslash instead of an at
// sign ("\param" is equivalent to "@param") -- some C doc-comment styles in
// the wild (Doxygen-derived ones in particular) use "\" exclusively, so
// both markers are accepted everywhere. A line that doesn't start a new
// directive is treated as a continuation of the previous directive's
// description (or, before any directive has been seen, of the summary).
package docparse

import (
	"strings"

	"github.com/talav/c2openapi/internal/model"
)

// ParamDirective is a parsed @param directive.
type ParamDirective struct {
	Name        string
	In          string // resolved from a [in:...] attribute; defaults applied by opbuild
	Attrs       map[string]string
	Flags       map[string]bool
	Description string
}

// ReturnDirective is a parsed @return directive.
type ReturnDirective struct {
	Status      string
	Attrs       map[string]string
	Flags       map[string]bool
	Description string
}

// BodyDirective is a parsed @body directive.
type BodyDirective struct {
	Attrs       map[string]string
	Flags       map[string]bool
	Description string
}

// DocMetadata is the structured form of one function's doc comment.
type DocMetadata struct {
	Route       string // raw path template from @route, e.g. "/pets/{id}"
	Verb        model.Verb
	RawMethod   string
	IsWebhook   bool // set by @webhook instead of @route; Route/Verb/RawMethod share the same grammar
	Summary     string
	Description string
	OperationID string
	Tags        []string
	Deprecated  bool
	Security    []string
	Params      []ParamDirective
	Body        *BodyDirective
	Returns     []ReturnDirective

	// Warnings collects directives that were recognized but could not be
	// applied (e.g. a second @body directive) -- translated into
	// debug.Warning by internal/opbuild, which has access to the
	// operation's path for the warning's JSON-pointer location.
	Warnings []string
}

type directiveLine struct {
	name  string
	rest  string // the raw text after the directive name
}

// Parse extracts DocMetadata from the raw text of a doc comment (line or
// block style, comment markers still attached).
func Parse(raw string) DocMetadata {
	lines := stripCommentMarkers(raw)
	md := DocMetadata{}

	var cur *struct {
		kind string
		idx  int
	}
	appendDescription := func(text string) {
		if text == "" {
			return
		}
		if cur == nil {
			if md.Summary == "" {
				md.Summary = text
			} else {
				md.Description = joinText(md.Description, text)
			}
			return
		}
		switch cur.kind {
		case "param":
			p := &md.Params[cur.idx]
			p.Description = joinText(p.Description, text)
		case "return":
			r := &md.Returns[cur.idx]
			r.Description = joinText(r.Description, text)
		case "body":
			md.Body.Description = joinText(md.Body.Description, text)
		case "description":
			md.Description = joinText(md.Description, text)
		}
	}

	for _, line := range lines {
		dl, ok := parseDirectiveLine(line)
		if !ok {
			appendDescription(strings.TrimSpace(line))
			continue
		}

		arg, attrs, flags, desc := parseDirectiveBody(dl.rest)

		switch dl.name {
		case "route":
			verb, rawMethod, route, rdesc := parseRouteLike(dl.rest)
			md.Verb, md.RawMethod, md.Route = verb, rawMethod, route
			cur = nil
			appendDescription(rdesc)

		case "webhook":
			md.IsWebhook = true
			verb, rawMethod, route, rdesc := parseRouteLike(dl.rest)
			md.Verb, md.RawMethod, md.Route = verb, rawMethod, route
			cur = nil
			appendDescription(rdesc)

		case "summary":
			md.Summary = joinText(md.Summary, strings.TrimSpace(arg+" "+desc))
			cur = nil

		case "description":
			md.Description = joinText(md.Description, strings.TrimSpace(arg+" "+desc))
			cur = &struct {
				kind string
				idx  int
			}{"description", 0}

		case "operationid", "operationId":
			md.OperationID = arg
			cur = nil

		case "tag":
			if arg != "" {
				md.Tags = append(md.Tags, arg)
			}
			cur = nil

		case "deprecated":
			md.Deprecated = true
			cur = nil

		case "security":
			if arg != "" {
				md.Security = append(md.Security, arg)
			}
			cur = nil

		case "param":
			p := ParamDirective{Name: arg, Attrs: attrs, Flags: flags, Description: desc}
			if in, ok := attrs["in"]; ok {
				p.In = in
			}
			md.Params = append(md.Params, p)
			cur = &struct {
				kind string
				idx  int
			}{"param", len(md.Params) - 1}

		case "body":
			if md.Body != nil {
				md.Warnings = append(md.Warnings, "duplicate @body directive ignored")
				cur = nil
				continue
			}
			// @body takes no positional argument: attributes and the
			// description follow the directive name directly.
			_, attrs, flags, desc := parseDirectiveBody("- " + dl.rest)
			md.Body = &BodyDirective{Attrs: attrs, Flags: flags, Description: desc}
			cur = &struct {
				kind string
				idx  int
			}{"body", 0}

		case "return":
			md.Returns = append(md.Returns, ReturnDirective{Status: arg, Attrs: attrs, Flags: flags, Description: desc})
			cur = &struct {
				kind string
				idx  int
			}{"return", len(md.Returns) - 1}

		default:
			md.Warnings = append(md.Warnings, "unrecognized directive @"+dl.name+" ignored")
			cur = nil
		}
	}

	md.Summary = strings.TrimSpace(md.Summary)
	md.Description = strings.TrimSpace(md.Description)
	return md
}

// splitFirstToken splits s into its first whitespace-delimited token and
// whatever follows it, trimmed.
func splitFirstToken(s string) (first, rest string) {
	s = strings.TrimSpace(s)
	sp := strings.IndexAny(s, " \t")
	if sp < 0 {
		return s, ""
	}
	return s[:sp], strings.TrimSpace(s[sp:])
}

// parseRouteLike parses the "[verb] path" grammar shared by @route and
// @webhook directly off the directive's raw remainder: if the first token
// starts with "/" it is the path and no verb was given; otherwise the first
// token is the verb and the second token is the path. Whatever is left over
// becomes the directive's description.
func parseRouteLike(rest string) (verb model.Verb, rawMethod, route, desc string) {
	first, tail := splitFirstToken(rest)
	if strings.HasPrefix(first, "/") {
		return model.VerbUnknown, "", first, tail
	}
	route, desc = splitFirstToken(tail)
	return verbFromString(first), strings.ToUpper(first), route, desc
}

func verbFromString(s string) model.Verb {
	switch strings.ToUpper(s) {
	case "GET":
		return model.VerbGet
	case "PUT":
		return model.VerbPut
	case "POST":
		return model.VerbPost
	case "DELETE":
		return model.VerbDelete
	case "OPTIONS":
		return model.VerbOptions
	case "HEAD":
		return model.VerbHead
	case "PATCH":
		return model.VerbPatch
	case "TRACE":
		return model.VerbTrace
	case "QUERY":
		return model.VerbQuery
	default:
		return model.VerbUnknown
	}
}

func joinText(existing, next string) string {
	next = strings.TrimSpace(next)
	if next == "" {
		return existing
	}
	if existing == "" {
		return next
	}
	return existing + " " + next
}

// stripCommentMarkers normalizes "//", "/* */", and interior " * " prefixes
// into plain text lines.
func stripCommentMarkers(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "/**")
	raw = strings.TrimPrefix(raw, "/*!")
	raw = strings.TrimPrefix(raw, "/*")
	raw = strings.TrimSuffix(raw, "*/")

	rawLines := strings.Split(raw, "\n")
	out := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimPrefix(strings.TrimSpace(line), "//")
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "*") {
			trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "*"))
		}
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// parseDirectiveLine recognizes a leading "@name" or "\name" marker.
func parseDirectiveLine(line string) (directiveLine, bool) {
	if line == "" {
		return directiveLine{}, false
	}
	if line[0] != '@' && line[0] != '\\' {
		return directiveLine{}, false
	}
	rest := line[1:]
	i := 0
	for i < len(rest) && isDirectiveNameByte(rest[i]) {
		i++
	}
	if i == 0 {
		return directiveLine{}, false
	}
	name := strings.ToLower(rest[:i])
	return directiveLine{name: name, rest: strings.TrimSpace(rest[i:])}, true
}

func isDirectiveNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

// parseDirectiveBody splits "<arg> [k:v] [flag] description text" into its
// parts. arg is the first whitespace-delimited token; any number of
// bracket-delimited attributes may follow, each either "[flag]" or
// "[key:value]"; everything remaining is the free-text description.
func parseDirectiveBody(rest string) (arg string, attrs map[string]string, flags map[string]bool, desc string) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", nil, nil, ""
	}

	sp := strings.IndexAny(rest, " \t")
	if sp < 0 {
		return rest, nil, nil, ""
	}
	arg = rest[:sp]
	remainder := strings.TrimSpace(rest[sp:])

	attrs = make(map[string]string)
	flags = make(map[string]bool)

	for {
		remainder = strings.TrimSpace(remainder)
		if !strings.HasPrefix(remainder, "[") {
			break
		}
		end := strings.IndexByte(remainder, ']')
		if end < 0 {
			break
		}
		inner := remainder[1:end]
		if colon := strings.IndexByte(inner, ':'); colon >= 0 {
			key := strings.ToLower(strings.TrimSpace(inner[:colon]))
			val := strings.TrimSpace(inner[colon+1:])
			attrs[key] = val
		} else {
			flags[strings.ToLower(strings.TrimSpace(inner))] = true
		}
		remainder = remainder[end+1:]
	}

	desc = strings.TrimSpace(remainder)
	if len(attrs) == 0 {
		attrs = nil
	}
	if len(flags) == 0 {
		flags = nil
	}
	return arg, attrs, flags, desc
}

// ParseBool parses the boolean literal forms accepted by bracket attribute
// values: true/false, yes/no, 1/0, case-insensitively. An empty string is
// treated as true (bare flag semantics).
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "true", "yes", "1":
		return true, true
	case "false", "no", "0":
		return false, true
	default:
		return false, false
	}
}
