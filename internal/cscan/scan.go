// Package cscan scans a C source file for top-level function declarations
// and parses their signatures. The inspector walks a clex token stream
// collecting top-level function declarations together with their
// immediately preceding doc comment, plus struct/enum/typedef declarations
// needed by the schema registry in internal/typemap.
package cscan

import (
	"github.com/talav/c2openapi/internal/clex"
)

// FuncDecl is a discovered top-level function declaration or prototype.
type FuncDecl struct {
	Sig        Signature
	DocComment string // raw text of the comment immediately preceding the decl, if any
	Start, End int     // byte span of the signature (not including body/semicolon)
	IsPrototype bool   // true when terminated by ';' rather than a '{' body
}

// TypeKind classifies a TypeDecl.
type TypeKind int

const (
	TypeStruct TypeKind = iota
	TypeEnum
	TypeUnion
	TypeAlias // typedef
)

// Field is a single struct/union member.
type Field struct {
	Type string
	Name string
}

// TypeDecl is a discovered struct/enum/union/typedef declaration.
type TypeDecl struct {
	Kind       TypeKind
	Name       string   // tag name for struct/enum/union, alias name for typedef
	Underlying string   // for TypeAlias: the type being aliased
	Fields     []Field  // for TypeStruct/TypeUnion
	Members    []string // for TypeEnum
	DocComment string
	Start, End int
}

// File is the result of scanning one source buffer.
type File struct {
	Funcs []FuncDecl
	Types []TypeDecl
}

// Scan walks src and returns every top-level function and type declaration
// found in it.
func Scan(src []byte) *File {
	toks := clex.Tokens(src)
	sig := significantWithGaps(toks)

	f := &File{}
	depth := 0
	stmtStart := -1
	var pendingComment string

	for i := 0; i < len(sig); i++ {
		tok := sig[i]

		switch tok.Kind {
		case clex.KindLineComment, clex.KindBlockComment:
			pendingComment = tok.Text
			continue
		case clex.KindWhitespace, clex.KindNewline:
			// Blank lines and intervening whitespace don't break the
			// association between a doc comment and the declaration
			// that follows it; only another top-level token would.
			continue
		}

		if stmtStart == -1 {
			stmtStart = tok.Start
		}

		if tok.Kind == clex.KindPunct {
			switch tok.Text {
			case "{":
				if depth == 0 {
					handled := tryCloseOnBrace(sig, i, src, pendingComment, &f.Funcs, &f.Types)
					if handled >= i {
						i = handled
						stmtStart = -1
						pendingComment = ""
						continue
					}
				}
				depth++
			case "}":
				depth--
			case ";":
				if depth == 0 {
					tryStatement(sig[:i+1], stmtStart, i, src, pendingComment, f)
					stmtStart = -1
					pendingComment = ""
				}
			}
		}
	}

	return f
}

// significantWithGaps drops nothing but keeps token identity; kept as a
// separate helper name for readability at call sites.
func significantWithGaps(tokens []clex.Token) []clex.Token {
	return tokens
}

// tryStatement inspects a top-level `...;` span ending at index end (inclusive)
// starting at byte offset stmtStart, and records it as a FuncDecl or
// TypeDecl (typedef) if recognized.
func tryStatement(all []clex.Token, stmtStart, endIdx int, src []byte, doc string, f *File) {
	span := spanBetween(all, stmtStart, all[endIdx].Start)
	if len(span) == 0 {
		return
	}

	if span[0].Kind == clex.KindIdent && span[0].Text == "typedef" {
		recordTypedef(span, doc, stmtStart, all[endIdx].End, f)
		return
	}

	if sigv, ok := ParseSignature(span); ok && sigv.Name != "" {
		f.Funcs = append(f.Funcs, FuncDecl{
			Sig:         sigv,
			DocComment:  doc,
			Start:       stmtStart,
			End:         all[endIdx].Start,
			IsPrototype: true,
		})
	}
}

// tryCloseOnBrace handles a top-level `{` that opens a function body or a
// struct/enum/union body. It returns the token index of the matching `}`
// (so the caller can skip past it), or a value < the input index i if the
// brace didn't open a recognized top-level construct (the caller should
// then treat it as an ordinary nested-block brace).
func tryCloseOnBrace(sig []clex.Token, i int, src []byte, doc string, funcs *[]FuncDecl, types *[]TypeDecl) int {
	head := headBefore(sig, i)
	if len(head) == 0 {
		return i - 1
	}

	close := matchingBraceClose(sig, i)
	if close < 0 {
		return i - 1
	}

	switch {
	case head[0].Kind == clex.KindIdent && (head[0].Text == "struct" || head[0].Text == "union" || head[0].Text == "enum"):
		recordAggregate(head, sig[i+1:close], doc, head[0].Start, sig[close].End, types)
		return consumeTrailingSemicolon(sig, close)

	default:
		if sigv, ok := ParseSignature(head); ok && sigv.Name != "" {
			*funcs = append(*funcs, FuncDecl{
				Sig:        sigv,
				DocComment: doc,
				Start:      head[0].Start,
				End:        head[len(head)-1].End,
			})
			return close
		}
		return i - 1
	}
}

func headBefore(sig []clex.Token, braceIdx int) []clex.Token {
	start := braceIdx
	for start > 0 {
		t := sig[start-1]
		if t.Kind == clex.KindPunct && (t.Text == ";" || t.Text == "}") {
			break
		}
		start--
	}
	return trimPunct(significant(sig[start:braceIdx]))
}

func matchingBraceClose(sig []clex.Token, openIdx int) int {
	depth := 0
	for i := openIdx; i < len(sig); i++ {
		if sig[i].Kind != clex.KindPunct {
			continue
		}
		switch sig[i].Text {
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func consumeTrailingSemicolon(sig []clex.Token, closeIdx int) int {
	for i := closeIdx + 1; i < len(sig); i++ {
		switch sig[i].Kind {
		case clex.KindWhitespace, clex.KindNewline:
			continue
		case clex.KindPunct:
			if sig[i].Text == ";" {
				return i
			}
		}
		return closeIdx
	}
	return closeIdx
}

func recordAggregate(head, body []clex.Token, doc string, start, end int, types *[]TypeDecl) {
	kind := TypeStruct
	switch head[0].Text {
	case "union":
		kind = TypeUnion
	case "enum":
		kind = TypeEnum
	}

	name := ""
	if len(head) > 1 && head[1].Kind == clex.KindIdent {
		name = head[1].Text
	}

	td := TypeDecl{Kind: kind, Name: name, DocComment: doc, Start: start, End: end}
	sigBody := significant(body)

	if kind == TypeEnum {
		for _, group := range splitTopLevel(sigBody, ",") {
			group = trimPunct(group)
			if len(group) > 0 && group[0].Kind == clex.KindIdent {
				td.Members = append(td.Members, group[0].Text)
			}
		}
	} else {
		for _, stmt := range splitTopLevel(sigBody, ";") {
			stmt = trimPunct(stmt)
			if len(stmt) == 0 {
				continue
			}
			for i := len(stmt) - 1; i >= 0; i-- {
				if stmt[i].Kind == clex.KindIdent {
					td.Fields = append(td.Fields, Field{Name: stmt[i].Text, Type: joinTypeTokens(stmt[:i])})
					break
				}
			}
		}
	}

	*types = append(*types, td)
}

func recordTypedef(span []clex.Token, doc string, start, end int, f *File) {
	body := trimPunct(span[1:])
	if len(body) == 0 {
		return
	}
	alias := body[len(body)-1]
	if alias.Kind != clex.KindIdent {
		return
	}
	underlying := joinTypeTokens(body[:len(body)-1])
	f.Types = append(f.Types, TypeDecl{
		Kind:       TypeAlias,
		Name:       alias.Text,
		Underlying: underlying,
		DocComment: doc,
		Start:      start,
		End:        end,
	})
}

func spanBetween(all []clex.Token, startByte, endByte int) []clex.Token {
	var out []clex.Token
	for _, tok := range all {
		if tok.Start >= startByte && tok.Start < endByte {
			out = append(out, tok)
		}
	}
	return out
}
