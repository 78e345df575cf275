package clex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_FunctionSignature(t *testing.T) {
	src := []byte(`int add(int a, int b); // sums two ints`)
	toks := Tokens(src)
	require.NotEmpty(t, toks)
	assert.Equal(t, KindEOF, toks[len(toks)-1].Kind)

	var significant []Token
	for _, tok := range toks {
		if tok.Kind != KindWhitespace && tok.Kind != KindNewline && tok.Kind != KindEOF {
			significant = append(significant, tok)
		}
	}

	require.GreaterOrEqual(t, len(significant), 9)
	assert.Equal(t, "int", significant[0].Text)
	assert.Equal(t, KindIdent, significant[0].Kind)
	assert.Equal(t, "add", significant[1].Text)
	assert.Equal(t, "(", significant[2].Text)
	assert.Equal(t, KindLineComment, significant[len(significant)-1].Kind)
}

func TestTokens_BlockComment(t *testing.T) {
	src := []byte("/** doc\n * more\n */\nvoid f(void);")
	toks := Tokens(src)
	require.NotEmpty(t, toks)
	assert.Equal(t, KindBlockComment, toks[0].Kind)
	assert.Contains(t, toks[0].Text, "more")
}

func TestTokens_MultiBytePunctuators(t *testing.T) {
	src := []byte(`a->b`)
	toks := Tokens(src)
	var punct []Token
	for _, tok := range toks {
		if tok.Kind == KindPunct {
			punct = append(punct, tok)
		}
	}
	require.Len(t, punct, 1)
	assert.Equal(t, "->", punct[0].Text)
}

func TestTokens_Spans(t *testing.T) {
	src := []byte("int x;")
	toks := Tokens(src)
	for _, tok := range toks {
		assert.Equal(t, tok.Text, string(src[tok.Start:tok.End]))
	}
}
