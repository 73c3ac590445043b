package xmlsrc

import (
	"strings"
	"testing"

	"github.com/ag-eitilt/Pocket-Binder/tagfold"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, src *Source) []tagfold.RawToken {
	t.Helper()

	var toks []tagfold.RawToken
	for {
		tok, err := src.Next()
		require.NoError(t, err)
		if tok.Kind == tagfold.RawEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestNext_StartEndText(t *testing.T) {
	src := New(strings.NewReader(`<card code="c1" name="Goblin">rush</card>`))

	toks := drain(t, src)
	require.Len(t, toks, 3)

	require.Equal(t, tagfold.RawStart, toks[0].Kind)
	require.Equal(t, "card", toks[0].Name)
	// attributes arrive in document order; reversing is the classifier's job
	require.Equal(t, []tagfold.Attr{
		{Name: "code", Value: "c1"},
		{Name: "name", Value: "Goblin"},
	}, toks[0].Attrs)

	require.Equal(t, tagfold.RawText, toks[1].Kind)
	require.Equal(t, "rush", toks[1].Text)

	require.Equal(t, tagfold.RawEnd, toks[2].Kind)
	require.Equal(t, "card", toks[2].Name)
}

// encoding/xml reports <x/> as a start token plus a synthesized end token.
func TestNext_SelfClosingBecomesPair(t *testing.T) {
	src := New(strings.NewReader(`<keyword id="haste"/>`))

	toks := drain(t, src)
	require.Len(t, toks, 2)
	require.Equal(t, tagfold.RawStart, toks[0].Kind)
	require.False(t, toks[0].SelfClosing)
	require.Equal(t, tagfold.RawEnd, toks[1].Kind)
	require.Equal(t, "keyword", toks[1].Name)
}

func TestNext_CommentsAndProcInstAreOther(t *testing.T) {
	src := New(strings.NewReader(`<?xml version="1.0"?><!-- cards --><deck></deck>`))

	var kinds []tagfold.RawKind
	for {
		tok, err := src.Next()
		require.NoError(t, err)
		if tok.Kind == tagfold.RawEOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}

	require.Equal(t, []tagfold.RawKind{
		tagfold.RawOther,
		tagfold.RawOther,
		tagfold.RawStart,
		tagfold.RawEnd,
	}, kinds)
}

// RawToken does no tag matching: unbalanced input reaches the walker as is.
func TestNext_UnbalancedTagsFlowThrough(t *testing.T) {
	src := New(strings.NewReader(`<a><b><c></b></a>`))

	toks := drain(t, src)

	var names []string
	for _, tok := range toks {
		names = append(names, tok.Name)
	}
	require.Equal(t, []string{"a", "b", "c", "b", "a"}, names)
	require.Equal(t, tagfold.RawEnd, toks[3].Kind)
	require.Equal(t, tagfold.RawEnd, toks[4].Kind)
}

func TestNext_StrayCloseFlowsThrough(t *testing.T) {
	src := New(strings.NewReader(`</z><a></a>`))

	toks := drain(t, src)
	require.Equal(t, tagfold.RawEnd, toks[0].Kind)
	require.Equal(t, "z", toks[0].Name)
}

func TestNext_EOFIsSticky(t *testing.T) {
	src := New(strings.NewReader(`<a></a>`))
	drain(t, src)

	for range 3 {
		tok, err := src.Next()
		require.NoError(t, err)
		require.Equal(t, tagfold.RawEOF, tok.Kind)
	}
}

// End to end: the walker on top of a real XML stream.
func TestParse_OverXML(t *testing.T) {
	reg := tagfold.NewRegistry()
	reg.Register("card", func(tag tagfold.Tag, children []any) (any, error) {
		code, _ := tag.Attr("code")
		return code, nil
	})
	reg.Register("deck", func(tag tagfold.Tag, children []any) (any, error) {
		return children, nil
	})

	src := New(strings.NewReader(`
		<deck name="starter">
			<card code="c1"/>
			<card code="c2"></card>
		</deck>`))

	out, err := tagfold.Parse(src, reg)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, []any{"c1", "c2"}, out[0])
}
