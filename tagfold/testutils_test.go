package tagfold

import "errors"

// sliceSource yields a fixed sequence of raw tokens, then RawEOF forever.
type sliceSource struct {
	toks []RawToken
	pos  int
}

func (s *sliceSource) Next() (RawToken, error) {
	if s.pos >= len(s.toks) {
		return RawToken{Kind: RawEOF}, nil
	}

	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func newSource(toks ...RawToken) *sliceSource {
	return &sliceSource{toks: toks}
}

// errSource yields n good tokens and then fails.
type errSource struct {
	toks []RawToken
	pos  int
}

var errBrokenSource = errors.New("broken source")

func (s *errSource) Next() (RawToken, error) {
	if s.pos >= len(s.toks) {
		return RawToken{}, errBrokenSource
	}

	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func start(name string, attrs ...Attr) RawToken {
	return RawToken{Kind: RawStart, Name: name, Attrs: attrs}
}

func selfClosing(name string, attrs ...Attr) RawToken {
	return RawToken{Kind: RawStart, Name: name, Attrs: attrs, SelfClosing: true}
}

func end(name string) RawToken {
	return RawToken{Kind: RawEnd, Name: name}
}

func text(s string) RawToken {
	return RawToken{Kind: RawText, Text: s}
}

func comment() RawToken {
	return RawToken{Kind: RawOther}
}

// node is what the identity reducer produces: the closed tag plus its reduced
// children, untouched. Good enough to reconstruct the whole subtree in tests.
type node struct {
	tag      Tag
	children []any
}

func identity(tag Tag, children []any) (any, error) {
	return node{tag: tag, children: children}, nil
}

// identityRegistry registers the identity reducer for every given name.
func identityRegistry(names ...string) *Registry {
	r := NewRegistry()
	for _, name := range names {
		r.Register(name, identity)
	}

	return r
}
