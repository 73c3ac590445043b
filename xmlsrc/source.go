// Package xmlsrc adapts encoding/xml to the tagfold token contract.
package xmlsrc

import (
	"encoding/xml"
	"io"

	"github.com/ag-eitilt/Pocket-Binder/tagfold"
)

// Source reads XML from an io.Reader and yields raw tokens for the tagfold
// walker.
//
// Tokens come from Decoder.RawToken, which performs no tag matching of its
// own: mismatched and stray close tags flow through untouched, so the
// walker's recovery policy sees them instead of a decoder error. A
// self-closing element still arrives as a start token followed by a
// synthesized end token, which reduces to the same value either way.
type Source struct {
	dec *xml.Decoder
}

func New(r io.Reader) *Source {
	dec := xml.NewDecoder(r)
	// tolerate common byte-level sloppiness like unescaped ampersands;
	// structural recovery stays the walker's job
	dec.Strict = false

	return &Source{dec: dec}
}

// Next yields the next raw token. Byte-level XML errors are returned as is;
// there is no retry.
func (s *Source) Next() (tagfold.RawToken, error) {
	tok, err := s.dec.RawToken()
	if err == io.EOF {
		return tagfold.RawToken{Kind: tagfold.RawEOF}, nil
	}
	if err != nil {
		return tagfold.RawToken{}, err
	}

	switch t := tok.(type) {
	case xml.StartElement:
		raw := tagfold.RawToken{Kind: tagfold.RawStart, Name: t.Name.Local}

		if len(t.Attr) > 0 {
			raw.Attrs = make([]tagfold.Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				raw.Attrs = append(raw.Attrs, tagfold.Attr{Name: a.Name.Local, Value: a.Value})
			}
		}

		return raw, nil

	case xml.EndElement:
		return tagfold.RawToken{Kind: tagfold.RawEnd, Name: t.Name.Local}, nil

	case xml.CharData:
		return tagfold.RawToken{Kind: tagfold.RawText, Text: string(t)}, nil
	}

	// comments, directives, processing instructions
	return tagfold.RawToken{Kind: tagfold.RawOther}, nil
}
