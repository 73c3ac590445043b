package carddef

import (
	"io"

	"github.com/ag-eitilt/Pocket-Binder/tagfold"
	"github.com/ag-eitilt/Pocket-Binder/xmlsrc"
)

// ParseSets streams one definitions document and returns its card sets in
// document order. Sets may appear bare at the top level or grouped under a
// <sets> element; both shapes flatten into the same result.
func ParseSets(r io.Reader) ([]Set, error) {
	values, err := tagfold.Parse(xmlsrc.New(r), Registry())
	if err != nil {
		return nil, err
	}

	sets := make([]Set, 0, len(values))
	for _, v := range values {
		switch tv := v.(type) {
		case Set:
			sets = append(sets, tv)
		case []Set:
			sets = append(sets, tv...)
		}
	}

	return sets, nil
}
