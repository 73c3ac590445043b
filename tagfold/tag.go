package tagfold

// Attr is a single name="value" pair on a Tag.
type Attr struct {
	Name  string
	Value string
}

// Tag contains everything known about one element: its name, its attributes
// and the plain text accumulated inside it so far.
//
// Attrs are kept in reverse document order: the classifier prepends each
// attribute as it reads it, so the attribute written last in the document is
// the first entry of the slice.
type Tag struct {
	Name  string
	Attrs []Attr
	Text  string
}

// Attr returns the value of the named attribute and whether it is present.
// With duplicate attribute names the one written last in the document wins.
func (t Tag) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}
