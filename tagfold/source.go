package tagfold

// RawKind defines the kind of a token yielded by a TokenSource.
type RawKind uint8

const (
	// RawEOF means the source has nothing left to yield.
	RawEOF RawKind = iota

	// RawStart is an element start. Name, Attrs and SelfClosing are set.
	RawStart

	// RawEnd is an element end. Only Name is set.
	RawEnd

	// RawText is character data. Only Text is set.
	RawText

	// RawOther covers comments, processing instructions, directives and any
	// other token kind the walker has no use for. The classifier skips these
	// without emitting an Event.
	RawOther
)

// RawToken is the unit a TokenSource yields per call.
//
// Attrs are in document order; reordering them is the classifier's business,
// not the source's.
type RawToken struct {
	Kind        RawKind
	Name        string
	Attrs       []Attr
	SelfClosing bool
	Text        string
}

// TokenSource is any forward-only, single-pass producer of raw tokens.
//
// Next must yield RawEOF once the input is exhausted and keep yielding it on
// every call after that. A non-nil error means the source itself broke
// (malformed byte stream, I/O failure); the walker propagates it unrecovered
// and never retries.
type TokenSource interface {
	Next() (RawToken, error)
}
