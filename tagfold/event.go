package tagfold

// EventKind defines the semantic kind of a classified Event.
type EventKind uint8

const (
	// EventEOF means the token source is exhausted.
	EventEOF EventKind = iota

	// EventStart is an opening tag.
	EventStart

	// EventEnd is a closing tag. Only the name survives classification.
	EventEnd

	// EventText is a run of character data.
	EventText

	// EventEmpty is a self-closing tag. It opens and closes atomically.
	EventEmpty
)

// Event is one classified unit of parse progress. Which fields carry meaning
// depends on Kind: Tag for EventStart/EventEmpty, Name for EventEnd and Text
// for EventText. Events are produced fresh per classifier call and have no
// retained identity.
type Event struct {
	Kind EventKind
	Tag  Tag
	Name string
	Text string
}
