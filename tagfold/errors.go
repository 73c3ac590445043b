package tagfold

import "strconv"

// MissingHandlerError reports a closed tag whose name has no reducer in the
// Registry. Structural problems in the document never produce errors; an
// unknown tag name always does.
type MissingHandlerError struct {
	Tag string
}

func (e *MissingHandlerError) Error() string {
	return "no reducer registered for tag " + strconv.Quote(e.Tag)
}
