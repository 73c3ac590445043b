// Package tagfold runs a single forward pass over a stream of tag tokens and
// folds every element into a caller-supplied value the moment its subtree is
// complete. No document tree is ever materialized: memory is bounded by the
// currently-open path plus the values already reduced, and each subtree is
// released as soon as its reducer has run.
//
// New content vocabularies are added by registering per-tag reducers on a
// Registry, not by writing new parsing code.
package tagfold

// Parse drives src to exhaustion and returns the values produced for the
// document's top-level elements, in document order.
//
// Children are always reduced before their parent, siblings in document
// order. Unbalanced input never fails the parse: a close tag folds its
// nearest matching ancestor and force-closes anything still open inside it,
// a stray close tag is dropped, and end of input closes whatever remains
// open, innermost first.
func Parse(src TokenSource, reg *Registry) ([]any, error) {
	w := walker{reg: reg}

	// one event per iteration and no recursion anywhere, so a document with
	// millions of siblings runs in constant stack space
	for {
		ev, err := nextEvent(src)
		if err != nil {
			return nil, err
		}

		switch ev.Kind {
		case EventStart:
			w.open(ev.Tag)

		case EventEmpty:
			// opens and closes atomically, no net change to the open stack
			w.open(ev.Tag)
			if err := w.closeTop(); err != nil {
				return nil, err
			}

		case EventText:
			w.appendText(ev.Text)

		case EventEnd:
			if err := w.closeThrough(ev.Name); err != nil {
				return nil, err
			}

		case EventEOF:
			for len(w.frames) > 0 {
				if err := w.closeTop(); err != nil {
					return nil, err
				}
			}

			return w.root, nil
		}
	}
}
