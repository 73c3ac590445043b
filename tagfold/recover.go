package tagfold

// closeThrough handles an end tag against the open stack. The nearest
// enclosing open tag with the same name wins: everything opened inside it is
// force-closed first, innermost out, then the match itself. An end tag that
// matches nothing on the stack is dropped without complaint. That is the
// whole recovery policy for malformed documents; nothing is ever reported.
//
// With two same-named tags nested and the inner one never closed, an end tag
// for that name closes the inner one. The outer then stays open until a
// second end tag, or end of input, closes it.
func (w *walker) closeThrough(name string) error {
	// 1. Find the nearest open tag with this name.
	match := -1
	for i := len(w.frames) - 1; i >= 0; i-- {
		if w.frames[i].tag.Name == name {
			match = i
			break
		}
	}

	// 2. No match anywhere on the stack: a stray close tag, ignore it.
	if match == -1 {
		return nil
	}

	// 3. Close every tag opened after the match, then the match itself.
	for len(w.frames) > match {
		if err := w.closeTop(); err != nil {
			return err
		}
	}

	return nil
}
