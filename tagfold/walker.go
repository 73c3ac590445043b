package tagfold

// frame is the bookkeeping for one currently-open tag: the tag itself plus
// the buffer of values already produced for its closed children. Giving every
// open tag its own child buffer means closing a tag never has to scan past
// other tags' data.
type frame struct {
	tag      Tag
	children []any
}

// walker owns the whole state of one parse: the stack of open frames,
// innermost last, and the values produced for elements closed at the document
// root. Nothing else holds a live reference to either across events.
type walker struct {
	reg    *Registry
	frames []frame
	root   []any
}

func (w *walker) open(tag Tag) {
	w.frames = append(w.frames, frame{tag: tag})
}

// appendText adds s to the innermost open tag with no separator. Text outside
// any open tag is dropped.
func (w *walker) appendText(s string) {
	if len(w.frames) == 0 {
		return
	}

	w.frames[len(w.frames)-1].tag.Text += s
}

// emit records a finished value on whatever is collecting children right now:
// the innermost open frame, or the root sequence when nothing is open.
func (w *walker) emit(v any) {
	if len(w.frames) == 0 {
		w.root = append(w.root, v)
		return
	}

	top := &w.frames[len(w.frames)-1]
	top.children = append(top.children, v)
}

// closeTop pops the innermost frame, reduces it and emits the result one
// level up. A frame is popped exactly once, so each closed element is reduced
// exactly once. Children reach the reducer in document order because emit
// appended them as they finished.
func (w *walker) closeTop() error {
	top := w.frames[len(w.frames)-1]
	w.frames = w.frames[:len(w.frames)-1]

	v, err := w.reg.reduce(top.tag, top.children)
	if err != nil {
		return err
	}

	w.emit(v)

	return nil
}
