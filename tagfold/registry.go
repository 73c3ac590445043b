package tagfold

// ReduceFunc folds one closed element into a single domain value. tag is the
// element itself, complete with attributes and accumulated text; children are
// the values already produced for its child elements, in document order.
//
// A non-nil error is fatal and aborts the whole parse.
type ReduceFunc func(tag Tag, children []any) (any, error)

// Registry maps tag names to their reducers. It is built once before parsing
// begins and only read afterwards, so a Registry may be shared across
// sequential parses. Sharing it across concurrent parses is only safe when
// the reducers themselves are.
type Registry struct {
	reducers map[string]ReduceFunc
}

func NewRegistry() *Registry {
	return &Registry{reducers: make(map[string]ReduceFunc)}
}

// Register binds name to fn, replacing any previous binding for that name.
func (r *Registry) Register(name string, fn ReduceFunc) {
	r.reducers[name] = fn
}

// reduce dispatches the closed tag to its reducer. A tag name without a
// registered reducer is the one structural condition that fails a parse.
func (r *Registry) reduce(tag Tag, children []any) (any, error) {
	fn, ok := r.reducers[tag.Name]
	if !ok {
		return nil, &MissingHandlerError{Tag: tag.Name}
	}

	return fn(tag, children)
}
