package tagfold

import "fmt"

// nextEvent pulls raw tokens from src until one of them classifies into the
// five-case event alphabet, skipping everything else. The skip happens inside
// one loop, so a run of ignorable tokens costs no stack no matter how long
// it is.
func nextEvent(src TokenSource) (Event, error) {
	for {
		raw, err := src.Next()
		if err != nil {
			return Event{}, fmt.Errorf("token source: %w", err)
		}

		switch raw.Kind {
		case RawEOF:
			return Event{Kind: EventEOF}, nil

		case RawStart:
			tag := Tag{Name: raw.Name}

			if n := len(raw.Attrs); n > 0 {
				// prepending each attribute keeps Tag.Attrs in reverse
				// document order
				tag.Attrs = make([]Attr, 0, n)
				for i := n - 1; i >= 0; i-- {
					tag.Attrs = append(tag.Attrs, raw.Attrs[i])
				}
			}

			if raw.SelfClosing {
				return Event{Kind: EventEmpty, Tag: tag}, nil
			}

			return Event{Kind: EventStart, Tag: tag}, nil

		case RawEnd:
			return Event{Kind: EventEnd, Name: raw.Name}, nil

		case RawText:
			return Event{Kind: EventText, Text: raw.Text}, nil
		}

		// RawOther: pull again without emitting
	}
}
