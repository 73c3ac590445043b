// Package carddef defines the card definition vocabulary: the typed model for
// card sets and the reducers that fold a streamed definitions document into
// it. Adding a new content kind means adding a reducer here, not touching the
// walker.
package carddef

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ag-eitilt/Pocket-Binder/tagfold"
)

var validate = validator.New()

// Registry builds the reducer table for the card definition vocabulary.
// The vocabulary is closed: a tag name outside it fails the parse.
//
//	<sets>                 optional grouping of sets
//	<set code name>        children are cards
//	<card code name type cost>   children are abilities and keywords,
//	                             element text is the card's rules text
//	<ability trigger effect amount>
//	<keyword>text</keyword>
func Registry() *tagfold.Registry {
	r := tagfold.NewRegistry()
	r.Register("sets", reduceSetList)
	r.Register("set", reduceSet)
	r.Register("card", reduceCard)
	r.Register("ability", reduceAbility)
	r.Register("keyword", reduceKeyword)

	return r
}

func reduceSetList(tag tagfold.Tag, children []any) (any, error) {
	sets := make([]Set, 0, len(children))

	for _, c := range children {
		set, ok := c.(Set)
		if !ok {
			return nil, fmt.Errorf("sets: unexpected child %T", c)
		}
		sets = append(sets, set)
	}

	return sets, nil
}

func reduceSet(tag tagfold.Tag, children []any) (any, error) {
	var set Set
	set.Code, _ = tag.Attr("code")
	set.Name, _ = tag.Attr("name")

	for _, c := range children {
		card, ok := c.(Card)
		if !ok {
			return nil, fmt.Errorf("set %q: unexpected child %T", set.Code, c)
		}
		set.Cards = append(set.Cards, card)
	}

	if err := validate.Struct(set); err != nil {
		return nil, fmt.Errorf("set %q: %w", set.Code, err)
	}

	return set, nil
}

func reduceCard(tag tagfold.Tag, children []any) (any, error) {
	var card Card
	card.Code, _ = tag.Attr("code")
	card.Name, _ = tag.Attr("name")
	card.Type, _ = tag.Attr("type")
	card.Text = strings.TrimSpace(tag.Text)

	if raw, ok := tag.Attr("cost"); ok {
		cost, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("card %q: bad cost %q", card.Code, raw)
		}
		card.Cost = int32(cost)
	}

	for _, c := range children {
		switch child := c.(type) {
		case Ability:
			card.Abilities = append(card.Abilities, child)
		case string:
			card.Keywords = append(card.Keywords, child)
		default:
			return nil, fmt.Errorf("card %q: unexpected child %T", card.Code, c)
		}
	}

	if err := validate.Struct(card); err != nil {
		return nil, fmt.Errorf("card %q: %w", card.Code, err)
	}

	return card, nil
}

func reduceAbility(tag tagfold.Tag, children []any) (any, error) {
	var ability Ability
	ability.Trigger, _ = tag.Attr("trigger")
	ability.Effect, _ = tag.Attr("effect")

	if raw, ok := tag.Attr("amount"); ok {
		amount, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ability %q: bad amount %q", ability.Trigger, raw)
		}
		ability.Amount = int32(amount)
	}

	if len(children) > 0 {
		return nil, fmt.Errorf("ability %q: unexpected children", ability.Trigger)
	}

	if err := validate.Struct(ability); err != nil {
		return nil, fmt.Errorf("ability %q: %w", ability.Trigger, err)
	}

	return ability, nil
}

// A keyword reduces to its text payload.
func reduceKeyword(tag tagfold.Tag, children []any) (any, error) {
	kw := strings.TrimSpace(tag.Text)
	if kw == "" {
		return nil, fmt.Errorf("keyword: empty")
	}

	if len(children) > 0 {
		return nil, fmt.Errorf("keyword %q: unexpected children", kw)
	}

	return kw, nil
}
