// Package features turns sets of cards into fixed-width state vectors
// indexed by cards.Card.Index.
package features

import (
	"math"

	"github.com/fadedpez/cardindex/pkg/cards"
	"github.com/fadedpez/cardindex/pkg/types"
)

// MaxCount is the largest per-slot count Decode accepts
const MaxCount = 64

// Vector holds a card count per index slot
type Vector []float32

// Encode counts each card into its slot. Invalid cards are skipped.
func Encode(cs ...cards.Card) Vector {
	v := make(Vector, cards.IndexSlots)
	for _, c := range cs {
		if idx := c.Index(); idx >= 0 {
			v[idx]++
		}
	}
	return v
}

// Decode expands a vector back into cards, in index order
func Decode(v Vector) ([]cards.Card, error) {
	if len(v) != cards.IndexSlots {
		return nil, types.NewCardErrorf(types.ErrInvalidArgument, "vector has %d slots, want %d", len(v), cards.IndexSlots)
	}

	var out []cards.Card
	for idx, count := range v {
		if count == 0 {
			continue
		}
		f := float64(count)
		if count < 0 || math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil, types.NewCardErrorf(types.ErrInvalidArgument, "slot %d holds %v, want a whole count", idx, count)
		}
		if f > MaxCount {
			return nil, types.NewCardErrorf(types.ErrInvalidArgument, "slot %d holds %v, at most %d allowed", idx, count, MaxCount)
		}

		card, err := cards.FromIndex(idx)
		if err != nil {
			return nil, types.WrapError(types.ErrInvalidIndex, "reserved slot is set", err)
		}
		for n := 0; n < int(count); n++ {
			out = append(out, card)
		}
	}
	return out, nil
}

// Mask returns one bit per occupied slot
func Mask(cs ...cards.Card) uint64 {
	var mask uint64
	for _, c := range cs {
		if idx := c.Index(); idx >= 0 {
			mask |= 1 << uint(idx)
		}
	}
	return mask
}
