package cards

import (
	"cmp"
	"fmt"
	"hash/fnv"
	"slices"
	"strings"

	"github.com/fadedpez/cardindex/pkg/types"
)

// Suit represents a card suit. The zero value NoSuit marks a card
// without a suit (Joker and Wonder).
type Suit int

const (
	NoSuit Suit = iota
	Spades
	Hearts
	Diamonds
	Clubs
)

var suitNames = [...]string{
	NoSuit:   "",
	Spades:   "SPADES",
	Hearts:   "HEARTS",
	Diamonds: "DIAMONDS",
	Clubs:    "CLUBS",
}

// Suits returns the suits in their fixed iteration order. The order
// determines index offsets and must not change.
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

// String returns the canonical upper-case name of the suit
func (s Suit) String() string {
	if s < NoSuit || s > Clubs {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

func (s Suit) valid() bool {
	return s >= Spades && s <= Clubs
}

// position is the 0-based place of the suit in Suits()
func (s Suit) position() int {
	return int(s - Spades)
}

// Rank represents a card rank. The value of a rank is its strength.
type Rank int

const (
	Three Rank = iota + 1
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Two
	Joker
	Wonder
)

var rankNames = [...]string{
	Three:  "THREE",
	Four:   "FOUR",
	Five:   "FIVE",
	Six:    "SIX",
	Seven:  "SEVEN",
	Eight:  "EIGHT",
	Nine:   "NINE",
	Ten:    "TEN",
	Jack:   "JACK",
	Queen:  "QUEEN",
	King:   "KING",
	Ace:    "ACE",
	Two:    "TWO",
	Joker:  "JOKER",
	Wonder: "WONDER",
}

// Ranks returns every rank in ascending strength
func Ranks() []Rank {
	ranks := make([]Rank, 0, Wonder)
	for r := Three; r <= Wonder; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Strength returns the integer that orders ranks
func (r Rank) Strength() int {
	return int(r)
}

// IsSuper reports whether the rank is one of the suit-less super-ranks
func (r Rank) IsSuper() bool {
	return r == Joker || r == Wonder
}

// String returns the canonical upper-case name of the rank
func (r Rank) String() string {
	if !r.valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

func (r Rank) valid() bool {
	return r >= Three && r <= Wonder
}

const (
	// RegularCards is the number of suited cards, 13 per suit
	RegularCards = 52
	// JokerIndex and WonderIndex follow the reference layout.
	// Slot 52 is reserved and never produced.
	JokerIndex  = 53
	WonderIndex = 54
	// IndexSlots is the width of a feature vector indexed by Card.Index
	IndexSlots = 55

	ranksPerSuit = 13
)

// Card represents a playing card. Cards are immutable values; the zero
// Card is not a valid card.
type Card struct {
	rank Rank
	suit Suit
}

// New creates a card. Joker and Wonder must be created with NoSuit,
// every other rank needs a suit.
func New(rank Rank, suit Suit) (Card, error) {
	if !rank.valid() {
		return Card{}, types.NewCardErrorf(types.ErrInvalidCard, "unknown rank %d", int(rank))
	}
	if suit != NoSuit && !suit.valid() {
		return Card{}, types.NewCardErrorf(types.ErrInvalidCard, "unknown suit %d", int(suit))
	}
	if rank.IsSuper() && suit != NoSuit {
		return Card{}, types.NewCardErrorf(types.ErrInvalidCard, "%s cannot have a suit, got %s", rank, suit)
	}
	if !rank.IsSuper() && suit == NoSuit {
		return Card{}, types.NewCardErrorf(types.ErrInvalidCard, "%s requires a suit", rank)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustNew is like New but panics on an invalid card
func MustNew(rank Rank, suit Suit) Card {
	c, err := New(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// JokerCard returns the Joker
func JokerCard() Card {
	return Card{rank: Joker}
}

// WonderCard returns the Wonder
func WonderCard() Card {
	return Card{rank: Wonder}
}

// IsInvalidCard reports whether err was caused by an invalid card
func IsInvalidCard(err error) bool {
	return types.IsCardError(err, types.ErrInvalidCard)
}

// Rank returns the rank of the card
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the card and false for Joker and Wonder
func (c Card) Suit() (Suit, bool) {
	return c.suit, c.suit != NoSuit
}

// Compare orders two cards by strength. Suit never breaks ties.
func Compare(a, b Card) int {
	return cmp.Compare(a.rank.Strength(), b.rank.Strength())
}

// Equal reports whether two cards have the same strength. Suit is ignored.
func Equal(a, b Card) bool {
	return a.rank == b.rank
}

// Equal reports whether c has the same strength as other
func (c Card) Equal(other Card) bool {
	return Equal(c, other)
}

// Beats reports whether c is strictly stronger than other
func (c Card) Beats(other Card) bool {
	return Compare(c, other) > 0
}

// Hash returns a hash of the full (rank, suit) pair.
//
// Hash includes the suit while Equal ignores it, so two cards that are
// Equal may hash differently. Go maps keyed by Card behave the same way:
// ACE_SPADES and ACE_HEARTS are distinct keys.
func (c Card) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(c.rank), byte(c.suit)})
	return h.Sum64()
}

// String returns RANK_SUIT, or RANK alone for Joker and Wonder
func (c Card) String() string {
	if c.suit == NoSuit {
		return c.rank.String()
	}
	return c.rank.String() + "_" + c.suit.String()
}

// Index maps the card to its slot in a feature vector of IndexSlots
// entries. Suited cards occupy 0..51, 13 per suit in Suits() order.
// The zero Card returns -1.
func (c Card) Index() int {
	switch c.rank {
	case Joker:
		return JokerIndex
	case Wonder:
		return WonderIndex
	}
	if !c.rank.valid() || !c.suit.valid() {
		return -1
	}
	return c.suit.position()*ranksPerSuit + c.rank.Strength() - 1
}

// FromIndex returns the card at slot i
func FromIndex(i int) (Card, error) {
	switch {
	case i >= 0 && i < RegularCards:
		return Card{
			rank: Rank(i%ranksPerSuit) + Three,
			suit: Suit(i/ranksPerSuit) + Spades,
		}, nil
	case i == JokerIndex:
		return JokerCard(), nil
	case i == WonderIndex:
		return WonderCard(), nil
	}
	return Card{}, types.NewCardErrorf(types.ErrInvalidIndex, "no card at index %d", i)
}

var (
	ranksByName = map[string]Rank{}
	suitsByName = map[string]Suit{}
)

func init() {
	for _, r := range Ranks() {
		ranksByName[r.String()] = r
	}
	for _, s := range Suits() {
		suitsByName[s.String()] = s
	}
}

// Parse reads a card from its String form, ignoring case
func Parse(name string) (Card, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	rankName, suitName, hasSuit := strings.Cut(normalized, "_")

	rank, ok := ranksByName[rankName]
	if !ok {
		return Card{}, types.NewCardErrorf(types.ErrUnknownName, "unknown rank in %q", name)
	}

	suit := NoSuit
	if hasSuit {
		if suit, ok = suitsByName[suitName]; !ok {
			return Card{}, types.NewCardErrorf(types.ErrUnknownName, "unknown suit in %q", name)
		}
	}

	return New(rank, suit)
}

// Sort sorts cards by ascending strength. Cards of equal strength keep
// their relative order.
func Sort(cards []Card) {
	slices.SortStableFunc(cards, Compare)
}
