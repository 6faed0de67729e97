package domain

// Suit is one of the four playing-card suits. The zero value means "no suit",
// which doubles as the "no powerhouse selected" state on a Room.
type Suit string

const (
	SuitNone Suit = ""

	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Suits lists the four suits in deck construction order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// ParseSuit maps a client-supplied suit string to a Suit. Anything that is
// not one of the four suits (including "none") maps to SuitNone.
func ParseSuit(s string) Suit {
	switch Suit(s) {
	case Spades, Hearts, Diamonds, Clubs:
		return Suit(s)
	default:
		return SuitNone
	}
}

// Rank is a card rank, ace high.
type Rank string

// Ranks lists the thirteen ranks in deck construction order.
var Ranks = []Rank{"A", "K", "Q", "J", "10", "9", "8", "7", "6", "5", "4", "3", "2"}

var rankValue = map[Rank]int{
	"A": 13, "K": 12, "Q": 11, "J": 10, "10": 9, "9": 8, "8": 7,
	"7": 6, "6": 5, "5": 4, "4": 3, "3": 2, "2": 1,
}

// Value returns the comparison value of the rank (A=13 down to 2=1).
// Unknown ranks compare below every real rank.
func (r Rank) Value() int {
	return rankValue[r]
}

// Card is an immutable playing card. Cards are interchangeable by value;
// there is no per-instance identity beyond (rank, suit).
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// Points returns the scoring value of the card. The 3 of spades is worth 30
// and must be checked before the rank table: every other 3 is worth nothing.
func (c Card) Points() int {
	if c.Rank == "3" && c.Suit == Spades {
		return 30
	}
	switch c.Rank {
	case "A", "K", "Q", "J", "10":
		return 10
	case "5":
		return 5
	}
	return 0
}
