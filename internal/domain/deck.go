package domain

import "math/rand"

// NewDeck produces the ordered 52-card cross product of suits and ranks.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// removalOrder is the rank priority for trimming a deck down to a size
// divisible by the seat count. Low-impact ranks go first; 5 goes last
// because it carries points.
var removalOrder = []Rank{"2", "3", "4", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "5"}

// ReduceToDivisible removes cards until len(deck) is divisible by seatCount,
// following removalOrder. Within a rank the highest deck positions are
// removed first, so the result is deterministic for a given deck.
func ReduceToDivisible(deck []Card, seatCount int) []Card {
	if seatCount <= 0 || len(deck)%seatCount == 0 {
		return deck
	}
	working := append([]Card(nil), deck...)
	for _, rank := range removalOrder {
		for i := len(working) - 1; i >= 0; i-- {
			if len(working)%seatCount == 0 {
				return working
			}
			if working[i].Rank == rank {
				working = append(working[:i], working[i+1:]...)
			}
		}
	}
	return working
}

// ShuffleDeck returns a uniformly shuffled copy of the given deck.
func ShuffleDeck(rng *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// RemoveCard removes the first card matching (rank, suit) from a hand.
// The second return reports whether the card was present.
func RemoveCard(hand []Card, card Card) ([]Card, bool) {
	for i, c := range hand {
		if c.Suit == card.Suit && c.Rank == card.Rank {
			return append(hand[:i:i], hand[i+1:]...), true
		}
	}
	return hand, false
}

// HasSuit reports whether the hand holds at least one card of the suit.
func HasSuit(hand []Card, suit Suit) bool {
	for _, c := range hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}
