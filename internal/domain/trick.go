package domain

// TrickResult records a resolved trick.
type TrickResult struct {
	WinnerID string `json:"winner_id"`
	Plays    []Play `json:"plays"`
	Points   int    `json:"points"`
}

// TrickWinner determines the winning player of a completed trick. If a
// powerhouse suit is set and present in the trick, the highest powerhouse
// rank wins. Otherwise the highest rank of the led suit wins; off-suit
// plays never win. Rank ties cannot occur within a round.
func TrickWinner(trick []Play, powerhouse Suit) string {
	if len(trick) == 0 {
		return ""
	}

	if powerhouse != SuitNone {
		winnerID := ""
		best := -1
		for _, p := range trick {
			if p.Card.Suit != powerhouse {
				continue
			}
			if v := p.Card.Rank.Value(); v > best {
				best = v
				winnerID = p.PlayerID
			}
		}
		if winnerID != "" {
			return winnerID
		}
	}

	ledSuit := trick[0].Card.Suit
	winnerID := trick[0].PlayerID
	best := trick[0].Card.Rank.Value()
	for _, p := range trick {
		if p.Card.Suit != ledSuit {
			continue
		}
		if v := p.Card.Rank.Value(); v > best {
			best = v
			winnerID = p.PlayerID
		}
	}
	return winnerID
}

// TrickPoints sums the point values of every card in the trick.
func TrickPoints(trick []Play) int {
	total := 0
	for _, p := range trick {
		total += p.Card.Points()
	}
	return total
}
