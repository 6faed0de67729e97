package domain

import "testing"

func TestTrickWinnerWithPowerhouse(t *testing.T) {
	trick := []Play{
		{PlayerID: "p1", Card: Card{Suit: Spades, Rank: "2"}},
		{PlayerID: "p2", Card: Card{Suit: Hearts, Rank: "A"}},
		{PlayerID: "p3", Card: Card{Suit: Spades, Rank: "K"}},
		{PlayerID: "p4", Card: Card{Suit: Diamonds, Rank: "5"}},
	}

	if got := TrickWinner(trick, Spades); got != "p3" {
		t.Fatalf("winner = %s, want p3 (highest powerhouse)", got)
	}
}

func TestTrickWinnerLedSuitWhenNoPowerhouse(t *testing.T) {
	trick := []Play{
		{PlayerID: "p1", Card: Card{Suit: Hearts, Rank: "3"}},
		{PlayerID: "p2", Card: Card{Suit: Spades, Rank: "A"}},
		{PlayerID: "p3", Card: Card{Suit: Hearts, Rank: "9"}},
	}

	// Off-suit ace cannot win without a powerhouse.
	if got := TrickWinner(trick, SuitNone); got != "p3" {
		t.Fatalf("winner = %s, want p3 (highest of led suit)", got)
	}
}

func TestTrickWinnerPowerhouseAbsentFallsBackToLedSuit(t *testing.T) {
	trick := []Play{
		{PlayerID: "p1", Card: Card{Suit: Diamonds, Rank: "4"}},
		{PlayerID: "p2", Card: Card{Suit: Diamonds, Rank: "J"}},
		{PlayerID: "p3", Card: Card{Suit: Hearts, Rank: "A"}},
	}

	if got := TrickWinner(trick, Clubs); got != "p2" {
		t.Fatalf("winner = %s, want p2 (no clubs in trick)", got)
	}
}

func TestTrickWinnerEmptyTrick(t *testing.T) {
	if got := TrickWinner(nil, Spades); got != "" {
		t.Fatalf("winner of empty trick = %q, want empty", got)
	}
}

func TestTrickPoints(t *testing.T) {
	trick := []Play{
		{PlayerID: "p1", Card: Card{Suit: Spades, Rank: "3"}},
		{PlayerID: "p2", Card: Card{Suit: Hearts, Rank: "A"}},
		{PlayerID: "p3", Card: Card{Suit: Diamonds, Rank: "5"}},
		{PlayerID: "p4", Card: Card{Suit: Clubs, Rank: "7"}},
	}

	if got := TrickPoints(trick); got != 45 {
		t.Fatalf("points = %d, want 45", got)
	}
}
