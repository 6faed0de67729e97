package domain

// Seat is one occupied position in a room, in arrival order. The seat order
// defines turn order for the lifetime of the room.
type Seat struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Play is a single card laid into the current trick.
type Play struct {
	PlayerID string `json:"player_id"`
	Card     Card   `json:"card"`
}

// Room is the authoritative aggregate for one game session.
type Room struct {
	ID    string
	Seats []Seat

	Hands  map[string][]Card
	Scores map[string]int

	TurnIndex    int
	CurrentTrick []Play
	Powerhouse   Suit
	LeaderIndex  int

	LastTrick *TrickResult
}

// NewRoom creates an empty room with the given identifier.
func NewRoom(id string) *Room {
	return &Room{
		ID:     id,
		Hands:  map[string][]Card{},
		Scores: map[string]int{},
	}
}

// SeatIndex returns the seat index of the player, or -1 if not seated.
func (r *Room) SeatIndex(playerID string) int {
	for i, s := range r.Seats {
		if s.ID == playerID {
			return i
		}
	}
	return -1
}

// AddSeat appends a seat for the player with a zero score entry. Joining is
// idempotent: an already seated identity is left untouched.
func (r *Room) AddSeat(playerID, name string) bool {
	if r.SeatIndex(playerID) >= 0 {
		return false
	}
	if name == "" {
		name = playerID
	}
	r.Seats = append(r.Seats, Seat{ID: playerID, Name: name})
	r.Scores[playerID] = 0
	return true
}

// RemoveSeat removes the player's seat, hand and score entry. TurnIndex and
// LeaderIndex are remapped to keep pointing at the players they referenced
// before the removal; if that player is the one leaving, the old index is
// kept, clamped modulo the new seat count.
func (r *Room) RemoveSeat(playerID string) bool {
	idx := r.SeatIndex(playerID)
	if idx < 0 {
		return false
	}

	turnID := r.seatIDAt(r.TurnIndex)
	leaderID := r.seatIDAt(r.LeaderIndex)

	r.Seats = append(r.Seats[:idx], r.Seats[idx+1:]...)
	delete(r.Hands, playerID)
	delete(r.Scores, playerID)

	if len(r.Seats) == 0 {
		r.TurnIndex = 0
		r.LeaderIndex = 0
		return true
	}
	r.TurnIndex = r.remapIndex(turnID, r.TurnIndex)
	r.LeaderIndex = r.remapIndex(leaderID, r.LeaderIndex)
	return true
}

func (r *Room) seatIDAt(idx int) string {
	if idx < 0 || idx >= len(r.Seats) {
		return ""
	}
	return r.Seats[idx].ID
}

func (r *Room) remapIndex(playerID string, old int) int {
	if idx := r.SeatIndex(playerID); idx >= 0 {
		return idx
	}
	return old % len(r.Seats)
}

// HandsDealt reports whether the current round has dealt hands.
func (r *Room) HandsDealt() bool {
	return len(r.Hands) > 0
}

// AnyCardsLeft reports whether any seated player still holds cards.
func (r *Room) AnyCardsLeft() bool {
	for _, s := range r.Seats {
		if len(r.Hands[s.ID]) > 0 {
			return true
		}
	}
	return false
}

// HandsCount maps each seated player to the number of cards they hold.
func (r *Room) HandsCount() map[string]int {
	counts := make(map[string]int, len(r.Seats))
	for _, s := range r.Seats {
		counts[s.ID] = len(r.Hands[s.ID])
	}
	return counts
}

// ScoresCopy returns a copy of the scoreboard safe to hand to callers.
func (r *Room) ScoresCopy() map[string]int {
	scores := make(map[string]int, len(r.Scores))
	for id, pts := range r.Scores {
		scores[id] = pts
	}
	return scores
}

// SeatsCopy returns a copy of the seat list safe to hand to callers.
func (r *Room) SeatsCopy() []Seat {
	return append([]Seat(nil), r.Seats...)
}

// Snapshot is the public view of a room: everything but hand contents.
type Snapshot struct {
	Players      []Seat         `json:"players"`
	Scores       map[string]int `json:"scores"`
	HandsCount   map[string]int `json:"hands_count"`
	TurnIndex    int            `json:"turn_index"`
	Powerhouse   Suit           `json:"powerhouse"`
	CurrentTrick []Play         `json:"current_trick"`
}

// Snapshot builds a deep copy of the observable room state.
func (r *Room) Snapshot() Snapshot {
	return Snapshot{
		Players:      r.SeatsCopy(),
		Scores:       r.ScoresCopy(),
		HandsCount:   r.HandsCount(),
		TurnIndex:    r.TurnIndex,
		Powerhouse:   r.Powerhouse,
		CurrentTrick: append([]Play(nil), r.CurrentTrick...),
	}
}
