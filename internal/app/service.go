package app

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"kalitiri/internal/config"
	"kalitiri/internal/domain"
)

// Rejection reasons reported privately to a requester whose play was
// refused. Clients match on these strings.
const (
	ReasonNotYourTurn   = "not your turn"
	ReasonNoHand        = "no hand"
	ReasonCardNotInHand = "card not in hand"
)

func reasonMustFollowSuit(suit domain.Suit) string {
	return fmt.Sprintf("must follow suit %s", suit)
}

// Service contains the KaliTiri use-cases operating on room state. Every
// operation takes the per-room lock, mutates at most one room, and returns
// the outbound events the transport should deliver. Unknown rooms and
// unseated identities are no-ops that return no events.
type Service struct {
	rooms *Registry

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rooms *Registry, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rooms: rooms, rng: rng}
}

func (s *Service) minPlayers() int {
	return config.MinPlayersToStart(DefaultMinPlayersToStart)
}

func (s *Service) maxPlayers() int {
	return config.MaxPlayers(DefaultMaxPlayers)
}

// MaxPlayers exposes the configured seat capacity to the transport layer.
func (s *Service) MaxPlayers() int {
	return s.maxPlayers()
}

// Join seats the player in the room, creating the room if absent. Joining
// is idempotent for an already seated identity. The first time the seat
// count lands inside the startable range with no hands dealt, a round
// starts; a late joiner during a round only observes until the next deal.
func (s *Service) Join(roomID, playerID, name string) []Event {
	if roomID == "" || playerID == "" {
		return nil
	}
	h := s.rooms.getOrCreate(roomID)
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.room

	room.AddSeat(playerID, name)
	events := []Event{roomUpdateEvent(room)}

	n := len(room.Seats)
	if n >= s.minPlayers() && n <= s.maxPlayers() {
		if !room.HandsDealt() {
			events = append(events, s.startRound(room)...)
		} else {
			events = append(events, snapshotEvent(room))
		}
	}
	return events
}

// Leave removes the player's seat, hand and score entry. An emptied room is
// destroyed. Turn and leader pointers survive removals by identity remap.
func (s *Service) Leave(roomID, playerID string) []Event {
	h := s.rooms.get(roomID)
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.room

	if !room.RemoveSeat(playerID) {
		return nil
	}
	if len(room.Seats) == 0 {
		s.rooms.remove(roomID)
		return nil
	}
	return []Event{roomUpdateEvent(room)}
}

// SelectPowerhouse sets the trump suit for the current round. Only the seat
// at the leader index may set it; any other requester is a silent no-op.
// A suit outside the four real suits (for example "none") clears it.
func (s *Service) SelectPowerhouse(roomID, playerID, suit string) []Event {
	h := s.rooms.get(roomID)
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.room

	if len(room.Seats) == 0 {
		return nil
	}
	leader := room.Seats[room.LeaderIndex%len(room.Seats)]
	if leader.ID != playerID {
		return nil
	}
	room.Powerhouse = domain.ParseSuit(suit)
	return []Event{{Kind: EventPowerhouseSet, Payload: PowerhouseSetPayload{Powerhouse: room.Powerhouse}}}
}

// PlayCard validates and applies one play. Checks run in order and
// short-circuit: seat membership (unseated is a silent no-op), turn
// ownership, hand existence, card membership, follow-suit. A failing check
// yields a private invalid_move event and leaves the room untouched.
func (s *Service) PlayCard(roomID, playerID string, card domain.Card) []Event {
	h := s.rooms.get(roomID)
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.room

	seatIdx := room.SeatIndex(playerID)
	if seatIdx < 0 {
		return nil
	}
	if seatIdx != room.TurnIndex {
		return []Event{rejectEvent(playerID, ReasonNotYourTurn)}
	}
	hand, ok := room.Hands[playerID]
	if !ok {
		return []Event{rejectEvent(playerID, ReasonNoHand)}
	}
	newHand, found := domain.RemoveCard(hand, card)
	if !found {
		return []Event{rejectEvent(playerID, ReasonCardNotInHand)}
	}
	if len(room.CurrentTrick) > 0 {
		ledSuit := room.CurrentTrick[0].Card.Suit
		if domain.HasSuit(hand, ledSuit) && card.Suit != ledSuit {
			return []Event{rejectEvent(playerID, reasonMustFollowSuit(ledSuit))}
		}
	}

	room.Hands[playerID] = newHand
	room.CurrentTrick = append(room.CurrentTrick, domain.Play{PlayerID: playerID, Card: card})

	events := []Event{{Kind: EventCardPlayed, Payload: CardPlayedPayload{
		PlayerID:   playerID,
		Card:       card,
		TrickCount: len(room.CurrentTrick),
	}}}

	room.TurnIndex = (room.TurnIndex + 1) % len(room.Seats)

	if len(room.CurrentTrick) >= len(room.Seats) {
		events = append(events, s.resolveTrick(room)...)
	} else {
		events = append(events, snapshotEvent(room))
	}
	return events
}

// resolveTrick settles a completed trick: credits the winner, hands them
// the lead, and either rolls into the next round or reports fresh state.
// Caller holds the room lock.
func (s *Service) resolveTrick(room *domain.Room) []Event {
	trick := append([]domain.Play(nil), room.CurrentTrick...)
	winnerID := domain.TrickWinner(trick, room.Powerhouse)
	points := domain.TrickPoints(trick)

	winnerIdx := room.SeatIndex(winnerID)
	if winnerIdx >= 0 {
		room.Scores[winnerID] += points
	} else {
		// The winner left mid-trick. Points are discarded and the lead
		// falls to the first still-seated player in trick order.
		for _, p := range trick {
			if idx := room.SeatIndex(p.PlayerID); idx >= 0 {
				winnerIdx = idx
				break
			}
		}
		if winnerIdx < 0 {
			winnerIdx = 0
		}
	}

	room.LastTrick = &domain.TrickResult{WinnerID: winnerID, Plays: trick, Points: points}

	events := []Event{{Kind: EventTrickComplete, Payload: TrickCompletePayload{
		WinnerID:    winnerID,
		Trick:       trick,
		TrickPoints: points,
		Scores:      room.ScoresCopy(),
	}}}

	room.CurrentTrick = nil
	room.TurnIndex = winnerIdx

	if !room.AnyCardsLeft() {
		events = append(events, Event{Kind: EventRoundOver, Payload: RoundOverPayload{Scores: room.ScoresCopy()}})
		room.LeaderIndex = (room.LeaderIndex + 1) % len(room.Seats)
		room.Hands = map[string][]domain.Card{}
		events = append(events, s.startRound(room)...)
	} else {
		events = append(events, snapshotEvent(room))
	}
	return events
}

// startRound deals a fresh round: build, reduce, shuffle, deal contiguous
// equal slices in seat order, reset per-round state, and deliver hands
// privately. Caller holds the room lock.
func (s *Service) startRound(room *domain.Room) []Event {
	n := len(room.Seats)
	if n < s.minPlayers() {
		return []Event{infoEvent(fmt.Sprintf("Need at least %d players to start", s.minPlayers()))}
	}
	if n > s.maxPlayers() {
		return []Event{infoEvent(fmt.Sprintf("Max %d players allowed", s.maxPlayers()))}
	}

	deck := domain.ReduceToDivisible(domain.NewDeck(), n)
	deck = s.shuffle(deck)
	perPlayer := len(deck) / n

	room.Hands = make(map[string][]domain.Card, n)
	for i, seat := range room.Seats {
		room.Hands[seat.ID] = append([]domain.Card(nil), deck[i*perPlayer:(i+1)*perPlayer]...)
	}

	room.LeaderIndex = room.LeaderIndex % n
	room.TurnIndex = room.LeaderIndex
	room.CurrentTrick = nil
	room.Powerhouse = domain.SuitNone

	leader := room.Seats[room.LeaderIndex]
	events := []Event{{Kind: EventRoundStarted, Payload: RoundStartedPayload{
		HandsCount: room.HandsCount(),
		LeaderID:   leader.ID,
	}}}
	for _, seat := range room.Seats {
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				Hand:       append([]domain.Card(nil), room.Hands[seat.ID]...),
				YourID:     seat.ID,
				Powerhouse: room.Powerhouse,
			},
			Recipients: []string{seat.ID},
		})
	}
	events = append(events, snapshotEvent(room))
	return events
}

func (s *Service) shuffle(deck []domain.Card) []domain.Card {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return domain.ShuffleDeck(s.rng, deck)
}

// SeatCount reports how many seats the room currently has; zero for an
// unknown room.
func (s *Service) SeatCount(roomID string) int {
	h := s.rooms.get(roomID)
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.room.Seats)
}

// IsSeated reports whether the identity occupies a seat in the room.
func (s *Service) IsSeated(roomID, playerID string) bool {
	h := s.rooms.get(roomID)
	if h == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.room.SeatIndex(playerID) >= 0
}

// RoundActive reports whether the room currently has hands dealt.
func (s *Service) RoundActive(roomID string) bool {
	h := s.rooms.get(roomID)
	if h == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.room.HandsDealt()
}

// DropRoom removes a room regardless of occupancy. Used when the hosting
// match is terminated by the runtime.
func (s *Service) DropRoom(roomID string) {
	s.rooms.remove(roomID)
}

func roomUpdateEvent(room *domain.Room) Event {
	return Event{Kind: EventRoomUpdate, Payload: RoomUpdatePayload{
		Players: room.SeatsCopy(),
		Scores:  room.ScoresCopy(),
	}}
}

func snapshotEvent(room *domain.Room) Event {
	return Event{Kind: EventGameState, Payload: room.Snapshot()}
}

func rejectEvent(playerID, reason string) Event {
	return Event{
		Kind:       EventInvalidMove,
		Payload:    InvalidMovePayload{Reason: reason},
		Recipients: []string{playerID},
	}
}

func infoEvent(message string) Event {
	return Event{Kind: EventInfo, Payload: InfoPayload{Message: message}}
}
