package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"kalitiri/internal/app"
	"kalitiri/internal/config"
	"kalitiri/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Label is the match label advertised for room lookup queries.
type Label struct {
	RoomID string `json:"room_id"`
	Open   bool   `json:"open"`
	Game   string `json:"game"`
	Phase  string `json:"phase"`
}

// MatchState holds the per-match runtime state. The room itself lives in
// the app-layer registry; the match only tracks which room it hosts and the
// connected presences for targeted messaging.
type MatchState struct {
	RoomID    string
	Presences map[string]runtime.Presence
}

type matchHandler struct {
	svc *app.Service
}

func newMatchHandler(svc *app.Service) *matchHandler {
	return &matchHandler{svc: svc}
}

// selectPowerhouseRequest is the OpSelectPowerhouse payload.
type selectPowerhouseRequest struct {
	Suit string `json:"suit"`
}

// playCardRequest is the OpPlayCard payload.
type playCardRequest struct {
	Card domain.Card `json:"card"`
}

// MatchInit boots one match per room. The room id arrives via the creation
// params set by the join_room RPC.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	roomID, _ := params["room_id"].(string)
	if roomID == "" {
		// Matches created outside the RPC fall back to their match id.
		roomID, _ = ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
	}

	state := &MatchState{
		RoomID:    roomID,
		Presences: make(map[string]runtime.Presence),
	}

	tickRate := 10
	return state, tickRate, mh.buildLabel(state)
}

// MatchJoinAttempt admits rejoining identities always and new identities
// while seats remain.
func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	if mh.svc.IsSeated(matchState.RoomID, presence.GetUserId()) {
		return state, true, ""
	}
	if mh.svc.SeatCount(matchState.RoomID) >= mh.svc.MaxPlayers() {
		return state, false, "room full"
	}
	return state, true, ""
}

// MatchJoin seats joining presences and dispatches the resulting events,
// which may include a round start.
func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p
		events := mh.svc.Join(matchState.RoomID, p.GetUserId(), p.GetUsername())
		mh.dispatchEvents(matchState, dispatcher, logger, events)
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

// MatchLeave unseats leaving presences. When the last seat empties, the
// room is destroyed and the match terminates.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		events := mh.svc.Leave(matchState.RoomID, p.GetUserId())
		mh.dispatchEvents(matchState, dispatcher, logger, events)
	}

	if mh.svc.SeatCount(matchState.RoomID) == 0 {
		logger.Debug("MatchLeave: Room %s is empty, terminating match.", matchState.RoomID)
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

// MatchLoop processes in-match client messages.
func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpSelectPowerhouse:
			mh.handleSelectPowerhouse(matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	return matchState
}

func (mh *matchHandler) handleSelectPowerhouse(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	var req selectPowerhouseRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Warn("handleSelectPowerhouse: Invalid payload from %s: %v", msg.GetUserId(), err)
		return
	}

	events := mh.svc.SelectPowerhouse(state.RoomID, msg.GetUserId(), req.Suit)
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePlayCard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	var req playCardRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Warn("handlePlayCard: Invalid payload from %s: %v", msg.GetUserId(), err)
		return
	}

	events := mh.svc.PlayCard(state.RoomID, msg.GetUserId(), req.Card)
	mh.dispatchEvents(state, dispatcher, logger, events)
}

// dispatchEvents converts app events into dispatcher broadcasts. Events
// with recipients go only to those presences; if none of the intended
// recipients are connected the event is not delivered to anyone else.
func (mh *matchHandler) dispatchEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		opCode, ok := opCodeFor(ev.Kind)
		if !ok {
			logger.Warn("dispatchEvents: Unknown event kind: %s", ev.Kind)
			continue
		}

		data, err := json.Marshal(ev.Payload)
		if err != nil {
			logger.Error("dispatchEvents: Failed to marshal %s: %v", ev.Kind, err)
			continue
		}

		var recipients []runtime.Presence
		if len(ev.Recipients) > 0 {
			for _, uid := range ev.Recipients {
				if p, ok := state.Presences[uid]; ok {
					recipients = append(recipients, p)
				}
			}
			if len(recipients) == 0 {
				continue
			}
		}

		if err := dispatcher.BroadcastMessage(opCode, data, recipients, nil, true); err != nil {
			logger.Error("dispatchEvents: Broadcast %s failed: %v", ev.Kind, err)
		}
	}
}

func opCodeFor(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventRoomUpdate:
		return OpRoomUpdate, true
	case app.EventRoundStarted:
		return OpRoundStarted, true
	case app.EventHandDealt:
		return OpHandDealt, true
	case app.EventPowerhouseSet:
		return OpPowerhouseSet, true
	case app.EventCardPlayed:
		return OpCardPlayed, true
	case app.EventTrickComplete:
		return OpTrickComplete, true
	case app.EventRoundOver:
		return OpRoundOver, true
	case app.EventGameState:
		return OpGameState, true
	case app.EventInvalidMove:
		return OpInvalidMove, true
	case app.EventInfo:
		return OpInfo, true
	default:
		return 0, false
	}
}

func (mh *matchHandler) buildLabel(state *MatchState) string {
	phase := "lobby"
	if mh.svc.RoundActive(state.RoomID) {
		phase = "playing"
	}
	label := Label{
		RoomID: state.RoomID,
		Open:   mh.svc.SeatCount(state.RoomID) < mh.svc.MaxPlayers(),
		Game:   "kalitiri",
		Phase:  phase,
	}
	b, _ := json.Marshal(label)
	return string(b)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if err := dispatcher.MatchLabelUpdate(mh.buildLabel(state)); err != nil {
		logger.Error("updateLabel: Failed to update: %v", err)
	}
}

// MatchTerminate drops the hosted room so a future join_room recreates it
// cleanly.
func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	if matchState, ok := state.(*MatchState); ok {
		mh.svc.DropRoom(matchState.RoomID)
	}
	return state
}

// MatchSignal handles out-of-band signals; unused.
func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
