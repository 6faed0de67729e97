package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
)

// JoinRoomRequest is the join_room RPC payload.
type JoinRoomRequest struct {
	RoomID string `json:"room_id"`
}

// JoinRoomResponse tells the client which match hosts the requested room.
type JoinRoomResponse struct {
	MatchID string `json:"match_id"`
	RoomID  string `json:"room_id"`
	IsNew   bool   `json:"is_new"`
}

var errMissingRoomID = errors.New("room_id is required")

func rpcJoinRoom(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req JoinRoomRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		logger.Warn("rpcJoinRoom: Invalid payload: %v", err)
		return "", err
	}
	if req.RoomID == "" {
		return "", errMissingRoomID
	}

	// Find the match already hosting this room.
	query := fmt.Sprintf("+label.room_id:%s +label.game:kalitiri", req.RoomID)
	limit := 1
	authoritative := true
	minSize := 0
	maxSize := 8

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("rpcJoinRoom: MatchList error: %v", err)
		return "", err
	}

	if len(matches) > 0 {
		resp := JoinRoomResponse{MatchID: matches[0].MatchId, RoomID: req.RoomID, IsNew: false}
		b, _ := json.Marshal(resp)
		return string(b), nil
	}

	// No match yet for this room id; create one. Seat assignment happens in
	// MatchJoin (server-authoritative).
	matchID, err := nk.MatchCreate(ctx, MatchNameKaliTiri, map[string]interface{}{"room_id": req.RoomID})
	if err != nil {
		logger.Error("rpcJoinRoom: MatchCreate error: %v", err)
		return "", err
	}

	resp := JoinRoomResponse{MatchID: matchID, RoomID: req.RoomID, IsNew: true}
	b, _ := json.Marshal(resp)
	return string(b), nil
}
