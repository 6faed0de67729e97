package nakama

const (
	// RpcJoinRoom is the Nakama RPC id clients call to resolve a room id to
	// a joinable match, creating the match when the room does not exist yet.
	RpcJoinRoom = "join_room"

	// MatchNameKaliTiri is the authoritative match handler name registered
	// with Nakama.
	MatchNameKaliTiri = "kalitiri_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpSelectPowerhouse int64 = 1
	OpPlayCard         int64 = 2

	// Server -> Client events
	OpRoomUpdate    int64 = 101
	OpRoundStarted  int64 = 102
	OpHandDealt     int64 = 103 // send privately
	OpPowerhouseSet int64 = 104
	OpCardPlayed    int64 = 105
	OpTrickComplete int64 = 106
	OpRoundOver     int64 = 107
	OpGameState     int64 = 108
	OpInvalidMove   int64 = 109 // send privately
	OpInfo          int64 = 110
)
