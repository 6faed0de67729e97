package app

// Seat count bounds for starting a round. Deployments can override them via
// the game config file; these are the KaliTiri defaults.
const (
	DefaultMinPlayersToStart = 4
	DefaultMaxPlayers        = 8
)
