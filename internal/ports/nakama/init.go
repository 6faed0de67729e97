package nakama

import (
	"context"
	"database/sql"

	"kalitiri/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires the RPC and match handler for the Nakama runtime. The
// room registry and service are constructed once here and injected into
// every match instance.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	svc := app.NewService(app.NewRegistry(), nil)

	if err := initializer.RegisterRpc(RpcJoinRoom, rpcJoinRoom); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameKaliTiri, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return newMatchHandler(svc), nil
	}); err != nil {
		return err
	}

	logger.Info("KaliTiri Go module loaded.")
	return nil
}
