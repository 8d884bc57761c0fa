package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/example/ledger"
	querygrpc "github.com/blockberries/querykit/grpc"
	"github.com/blockberries/querykit/internal/config"
	"github.com/blockberries/querykit/local"
	"github.com/blockberries/querykit/server"
	"github.com/blockberries/querykit/types"
)

func newFindCmd() *cobra.Command {
	var (
		f      queryFlags
		inProc bool
	)
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Sign a query and send it to a query service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err := cfg.Logger(os.Stderr)
			if err != nil {
				return err
			}
			key, err := cfg.Signer()
			if err != nil {
				return err
			}
			d, err := f.draft(cmd, cfg, time.Now())
			if err != nil {
				return err
			}
			u, err := d.Build()
			if err != nil {
				return err
			}
			q, err := u.Sign(key)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			conn, err := connect(ctx, cfg, inProc, u.CreatorAccountID(), key.PublicKey(), logger)
			if err != nil {
				return err
			}
			defer conn.Close()

			logger.Debug("sending query", "endpoint", cfg.Endpoint, "kind", u.Kind().String(), "counter", u.QueryCounter())
			resp, err := conn.Find(ctx, q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "code: %d\n", resp.Code)
			if resp.Info != "" {
				fmt.Fprintf(out, "info: %s\n", resp.Info)
			}
			if resp.OK() {
				v, err := decodeResult(u.Kind(), resp)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "result: %+v\n", v)
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&inProc, "local", false, "query the built-in demo ledger in-process")
	return cmd
}

// connect opens the demo ledger in-process, with key enrolled as a
// signatory of creator, or dials cfg.Endpoint.
func connect(
	ctx context.Context,
	cfg config.Config,
	inProc bool,
	creator types.AccountID,
	key types.PublicKey,
	logger *slog.Logger,
) (querykit.Connection, error) {
	if inProc {
		l := ledger.Demo()
		if err := l.AddSignatory(creator, key); err != nil {
			logger.Debug("signer not enrolled", "creator", string(creator), "error", err)
		}
		return local.NewConnection(l, server.WithLogger(logger)), nil
	}
	dialCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	return querygrpc.Dial(dialCtx, cfg.Endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
}
