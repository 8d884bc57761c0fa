package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blockberries/querykit/example/ledger"
	querygrpc "github.com/blockberries/querykit/grpc"
	"github.com/blockberries/querykit/server"
	"github.com/blockberries/querykit/types"
)

func newServeCmd() *cobra.Command {
	var signatories []string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo ledger over gRPC on $QUERYKIT_ENDPOINT",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err := cfg.Logger(os.Stderr)
			if err != nil {
				return err
			}
			l := ledger.Demo()
			if err := enroll(l, signatories); err != nil {
				return err
			}

			lis, err := net.Listen("tcp", cfg.Endpoint)
			if err != nil {
				return fmt.Errorf("listen %s: %w", cfg.Endpoint, err)
			}

			qs := querygrpc.NewGRPCServer(l, server.WithLogger(logger))

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("serving demo ledger", "endpoint", lis.Addr().String())
			if err := qs.Serve(ctx, lis); err != nil {
				return err
			}
			logger.Info("stopped")
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&signatories, "signatory", nil,
		"account=hexkey, add a signing key to a demo account (repeatable)")
	return cmd
}

// enroll parses account=hexkey pairs and adds each key to l.
func enroll(l *ledger.Ledger, pairs []string) error {
	for _, p := range pairs {
		account, hexKey, ok := strings.Cut(p, "=")
		if !ok || account == "" {
			return fmt.Errorf("--signatory %q: want account=hexkey", p)
		}
		key, err := hex.DecodeString(hexKey)
		if err != nil {
			return fmt.Errorf("--signatory %q: %w", p, err)
		}
		if err := l.AddSignatory(types.AccountID(account), key); err != nil {
			return err
		}
	}
	return nil
}
