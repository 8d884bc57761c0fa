// Package local provides a zero-copy, in-process query connection.
//
// For services compiled into the same binary as the caller, this
// adapter runs the server's admission checks (completeness,
// signature, signatory, counter) with no serialization overhead.
package local

import (
	"context"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/server"
	"github.com/blockberries/querykit/types"
)

// Compile-time interface check.
var _ querykit.Connection = (*Connection)(nil)

// Connection wraps a local QueryService with admission checks.
type Connection struct {
	srv *server.Server
}

// NewConnection creates an in-process connection to svc.
func NewConnection(svc querykit.QueryService, opts ...server.Option) *Connection {
	return &Connection{srv: server.New(svc, opts...)}
}

func (c *Connection) Find(ctx context.Context, q types.Query) (types.QueryResponse, error) {
	return c.srv.Find(ctx, q)
}

func (c *Connection) Close() error { return nil }

// Server returns the underlying server for advanced use cases.
func (c *Connection) Server() *server.Server {
	return c.srv
}
