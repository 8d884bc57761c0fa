// Package server provides the service-side wrapper that admits
// signed queries before they reach a QueryService.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/signer"
	"github.com/blockberries/querykit/types"
)

// Compile-time interface check.
var _ querykit.QueryService = (*Server)(nil)

// Server wraps a QueryService with admission checks. A query reaches
// the service only if its payload is complete, its signature
// verifies under one of the creator's keys, and its counter is fresh
// for its creator.
type Server struct {
	svc    querykit.QueryService
	guard  *CounterGuard
	verify func(types.Query) error
	keys   querykit.KeyResolver
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used to report rejected queries.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithVerifier replaces signer.Verify as the signature check.
func WithVerifier(verify func(types.Query) error) Option {
	return func(s *Server) { s.verify = verify }
}

// WithKeyResolver sets where the server looks up a creator's keys.
// Without it, a service that implements querykit.KeyResolver is used.
func WithKeyResolver(r querykit.KeyResolver) Option {
	return func(s *Server) { s.keys = r }
}

// WithCounterGuard shares a counter guard between servers.
func WithCounterGuard(g *CounterGuard) Option {
	return func(s *Server) { s.guard = g }
}

// New creates a Server in front of svc.
//
// With no key resolver configured and none offered by svc, signing
// keys are not bound to creators: any valid signature is admitted
// and advances the claimed creator's counter.
func New(svc querykit.QueryService, opts ...Option) *Server {
	s := &Server{
		svc:    svc,
		guard:  NewCounterGuard(),
		verify: signer.Verify,
		logger: slog.Default(),
	}
	if r, ok := svc.(querykit.KeyResolver); ok {
		s.keys = r
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "querykit/server")
	if s.keys == nil {
		s.logger.Warn("no key resolver, signing keys are not bound to creators")
	}
	return s
}

// Find admits q and forwards it to the wrapped service.
// Rejections are reported in the response code with a nil error.
func (s *Server) Find(ctx context.Context, q types.Query) (types.QueryResponse, error) {
	hash, err := types.HashPayload(q.Payload)
	if err != nil {
		return types.QueryResponse{}, fmt.Errorf("querykit server: %w", err)
	}

	if have := q.Payload.Fields(); !have.Complete() {
		return s.reject(hash, q, types.CodeStatelessInvalid, querykit.NewIncompleteError(have)), nil
	}
	if err := s.verify(q); err != nil {
		return s.reject(hash, q, types.CodeStatelessInvalid, err), nil
	}
	if err := s.authorize(ctx, q); err != nil {
		if !errors.Is(err, querykit.ErrInvalidSignature) {
			return types.QueryResponse{}, err
		}
		return s.reject(hash, q, types.CodeStatefulInvalid, err), nil
	}
	if err := s.guard.Admit(q.Payload.CreatorAccountID, q.Payload.QueryCounter); err != nil {
		return s.reject(hash, q, types.CodeStatefulInvalid, err), nil
	}

	resp, err := s.svc.Find(ctx, q)
	if err != nil {
		if errors.Is(err, querykit.ErrUnsupportedQuery) {
			return s.reject(hash, q, types.CodeNotSupported, err), nil
		}
		return types.QueryResponse{}, err
	}
	resp.QueryHash = hash
	return resp, nil
}

// authorize checks that the signing key belongs to the creator.
// It runs before the counter guard so a stranger cannot advance
// another account's counter.
func (s *Server) authorize(ctx context.Context, q types.Query) error {
	if s.keys == nil {
		return nil
	}
	creator := q.Payload.CreatorAccountID
	if q.Signature == nil {
		return fmt.Errorf("%w: no key to check against %s", querykit.ErrInvalidSignature, creator)
	}
	keys, err := s.keys.Signatories(ctx, creator)
	if err != nil {
		return fmt.Errorf("querykit server: resolve keys for %s: %w", creator, err)
	}
	for _, k := range keys {
		if bytes.Equal(k, q.Signature.PublicKey) {
			return nil
		}
	}
	return fmt.Errorf("%w: key is not a signatory of %s", querykit.ErrInvalidSignature, creator)
}

// Guard returns the counter guard for inspection.
func (s *Server) Guard() *CounterGuard {
	return s.guard
}

func (s *Server) reject(hash types.Hash, q types.Query, code types.ResponseCode, err error) types.QueryResponse {
	s.logger.Warn("query rejected",
		"creator", string(q.Payload.CreatorAccountID),
		"kind", q.Payload.Query.Kind().String(),
		"counter", q.Payload.QueryCounter,
		"code", uint32(code),
		"error", err,
	)
	return types.QueryResponse{
		Code:      code,
		QueryHash: hash,
		Info:      err.Error(),
	}
}
