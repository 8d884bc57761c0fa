package querygrpc

import (
	"context"
	"fmt"

	"github.com/blockberries/querykit"
	"github.com/blockberries/querykit/types"

	"google.golang.org/grpc"
)

// Compile-time interface check.
var _ querykit.Connection = (*Client)(nil)

// Client implements querykit.Connection for remote services
// over gRPC using cramberry serialization.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote query service.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("querykit client: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

func (c *Client) Find(ctx context.Context, q types.Query) (types.QueryResponse, error) {
	resp := new(types.QueryResponse)
	if err := c.cc.Invoke(ctx, fullMethod("Find"), &q, resp); err != nil {
		return types.QueryResponse{}, err
	}
	return *resp, nil
}
