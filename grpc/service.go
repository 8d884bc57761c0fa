package querygrpc

import (
	"context"
	"fmt"

	"github.com/blockberries/querykit/types"

	"google.golang.org/grpc"
)

const serviceName = "querykit.v1.QueryService"

// QueryServiceServer is the server-side interface for the gRPC query service.
type QueryServiceServer interface {
	Find(context.Context, *types.Query) (*types.QueryResponse, error)
}

// RegisterQueryServiceServer registers the QueryServiceServer on a gRPC server.
func RegisterQueryServiceServer(s *grpc.Server, srv QueryServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

func handlerFind(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(types.Query)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).Find(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod("Find")}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(QueryServiceServer).Find(ctx, req.(*types.Query))
	}
	return interceptor(ctx, req, info, handler)
}

func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor for the query service.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*QueryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Find", Handler: handlerFind},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "querykit/v1/service.cram",
}
