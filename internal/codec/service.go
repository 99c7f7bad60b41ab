package codec

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// #region names
const (
	// ServiceName is the fully-qualified gRPC service name.
	ServiceName = "therapy.v1.CompletionService"
	// CompleteFullMethodName is the RPC path for Complete.
	CompleteFullMethodName = "/" + ServiceName + "/Complete"
)

// #endregion names

// #region client-stub
// CompletionServiceClient is the client API for the completion service.
// Requests travel as a Struct (system_prompt, prompt, temperature, max_tokens);
// the reply is the completion text.
type CompletionServiceClient interface {
	Complete(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type completionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCompletionServiceClient binds the client API to a connection.
func NewCompletionServiceClient(cc grpc.ClientConnInterface) CompletionServiceClient {
	return &completionServiceClient{cc: cc}
}

func (c *completionServiceClient) Complete(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, CompleteFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// #endregion client-stub

// #region server-stub
// CompletionServiceServer is the server API for the completion service.
type CompletionServiceServer interface {
	Complete(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error)
}

// RegisterCompletionServiceServer attaches srv to a gRPC server.
func RegisterCompletionServiceServer(s grpc.ServiceRegistrar, srv CompletionServiceServer) {
	s.RegisterService(&completionServiceDesc, srv)
}

func completeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CompletionServiceServer).Complete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CompleteFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CompletionServiceServer).Complete(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var completionServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CompletionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Complete",
			Handler:    completeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "therapy/v1/completion.proto",
}

// #endregion server-stub
