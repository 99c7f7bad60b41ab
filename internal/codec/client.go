package codec

import (
	"context"
	"fmt"

	"github.com/danielpatrickdp/therapy-assistant/internal/llm"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// #region client-struct
// CodecClient wraps the gRPC connection to the completion bridge.
// It satisfies llm.Completer.
type CodecClient struct {
	conn   *grpc.ClientConn
	client CompletionServiceClient
}

var _ llm.Completer = (*CodecClient)(nil)

// #endregion client-struct

// #region constructor
// NewCodecClient connects to the completion bridge at addr.
func NewCodecClient(addr string) (*CodecClient, error) {
	if addr == "" {
		return nil, fmt.Errorf("grpc dial: %w: empty address", llm.ErrNotConfigured)
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return NewCodecClientWithConn(conn), nil
}

// NewCodecClientWithConn wraps an existing connection. Close closes it.
func NewCodecClientWithConn(conn *grpc.ClientConn) *CodecClient {
	return &CodecClient{
		conn:   conn,
		client: NewCompletionServiceClient(conn),
	}
}

// NewCodecClientWithService creates a CodecClient with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewCodecClientWithService(svc CompletionServiceClient) *CodecClient {
	return &CodecClient{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *CodecClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region complete
// Complete forwards a completion request to the bridge.
func (c *CodecClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	in, err := encodeRequest(req)
	if err != nil {
		return "", err
	}
	resp, err := c.client.Complete(ctx, in)
	if err != nil {
		return "", fmt.Errorf("complete rpc: %w", errorFor(err))
	}
	return resp.GetValue(), nil
}

// errorFor is the inverse of statusFor: it restores the sentinels callers
// check with errors.Is, keeping the status message for context.
func errorFor(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", llm.ErrNotConfigured, st.Message())
	case codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", context.DeadlineExceeded, st.Message())
	case codes.Canceled:
		return fmt.Errorf("%w: %s", context.Canceled, st.Message())
	default:
		return err
	}
}

// #endregion complete
