package codec

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/danielpatrickdp/therapy-assistant/internal/llm"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// #region harness
func startBridge(t *testing.T, completer llm.Completer) *CodecClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	RegisterCompletionServiceServer(srv, NewCompletionServer(completer, nil))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufnet: %v", err)
	}
	client := NewCodecClientWithConn(conn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// #endregion harness

// #region roundtrip-tests
func TestBridge_RoundTrip(t *testing.T) {
	var seen llm.Request
	client := startBridge(t, llm.CompleterFunc(func(_ context.Context, req llm.Request) (string, error) {
		seen = req
		return "That sounds hard.", nil
	}))

	out, err := client.Complete(context.Background(), llm.Request{
		SystemPrompt: "sys",
		Prompt:       "User: I feel low",
		Temperature:  0.3,
		MaxTokens:    200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "That sounds hard." {
		t.Errorf("unexpected reply %q", out)
	}
	if seen.Prompt != "User: I feel low" || seen.MaxTokens != 200 {
		t.Errorf("server saw %+v", seen)
	}
}

func TestBridge_InvalidArgument(t *testing.T) {
	called := false
	client := startBridge(t, llm.CompleterFunc(func(context.Context, llm.Request) (string, error) {
		called = true
		return "", nil
	}))

	_, err := client.Complete(context.Background(), llm.Request{})
	if status.Code(errors.Unwrap(err)) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if called {
		t.Error("completer should not run for an empty prompt")
	}
}

func TestBridge_UpstreamFailure(t *testing.T) {
	client := startBridge(t, llm.CompleterFunc(func(context.Context, llm.Request) (string, error) {
		return "", errors.New("quota exceeded")
	}))

	_, err := client.Complete(context.Background(), llm.Request{Prompt: "x"})
	if status.Code(errors.Unwrap(err)) != codes.Unavailable {
		t.Fatalf("expected Unavailable, got %v", err)
	}
}

func TestBridge_NotConfiguredIsNotRetried(t *testing.T) {
	calls := 0
	client := startBridge(t, llm.CompleterFunc(func(context.Context, llm.Request) (string, error) {
		calls++
		return "", llm.ErrNotConfigured
	}))

	retrying := llm.NewRetrying(client, 3, time.Millisecond, nil)
	_, err := retrying.Complete(context.Background(), llm.Request{Prompt: "x"})
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured across the wire, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected a single upstream call, got %d", calls)
	}
}

// #endregion roundtrip-tests

// #region status-tests
func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{context.Canceled, codes.Canceled},
		{llm.ErrNotConfigured, codes.FailedPrecondition},
		{errors.New("other"), codes.Unavailable},
	}
	for _, tt := range tests {
		if got := status.Code(statusFor(tt.err)); got != tt.want {
			t.Errorf("statusFor(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

// #endregion status-tests

// #region error-tests
func TestErrorFor(t *testing.T) {
	tests := []struct {
		code codes.Code
		want error
	}{
		{codes.FailedPrecondition, llm.ErrNotConfigured},
		{codes.DeadlineExceeded, context.DeadlineExceeded},
		{codes.Canceled, context.Canceled},
	}
	for _, tt := range tests {
		if got := errorFor(status.Error(tt.code, "bridge says no")); !errors.Is(got, tt.want) {
			t.Errorf("errorFor(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}

	unavailable := status.Error(codes.Unavailable, "down")
	if got := errorFor(unavailable); status.Code(got) != codes.Unavailable {
		t.Errorf("Unavailable should pass through, got %v", got)
	}
	plain := errors.New("not a status")
	if got := errorFor(plain); got != plain {
		t.Errorf("non-status error should pass through, got %v", got)
	}
}

// #endregion error-tests
