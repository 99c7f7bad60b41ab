package codec

import (
	"context"
	"errors"
	"time"

	"github.com/danielpatrickdp/therapy-assistant/internal/llm"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// #region server
// CompletionServer exposes an llm.Completer over gRPC.
type CompletionServer struct {
	completer llm.Completer
	log       *logrus.Entry
}

var _ CompletionServiceServer = (*CompletionServer)(nil)

// NewCompletionServer wraps completer. A nil log uses the standard logger.
func NewCompletionServer(completer llm.Completer, log *logrus.Entry) *CompletionServer {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &CompletionServer{completer: completer, log: log.WithField("component", "bridge")}
}

// Complete decodes the request, runs the completer and maps failures to status codes.
func (s *CompletionServer) Complete(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	req := decodeRequest(in)
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	start := time.Now()
	text, err := s.completer.Complete(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"elapsed_ms": elapsed.Milliseconds(),
			"error":      err.Error(),
		}).Warn("completion failed")
		return nil, statusFor(err)
	}

	s.log.WithFields(logrus.Fields{
		"elapsed_ms": elapsed.Milliseconds(),
		"chars":      len(text),
	}).Debug("completion served")
	return wrapperspb.String(text), nil
}

func statusFor(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, llm.ErrNotConfigured):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Unavailable, err.Error())
	}
}

// #endregion server
