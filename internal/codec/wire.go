package codec

import (
	"fmt"

	"github.com/danielpatrickdp/therapy-assistant/internal/llm"
	"google.golang.org/protobuf/types/known/structpb"
)

// #region fields
const (
	fieldSystemPrompt = "system_prompt"
	fieldPrompt       = "prompt"
	fieldTemperature  = "temperature"
	fieldMaxTokens    = "max_tokens"
)

// #endregion fields

// #region encode
func encodeRequest(req llm.Request) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(map[string]any{
		fieldSystemPrompt: req.SystemPrompt,
		fieldPrompt:       req.Prompt,
		fieldTemperature:  float64(req.Temperature),
		fieldMaxTokens:    float64(req.MaxTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return s, nil
}

// #endregion encode

// #region decode
func decodeRequest(s *structpb.Struct) llm.Request {
	f := s.GetFields()
	return llm.Request{
		SystemPrompt: f[fieldSystemPrompt].GetStringValue(),
		Prompt:       f[fieldPrompt].GetStringValue(),
		Temperature:  float32(f[fieldTemperature].GetNumberValue()),
		MaxTokens:    int32(f[fieldMaxTokens].GetNumberValue()),
	}
}

// #endregion decode
