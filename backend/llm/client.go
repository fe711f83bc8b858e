package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GenerateRequest holds the parameters for one model call.
type GenerateRequest struct {
	Operation         string // used for logging only
	SystemInstruction string // optional
	Prompt            string
}

// GenerateResponse holds the result of a model call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to a generative model.
type Client interface {
	// Generate sends a prompt and returns the model's text verbatim.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type Config struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
}

// geminiClient implements Client with the Gemini generateContent REST API.
type geminiClient struct {
	cfg      Config
	observer Observer
}

func NewGeminiClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	return &geminiClient{cfg: cfg, observer: observer}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

// geminiRequest is the JSON body sent to models/{model}:generateContent.
type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	ModelVersion string `json:"modelVersion"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	resp, err := c.generate(ctx, req)
	latency := time.Since(start).Milliseconds()

	event := LLMCallEvent{
		Operation: req.Operation,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   err == nil,
		ErrorCode: errorCode(err),
	}
	c.observer.OnCallComplete(event)

	if err != nil {
		return nil, err
	}
	resp.LatencyMs = latency
	return resp, nil
}

func (c *geminiClient) generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamTransport, err)
	}

	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}}},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemInstruction}}}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.Endpoint, c.cfg.Model)
	agent := fiber.Post(url).
		Set("x-goog-api-key", c.cfg.APIKey).
		JSON(body)
	if c.cfg.Timeout > 0 {
		agent = agent.Timeout(c.cfg.Timeout)
	}

	status, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamTransport, errors.Join(errs...))
	}

	if status != fiber.StatusOK {
		var apiErr geminiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%w: %d %s: %s", ErrUpstreamStatus, status, apiErr.Error.Status, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%w: %d: %s", ErrUpstreamStatus, status, string(respBody))
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamDecode, err)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamBlocked, resp.PromptFeedback.BlockReason)
	}

	model := resp.ModelVersion
	if model == "" {
		model = c.cfg.Model
	}
	return &GenerateResponse{Text: resp.text(), Model: model}, nil
}

// text concatenates the parts of the first candidate, like the SDK's
// response.text() helper. No candidates means an empty answer.
func (r geminiResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUpstreamTransport):
		return "TRANSPORT"
	case errors.Is(err, ErrUpstreamStatus):
		return "STATUS"
	case errors.Is(err, ErrUpstreamDecode):
		return "DECODE"
	case errors.Is(err, ErrUpstreamBlocked):
		return "BLOCKED"
	default:
		return "UNKNOWN"
	}
}
