// Package gateway forwards chat, translation and email drafting requests
// to the model backend and turns every outcome into a Result.
package gateway

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/factorymaster/mission-control/backend/llm"
)

type Request struct {
	Operation Operation
	Payload   string
}

// Result is either Text or Err, never both.
type Result struct {
	Text string
	Err  *Error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Gateway is stateless apart from its configuration and safe for
// concurrent use.
type Gateway struct {
	client     llm.Client
	configured bool
	logger     *log.Logger
}

// New builds a gateway. configured reports whether an API credential is
// present; without one every request fails with BackendUnconfigured.
func New(client llm.Client, configured bool, logger *log.Logger) *Gateway {
	return &Gateway{client: client, configured: configured, logger: logger}
}

func (g *Gateway) Configured() bool {
	return g.configured && g.client != nil
}

// Invoke runs one request. Errors are returned inside the Result; Invoke
// never panics, even if the client does.
func (g *Gateway) Invoke(ctx context.Context, req Request) Result {
	if !req.Operation.Valid() {
		return failure(InvalidRequest, fmt.Sprintf("unknown operation %s", req.Operation), nil)
	}
	if strings.TrimSpace(req.Payload) == "" {
		return failure(InvalidRequest, fmt.Sprintf("%s is required", req.Operation.RequestField()), nil)
	}

	if !g.Configured() {
		return failure(BackendUnconfigured, MessageUnconfigured, nil)
	}

	v := variants[req.Operation]
	resp, err := g.dispatch(ctx, llm.GenerateRequest{
		Operation:         v.name,
		SystemInstruction: v.systemInstruction,
		Prompt:            v.prompt(req.Payload),
	})
	if err != nil {
		g.logger.Printf("gateway: %s failed: %v", v.name, err)
		return failure(UpstreamError, v.failureMessage, err)
	}
	if resp == nil || resp.Text == "" {
		g.logger.Printf("gateway: %s returned empty text", v.name)
		return failure(UpstreamError, v.emptyFallback, nil)
	}

	return Result{Text: resp.Text}
}

func (g *Gateway) dispatch(ctx context.Context, req llm.GenerateRequest) (resp *llm.GenerateResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = fmt.Errorf("model client panic: %v", r)
		}
	}()
	return g.client.Generate(ctx, req)
}

func failure(kind ErrorKind, message string, cause error) Result {
	return Result{Err: &Error{Kind: kind, Message: message, Cause: cause}}
}
