package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task   TaskType
	Prompt string
	Schema *genai.Schema // nil leaves the response shape unconstrained
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// geminiClient implements LLMClient using the Gemini API.
type geminiClient struct {
	cfg      LLMConfig
	models   *genai.Models
	initErr  error
	observer Observer
}

// NewGeminiClient builds the process-wide client once from cfg. Construction
// never fails: a client the SDK refuses to build reports the cause on every
// Generate call instead.
func NewGeminiClient(ctx context.Context, cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	c := &geminiClient{cfg: cfg, observer: observer}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	switch {
	case err != nil && cfg.APIKey == "":
		c.initErr = fmt.Errorf("%w: %v", ErrMissingCredential, err)
	case err != nil:
		c.initErr = fmt.Errorf("%w: creating client: %v", ErrUnavailable, err)
	default:
		c.models = client.Models
	}
	return c
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	if c.initErr != nil {
		c.report(req.Task, start, c.initErr)
		return nil, c.initErr
	}

	if timeoutMs := c.cfg.TaskTimeout(req.Task); timeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
		defer cancel()
	}

	resp, err := c.models.GenerateContent(ctx, c.cfg.Model, genai.Text(req.Prompt), c.contentConfig(req))
	if err != nil {
		err = classify(ctx, err)
		c.report(req.Task, start, err)
		return nil, err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		c.report(req.Task, start, ErrEmptyResponse)
		return nil, ErrEmptyResponse
	}

	model := resp.ModelVersion
	if model == "" {
		model = c.cfg.Model
	}
	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(LLMCallEvent{
		Task:      req.Task,
		Model:     model,
		LatencyMs: latency,
		Success:   true,
	})
	return &GenerateResponse{
		Text:      text,
		Model:     model,
		LatencyMs: latency,
	}, nil
}

func (c *geminiClient) contentConfig(req GenerateRequest) *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	}
	taskCfg := c.cfg.Tasks[req.Task]
	if taskCfg.Temperature != nil {
		gc.Temperature = genai.Ptr(float32(*taskCfg.Temperature))
	}
	if taskCfg.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(taskCfg.MaxTokens)
	}
	return gc
}

func (c *geminiClient) report(task TaskType, start time.Time, err error) {
	c.observer.OnCallComplete(LLMCallEvent{
		Task:      task,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: ErrorCode(err),
	})
}

// classify maps SDK and transport errors onto the package sentinels.
func classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	if code, ok := apiErrorCode(err); ok {
		switch {
		case code == http.StatusUnauthorized || code == http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrMissingCredential, err)
		case code == http.StatusTooManyRequests || code >= 500:
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return fmt.Errorf("generate content: %w", err)
	}
	if isConnectionError(err) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("generate content: %w", err)
}

func apiErrorCode(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, true
	}
	return 0, false
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
