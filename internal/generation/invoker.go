// Package generation turns a prompt and a schema descriptor into a sequence
// of typed records. Failures never reach the caller as errors: they are
// logged and downgraded to an empty collection.
package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/llm"
	"github.com/jangyunsu11/UniversityPrepApp/internal/schema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/jangyunsu11/UniversityPrepApp/internal/generation"

// Outcome is the result of one generation call. Records is never nil; on
// failure it is empty and Err holds the cause.
type Outcome[T any] struct {
	Records []T
	Err     error
	RunID   string
}

// OK reports whether the call succeeded.
func (o Outcome[T]) OK() bool { return o.Err == nil }

// Invoker performs single-attempt generation calls against an LLM client.
type Invoker struct {
	client    llm.LLMClient
	log       *zap.Logger
	tracer    trace.Tracer
	observers []RunObserver
	now       func() time.Time
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithLogger sets the diagnostic logger.
func WithLogger(log *zap.Logger) Option {
	return func(inv *Invoker) {
		if log != nil {
			inv.log = log
		}
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(inv *Invoker) { inv.tracer = t }
}

// WithRunObserver registers an observer notified after every call.
func WithRunObserver(o RunObserver) Option {
	return func(inv *Invoker) {
		if o != nil {
			inv.observers = append(inv.observers, o)
		}
	}
}

// NewInvoker creates an Invoker backed by client.
func NewInvoker(client llm.LLMClient, opts ...Option) *Invoker {
	inv := &Invoker{
		client: client,
		log:    zap.NewNop(),
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Generate asks the model for records shaped by desc and decodes them into
// T. It blocks for the duration of one call and never returns an error
// directly; inspect the Outcome instead.
func Generate[T any](ctx context.Context, inv *Invoker, kind domain.ViewKind, prompt string, desc schema.Descriptor) (out Outcome[T]) {
	runID := uuid.NewString()
	started := inv.now()

	ctx, span := inv.tracer.Start(ctx, "generation."+string(kind), trace.WithAttributes(
		attribute.String("uniprep.run_id", runID),
		attribute.String("uniprep.view", string(kind)),
		attribute.String("uniprep.schema", desc.ID()),
	))
	defer span.End()

	var model string
	defer func() {
		if r := recover(); r != nil {
			out = Outcome[T]{Records: []T{}, Err: fmt.Errorf("generation panicked: %v", r), RunID: runID}
		}
		inv.finish(span, kind, desc, runID, model, started, len(out.Records), out.Err)
	}()

	resp, err := inv.client.Generate(ctx, llm.GenerateRequest{
		Task:   taskFor(kind),
		Prompt: prompt,
		Schema: desc.GenaiSchema(),
	})
	if err != nil {
		return Outcome[T]{Records: []T{}, Err: err, RunID: runID}
	}
	model = resp.Model
	if strings.TrimSpace(resp.Text) == "" {
		return Outcome[T]{Records: []T{}, Err: llm.ErrEmptyResponse, RunID: runID}
	}

	raw, err := llm.ExtractJSON[[]json.RawMessage](resp.Text, nil)
	if err != nil {
		return Outcome[T]{Records: []T{}, Err: err, RunID: runID}
	}
	records := make([]T, 0, len(raw))
	for i, item := range raw {
		var rec T
		if err := json.Unmarshal(item, &rec); err != nil {
			inv.log.Warn("record dropped",
				zap.String("view", string(kind)),
				zap.String("run_id", runID),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	if len(raw) > 0 && len(records) == 0 {
		return Outcome[T]{Records: []T{}, Err: fmt.Errorf("%w: no decodable records", llm.ErrInvalidOutput), RunID: runID}
	}

	for _, w := range Check(records) {
		inv.log.Warn("schema drift",
			zap.String("view", string(kind)),
			zap.String("run_id", runID),
			zap.String("schema", desc.ID()),
			zap.String("detail", w))
	}
	return Outcome[T]{Records: records, RunID: runID}
}

func (inv *Invoker) finish(span trace.Span, kind domain.ViewKind, desc schema.Descriptor, runID, model string, started time.Time, n int, err error) {
	latency := inv.now().Sub(started).Milliseconds()
	run := Run{
		ID:            runID,
		View:          kind,
		Schema:        desc.Name,
		SchemaVersion: desc.Version,
		Model:         model,
		Status:        RunOK,
		Records:       n,
		LatencyMs:     latency,
		StartedAt:     started,
	}

	span.SetAttributes(attribute.Int("uniprep.records", n))
	if err != nil {
		run.Status = RunFailed
		run.ErrorCode = llm.ErrorCode(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, run.ErrorCode)
		inv.log.Error("generation failed",
			zap.String("view", string(kind)),
			zap.String("run_id", runID),
			zap.String("error_code", run.ErrorCode),
			zap.Int64("latency_ms", latency),
			zap.Error(err))
	} else {
		inv.log.Info("generation complete",
			zap.String("view", string(kind)),
			zap.String("run_id", runID),
			zap.Int("records", n),
			zap.Int64("latency_ms", latency))
	}

	for _, o := range inv.observers {
		o.OnRun(run)
	}
}

func taskFor(kind domain.ViewKind) llm.TaskType {
	switch kind {
	case domain.ViewInvention:
		return llm.TaskIdeas
	case domain.ViewStudy:
		return llm.TaskStudy
	default:
		return llm.TaskRoadmap
	}
}
