// Package intake validates batches of person documents concurrently.
//
// Documents are discovered and decoded by a Loader, then handed to a fixed
// pool of workers that validate each one through people.Service. Every
// document yields exactly one Result, unless the context is canceled first.
package intake

import (
	"context"
	"fmt"
	"sync"

	"github.com/gabapcia/ospeople/internal/people"
	"github.com/gabapcia/ospeople/internal/pkg/logger"
	"github.com/gabapcia/ospeople/internal/pkg/validator"
	"github.com/gabapcia/ospeople/internal/pkg/x/chflow"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/ospeople/internal/intake"

// Outcomes recorded on the validated records counter.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Loader finds documents and decodes them into untyped mappings.
type Loader interface {
	// Discover expands roots into the document paths they denote.
	Discover(ctx context.Context, roots ...string) ([]string, error)

	// Load decodes the document at path.
	Load(ctx context.Context, path string) (map[string]any, error)
}

// Result is the outcome of one document.
type Result struct {
	Path   string
	Record any
	Err    error
}

// Outcome classifies the result as accepted, rejected by validation, or
// failed before validation could run.
func (r Result) Outcome() string {
	switch {
	case r.Err == nil:
		return OutcomeAccepted
	case validator.ExtractReport(r.Err) != nil:
		return OutcomeRejected
	}
	return OutcomeFailed
}

// Service runs batch validations.
type Service interface {
	// Run discovers the documents under roots and validates each against
	// schema. Discovery errors are returned directly; the channel is closed
	// once every document was processed or ctx is done.
	Run(ctx context.Context, schema string, roots ...string) (<-chan Result, error)
}

type service struct {
	loader  Loader
	records people.Service
	workers int

	tracer  trace.Tracer
	counter metric.Int64Counter
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

type config struct {
	workers        int
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// Option configures the service.
type Option func(*config)

// WithWorkers sets the number of documents validated in parallel. Values
// below one are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider replaces the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// New creates the intake service. By default it runs a single worker and
// reports to the global OpenTelemetry providers.
func New(loader Loader, records people.Service, opts ...Option) (*service, error) {
	cfg := config{
		workers:        1,
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	counter, err := cfg.meterProvider.Meter(instrumentationName).Int64Counter(
		"ospeople.records.validated",
		metric.WithDescription("Documents processed, by outcome."),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("records counter: %w", err)
	}

	return &service{
		loader:  loader,
		records: records,
		workers: cfg.workers,
		tracer:  cfg.tracerProvider.Tracer(instrumentationName),
		counter: counter,
	}, nil
}

// Run discovers the documents, then starts the workers.
//
// The results channel is buffered to the worker count. Workers stop early
// when ctx is done, and the channel is closed once the last one returns.
func (s *service) Run(ctx context.Context, schema string, roots ...string) (<-chan Result, error) {
	paths, err := s.loader.Discover(ctx, roots...)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "validating documents", "schema", schema, "documents", len(paths), "workers", s.workers)

	var (
		wg      sync.WaitGroup
		pending = chflow.Emit(ctx, paths)
		results = make(chan Result, s.workers)
	)

	wg.Add(s.workers)
	for range s.workers {
		go func() {
			defer wg.Done()
			for {
				path, ok := chflow.Receive(ctx, pending)
				if !ok {
					return
				}

				if !chflow.Send(ctx, results, s.process(ctx, schema, path)) {
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results, nil
}

// process loads and validates a single document.
func (s *service) process(ctx context.Context, schema, path string) Result {
	ctx, span := s.tracer.Start(ctx, "intake.validate", trace.WithAttributes(
		attribute.String("document.path", path),
		attribute.String("record.schema", schema),
	))
	defer span.End()

	ctx = logger.Derive(ctx, "path", path, "schema", schema)
	result := Result{Path: path}

	raw, err := s.loader.Load(ctx, path)
	if err == nil {
		result.Record, err = s.records.ValidateRecord(raw, schema)
	}
	result.Err = err

	outcome := result.Outcome()
	span.SetAttributes(attribute.String("outcome", outcome))
	s.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	switch outcome {
	case OutcomeAccepted:
		logger.Debug(ctx, "record accepted")
	case OutcomeRejected:
		span.SetStatus(codes.Error, "validation failed")
		logger.Warn(ctx, "record rejected", "violations", validator.ExtractReport(err).Len())
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error(ctx, "document failed", "error", err)
	}

	return result
}
