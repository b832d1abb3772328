package sqlstore

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/01moynul/inkwell-api/internal/store"
)

const instrumentationName = "github.com/01moynul/inkwell-api/internal/store/sqlstore"

// observer wraps every query in a span, records query metrics and logs
// failed or slow queries.
type observer struct {
	tracer   trace.Tracer
	queries  metric.Int64Counter
	duration metric.Float64Histogram
	failures metric.Int64Counter
	log      *zap.Logger
	slow     time.Duration
	system   string
}

func newObserver(o options, system string) *observer {
	queries, _ := o.meter.Int64Counter("inkwell.db.query.count",
		metric.WithDescription("Total number of SQL queries executed"),
		metric.WithUnit("{query}"),
	)
	duration, _ := o.meter.Float64Histogram("inkwell.db.query.duration",
		metric.WithDescription("Query execution duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500),
	)
	failures, _ := o.meter.Int64Counter("inkwell.db.query.errors",
		metric.WithDescription("Total number of failed SQL queries"),
		metric.WithUnit("{error}"),
	)

	return &observer{
		tracer:   o.tracer,
		queries:  queries,
		duration: duration,
		failures: failures,
		log:      o.logger,
		slow:     o.slow,
		system:   system,
	}
}

func (o *observer) observe(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, span := o.tracer.Start(ctx, "sqlstore."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", o.system),
			attribute.String("db.operation", op),
		),
	)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	attrs := metric.WithAttributes(
		attribute.String("db.operation", op),
		attribute.String("db.system", o.system),
	)
	if o.queries != nil {
		o.queries.Add(ctx, 1, attrs)
	}
	if o.duration != nil {
		o.duration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
	}

	// Missing rows and unique violations are answers, not failures.
	if err != nil && !errors.Is(err, store.ErrNotFound) && !errors.Is(err, store.ErrDuplicate) {
		if o.failures != nil {
			o.failures.Add(ctx, 1, attrs)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.log.Error("query failed",
			zap.String("operation", op),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		return err
	}

	if elapsed > o.slow {
		o.log.Warn("slow query",
			zap.String("operation", op),
			zap.Duration("duration", elapsed),
		)
	}
	return err
}
