package reservations

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/logging"
	"github.com/preston-bernstein/travel-reservations-service/internal/metrics"
)

// begin opens a span for op and returns a finisher that records the outcome.
func (s *Service) begin(ctx context.Context, op string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "reservations."+op,
		trace.WithAttributes(attribute.String(metrics.AttrOperation, op)),
	)

	return ctx, func(err error) {
		defer span.End()

		kind := ""
		if err != nil {
			kind = string(domain.KindOf(err))
			span.SetAttributes(attribute.String(metrics.AttrErrorKind, kind))
			span.SetStatus(codes.Error, domain.PublicMessage(err))

			logger := logging.FromContext(ctx, s.logger)
			if domain.KindOf(err) == domain.KindInternal {
				span.RecordError(err)
				logging.Error(logger, "reservation operation failed", err,
					logging.FieldOperation, op,
				)
			} else {
				logging.Debug(logger, "reservation operation rejected",
					logging.FieldOperation, op,
					logging.FieldErrorKind, kind,
				)
			}
		}
		s.metrics.RecordOperation(op, time.Since(start), kind)
	}
}
