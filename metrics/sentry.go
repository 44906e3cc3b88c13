package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryMetrics records request and session metrics as Sentry spans. With no
// Sentry client configured the spans are dropped.
type SentryMetrics struct {
	enabled bool
}

func NewSentryMetrics(enabled bool) *SentryMetrics {
	return &SentryMetrics{enabled: enabled}
}

// RecordRequest records an HTTP request to route answered with status.
func (m *SentryMetrics) RecordRequest(ctx context.Context, route string, duration time.Duration, status int) {
	if m == nil || !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "http.request")
	defer span.Finish()

	span.SetTag("route", route)
	span.SetTag("status", fmt.Sprintf("%d", status))
	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("status", status)

	if status < 500 {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}
	span.Description = fmt.Sprintf("%s: %d", route, status)
}

// RecordSpelling records how many of the pitches sent to an engraving
// session needed a printed accidental.
func (m *SentryMetrics) RecordSpelling(ctx context.Context, session string, pitches, marks int) {
	if m == nil || !m.enabled {
		return
	}

	if transaction := sentry.TransactionFromContext(ctx); transaction != nil {
		transaction.SetTag("session", session)
		transaction.SetData("engrave.pitches", pitches)
		transaction.SetData("engrave.marks", marks)
	}

	span := sentry.StartSpan(ctx, "engrave.spelling")
	defer span.Finish()
	span.SetData("pitches", pitches)
	span.SetData("marks", marks)
	span.Status = sentry.SpanStatusOK
	span.Description = fmt.Sprintf("Spelling: %d marks for %d pitches", marks, pitches)
}
