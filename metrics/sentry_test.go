package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
)

func TestRecordWithoutClient(t *testing.T) {
	m := NewSentryMetrics(true)
	assert.NotPanics(t, func() {
		m.RecordRequest(context.Background(), "/pitches/{pitch}", 3*time.Millisecond, 200)
		m.RecordSpelling(context.Background(), "abc", 4, 1)
	})
}

func TestRecordInsideTransaction(t *testing.T) {
	ctx := context.Background()
	tx := sentry.StartTransaction(ctx, "test")
	defer tx.Finish()

	m := NewSentryMetrics(true)
	assert.NotPanics(t, func() {
		m.RecordRequest(tx.Context(), "/transpose", time.Millisecond, 500)
		m.RecordSpelling(tx.Context(), "abc", 4, 1)
	})
}

func TestDisabledAndNil(t *testing.T) {
	var m *SentryMetrics
	assert.NotPanics(t, func() {
		m.RecordRequest(context.Background(), "/", 0, 200)
		NewSentryMetrics(false).RecordSpelling(context.Background(), "", 0, 0)
	})
}
