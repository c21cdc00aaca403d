package observability

import (
	"context"
	"testing"
	"time"
)

func TestRecordRequests(t *testing.T) {
	obs := New("handbag-explorer-observability-test")
	defer obs.Shutdown()

	obs.RecordRequestProcessed(context.Background(), "/api/search", "200")
	obs.RecordRequestDuration(context.Background(), "/api/search", 25*time.Millisecond)
}

func TestRecordOnUnconfiguredObservability(t *testing.T) {
	// Exporter construction can fail at startup; recording must still
	// be safe on the zero value.
	obs := &Observability{}
	obs.RecordRequestProcessed(context.Background(), "/api/search", "200")
	obs.RecordRequestDuration(context.Background(), "/api/search", time.Millisecond)
	obs.Shutdown()
}
