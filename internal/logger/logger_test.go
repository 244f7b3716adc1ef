package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWithWriter_EmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf)

	l.Info().Str("component", "ledger").Msg("posted")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "ledger" || entry["message"] != "posted" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("missing timestamp: %v", entry)
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf)

	ctx := WithContext(context.Background(), l)
	got := FromContext(ctx)

	got.Info().Msg("via context")
	if !strings.Contains(buf.String(), "via context") {
		t.Fatalf("logger from context did not write: %q", buf.String())
	}
}

func TestFromContext_Missing(t *testing.T) {
	// Must not panic and must not write anywhere.
	l := FromContext(context.Background())
	l.Info().Msg("dropped")
}
