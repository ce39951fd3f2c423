package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
)

func TestMessageID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw     string
		want    domain.MessageID
		wantErr bool
	}{
		{`{"id":"abc","body":"x"}`, "abc", false},
		{`{"id":42,"body":"x"}`, "42", false},
		{`{"id":6093114946397667328,"body":"x"}`, "6093114946397667328", false},
		{`{"id":null,"body":"x"}`, "", false},
		{`{"body":"x"}`, "", false},
		{`{"id":true,"body":"x"}`, "", true},
		{`{"id":{"v":1},"body":"x"}`, "", true},
	}

	for _, tt := range tests {
		var msg domain.Message
		err := json.Unmarshal([]byte(tt.raw), &msg)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error, got id=%q", tt.raw, msg.ID)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.raw, err)
		}
		if msg.ID != tt.want || msg.Body != "x" {
			t.Fatalf("%s: got %+v, want id=%q", tt.raw, msg, tt.want)
		}
	}
}

// Наружу id всегда уходит строкой.
func TestMessageID_MarshalsAsString(t *testing.T) {
	var msg domain.Message
	if err := json.Unmarshal([]byte(`{"id":7,"body":"x"}`), &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"id":"7","body":"x"}` {
		t.Fatalf("unexpected json: %s", out)
	}
}
