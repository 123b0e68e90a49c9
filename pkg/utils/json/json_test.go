package json

import (
	"bytes"
	stdjson "encoding/json"
	"strings"
	"testing"
)

type fields struct {
	ID        string `json:"id"`
	ProcessID int    `json:"process_id"`
	Counter   uint32 `json:"counter"`
	Timestamp int64  `json:"timestamp"`
	MachineID string `json:"machine_id,omitempty"`
}

var sample = fields{
	ID:        "3JxTEWDQ3vELzswAAUYoYUuJ",
	ProcessID: 4448,
	Counter:   0x35c9cd,
	Timestamp: 1400836803465,
	MachineID: "00:de:f1:0b:ce:cc",
}

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{name: "fields", json: `{"id":"3JxTEWDQ3vELzswAAUYoYUuJ","process_id":4448}`},
		{name: "invalid json", json: `{invalid}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f fields
			err := Unmarshal([]byte(tt.json), &f)
			if (err != nil) != tt.wantErr {
				t.Errorf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sample); err != nil {
		t.Fatalf("Encoder.Encode() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"process_id\": 4448") {
		t.Errorf("unexpected indentation:\n%s", buf.String())
	}

	var result fields
	if err := stdjson.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Encoder produced invalid JSON: %v", err)
	}
	if result != sample {
		t.Errorf("round trip mismatch: got %+v, want %+v", result, sample)
	}
}

func TestUnmarshalValues(t *testing.T) {
	var f fields
	if err := Unmarshal([]byte(`{"id":"3JxTEWDQ3vELzswAAUYoYUuJ","process_id":4448,"counter":3524045}`), &f); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if f.ID != sample.ID || f.ProcessID != 4448 || f.Counter != 0x35c9cd {
		t.Errorf("Unmarshal() = %+v", f)
	}
	t.Logf("Using sonic: %v", IsUsingSonic())
}
