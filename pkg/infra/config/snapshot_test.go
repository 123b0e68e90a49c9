package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestSnapshotGetBool(t *testing.T) {
	snap := NewSnapshot(map[string]string{
		"empty": "",
		"yes":   " YES ",
		"one":   "1",
		"no":    "no",
		"zero":  "0",
		"False": "False",
		"junk":  "maybe",
	})

	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{"missing", true, true},
		{"missing", false, false},
		{"empty", false, true},
		{"yes", false, true},
		{"one", false, true},
		{"no", true, false},
		{"zero", true, false},
		{"false", true, false},
		{"junk", true, true},
		{"junk", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := snap.GetBool(tt.key, tt.def); got != tt.want {
				t.Errorf("GetBool(%q, %v) = %v, want %v", tt.key, tt.def, got, tt.want)
			}
		})
	}
}

func TestSnapshotGetInt(t *testing.T) {
	snap := NewSnapshot(map[string]string{
		"port":     "8080",
		"negative": " -12 ",
		"float":    "1.5",
		"hex":      "0x10",
		"huge":     "99999999999999999999",
		"big":      "4294967296",
	})

	if got := snap.GetInt("port", 0); got != 8080 {
		t.Errorf("GetInt(port) = %d, want 8080", got)
	}
	if got := snap.GetInt("negative", 0); got != -12 {
		t.Errorf("GetInt(negative) = %d, want -12", got)
	}
	for _, key := range []string{"float", "hex", "huge", "missing"} {
		if got := snap.GetInt(key, 7); got != 7 {
			t.Errorf("GetInt(%s) = %d, want default 7", key, got)
		}
	}
	if got := snap.GetInt64("big", 0); got != 4294967296 {
		t.Errorf("GetInt64(big) = %d, want 4294967296", got)
	}
	if got := snap.GetInt64("huge", -1); got != -1 {
		t.Errorf("GetInt64(huge) = %d, want default", got)
	}
}

func TestSnapshotKeysAreCaseInsensitive(t *testing.T) {
	snap := NewSnapshot(map[string]string{"GUID.Machine-ID": "00:11:22:33:44:55"})

	v, ok := snap.Get("guid.machine-id")
	if !ok || v != "00:11:22:33:44:55" {
		t.Errorf("Get() = %q, %v", v, ok)
	}
	if !snap.Contains("GUID.MACHINE-ID") {
		t.Error("Contains() should ignore case")
	}
	if got := snap.GetString("other", "fallback"); got != "fallback" {
		t.Errorf("GetString() = %q, want fallback", got)
	}
	if keys := snap.Keys(); len(keys) != 1 || keys[0] != "guid.machine-id" {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestSnapshotChanged(t *testing.T) {
	a := NewSnapshot(map[string]string{"a": "1", "b": "2"})
	b := NewSnapshot(map[string]string{"a": "1", "b": "3"})

	if a.Changed(a) {
		t.Error("snapshot should not differ from itself")
	}
	if !a.Changed(b) {
		t.Error("expected a change across all keys")
	}
	if a.Changed(b, "a") {
		t.Error("key a did not change")
	}
	if !a.Changed(b, "b") {
		t.Error("key b changed")
	}
	if !a.Changed(nil) {
		t.Error("nil snapshot always differs")
	}
	if !a.Changed(NewSnapshot(map[string]string{"b": "2"}), "a") {
		t.Error("removed key should count as a change")
	}
}

func TestSourceRefresh(t *testing.T) {
	v := viper.New()
	v.Set("guid.machine-id", "001122334455")
	v.Set("server.port", 8080)

	src := NewSource(v)
	first := src.Snapshot()

	if got := first.GetInt("server.port", 0); got != 8080 {
		t.Fatalf("GetInt(server.port) = %d, want 8080", got)
	}
	if val, ok := src.Get("guid.machine-id"); !ok || val != "001122334455" {
		t.Fatalf("Get() = %q, %v", val, ok)
	}

	v.Set("server.port", 9090)
	second := src.Refresh()

	if second.Version() != first.Version()+1 {
		t.Errorf("Version() = %d, want %d", second.Version(), first.Version()+1)
	}
	if got := first.GetInt("server.port", 0); got != 8080 {
		t.Errorf("old snapshot changed: %d", got)
	}
	if got := src.Snapshot().GetInt("server.port", 0); got != 9090 {
		t.Errorf("new snapshot = %d, want 9090", got)
	}
	if !second.Changed(first, "server.port") {
		t.Error("server.port should have changed")
	}
}
