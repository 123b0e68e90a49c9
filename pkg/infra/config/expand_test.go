package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func readConfig(t *testing.T, content string) (*viper.Viper, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expand.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}
	return v, path
}

func TestExpandString(t *testing.T) {
	t.Setenv("EXPAND_HOST", "example.org")

	tests := []struct {
		in, want string
	}{
		{"${EXPAND_HOST}:8080", "example.org:8080"},
		{"$EXPAND_HOST", "example.org"},
		{"$EXPAND_UNSET_VAR", "$EXPAND_UNSET_VAR"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ExpandString(tt.in); got != tt.want {
				t.Errorf("ExpandString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_MAC", "0a:0b:0c:0d:0e:0f")
	v, _ := readConfig(t, "guid:\n  machine-id: \"${EXPAND_MAC}\"\n  process-id: 7\nname: plain\n")

	if err := ExpandEnv(v); err != nil {
		t.Fatalf("ExpandEnv() error = %v", err)
	}
	if got := v.GetString("guid.machine-id"); got != "0a:0b:0c:0d:0e:0f" {
		t.Errorf("guid.machine-id = %q", got)
	}
	if got := v.GetInt("guid.process-id"); got != 7 {
		t.Errorf("guid.process-id = %d", got)
	}
	if got := v.GetString("name"); got != "plain" {
		t.Errorf("name = %q", got)
	}
}

func TestExpandEnvKeepsFlagPrecedence(t *testing.T) {
	t.Setenv("EXPAND_MAC", "0a:0b:0c:0d:0e:0f")
	v, _ := readConfig(t, "guid:\n  machine-id: \"${EXPAND_MAC}\"\n")
	if err := ExpandEnv(v); err != nil {
		t.Fatalf("ExpandEnv() error = %v", err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("guid.machine-id", "", "")
	if err := fs.Parse([]string{"--guid.machine-id", "02:42:ac:11:00:02"}); err != nil {
		t.Fatal(err)
	}
	if err := v.BindPFlags(fs); err != nil {
		t.Fatal(err)
	}

	if got := v.GetString("guid.machine-id"); got != "02:42:ac:11:00:02" {
		t.Errorf("guid.machine-id = %q, want the flag value", got)
	}
	snap := NewSource(v).Snapshot()
	if got, _ := snap.Get("guid.machine-id"); got != "02:42:ac:11:00:02" {
		t.Errorf("snapshot guid.machine-id = %q, want the flag value", got)
	}
}

func TestExpandEnvFollowsFileEdits(t *testing.T) {
	t.Setenv("EXPAND_OLD", "old")
	t.Setenv("EXPAND_NEW", "new")
	v, path := readConfig(t, "value: \"${EXPAND_OLD}\"\n")
	if err := ExpandEnv(v); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("value: \"${EXPAND_NEW}\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := v.ReadInConfig(); err != nil {
		t.Fatal(err)
	}
	if err := ExpandEnv(v); err != nil {
		t.Fatal(err)
	}

	src := NewSource(v)
	if got, _ := src.Get("value"); got != "new" {
		t.Errorf("value = %q after edit, want new", got)
	}
}

func TestExpandEnvWithoutFile(t *testing.T) {
	if err := ExpandEnv(viper.New()); err != nil {
		t.Errorf("ExpandEnv() without a config file error = %v", err)
	}
}
