package logger

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestOptionsFlags(t *testing.T) {
	opts := NewOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts.AddFlags(fs)

	if err := fs.Parse([]string{"--log.level=debug", "--log.format=json", "--log.development"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if opts.Level != "debug" || opts.Format != "json" || !opts.Development {
		t.Errorf("flags not applied: %+v", opts.LogOption)
	}
	if opts.OTLP != nil {
		t.Error("OTLP should stay disabled")
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestOptionsClone(t *testing.T) {
	opts := NewOptions()
	opts.OutputPaths = []string{"stdout"}

	c := opts.Clone()
	c.Level = "error"
	c.OutputPaths[0] = "stderr"

	if opts.Level == "error" {
		t.Error("Clone() shares Level")
	}
	if opts.OutputPaths[0] != "stdout" {
		t.Error("Clone() shares OutputPaths")
	}
}
