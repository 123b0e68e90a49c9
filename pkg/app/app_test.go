package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/VitamPoc/VitamCommon/pkg/app/cliflag"
)

type sampleOptions struct {
	Name      string
	Count     int
	Tags      []string
	completed bool
	invalid   bool
}

func (o *sampleOptions) Flags() (fss cliflag.NamedFlagSets) {
	fs := fss.FlagSet("sample")
	fs.StringVar(&o.Name, "sample.name", "default", "Sample name")
	fs.IntVar(&o.Count, "sample.count", 1, "Sample count")
	fs.StringSliceVar(&o.Tags, "sample.tags", nil, "Sample tags")
	return fss
}

func (o *sampleOptions) Complete() error {
	o.completed = true
	return nil
}

func (o *sampleOptions) Validate() error {
	if o.invalid {
		return errors.New("invalid options")
	}
	return nil
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apptest.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func runApp(t *testing.T, opts *sampleOptions, args ...string) (*App, error) {
	t.Helper()
	ran := false
	sub := &cobra.Command{
		Use: "sub",
		RunE: func(*cobra.Command, []string) error {
			ran = true
			return nil
		},
	}
	a := NewApp(
		WithName("apptest"),
		WithOptions(opts),
		WithViper(viper.New()),
		WithCommands(sub),
		WithSilence(),
	)
	a.Command().SetArgs(append([]string{"sub"}, args...))
	err := a.Command().Execute()
	if err == nil && !ran {
		t.Fatal("subcommand did not run")
	}
	return a, err
}

func TestConfigPrecedence(t *testing.T) {
	cfg := writeConfig(t, "sample:\n  name: file\n  count: 3\n  tags: [a, b]\n")

	t.Run("file", func(t *testing.T) {
		opts := &sampleOptions{}
		a, err := runApp(t, opts, "-c", cfg)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if opts.Name != "file" || opts.Count != 3 {
			t.Errorf("options = %+v", opts)
		}
		if len(opts.Tags) != 2 || opts.Tags[1] != "b" {
			t.Errorf("tags = %v", opts.Tags)
		}
		if !opts.completed {
			t.Error("Complete() not called")
		}
		if got := a.Viper().GetString("sample.name"); got != "file" {
			t.Errorf("viper sample.name = %q", got)
		}
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("APPTEST_SAMPLE_NAME", "env")
		opts := &sampleOptions{}
		if _, err := runApp(t, opts, "-c", cfg); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if opts.Name != "env" {
			t.Errorf("Name = %q, want env", opts.Name)
		}
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("APPTEST_SAMPLE_NAME", "env")
		opts := &sampleOptions{}
		if _, err := runApp(t, opts, "-c", cfg, "--sample.name=flag"); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if opts.Name != "flag" || opts.Count != 3 {
			t.Errorf("options = %+v", opts)
		}
	})
}

func TestValidateFailure(t *testing.T) {
	opts := &sampleOptions{invalid: true}
	if _, err := runApp(t, opts, "-c", writeConfig(t, "")); err == nil {
		t.Error("expected validation error")
	}
}

func TestMissingConfigFile(t *testing.T) {
	opts := &sampleOptions{}
	if _, err := runApp(t, opts, "-c", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for explicit missing config file")
	}
}

func TestFlagBeatsExpandedConfigValue(t *testing.T) {
	t.Setenv("APPTEST_NAME", "expanded")
	cfg := writeConfig(t, "sample:\n  name: \"${APPTEST_NAME}\"\n  count: 4\n")

	t.Run("file", func(t *testing.T) {
		opts := &sampleOptions{}
		a, err := runApp(t, opts, "-c", cfg)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if opts.Name != "expanded" {
			t.Errorf("Name = %q, want expanded", opts.Name)
		}
		if got := a.Viper().GetString("sample.name"); got != "expanded" {
			t.Errorf("viper sample.name = %q", got)
		}
	})

	t.Run("flag", func(t *testing.T) {
		opts := &sampleOptions{}
		a, err := runApp(t, opts, "-c", cfg, "--sample.name=flag")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if opts.Name != "flag" || opts.Count != 4 {
			t.Errorf("options = %+v", opts)
		}
		if got := a.Viper().GetString("sample.name"); got != "flag" {
			t.Errorf("viper sample.name = %q, want flag", got)
		}
	})
}

func TestEnvPrefix(t *testing.T) {
	if got := EnvPrefix("guid-ctl"); got != "GUID_CTL" {
		t.Errorf("EnvPrefix() = %q", got)
	}
}
