// Package logger provides logger configuration options for guidctl.
package logger

import (
	"github.com/kart-io/logger"
	"github.com/kart-io/logger/core"
	"github.com/kart-io/logger/option"
	"github.com/spf13/pflag"
)

// Configuration keys read from the config source. They match the flag names.
const (
	KeyLevel             = "log.level"
	KeyFormat            = "log.format"
	KeyDevelopment       = "log.development"
	KeyDisableCaller     = "log.disable-caller"
	KeyDisableStacktrace = "log.disable-stacktrace"
)

// Keys lists the keys that can be changed without a restart.
var Keys = []string{KeyLevel, KeyFormat, KeyDevelopment, KeyDisableCaller, KeyDisableStacktrace}

// Options wraps option.LogOption with the flags guidctl exposes.
type Options struct {
	*option.LogOption
}

// NewOptions creates new Options with defaults.
// OTLP export is switched off; guidctl only writes to local outputs.
func NewOptions() *Options {
	opt := option.DefaultLogOption()
	opt.OTLPEndpoint = ""
	opt.OTLP = nil
	return &Options{LogOption: opt}
}

// AddFlags adds flags for logger options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Engine, "log.engine", o.Engine, "Logging engine (zap|slog)")
	fs.StringVar(&o.Level, KeyLevel, o.Level, "Log level (DEBUG|INFO|WARN|ERROR|FATAL)")
	fs.StringVar(&o.Format, KeyFormat, o.Format, "Log format (json|console)")
	fs.StringSliceVar(&o.OutputPaths, "log.output-paths", o.OutputPaths, "Output paths for logs")
	fs.BoolVar(&o.Development, KeyDevelopment, o.Development, "Enable development mode")
	fs.BoolVar(&o.DisableCaller, KeyDisableCaller, o.DisableCaller, "Disable caller detection")
	fs.BoolVar(&o.DisableStacktrace, KeyDisableStacktrace, o.DisableStacktrace, "Disable stacktrace capture")

	// Rotation options
	if o.Rotation == nil {
		o.Rotation = &option.RotationOption{}
	}
	fs.IntVar(&o.Rotation.MaxSize, "log.rotation.max-size", 100, "Maximum size in MB of the log file before rotation")
	fs.IntVar(&o.Rotation.MaxAge, "log.rotation.max-age", 15, "Maximum number of days to retain old log files")
	fs.IntVar(&o.Rotation.MaxBackups, "log.rotation.max-backups", 30, "Maximum number of old log files to retain")
	fs.BoolVar(&o.Rotation.Compress, "log.rotation.compress", true, "Compress rotated log files using gzip")
}

// Validate validates the logger options.
func (o *Options) Validate() error {
	return o.LogOption.Validate()
}

// Clone returns a copy that can be modified independently.
func (o *Options) Clone() *Options {
	c := *o.LogOption
	c.OutputPaths = append([]string(nil), o.OutputPaths...)
	if o.Rotation != nil {
		r := *o.Rotation
		c.Rotation = &r
	}
	return &Options{LogOption: &c}
}

// CreateLogger creates a new logger instance based on the options.
func (o *Options) CreateLogger() (core.Logger, error) {
	return logger.New(o.LogOption)
}

// Init initializes the global logger with the options.
func (o *Options) Init() error {
	log, err := o.CreateLogger()
	if err != nil {
		return err
	}
	logger.SetGlobal(log)
	return nil
}
