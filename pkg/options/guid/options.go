// Package guid provides identifier generation options.
package guid

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/VitamPoc/VitamCommon/pkg/machineid"
	"github.com/VitamPoc/VitamCommon/pkg/processid"
)

// KeyProcessID is the configuration key of the process id override.
const KeyProcessID = "guid.process-id"

// Options configures the identity baked into generated GUIDs.
type Options struct {
	// MachineID overrides the resolved machine id (6 to 8 hex pairs).
	MachineID string `json:"machine-id" mapstructure:"machine-id"`
	// ProcessID overrides the resolved process id; -1 resolves it.
	ProcessID int `json:"process-id" mapstructure:"process-id"`
	// MaxBatch caps how many identifiers one request may ask for.
	MaxBatch int `json:"max-batch" mapstructure:"max-batch"`
}

// NewOptions creates a new Options with default values.
func NewOptions() *Options {
	return &Options{
		ProcessID: -1,
		MaxBatch:  1000,
	}
}

// AddFlags adds flags for GUID options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.MachineID, machineid.ConfigKey, o.MachineID, "Machine id override, e.g. 00:de:f1:0b:ce:cc")
	fs.IntVar(&o.ProcessID, KeyProcessID, o.ProcessID, "Process id override (0-65535, -1 to resolve)")
	fs.IntVar(&o.MaxBatch, "guid.max-batch", o.MaxBatch, "Maximum number of identifiers per request")
}

// Validate validates the GUID options.
func (o *Options) Validate() []error {
	var errs []error
	if o.MachineID != "" {
		if _, ok := machineid.ParseOverride(o.MachineID); !ok {
			errs = append(errs, fmt.Errorf("%s %q is not 6 to 8 hex pairs", machineid.ConfigKey, o.MachineID))
		}
	}
	if o.ProcessID < -1 || o.ProcessID >= processid.Max {
		errs = append(errs, fmt.Errorf("%s must be between -1 and %d", KeyProcessID, processid.Max-1))
	}
	if o.MaxBatch <= 0 {
		errs = append(errs, fmt.Errorf("guid.max-batch must be positive"))
	}
	return errs
}
