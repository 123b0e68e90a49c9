package guidctl

import (
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/VitamPoc/VitamCommon/pkg/app/cliflag"
	"github.com/VitamPoc/VitamCommon/pkg/options"
	guidopts "github.com/VitamPoc/VitamCommon/pkg/options/guid"
	httpopts "github.com/VitamPoc/VitamCommon/pkg/options/http"
	logopts "github.com/VitamPoc/VitamCommon/pkg/options/logger"
)

// Options contains the options shared by every guidctl command.
type Options struct {
	// Log contains logger configuration.
	Log *logopts.Options `json:"log" mapstructure:"log"`

	// GUID contains identifier generation configuration.
	GUID *guidopts.Options `json:"guid" mapstructure:"guid"`

	// HTTP contains the serve command's server configuration.
	HTTP *httpopts.Options `json:"http" mapstructure:"http"`
}

// NewOptions creates new Options with defaults.
func NewOptions() *Options {
	return &Options{
		Log:  logopts.NewOptions(),
		GUID: guidopts.NewOptions(),
		HTTP: httpopts.NewOptions(),
	}
}

// Flags returns flags grouped by section.
func (o *Options) Flags() (fss cliflag.NamedFlagSets) {
	o.GUID.AddFlags(fss.FlagSet("guid"))
	o.HTTP.AddFlags(fss.FlagSet("http"))
	o.Log.AddFlags(fss.FlagSet("log"))
	return fss
}

// Complete completes the options.
func (o *Options) Complete() error {
	return o.HTTP.Complete()
}

// Validate checks every section and reports all problems at once.
func (o *Options) Validate() error {
	var errs []error

	if err := o.Log.Validate(); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, options.ValidateAll(o.GUID, o.HTTP)...)

	return utilerrors.NewAggregate(errs)
}
