package guidctl

import (
	"github.com/spf13/viper"

	"github.com/VitamPoc/VitamCommon/pkg/app"
)

// Name is the command and configuration file name.
const Name = "guidctl"

const description = `guidctl generates and decodes VitamCommon GUIDs.

A GUID is an 18-byte identifier carrying a counter, the process id, the
machine id and a millisecond timestamp, written as 24 characters of
URL-safe base64. Configuration is read from guidctl.yaml in ., ./configs,
$HOME/.guidctl or /etc/guidctl, from GUIDCTL_* environment variables and
from flags, in increasing order of precedence.`

// NewApp creates the guidctl application.
func NewApp() *app.App {
	opts := NewOptions()
	v := viper.New()
	env := NewEnv(opts, v)

	return app.NewApp(
		app.WithName(Name),
		app.WithShortDescription("Generate and decode VitamCommon GUIDs"),
		app.WithDescription(description),
		app.WithOptions(opts),
		app.WithViper(v),
		app.WithCommands(
			newGenerateCommand(env),
			newInspectCommand(env),
			newPathCommand(env),
			newMachineIDCommand(env),
			newBenchCommand(env),
			newServeCommand(env, opts),
		),
	)
}
