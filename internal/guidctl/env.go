package guidctl

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kart-io/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/VitamPoc/VitamCommon/pkg/guid"
	"github.com/VitamPoc/VitamCommon/pkg/infra/config"
	infralogger "github.com/VitamPoc/VitamCommon/pkg/infra/logger"
	"github.com/VitamPoc/VitamCommon/pkg/machineid"
	guidopts "github.com/VitamPoc/VitamCommon/pkg/options/guid"
	"github.com/VitamPoc/VitamCommon/pkg/processid"
	"github.com/VitamPoc/VitamCommon/pkg/utils/json"
)

// Env is the runtime state shared by the commands: the configuration
// source and the current generator.
type Env struct {
	opts  *Options
	viper *viper.Viper

	once    sync.Once
	initErr error
	source  *config.Source
	holder  *GeneratorHolder
}

// NewEnv creates an Env for opts. Nothing is resolved until Setup.
func NewEnv(opts *Options, v *viper.Viper) *Env {
	return &Env{opts: opts, viper: v}
}

// Setup installs the logger, snapshots the configuration and builds the
// generator. It runs once; later calls return the first result.
func (e *Env) Setup() error {
	e.once.Do(func() {
		if err := e.opts.Log.Init(); err != nil {
			e.initErr = fmt.Errorf("failed to initialize logger: %w", err)
			return
		}
		e.source = config.NewSource(e.viper)
		e.holder = NewGeneratorHolder(e.source.Snapshot(), guid.NewCounter())
		logger.Debugw("Environment ready",
			"config_file", e.viper.ConfigFileUsed(),
			"sonic", json.IsUsingSonic(),
		)
	})
	return e.initErr
}

// Run wraps a command body: it sets up the environment, tags the command
// context with the command name and logs failures with those fields.
func (e *Env) Run(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := e.Setup(); err != nil {
			return err
		}
		ctx := infralogger.WithCommand(cmd.Context(), cmd.Name())
		cmd.SetContext(ctx)

		start := time.Now()
		if err := run(cmd, args); err != nil {
			infralogger.LogError(ctx, "Command failed", err)
			return err
		}
		infralogger.GetLogger(infralogger.WithFields(ctx, "elapsed", time.Since(start).String())).
			Debugw("Command finished")
		return nil
	}
}

// Source returns the configuration source.
func (e *Env) Source() *config.Source {
	return e.source
}

// Holder returns the generator holder.
func (e *Env) Holder() *GeneratorHolder {
	return e.holder
}

// Generator returns the current generator.
func (e *Env) Generator() *guid.Generator {
	return e.holder.Generator()
}

// GeneratorHolder keeps the current generator and rebuilds it when the
// machine id or process id configuration changes. Rebuilt generators
// share one counter, so identifiers stay unique across a swap.
type GeneratorHolder struct {
	state   atomic.Pointer[generatorState]
	counter *guid.Counter
}

// generatorState pairs a generator with the machine id resolution it
// was built from. Both are swapped together.
type generatorState struct {
	gen     *guid.Generator
	machine machineid.Result
}

// NewGeneratorHolder builds the first generator from snap.
func NewGeneratorHolder(snap *config.Snapshot, counter *guid.Counter) *GeneratorHolder {
	h := &GeneratorHolder{counter: counter}
	h.rebuild(snap)
	return h
}

// Current returns the generator and the machine id resolution it uses.
func (h *GeneratorHolder) Current() (*guid.Generator, machineid.Result) {
	st := h.state.Load()
	return st.gen, st.machine
}

// Generator returns the current generator.
func (h *GeneratorHolder) Generator() *guid.Generator {
	return h.state.Load().gen
}

// MachineID returns how the current machine id was resolved.
func (h *GeneratorHolder) MachineID() machineid.Result {
	return h.state.Load().machine
}

// Keys lists the configuration keys the generator depends on.
func (h *GeneratorHolder) Keys() []string {
	return []string{machineid.ConfigKey, guidopts.KeyProcessID}
}

// OnConfigChange implements config.Reloadable.
func (h *GeneratorHolder) OnConfigChange(snap *config.Snapshot) error {
	prev := h.Generator()
	next := h.rebuild(snap)
	logger.Infow("Generator rebuilt",
		"machine_id", next.machine.String(),
		"source", next.machine.Source,
		"process_id", next.gen.ProcessID(),
		"previous_process_id", prev.ProcessID(),
	)
	return nil
}

func (h *GeneratorHolder) rebuild(snap *config.Snapshot) *generatorState {
	res := machineid.Resolve(machineid.WithConfig(snap))

	pid := snap.GetInt(guidopts.KeyProcessID, -1)
	if pid < 0 {
		pid = processid.Resolve()
	}

	st := &generatorState{
		gen: guid.NewGenerator(
			guid.WithMachineID(res.ID),
			guid.WithProcessID(pid),
			guid.WithCounter(h.counter),
		),
		machine: res,
	}
	h.state.Store(st)
	guid.SetDefault(st.gen)
	return st
}
