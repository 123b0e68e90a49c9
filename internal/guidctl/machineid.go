package guidctl

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/VitamPoc/VitamCommon/pkg/machineid"
)

// CandidateView describes one interface considered for the machine id.
type CandidateView struct {
	Name       string `json:"name"`
	Address    string `json:"hardware_address"`
	IP         string `json:"ip"`
	Virtual    bool   `json:"virtual"`
	Acceptable bool   `json:"acceptable"`
	Score      int    `json:"score"`
	Selected   bool   `json:"selected"`
}

// MachineIDView is the machine-id command output.
type MachineIDView struct {
	ID         string          `json:"id"`
	Source     string          `json:"source"`
	Interface  string          `json:"interface,omitempty"`
	ProcessID  int             `json:"process_id"`
	Candidates []CandidateView `json:"candidates,omitempty"`
}

// ListCandidates scores the host's interfaces the way the resolver does.
func ListCandidates(list machineid.Lister) ([]CandidateView, error) {
	candidates, err := list()
	if err != nil {
		return nil, err
	}
	best, ok := machineid.Best(candidates)

	views := make([]CandidateView, len(candidates))
	for i, c := range candidates {
		var ip string
		if c.Addr != nil {
			ip = c.Addr.String()
		}
		views[i] = CandidateView{
			Name:       c.Name,
			Address:    c.HardwareAddr.String(),
			IP:         ip,
			Virtual:    c.Virtual,
			Acceptable: machineid.Acceptable(c.HardwareAddr),
			Score:      machineid.AddressScore(c.Addr),
			Selected:   ok && c.Name == best.Name,
		}
	}
	return views, nil
}

type machineIDOptions struct {
	candidates bool
	jsonOut    bool
}

func newMachineIDCommand(env *Env) *cobra.Command {
	o := &machineIDOptions{}
	cmd := &cobra.Command{
		Use:     "machine-id",
		Aliases: []string{"mid"},
		Short:   "Show the machine id and process id stamped into new identifiers",
		Args:    cobra.NoArgs,
		RunE: env.Run(func(cmd *cobra.Command, _ []string) error {
			return runMachineID(cmd, env, o, machineid.SystemInterfaces)
		}),
	}
	cmd.Flags().BoolVar(&o.candidates, "candidates", false, "List the interfaces considered")
	cmd.Flags().BoolVar(&o.jsonOut, "json", false, "Print JSON")
	return cmd
}

func runMachineID(cmd *cobra.Command, env *Env, o *machineIDOptions, list machineid.Lister) error {
	gen, res := env.Holder().Current()
	view := MachineIDView{
		ID:        res.String(),
		Source:    string(res.Source),
		Interface: res.Interface,
		ProcessID: gen.ProcessID(),
	}
	if o.candidates {
		cands, err := ListCandidates(list)
		if err != nil {
			return fmt.Errorf("failed to list interfaces: %w", err)
		}
		view.Candidates = cands
	}

	out := cmd.OutOrStdout()
	if o.jsonOut {
		return writeJSON(out, view)
	}

	_, _ = fmt.Fprintf(out, "machine id: %s\nsource:     %s\n", view.ID, view.Source)
	if view.Interface != "" {
		_, _ = fmt.Fprintf(out, "interface:  %s\n", view.Interface)
	}
	_, _ = fmt.Fprintf(out, "process id: %d\n", view.ProcessID)
	if !o.candidates {
		return nil
	}

	_, _ = fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tADDRESS\tIP\tVIRTUAL\tACCEPTABLE\tSCORE\tSELECTED")
	for _, c := range view.Candidates {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%t\t%d\t%t\n",
			c.Name, c.Address, c.IP, c.Virtual, c.Acceptable, c.Score, c.Selected)
	}
	return tw.Flush()
}
