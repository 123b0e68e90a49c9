package guidctl

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/VitamPoc/VitamCommon/pkg/guid"
	pkgid "github.com/VitamPoc/VitamCommon/pkg/id"
	"github.com/VitamPoc/VitamCommon/pkg/utils/json"
	"github.com/VitamPoc/VitamCommon/pkg/utils/lines"
)

// Inspection is the decoded view of one identifier.
type Inspection struct {
	Input     string `json:"input"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
	Scheme    string `json:"scheme,omitempty"`
	Version   string `json:"version,omitempty"`
	ProcessID int    `json:"process_id"`
	Counter   uint32 `json:"counter"`
	MachineID string `json:"machine_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Time      string `json:"time,omitempty"`
	Hex       string `json:"hex,omitempty"`
	Base64    string `json:"base64,omitempty"`
	UUID      string `json:"uuid,omitempty"`
	MSB       string `json:"msb,omitempty"`
	LSB       string `json:"lsb,omitempty"`
}

// Inspect decodes s. Decoding failures are reported in the result.
// Input that is not a GUID but another known scheme stays invalid and
// carries the scheme name and embedded time.
func Inspect(s string) Inspection {
	id, err := guid.Parse(s)
	if err == nil {
		return InspectGUID(s, id)
	}

	in := Inspection{Input: s, Error: err.Error(), ProcessID: -1, Timestamp: -1}
	if typ, ts, ok := pkgid.Identify(strings.TrimSpace(s)); ok {
		in.Scheme = string(typ)
		if !ts.IsZero() {
			in.Timestamp = ts.UnixMilli()
			in.Time = ts.UTC().Format(time.RFC3339Nano)
		}
	}
	return in
}

// InspectGUID describes id.
func InspectGUID(input string, id guid.GUID) Inspection {
	in := Inspection{
		Input:     input,
		Valid:     true,
		Version:   string(id.Version()),
		ProcessID: id.ProcessID(),
		Counter:   id.Counter(),
		Timestamp: id.Timestamp(),
		Hex:       id.Hex(),
		Base64:    id.Base64(),
		UUID:      id.UUID().String(),
		MSB:       fmt.Sprintf("0x%016x", id.MostSignificantBits()),
		LSB:       fmt.Sprintf("0x%016x", id.LeastSignificantBits()),
	}
	if mac := id.MachineID(); mac != nil {
		in.MachineID = EncodeMachineID(mac)
	}
	if ts := id.Time(); !ts.IsZero() {
		in.Time = ts.UTC().Format(time.RFC3339Nano)
	}
	return in
}

// EncodeMachineID formats a machine id as lowercase hex without separators.
func EncodeMachineID(mac []byte) string {
	return fmt.Sprintf("%x", mac)
}

type inspectOptions struct {
	file    string
	jsonOut bool
}

func newInspectCommand(env *Env) *cobra.Command {
	o := &inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect [id...]",
		Short: "Decode identifiers and print their fields",
		Example: `  guidctl inspect 3JxTEWDQ3vELzswAAUYoYUuJ
  guidctl inspect dc9c531160d0def10bcecc00014628614b89 --json
  guidctl inspect --file ids.txt`,
		RunE: env.Run(func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, o, args)
		}),
	}
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Read identifiers from a file, one per line ('-' for stdin)")
	cmd.Flags().BoolVar(&o.jsonOut, "json", false, "Print JSON")
	return cmd
}

func runInspect(cmd *cobra.Command, o *inspectOptions, args []string) error {
	inputs := append([]string(nil), args...)
	if o.file != "" {
		err := lines.ReadFile(cmd.Context(), o.file, func(line string) error {
			inputs = append(inputs, line)
			return nil
		})
		if err != nil {
			return err
		}
	}
	if len(inputs) == 0 {
		return ErrInvalidIdentifiers.WithMessage("no identifiers given")
	}

	results := make([]Inspection, len(inputs))
	invalid := 0
	for i, s := range inputs {
		results[i] = Inspect(s)
		if !results[i].Valid {
			invalid++
		}
	}

	out := cmd.OutOrStdout()
	if o.jsonOut {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	} else {
		for i, r := range results {
			if i > 0 {
				_, _ = fmt.Fprintln(out)
			}
			printInspection(out, r)
		}
	}

	if invalid > 0 {
		return ErrInvalidIdentifiers.WithMessagef("%d of %d identifiers are invalid", invalid, len(inputs))
	}
	return nil
}

func printInspection(w io.Writer, r Inspection) {
	if !r.Valid {
		_, _ = fmt.Fprintf(w, "%-11s %s\n%-11s %s\n", "input:", r.Input, "error:", r.Error)
		if r.Scheme != "" {
			_, _ = fmt.Fprintf(w, "%-11s %s\n", "scheme:", r.Scheme)
		}
		if r.Time != "" {
			_, _ = fmt.Fprintf(w, "%-11s %s\n", "time:", r.Time)
		}
		return
	}
	rows := [][2]string{
		{"input", r.Input},
		{"version", r.Version},
		{"process id", fmt.Sprint(r.ProcessID)},
		{"counter", fmt.Sprintf("%d (0x%06x)", r.Counter, r.Counter)},
		{"machine id", r.MachineID},
		{"timestamp", fmt.Sprintf("%d (%s)", r.Timestamp, r.Time)},
		{"hex", r.Hex},
		{"base64", r.Base64},
		{"uuid", r.UUID},
		{"msb", r.MSB},
		{"lsb", r.LSB},
	}
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%-11s %s\n", row[0]+":", row[1])
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
