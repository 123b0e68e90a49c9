package guidctl

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VitamPoc/VitamCommon/pkg/guid"
	"github.com/VitamPoc/VitamCommon/pkg/utils/lines"
)

// Path operations.
const (
	OpCount    = "count"
	OpFirst    = "first"
	OpLast     = "last"
	OpAll      = "all"
	OpSharp    = "sharp"
	OpContains = "contains"
)

// PathOps lists the supported path operations.
var PathOps = []string{OpCount, OpFirst, OpLast, OpAll, OpSharp, OpContains}

// PathResult is the outcome of one path operation.
type PathResult struct {
	Path     string   `json:"path"`
	Count    int      `json:"count"`
	Multiple bool     `json:"multiple"`
	IDs      []string `json:"ids,omitempty"`
	Sharp    string   `json:"sharp,omitempty"`
	Contains *bool    `json:"contains,omitempty"`
}

// ApplyPathOp runs op on a concatenated path. A path given in the
// separated form is normalized first when sharp is set.
func ApplyPathOp(op, path string, sharp bool, ids []string) (PathResult, error) {
	if sharp {
		segs, err := guid.AllSharp(path)
		if err != nil {
			return PathResult{}, err
		}
		path = guid.Assemble(segs...)
	}
	path = strings.TrimSpace(path)
	op = strings.ToLower(op)

	res := PathResult{
		Path:     path,
		Count:    guid.Count(path),
		Multiple: guid.IsMultiple(path),
	}

	switch op {
	case OpCount:
	case OpFirst:
		id, err := guid.First(path)
		if err != nil {
			return res, err
		}
		res.IDs = []string{id.String()}
	case OpLast:
		id, err := guid.Last(path)
		if err != nil {
			return res, err
		}
		res.IDs = []string{id.String()}
	case OpAll, OpSharp:
		all, err := guid.All(path)
		if err != nil {
			return res, err
		}
		res.IDs = make([]string, len(all))
		for i, id := range all {
			res.IDs[i] = id.String()
		}
		if op == OpSharp {
			res.Sharp = guid.AssembleSharp(all...)
		}
	case OpContains:
		if len(ids) == 0 {
			return res, ErrInvalidIdentifiers.WithMessage("contains needs at least one --id")
		}
		set := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			set[strings.TrimSpace(id)] = struct{}{}
		}
		found := guid.ContainsAny(path, set)
		res.Contains = &found
	default:
		return res, ErrUnknownOperation.WithMessagef("unknown path operation %q (want one of %s)", op, strings.Join(PathOps, ", "))
	}
	return res, nil
}

type pathOptions struct {
	sharp   bool
	ids     []string
	file    string
	jsonOut bool
}

func newPathCommand(env *Env) *cobra.Command {
	o := &pathOptions{}
	cmd := &cobra.Command{
		Use:       "path <" + strings.Join(PathOps, "|") + "> [path...]",
		Short:     "Operate on concatenated identifier paths",
		ValidArgs: PathOps,
		Example: `  guidctl path count "$PATH_VALUE"
  guidctl path last --file paths.txt
  guidctl path contains "$PATH_VALUE" --id 3JxTEWDQ3vELzswAAUYoYUuJ
  guidctl path all --sharp "a#b"`,
		Args: cobra.MinimumNArgs(1),
		RunE: env.Run(func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, o, args[0], args[1:])
		}),
	}
	cmd.Flags().BoolVar(&o.sharp, "sharp", false, "Paths use '#' between identifiers")
	cmd.Flags().StringArrayVar(&o.ids, "id", nil, "Identifier to look for (contains), repeatable")
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Read paths from a file, one per line ('-' for stdin)")
	cmd.Flags().BoolVar(&o.jsonOut, "json", false, "Print JSON")
	return cmd
}

func runPath(cmd *cobra.Command, o *pathOptions, op string, paths []string) error {
	if o.file != "" {
		err := lines.ReadFile(cmd.Context(), o.file, func(line string) error {
			paths = append(paths, line)
			return nil
		})
		if err != nil {
			return err
		}
	}
	if len(paths) == 0 {
		return ErrInvalidIdentifiers.WithMessage("no paths given")
	}

	results := make([]PathResult, 0, len(paths))
	for _, p := range paths {
		res, err := ApplyPathOp(op, p, o.sharp, o.ids)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	out := cmd.OutOrStdout()
	if o.jsonOut {
		return writeJSON(out, results)
	}
	for _, res := range results {
		switch strings.ToLower(op) {
		case OpCount:
			_, _ = fmt.Fprintln(out, res.Count)
		case OpSharp:
			_, _ = fmt.Fprintln(out, res.Sharp)
		case OpContains:
			_, _ = fmt.Fprintln(out, *res.Contains)
		default:
			for _, id := range res.IDs {
				_, _ = fmt.Fprintln(out, id)
			}
		}
	}
	return nil
}
