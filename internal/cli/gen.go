package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
)

// ErrUnknownShape is returned by gen for an unsupported topology name.
var ErrUnknownShape = errors.New("cli: unknown shape")

var shapes = []string{"path", "cycle", "star", "complete", "grid", "random"}

type genOptions struct {
	n          int
	rows, cols int
	p          float64
	seed       int64
	minWeight  int
	maxWeight  int
	directed   bool
	ops        []string
}

func newGenCmd(a *app) *cobra.Command {
	opts := genOptions{}

	cmd := &cobra.Command{
		Use:   "gen <" + strings.Join(shapes, "|") + ">",
		Short: "Generate a scenario file for a standard graph shape",
		Long: `Generate a YAML scenario that builds a graph of the given shape and then
runs the requested operations. Pipe the output to a file and pass it to run.

Weights are integers drawn uniformly from [--min-weight, --max-weight] using
--seed, so the same flags always produce the same file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := generate(args[0], opts)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("scenario generated",
				"shape", args[0], "vertices", sc.Vertices, "steps", len(sc.Steps))

			enc := yaml.NewEncoder(a.out)
			enc.SetIndent(2)
			if err := enc.Encode(sc); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	cmd.Flags().IntVarP(&opts.n, "vertices", "n", 6, "vertex count (all shapes except grid)")
	cmd.Flags().IntVar(&opts.rows, "rows", 3, "grid rows")
	cmd.Flags().IntVar(&opts.cols, "cols", 3, "grid columns")
	cmd.Flags().Float64VarP(&opts.p, "probability", "p", 0.3, "edge probability for random")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&opts.minWeight, "min-weight", 1, "smallest edge weight")
	cmd.Flags().IntVar(&opts.maxWeight, "max-weight", 9, "largest edge weight")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "emit one record per edge")
	cmd.Flags().StringSliceVar(&opts.ops, "ops", []string{opBFS, opDijkstra}, "operations appended after the edges")

	return cmd
}

// generate builds the requested shape and turns it into a replayable scenario.
func generate(shape string, opts genOptions) (*Scenario, error) {
	var con builder.Constructor
	switch shape {
	case "path":
		con = builder.Path(opts.n)
	case "cycle":
		con = builder.Cycle(opts.n)
	case "star":
		con = builder.Star(opts.n)
	case "complete":
		con = builder.Complete(opts.n)
	case "grid":
		con = builder.Grid(opts.rows, opts.cols)
	case "random":
		con = builder.RandomSparse(opts.n, opts.p)
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownShape, shape, strings.Join(shapes, ", "))
	}
	if opts.minWeight < 0 || opts.maxWeight < opts.minWeight {
		return nil, fmt.Errorf("%w: need 0 <= min-weight <= max-weight", ErrBadScenario)
	}
	for _, op := range opts.ops {
		if !knownOps[op] {
			return nil, fmt.Errorf("%w: unknown op %q", ErrBadScenario, op)
		}
	}

	bopts := []builder.BuilderOption{
		builder.WithSeed(opts.seed),
		builder.WithWeightFn(builder.IntWeightFn(opts.minWeight, opts.maxWeight)),
	}
	if opts.directed {
		bopts = append(bopts, builder.WithDirected())
	}
	g, err := builder.BuildGraph(nil, bopts, con)
	if err != nil {
		return nil, err
	}

	sc := &Scenario{Vertices: g.VertexCount()}
	for _, e := range replayOrder(g.Edges()) {
		sc.Steps = append(sc.Steps, Step{Op: opAddEdge, U: e.From, V: e.To, W: e.Weight})
	}
	for _, op := range opts.ops {
		sc.Steps = append(sc.Steps, Step{Op: op})
	}

	return sc, nil
}

// replayOrder reverses each tail's run of edges. Edges lists every list
// newest first, so adding them back in this order rebuilds identical lists.
func replayOrder(edges []core.Edge) []core.Edge {
	out := slices.Clone(edges)
	for i := 0; i < len(out); {
		j := i
		for j < len(out) && out[j].From == out[i].From {
			j++
		}
		slices.Reverse(out[i:j])
		i = j
	}

	return out
}
