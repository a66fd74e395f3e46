package cli

import (
	"github.com/spf13/cobra"
)

// sampleEdges is the six-vertex demo graph.
var sampleEdges = []Step{
	{U: 0, V: 1, W: 5},
	{U: 1, V: 2, W: 3},
	{U: 0, V: 3, W: 2},
	{U: 1, V: 4, W: 1},
	{U: 2, V: 5, W: 4},
	{U: 3, V: 4, W: 6},
	{U: 4, V: 5, W: 2},
}

// demoScenario builds the sample graph and runs every algorithm from vertex
// 0. Prim is only meaningful on the undirected build and is skipped otherwise.
func demoScenario(directed bool) *Scenario {
	edgeOp := opAddUndirectedEdge
	if directed {
		edgeOp = opAddEdge
	}

	sc := &Scenario{Vertices: 6}
	for _, e := range sampleEdges {
		e.Op = edgeOp
		sc.Steps = append(sc.Steps, e)
	}
	sc.Steps = append(sc.Steps,
		Step{Op: opPrint},
		Step{Op: opBFS},
		Step{Op: opDFS},
		Step{Op: opDijkstra},
		Step{Op: opDistances},
	)
	if !directed {
		sc.Steps = append(sc.Steps, Step{Op: opPrim})
	}

	return sc
}

func newDemoCmd(a *app) *cobra.Command {
	var directed bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run every algorithm on a built-in six-vertex graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "demo (undirected)"
			if directed {
				name = "demo (directed)"
			}
			return a.execute(cmd.Context(), func(r *runner) error {
				return r.run(cmd.Context(), name, demoScenario(directed))
			})
		},
	}
	cmd.Flags().BoolVar(&directed, "directed", false, "add each edge in one direction only")

	return cmd
}
