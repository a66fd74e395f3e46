package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/host"
)

// ErrBadScenario is returned for scenario files that cannot be executed.
var ErrBadScenario = errors.New("cli: bad scenario")

// Operation names accepted in a scenario step.
const (
	opAddNode           = "add_node"
	opRemoveNode        = "remove_node"
	opAddEdge           = "add_edge"
	opAddUndirectedEdge = "add_undirected_edge"
	opRemoveEdge        = "remove_edge"
	opBFS               = "bfs"
	opDFS               = "dfs"
	opDijkstra          = "dijkstra"
	opPrim              = "prim"
	opPrint             = "print"
	opDistances         = "distances"
)

var knownOps = map[string]bool{
	opAddNode: true, opRemoveNode: true,
	opAddEdge: true, opAddUndirectedEdge: true, opRemoveEdge: true,
	opBFS: true, opDFS: true, opDijkstra: true, opPrim: true, opPrint: true,
	opDistances: true,
}

// Scenario is a graph size plus an ordered list of operations on it.
//
//	vertices: 3
//	steps:
//	  - {op: add_edge, u: 0, v: 1, w: 2.5}
//	  - {op: dijkstra, start: 0}
type Scenario struct {
	Vertices int    `yaml:"vertices"`
	Steps    []Step `yaml:"steps,omitempty"`
}

// Step is one operation. Fields an operation does not use are ignored.
type Step struct {
	Op    string  `yaml:"op"`
	U     int     `yaml:"u,omitempty"`
	V     int     `yaml:"v,omitempty"`
	W     float64 `yaml:"w,omitempty"`
	Start int     `yaml:"start,omitempty"`
}

func (s Step) String() string {
	switch s.Op {
	case opRemoveNode:
		return fmt.Sprintf("%s(%d)", s.Op, s.U)
	case opAddEdge, opAddUndirectedEdge:
		return fmt.Sprintf("%s(%d, %d, %g)", s.Op, s.U, s.V, s.W)
	case opRemoveEdge:
		return fmt.Sprintf("%s(%d, %d)", s.Op, s.U, s.V)
	case opBFS, opDFS, opDijkstra:
		return fmt.Sprintf("%s(%d)", s.Op, s.Start)
	default:
		return s.Op
	}
}

// parseScenario decodes and validates YAML scenario data.
func parseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScenario, err)
	}
	if sc.Vertices < 0 {
		return nil, fmt.Errorf("%w: vertices must be non-negative, got %d", ErrBadScenario, sc.Vertices)
	}
	for i, st := range sc.Steps {
		if !knownOps[st.Op] {
			return nil, fmt.Errorf("%w: step %d: unknown op %q", ErrBadScenario, i, st.Op)
		}
	}

	return &sc, nil
}

// loadScenario reads and parses a scenario file.
func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScenario, err)
	}

	return parseScenario(data)
}

// runner executes scenarios against a host registry, writing results to out.
type runner struct {
	reg *host.Registry
	out io.Writer
	st  styles
	log *log.Logger
}

func newRunner(ctx context.Context, reg *host.Registry, out io.Writer) *runner {
	return &runner{
		reg: reg,
		out: out,
		st:  newStyles(out),
		log: loggerFromContext(ctx),
	}
}

// run creates a graph for sc, applies every step in order and destroys the
// graph. It stops at the first failing step or when ctx is cancelled.
func (r *runner) run(ctx context.Context, name string, sc *Scenario) error {
	h, err := r.reg.GraphCreate(sc.Vertices)
	if err != nil {
		return err
	}
	defer func() {
		if err := r.reg.GraphDestroy(h); err != nil {
			r.log.Warn("destroy failed", "handle", h, "err", err)
		}
	}()

	r.log.Debug("scenario started", "name", name, "handle", h, "vertices", sc.Vertices, "steps", len(sc.Steps))
	fmt.Fprintln(r.out, r.st.title.Render(name))

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.step(h, step); err != nil {
			return fmt.Errorf("step %d %s: %w", i, step, err)
		}
	}

	n, err := r.reg.GraphVertexCount(h)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "%s %s\n", r.st.success.Render(iconSuccess),
		r.st.dim.Render(fmt.Sprintf("%d steps, %d vertices", len(sc.Steps), n)))

	return nil
}

func (r *runner) step(h host.Handle, s Step) error {
	switch s.Op {
	case opAddNode:
		return r.reg.GraphAddNode(h)
	case opRemoveNode:
		return r.reg.GraphRemoveNode(h, s.U)
	case opAddEdge:
		return r.reg.GraphAddEdge(h, s.U, s.V, s.W)
	case opAddUndirectedEdge:
		return r.reg.GraphAddUndirectedEdge(h, s.U, s.V, s.W)
	case opRemoveEdge:
		return r.reg.GraphRemoveEdge(h, s.U, s.V)
	case opBFS:
		order, err := r.reg.GraphBFS(h, s.Start)
		if err != nil {
			return err
		}
		r.line(s, formatOrder(order))
	case opDFS:
		order, err := r.reg.GraphDFS(h, s.Start)
		if err != nil {
			return err
		}
		r.line(s, formatOrder(order))
	case opDijkstra:
		dist, parent, err := r.reg.GraphDijkstra(h, s.Start)
		if err != nil {
			return err
		}
		r.line(s, "")
		for v := range dist {
			fmt.Fprintf(r.out, "  %s %s %s\n",
				r.st.label.Render(fmt.Sprintf("%3d", v)),
				r.st.value.Render("dist="+formatWeight(dist[v])),
				r.st.dim.Render(fmt.Sprintf("parent=%d", parent[v])))
		}
	case opPrim:
		edges, total, err := r.reg.GraphPrim(h)
		if err != nil {
			return err
		}
		r.line(s, r.st.value.Render("total="+formatWeight(total)))
		for _, e := range edges {
			fmt.Fprintf(r.out, "  %d %s %d %s\n", e.From, r.st.dim.Render("--"), e.To,
				r.st.dim.Render("w="+formatWeight(e.Weight)))
		}
	case opPrint:
		text, err := r.reg.GraphPrint(h)
		if err != nil {
			return err
		}
		r.line(s, "")
		for _, l := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
			fmt.Fprintln(r.out, "  "+l)
		}
	case opDistances:
		rows, err := r.reg.GraphDistances(h)
		if err != nil {
			return err
		}
		r.line(s, "")
		for u, row := range rows {
			cells := make([]string, len(row))
			for v, d := range row {
				cells[v] = fmt.Sprintf("%6s", formatWeight(d))
			}
			fmt.Fprintf(r.out, "  %s %s\n", r.st.label.Render(fmt.Sprintf("%3d", u)), strings.Join(cells, " "))
		}
	default:
		return fmt.Errorf("%w: unknown op %q", ErrBadScenario, s.Op)
	}

	return nil
}

// line prints a step header followed by an optional inline result.
func (r *runner) line(s Step, result string) {
	head := r.st.dim.Render(iconArrow) + " " + r.st.label.Render(s.String())
	if result == "" {
		fmt.Fprintln(r.out, head)
		return
	}
	fmt.Fprintln(r.out, head+" "+result)
}

func formatOrder(order []int32) string {
	parts := make([]string, len(order))
	for i, v := range order {
		parts[i] = strconv.Itoa(int(v))
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
