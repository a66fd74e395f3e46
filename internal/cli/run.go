package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/host"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>...",
		Short: "Execute scenario files against the graph engine",
		Long: `Execute one or more YAML scenario files.

Each scenario gets its own graph handle, created with the scenario's vertex
count and destroyed when it finishes. Steps run in order; the first failing
step aborts the scenario.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := make([]*Scenario, len(args))
			for i, path := range args {
				sc, err := loadScenario(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				scenarios[i] = sc
			}

			return a.execute(cmd.Context(), func(r *runner) error {
				for i, sc := range scenarios {
					if err := r.run(cmd.Context(), filepath.Base(args[i]), sc); err != nil {
						return fmt.Errorf("%s: %w", args[i], err)
					}
				}
				return nil
			})
		},
	}
}

// execute builds a registry from the resolved config, hands a runner to fn
// and prints the metrics summary when enabled.
func (a *app) execute(ctx context.Context, fn func(r *runner) error) error {
	reg := prometheus.NewRegistry()
	registry := host.NewRegistry(
		host.WithLogger(a.logger),
		host.WithMetrics(host.NewMetrics(reg)),
		host.WithMaxVertices(a.cfg.MaxVertices),
	)

	err := fn(newRunner(ctx, registry, a.out))
	if a.cfg.Metrics {
		if merr := printMetrics(a.out, reg); merr != nil {
			a.logger.Warn("metrics unavailable", "err", merr)
		}
	}

	return err
}

// printMetrics writes the non-histogram samples of g, one per line.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	st := newStyles(w)
	fmt.Fprintln(w, st.title.Render("metrics"))

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				value = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("  %s %s", st.dim.Render(name), st.value.Render(formatWeight(value))))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}

	return nil
}
