package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/monument-ringing/monument/compose"
	"github.com/monument-ringing/monument/graph"
	"github.com/monument-ringing/monument/orchestrator"
	"github.com/monument-ringing/monument/passes"
	"github.com/monument-ringing/monument/query"
	"github.com/monument-ringing/monument/search"
)

// searchOptions holds the search command's flags.
type searchOptions struct {
	workers    int
	queueLimit int
	format     string
}

func newSearchCmd(loader QueryLoader) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query-file>",
		Short: "Search for compositions matching a query file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := newRunConfig(
				WithWorkers(opts.workers),
				WithQueueLimit(opts.queueLimit),
				WithFormat(opts.format),
			)
			return runSearch(cmd, loader, args[0], cfg)
		},
	}

	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Worker goroutines (0 = one per start chunk)")
	cmd.Flags().IntVarP(&opts.queueLimit, "queue-limit", "q", 0, "Total frontier size across all workers (0 = default of 10000)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	return cmd
}

func runSearch(cmd *cobra.Command, loader QueryLoader, path string, cfg *runConfig) error {
	q, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("load query: %w", err)
	}

	resolved, err := query.Resolve(&q)
	if err != nil {
		return fmt.Errorf("resolve query: %w", err)
	}
	layout, err := query.NewLayout(resolved)
	if err != nil {
		return fmt.Errorf("build layout: %w", err)
	}
	graphObj, err := graph.Build(layout, resolved.Group.Size(), q.LengthRange.Max, q.GraphSizeLimit)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	passes.Optimise(graphObj, passes.DefaultPipeline(q.LengthRange.Max, q.MaxDufferRows))

	slog.Info("graph built", slog.Int("chunks", len(graphObj.Chunks)), slog.Int("starts", len(graphObj.Starts)))

	methods := make([]compose.MethodDisplay, len(resolved.Methods))
	for i, m := range resolved.Methods {
		methods[i] = compose.MethodDisplay{Shorthand: m.Spec.Shorthand, LeadLen: m.Method.LeadLen()}
		slog.Debug("method resolved", slog.String("shorthand", m.Spec.Shorthand), slog.Int("course_leads", layout.CourseLength(i)))
	}
	calls := make([]compose.CallDisplay, len(resolved.Calls))
	for i, c := range resolved.Calls {
		calls[i] = compose.CallDisplay{
			Symbol:           c.Spec.Symbol,
			DebugSymbol:      c.Spec.DebugSymbol,
			CallingPositions: c.Spec.CallingPositions,
		}
	}
	style := compose.Style{
		ShowMethodShorthand: q.SpliceStyle == query.LeadLabels,
		CallingPositions:    q.SpliceStyle == query.CallingPositions,
	}

	searchCfg := search.Config{
		MinLength:  q.LengthRange.Min,
		MaxLength:  q.LengthRange.Max,
		NumComps:   q.NumComps,
		QueueLimit: cfg.queueLimit,
		GroupSize:  resolved.Group.Size(),
		AllowFalse: q.AllowFalse,
	}
	orchCfg := orchestrator.Config{Search: searchCfg, Workers: cfg.workers}

	var abort atomic.Bool
	out := cmd.OutOrStdout()
	var comps []*compose.Composition

	orchestrator.Run(graphObj, resolved, layout, orchCfg, &abort, func(u orchestrator.Update) {
		switch u.Kind {
		case orchestrator.UpdateComp:
			comps = append(comps, u.Comp)
		case orchestrator.UpdateProgress:
			slog.Debug("progress",
				slog.Int("iter", u.Progress.IterCount),
				slog.Int("queue_len", u.Progress.QueueLen),
				slog.Int("comps", u.Progress.NumComps))
		case orchestrator.UpdateAborting:
			slog.Info("search aborted")
		}
	})

	if cfg.format == "json" {
		return writeJSON(out, comps)
	}
	return writeText(out, comps, int(q.Stage), methods, calls, style)
}

func writeJSON(w io.Writer, comps []*compose.Composition) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(comps)
}

func writeText(w io.Writer, comps []*compose.Composition, stage int, methods []compose.MethodDisplay, calls []compose.CallDisplay, style compose.Style) error {
	for i, c := range comps {
		callString := compose.FormatCallString(c, stage, methods, calls, style)
		if _, err := fmt.Fprintf(w, "%d. length %d, score %.2f: %s\n", i+1, c.Length, c.TotalScore, callString); err != nil {
			return err
		}
	}
	return nil
}
