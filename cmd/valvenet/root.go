package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/optimizer"
	"github.com/katalvlaran/valvenet/valve"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "valvenet",
		Short:         "Plan valve openings that release the most pressure",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("verbose", false, "log search phases at debug level")
	root.AddCommand(newSolveCmd(), newDistancesCmd())

	return root
}

type solveFlags struct {
	config    string
	start     string
	minutes   int
	agents    int
	workers   int
	noPruning bool
	noMemo    bool
	plan      bool
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Print the best total release; reads stdin without input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "YAML config file")
	fl.StringVar(&f.start, "start", "", "start valve (default AA)")
	fl.IntVarP(&f.minutes, "minutes", "m", 0, "time budget (default 30 for one agent, 26 for two)")
	fl.IntVarP(&f.agents, "agents", "a", 0, "number of agents, 1 or 2")
	fl.IntVarP(&f.workers, "workers", "w", 0, "goroutines per search level (0 = one per CPU)")
	fl.BoolVar(&f.noPruning, "no-pruning", false, "disable branch-and-bound")
	fl.BoolVar(&f.noMemo, "no-memo", false, "disable duplicate state elimination")
	fl.BoolVar(&f.plan, "plan", false, "print the opening order of every agent")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file.
func resolveConfig(cmd *cobra.Command, f solveFlags) (optimizer.Config, error) {
	cfg := optimizer.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = optimizer.LoadConfig(f.config); err != nil {
			return cfg, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("start") {
		cfg.Start = f.start
	}
	if fl.Changed("minutes") {
		cfg.Minutes = f.minutes
	}
	if fl.Changed("agents") {
		cfg.Agents = f.agents
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if f.noPruning {
		cfg.Pruning = false
	}
	if f.noMemo {
		cfg.Memo = false
	}

	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, args []string, f solveFlags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	g, err := readGraph(cmd, args)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	logger.Info("solving", "valves", g.Len(), "valuable", len(g.Valuable()),
		"start", cfg.Start, "agents", cfg.Agents, "minutes", cfg.Budget())
	opts := append(cfg.Options(),
		optimizer.WithContext(cmd.Context()),
		optimizer.WithLogger(logger),
	)

	out := cmd.OutOrStdout()
	if cfg.Agents == 2 {
		p, err := optimizer.DualAgentPlan(g, cfg.Start, cfg.Budget(), opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, p.Yield)
		if f.plan {
			for i, a := range p.Agents {
				printPlan(out, fmt.Sprintf("agent %d", i+1), a)
			}
		}
		return nil
	}

	p, err := optimizer.SingleAgentPlan(g, cfg.Start, cfg.Budget(), opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, p.Yield)
	if f.plan {
		printPlan(out, "agent 1", p)
	}

	return nil
}

func printPlan(w io.Writer, name string, p optimizer.Plan) {
	steps := make([]string, len(p.Order))
	for i, id := range p.Order {
		steps[i] = fmt.Sprintf("%s@%d", id, p.Minutes[i])
	}
	fmt.Fprintf(w, "%s (%d): %s\n", name, p.Yield, strings.Join(steps, " "))
}

func newDistancesCmd() *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "distances [input]",
		Short: "Print the travel-time table between the start and valuable valves",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, args)
			if err != nil {
				return err
			}
			if err := g.Validate(start); err != nil {
				return err
			}
			dm, err := distance.Compute(g, append(g.Valuable(), start), distance.WithContext(cmd.Context()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ids := dm.IDs()
			fmt.Fprintf(out, "%-4s", "")
			for _, id := range ids {
				fmt.Fprintf(out, "%4s", id)
			}
			fmt.Fprintln(out)
			for i, id := range ids {
				fmt.Fprintf(out, "%-4s", id)
				for j := range ids {
					fmt.Fprintf(out, "%4d", dm.At(i, j))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "AA", "start valve")

	return cmd
}

// readGraph parses args[0], or the command's input when no file is given.
func readGraph(cmd *cobra.Command, args []string) (*valve.Graph, error) {
	if len(args) == 0 {
		return valve.Parse(cmd.InOrStdin())
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return valve.Parse(f)
}

// newLogger writes text records to the command's stderr, tagged with a
// fresh run id.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})

	return slog.New(h).With("run_id", uuid.NewString())
}
