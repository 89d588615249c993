// Package main provides the kruskalview CLI: it records the step-by-step
// history of Kruskal's algorithm and prints it or plays it back in the
// terminal.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kruskalview/builder"
	"github.com/katalvlaran/kruskalview/config"
	"github.com/katalvlaran/kruskalview/internal/ctxlog"
	"github.com/katalvlaran/kruskalview/internal/player"
	"github.com/katalvlaran/kruskalview/kruskal"
	"github.com/katalvlaran/kruskalview/matrix"
)

// Version is the current kruskalview version
var Version = "0.3.0"

const defaultRandomNodes = 8

var (
	configPath  string
	presetName  string
	matrixPath  string
	randomNodes int
	randomSeed  int64
	lang        string
	logLevel    string
	logFormat   string

	runFormat string

	playInterval time.Duration
	playAutoplay bool
)

var rootCmd = &cobra.Command{
	Use:     "kruskalview",
	Short:   "kruskalview - step through Kruskal's minimum spanning tree algorithm",
	Long:    `kruskalview runs Kruskal's algorithm over a weighted undirected graph and records every step as a replayable snapshot. Graphs come from a preset, a YAML adjacency matrix or a random generator.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, format := logLevel, logFormat
		if configPath != "" {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("log-level") {
				level = cfg.Log.Level
			}
			if !cmd.Flags().Changed("log-format") {
				format = cfg.Log.Format
			}
		}
		logger, err := ctxlog.New(level, format, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
		return nil
	},
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute the MST history and print it",
	Long: `Builds the configured graph, runs Kruskal's algorithm and prints the
recorded steps. Formats: text (one line per step plus a summary), json or yaml
(the full snapshot history, loadable for playback elsewhere).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return runHistory(cmd, cfg, runFormat)
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the MST history interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		g, err := cfg.BuildGraph()
		if err != nil {
			return err
		}
		log := ctxlog.FromContext(cmd.Context())
		log.Info("starting player", "nodes", g.NodeCount(), "links", g.LinkCount())

		// The TUI owns the terminal; the player logs nowhere.
		m, err := player.New(g, player.Options{
			Interval: cfg.Playback.Interval,
			Autoplay: cfg.Playback.Autoplay,
			Messages: cfg.Catalog(),
		})
		if err != nil {
			return err
		}
		return player.Run(m)
	},
}

var randomCmd = &cobra.Command{
	Use:   "random [nodes]",
	Short: "Print a random connected adjacency matrix as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := defaultRandomNodes
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid node count %q: %w", args[0], err)
			}
			n = v
		}
		var opts []builder.Option
		if cmd.Flags().Changed("seed") {
			opts = append(opts, builder.WithSeed(randomSeed))
		}
		a, err := builder.RandomMatrix(n, opts...)
		if err != nil {
			return err
		}
		ctxlog.FromContext(cmd.Context()).Debug("generated matrix", "nodes", n, "links", a.Edges())
		return matrix.Encode(cmd.OutOrStdout(), a)
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in graphs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range builder.PresetNames() {
			a, err := builder.Preset(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %2d nodes  %2d links\n", name, a.Size(), a.Edges())
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to a kruskalview YAML config file")
	pf.StringVar(&presetName, "preset", "", "Built-in graph to use (see 'kruskalview presets')")
	pf.StringVar(&matrixPath, "matrix", "", "YAML adjacency matrix file to use")
	pf.IntVar(&randomNodes, "random", 0, "Generate a random connected graph with this many nodes")
	pf.Int64Var(&randomSeed, "seed", 0, "Seed for random graphs (default: clock)")
	pf.StringVar(&lang, "lang", "", "Step message language: en or zh")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	pf.StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	runCmd.Flags().StringVar(&runFormat, "format", "text", "Output format: text, json or yaml")

	playCmd.Flags().DurationVar(&playInterval, "interval", 0, "Autoplay step interval (e.g. 300ms)")
	playCmd.Flags().BoolVar(&playAutoplay, "autoplay", false, "Start playing immediately")

	rootCmd.AddCommand(runCmd, playCmd, randomCmd, presetsCmd)
}

// resolveConfig loads the config file, if any, and applies flag overrides.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	sources := 0
	if flags.Changed("preset") {
		sources++
		cfg.Graph = config.GraphSource{Preset: presetName}
	}
	if flags.Changed("matrix") {
		sources++
		a, err := readMatrix(matrixPath)
		if err != nil {
			return nil, err
		}
		cfg.Graph = config.GraphSource{Matrix: a}
	}
	if flags.Changed("random") {
		sources++
		r := &config.Random{Nodes: randomNodes}
		if flags.Changed("seed") {
			seed := randomSeed
			r.Seed = &seed
		}
		cfg.Graph = config.GraphSource{Random: r}
	}
	if sources > 1 {
		return nil, config.ErrGraphSource
	}
	if flags.Changed("lang") {
		cfg.Lang = lang
	}
	if flags.Changed("interval") {
		cfg.Playback.Interval = playInterval
	}
	if flags.Changed("autoplay") {
		cfg.Playback.Autoplay = playAutoplay
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readMatrix(path string) (matrix.Adjacency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening matrix file: %w", err)
	}
	defer f.Close()

	return matrix.Decode(f)
}

func runHistory(cmd *cobra.Command, cfg *config.Config, format string) error {
	g, err := cfg.BuildGraph()
	if err != nil {
		return err
	}
	log := ctxlog.FromContext(cmd.Context())

	summary, err := kruskal.Summarize(g)
	if err != nil {
		return err
	}
	h, err := kruskal.Run(g,
		kruskal.WithMessages(cfg.Catalog()),
		kruskal.WithLogger(log),
	)
	if err != nil {
		return err
	}
	log.Info("history recorded", "steps", h.Len(), "mst_links", len(summary.Links), "weight", summary.TotalWeight)

	out := cmd.OutOrStdout()
	switch format {
	case "text":
		return writeText(out, h.Messages(), summary)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(h)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(h); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func writeText(w io.Writer, messages []string, s kruskal.Summary) error {
	for i, msg := range messages {
		if _, err := fmt.Fprintf(w, "%4d  %s\n", i, msg); err != nil {
			return err
		}
	}
	shape := "spanning tree"
	if !s.Spanning {
		shape = fmt.Sprintf("spanning forest, %d components", s.Components)
	}
	_, err := fmt.Fprintf(w, "\n%s: links %v, total weight %g\n", shape, s.Links, s.TotalWeight)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
