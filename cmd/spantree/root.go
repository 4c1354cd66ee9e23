package main

import (
	"io"
	"os"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/converters"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rootOptions are the flag values of one command instance.
type rootOptions struct {
	configPath string
	format     string
	output     string
	method     string
	forest     bool
	strict     bool
	verbose    bool
	profile    string
	profileDir string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "spantree [graph file]",
		Short: "Compute the minimum spanning tree of a weighted undirected graph.",
		Long: "Reads a graph (edge list, YAML or TOML) from the given file or from standard input\n" +
			"and prints the spanning tree grown from vertex 0 as (source, child) pairs.",
		Args:         cobra.MaximumNArgs(1),
		RunE:         newRunCompute(opts),
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&opts.format, "format", "", "input format: edgelist, yaml or toml (default: from file extension)")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "text", "result format: text or yaml")
	rootCmd.Flags().StringVarP(&opts.method, "method", "m", prim_kruskal.MethodPrim, "algorithm: prim or kruskal")
	rootCmd.Flags().BoolVar(&opts.forest, "forest", false, "span every component instead of only vertex 0's")
	rootCmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when the graph is disconnected")
	rootCmd.Flags().StringVar(&opts.profile, "profile", "", "write a cpu or mem profile")
	rootCmd.Flags().StringVar(&opts.profileDir, "profile-dir", ".", "directory for profile output")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newGenerateCommand(opts))

	return rootCmd
}

// loadConfig reads the config file and overlays every flag the user set.
func loadConfig(flags *pflag.FlagSet, opts *rootOptions) (*Config, error) {
	cfg, err := ReadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if flags.Changed("method") {
		cfg.Method = opts.method
	}
	if flags.Changed("forest") {
		cfg.Forest = opts.forest
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if opts.verbose {
		cfg.LevelString = log.DebugLevel.String()
	}

	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *Config) (*log.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logger := log.New()
	logger.Out = cmd.ErrOrStderr()
	logger.SetLevel(lvl)

	return logger, nil
}

func startProfile(kind, dir string) (interface{ Stop() }, error) {
	var mode func(*profile.Profile)
	switch kind {
	case "":
		return nil, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return nil, errors.Errorf("unknown profile %q (want cpu or mem)", kind)
	}

	return profile.Start(mode, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook), nil
}

func newRunCompute(opts *rootOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags(), opts)
		if err != nil {
			return err
		}
		logger, err := newLogger(cmd, cfg)
		if err != nil {
			return err
		}

		p, err := startProfile(opts.profile, opts.profileDir)
		if err != nil {
			return err
		}
		if p != nil {
			defer p.Stop()
		}

		g, err := readGraph(cmd, cfg, args, logger)
		if err != nil {
			return err
		}

		mstOpts := []prim_kruskal.Option{
			prim_kruskal.WithMethod(cfg.Method),
			prim_kruskal.WithLogger(logger),
		}
		if cfg.Forest {
			mstOpts = append(mstOpts, prim_kruskal.WithForest())
		}
		if cfg.Strict {
			mstOpts = append(mstOpts, prim_kruskal.WithRequireSpanning())
		}
		res, err := prim_kruskal.Compute(g, mstOpts...)
		if err != nil {
			return errors.Wrap(err, "computing spanning tree")
		}
		logger.WithFields(log.Fields{
			"method":     cfg.Method,
			"edges":      len(res.Edges),
			"total":      res.Total,
			"components": res.Components,
		}).Info("spanning tree computed")
		if len(res.Unreached) > 0 {
			logger.Warnf("%d vertex(es) not reachable from vertex %d", len(res.Unreached), prim_kruskal.StartVertex)
		}

		return converters.WriteResult(cmd.OutOrStdout(), res, cfg.Output)
	}
}

// readGraph loads the graph named by args, or standard input when args is
// empty or "-". A terminal on standard input gets the edge-count prompt.
func readGraph(cmd *cobra.Command, cfg *Config, args []string, logger log.FieldLogger) (*core.AdjacencyList, error) {
	var (
		r      io.Reader
		name   = "stdin"
		format = converters.FormatEdgeList
		eopts  []converters.EdgeListOption
	)
	if len(args) == 0 || args[0] == "-" {
		r = cmd.InOrStdin()
		if f, ok := r.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			eopts = append(eopts, converters.WithPrompt(cmd.ErrOrStderr()))
		}
	} else {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "opening graph")
		}
		defer f.Close()
		r = f
		format = converters.FormatFromPath(name)
	}
	if cfg.Format != "" {
		f, err := converters.ParseFormat(cfg.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}

	logger.Debugf("Reading %s graph from %s", format, name)
	g, err := converters.Read(r, format, eopts...)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	logger.WithFields(log.Fields{"vertices": g.Len(), "edges": g.EdgeCount()}).Debug("graph loaded")
	if comps, err := bfs.Components(g, bfs.WithContext(cmd.Context())); err == nil && len(comps) > 1 {
		logger.Warnf("graph has %d connected components", len(comps))
	}

	return g, nil
}
