package main

import (
	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/converters"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	kind      string
	n, m      int
	p         float64
	seed      int64
	weights   string
	minWeight int
	maxWeight int
	format    string
}

func newGenerateCommand(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph to standard output.",
		Long: "Kinds: path, cycle, star, complete, wheel (n vertices), grid (n rows, m cols),\n" +
			"bipartite (K_{n,m}), sparse (n vertices, edge probability p),\n" +
			"random (connected, n vertices plus m extra edges).",
		Args:         cobra.NoArgs,
		RunE:         newRunGenerate(root, opts),
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "random", "graph kind")
	cmd.Flags().IntVar(&opts.n, "n", 8, "vertex count (rows for grid, left side for bipartite)")
	cmd.Flags().IntVar(&opts.m, "m", 8, "extra edges for random, cols for grid, right side for bipartite")
	cmd.Flags().Float64Var(&opts.p, "p", 0.3, "edge probability for sparse")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&opts.weights, "weights", "w", "unit", "edge weights: unit, integer or uniform")
	cmd.Flags().IntVar(&opts.minWeight, "min", 1, "smallest weight for integer and uniform weights")
	cmd.Flags().IntVar(&opts.maxWeight, "max", 10, "largest weight for integer and uniform weights")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(converters.FormatEdgeList), "output format: edgelist, yaml or toml")

	return cmd
}

func (o *generateOptions) constructor() (builder.Constructor, error) {
	switch o.kind {
	case "path":
		return builder.Path(o.n), nil
	case "cycle":
		return builder.Cycle(o.n), nil
	case "star":
		return builder.Star(o.n), nil
	case "complete":
		return builder.Complete(o.n), nil
	case "wheel":
		return builder.Wheel(o.n), nil
	case "grid":
		return builder.Grid(o.n, o.m), nil
	case "bipartite":
		return builder.CompleteBipartite(o.n, o.m), nil
	case "sparse":
		return builder.RandomSparse(o.n, o.p), nil
	case "random":
		return builder.RandomConnected(o.n, o.m), nil
	}

	return nil, errors.Errorf("unknown graph kind %q", o.kind)
}

func (o *generateOptions) weightOption() (builder.BuilderOption, error) {
	if o.minWeight < 0 || o.maxWeight < o.minWeight {
		return nil, errors.Errorf("weights need 0 <= min <= max, got min=%d max=%d", o.minWeight, o.maxWeight)
	}
	switch o.weights {
	case "unit":
		return builder.WithWeightFn(builder.DefaultWeightFn), nil
	case "integer":
		return builder.WithIntegerWeight(o.minWeight, o.maxWeight), nil
	case "uniform":
		return builder.WithUniformWeight(float64(o.minWeight), float64(o.maxWeight)), nil
	}

	return nil, errors.Errorf("unknown weights %q (want unit, integer or uniform)", o.weights)
}

func newRunGenerate(root *rootOptions, opts *generateOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if root.verbose {
			log.SetLevel(log.DebugLevel)
		}
		cons, err := opts.constructor()
		if err != nil {
			return err
		}
		weights, err := opts.weightOption()
		if err != nil {
			return err
		}
		format, err := converters.ParseFormat(opts.format)
		if err != nil {
			return err
		}

		g, err := builder.BuildGraph(cons, builder.WithSeed(opts.seed), weights)
		if err != nil {
			return errors.Wrapf(err, "generating %s graph", opts.kind)
		}
		log.WithFields(log.Fields{
			"kind":     opts.kind,
			"vertices": g.Len(),
			"edges":    g.EdgeCount(),
			"seed":     opts.seed,
		}).Debug("graph generated")

		return converters.Write(cmd.OutOrStdout(), g, format)
	}
}
