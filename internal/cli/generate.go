package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thermo/bqm"
	"github.com/katalvlaran/thermo/builder"
	"github.com/katalvlaran/thermo/problemfile"
	"github.com/katalvlaran/thermo/sampler"
)

// genFlags describe a generated problem.
type genFlags struct {
	topology   string
	n          int
	rows, cols int
	p          float64
	seed       int64
	coupling   float64
	spinGlass  bool
	hLo, hHi   float64
	binary     bool
	prefix     string
}

func (g *genFlags) build() (*bqm.Model, error) {
	seed := g.seed
	if seed == 0 {
		seed = 1
	}
	opts := []builder.Option{builder.WithSeed(seed)}
	if g.prefix != "" {
		opts = append(opts, builder.WithPrefixIDs(g.prefix))
	}
	if g.hLo != 0 || g.hHi != 0 {
		if g.hLo > g.hHi {
			return nil, fmt.Errorf("--h-lo %g above --h-hi %g", g.hLo, g.hHi)
		}
		opts = append(opts, builder.WithUniformLinear(g.hLo, g.hHi))
	}
	if g.spinGlass {
		opts = append(opts, builder.WithSpinGlassCoupling())
	} else {
		opts = append(opts, builder.WithConstCoupling(g.coupling))
	}

	var cons builder.Constructor
	switch strings.ToLower(g.topology) {
	case "uncoupled":
		cons = builder.Uncoupled(g.n)
	case "chain":
		cons = builder.Chain(g.n)
	case "cycle":
		cons = builder.Cycle(g.n)
	case "grid":
		cons = builder.Grid(g.rows, g.cols)
	case "complete":
		cons = builder.Complete(g.n)
	case "sparse":
		if g.p < 0 || g.p > 1 {
			return nil, fmt.Errorf("--p must be in [0,1], got %g", g.p)
		}
		cons = builder.RandomSparse(g.n, g.p)
	default:
		return nil, fmt.Errorf("unknown topology %q (uncoupled, chain, cycle, grid, complete, sparse)", g.topology)
	}
	vt := bqm.Spin
	if g.binary {
		vt = bqm.Binary
	}
	return builder.BuildModel(vt, opts, cons)
}

func (a *app) generateCmd() *cobra.Command {
	var (
		g           genFlags
		outPath     string
		samplesPath string
		samplerT    float64
		reads       int
		sweeps      int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a test model and, optionally, Gibbs samples of it",
		Long: `Generate a binary quadratic model on a standard topology and write it as
YAML. With --samples-out the model is also sampled at --temperature, giving
inputs for thermo estimate whose true temperature is known.

Examples:
  thermo generate --topology chain --n 10 > chain.yaml
  thermo generate --topology grid --rows 8 --cols 8 --spin-glass --seed 3 \
      --out grid.yaml --samples-out samples.yaml --temperature 1.5 --reads 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") && a.cfg.Seed != 0 {
				g.seed = a.cfg.Seed
			}
			m, err := g.build()
			if err != nil {
				return err
			}
			if err := writeTo(outPath, cmd.OutOrStdout(), func(w io.Writer) error {
				return problemfile.EncodeModel(w, m)
			}); err != nil {
				return err
			}
			a.logger.Info("model generated", "topology", g.topology,
				"variables", m.NumVariables(), "interactions", m.NumInteractions())
			if samplesPath == "" {
				return nil
			}
			gs := &sampler.GibbsSampler{Temperature: samplerT}
			s, err := gs.Sample(cmd.Context(), m, sampler.Params{
				sampler.ParamNumReads: reads,
				sampler.ParamSweeps:   sweeps,
				sampler.ParamSeed:     g.seed,
			})
			if err != nil {
				return err
			}
			return writeTo(samplesPath, cmd.OutOrStdout(), func(w io.Writer) error {
				return problemfile.EncodeSamples(w, s)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&g.topology, "topology", "chain", "uncoupled, chain, cycle, grid, complete or sparse")
	f.IntVar(&g.n, "n", 8, "number of variables")
	f.IntVar(&g.rows, "rows", 4, "grid rows")
	f.IntVar(&g.cols, "cols", 4, "grid columns")
	f.Float64Var(&g.p, "p", 0.5, "coupling probability for sparse")
	f.Int64Var(&g.seed, "seed", 0, "seed for random biases and sampling")
	f.Float64Var(&g.coupling, "coupling", builder.DefaultCoupling, "constant coupling strength")
	f.BoolVar(&g.spinGlass, "spin-glass", false, "draw couplings from {-1,+1}")
	f.Float64Var(&g.hLo, "h-lo", 0, "lowest random linear bias")
	f.Float64Var(&g.hHi, "h-hi", 0, "highest random linear bias")
	f.BoolVar(&g.binary, "binary", false, "generate a BINARY model instead of SPIN")
	f.StringVar(&g.prefix, "prefix", "", "label prefix (e.g. q gives q0, q1, ...)")
	f.StringVarP(&outPath, "out", "o", "", "model output file (default: stdout)")
	f.StringVar(&samplesPath, "samples-out", "", "also write Gibbs samples to this file (- for stdout)")
	f.Float64VarP(&samplerT, "temperature", "T", 1, "Gibbs sampler temperature")
	f.IntVar(&reads, "reads", 100, "Gibbs reads")
	f.IntVar(&sweeps, "sweeps", 100, "Gibbs sweeps per read")
	return cmd
}

// writeTo writes through fn to path, or to stdout when path is "" or "-".
func writeTo(path string, stdout io.Writer, fn func(io.Writer) error) error {
	if path == "" || path == "-" {
		return fn(stdout)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(fh); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
