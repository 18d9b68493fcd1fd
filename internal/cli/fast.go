package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thermo/builder"
	"github.com/katalvlaran/thermo/sampler"
	"github.com/katalvlaran/thermo/temperature"
)

type fastReport struct {
	RunID        string   `json:"run_id"`
	Temperature  float64  `json:"temperature"`
	StdErr       float64  `json:"std_err"`
	SamplerT     float64  `json:"sampler_temperature"`
	Nodes        int      `json:"nodes"`
	NumReads     int      `json:"num_reads"`
	NumBootstrap int      `json:"num_bootstrap"`
	Notices      []string `json:"notices,omitempty"`
}

func (a *app) fastCmd() *cobra.Command {
	var (
		ef       estimatorFlags
		nodes    int
		samplerT float64
		reads    int
		sweeps   int
		hLo, hHi float64
		limit    float64
	)
	cmd := &cobra.Command{
		Use:   "fast",
		Short: "Fast temperature estimate of a Gibbs sampler on single-variable problems",
		Long: `Program random linear biases on every node of an uncoupled model, sample it
with a Gibbs sampler at --temperature and estimate the effective temperature
of the result. The estimate should recover the sampler temperature.

A negative --bootstrap uses one replicate per read.

Examples:
  thermo fast --temperature 0.2
  thermo fast --temperature 0.5 --nodes 1000 --reads 200 --bootstrap -1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			method, err := ef.resolve(cmd, a)
			if err != nil {
				return err
			}
			if nodes < 1 {
				return fmt.Errorf("--nodes must be >= 1, got %d", nodes)
			}
			s := &sampler.GibbsSampler{Temperature: samplerT}
			s.Nodes = make([]string, nodes)
			for i := range s.Nodes {
				s.Nodes[i] = builder.SymbolNumberIDFn("q")(i)
			}
			if limit > 0 {
				s.HRange = &sampler.Range{Lo: -limit, Hi: limit}
			}
			opts := temperature.DefaultFastOptions()
			opts.NumReads = reads
			opts.Seed = ef.seed
			opts.HRange = sampler.Range{Lo: hLo, Hi: hHi}
			opts.Params = sampler.Params{sampler.ParamSweeps: sweeps, sampler.ParamSeed: ef.seed}
			opts.Method = method
			opts.BracketLo, opts.BracketHi = ef.lo, ef.hi
			opts.NumBootstrap = ef.bootstrap
			opts.Workers = ef.workers
			opts.Logger = a.logger
			if a.metrics != nil {
				opts.Observer = a.metrics
			}

			res, err := temperature.FastEstimate(cmd.Context(), s, opts)
			if err != nil {
				return err
			}
			a.logger.Info("fast estimate", "temperature", res.T, "sampler_temperature", samplerT)
			p := fastReport{
				RunID:        a.runID,
				Temperature:  res.T,
				StdErr:       res.StdErr(),
				SamplerT:     samplerT,
				Nodes:        nodes,
				NumReads:     reads,
				NumBootstrap: len(res.Bootstrap),
			}
			for _, n := range res.Notices {
				p.Notices = append(p.Notices, n.Kind.String())
			}
			r := estimateResult(a.runID, method, res)
			r.Title = "Fast effective temperature"
			r.Rows = append([]row{{"sampler temperature", ff(samplerT)}}, r.Rows...)
			r.Payload = p
			return a.render(cmd.OutOrStdout(), r)
		},
	}
	ef.register(cmd, temperature.MethodNewton.String())
	cmd.Flags().IntVar(&nodes, "nodes", 100, "number of sampler nodes")
	cmd.Flags().Float64VarP(&samplerT, "temperature", "T", 0.2, "Gibbs sampler temperature")
	cmd.Flags().IntVar(&reads, "reads", temperature.DefaultNumReads, "samples requested")
	cmd.Flags().IntVar(&sweeps, "sweeps", 1, "Gibbs sweeps per read (1 is exact for uncoupled models)")
	cmd.Flags().Float64Var(&hLo, "h-lo", temperature.DefaultHRange.Lo, "lowest programmed linear bias")
	cmd.Flags().Float64Var(&hHi, "h-hi", temperature.DefaultHRange.Hi, "highest programmed linear bias")
	cmd.Flags().Float64Var(&limit, "h-limit", 0, "advertised programmable |h| limit (0 = unbounded)")
	return cmd
}
