package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thermo/problemfile"
	"github.com/katalvlaran/thermo/temperature"
)

// estimatorFlags are the knobs shared by estimate and fast.
type estimatorFlags struct {
	bootstrap int
	seed      int64
	method    string
	lo, hi    float64
	workers   int
}

func (f *estimatorFlags) register(cmd *cobra.Command, defaultMethod string) {
	cmd.Flags().IntVarP(&f.bootstrap, "bootstrap", "b", 0, "number of bootstrap replicates")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed for random draws (0 = config or fixed default)")
	cmd.Flags().StringVar(&f.method, "method", defaultMethod, "root search: bisect or newton")
	cmd.Flags().Float64Var(&f.lo, "lo", temperature.DefaultBracketLo, "temperature bracket lower bound")
	cmd.Flags().Float64Var(&f.hi, "hi", temperature.DefaultBracketHi, "temperature bracket upper bound")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "concurrent bootstrap replicates (0 = GOMAXPROCS)")
}

// resolve fills unset flags from the configuration.
func (f *estimatorFlags) resolve(cmd *cobra.Command, a *app) (temperature.Method, error) {
	if !cmd.Flags().Changed("seed") {
		f.seed = a.cfg.Seed
	}
	if !cmd.Flags().Changed("workers") {
		f.workers = a.cfg.Workers
	}
	if !cmd.Flags().Changed("lo") {
		f.lo = a.cfg.BracketLo
	}
	if !cmd.Flags().Changed("hi") {
		f.hi = a.cfg.BracketHi
	}
	if !cmd.Flags().Changed("method") && cmd.Name() == "estimate" {
		f.method = a.cfg.Method
	}
	if f.bootstrap < 0 && cmd.Name() == "estimate" {
		return 0, fmt.Errorf("--bootstrap must be >= 0, got %d", f.bootstrap)
	}
	if f.workers < 0 {
		return 0, fmt.Errorf("--workers must be >= 0, got %d", f.workers)
	}
	return temperature.ParseMethod(f.method)
}

type estimateReport struct {
	RunID       string    `json:"run_id"`
	Temperature float64   `json:"temperature"`
	StdErr      float64   `json:"std_err"`
	Method      string    `json:"method"`
	Bootstrap   []float64 `json:"bootstrap,omitempty"`
	Notices     []string  `json:"notices,omitempty"`
}

func (a *app) estimateCmd() *cobra.Command {
	var (
		ef          estimatorFlags
		modelPath   string
		samplesPath string
		guess       float64
		resample    string
	)
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the effective temperature of a sample batch",
		Long: `Estimate the temperature T maximising the pseudo-likelihood of the samples
under the model. Both files use the problemfile YAML formats.

Examples:
  thermo estimate --model model.yaml --samples samples.yaml
  thermo estimate --model m.yaml --samples s.yaml --bootstrap 100 --seed 7
  thermo estimate --model m.yaml --samples s.yaml --method newton --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			method, err := ef.resolve(cmd, a)
			if err != nil {
				return err
			}
			m, err := problemfile.ReadModelFile(modelPath)
			if err != nil {
				return err
			}
			s, err := problemfile.ReadSamplesFile(samplesPath)
			if err != nil {
				return err
			}
			opts := []temperature.Option{
				temperature.WithBootstrap(ef.bootstrap),
				temperature.WithSeed(ef.seed),
				temperature.WithMethod(method),
				temperature.WithBracket(ef.lo, ef.hi),
				temperature.WithWorkers(ef.workers),
				temperature.WithLogger(a.logger),
			}
			if guess < 0 {
				return fmt.Errorf("--guess must be > 0, got %g", guess)
			}
			if guess > 0 {
				opts = append(opts, temperature.WithGuess(guess))
			}
			switch strings.ToLower(resample) {
			case "", "replicates":
			case "samples":
				opts = append(opts, temperature.WithResample(temperature.ResampleSamples))
			default:
				return fmt.Errorf("--resample must be replicates or samples, got %q", resample)
			}
			if a.metrics != nil {
				opts = append(opts, temperature.WithObserver(a.metrics))
			}

			res, err := temperature.MaximumPseudoLikelihood(temperature.Input{Model: m, Samples: s}, opts...)
			if err != nil {
				return err
			}
			a.logger.Info("temperature estimated", "temperature", res.T, "samples", s.Len(), "variables", m.NumVariables())
			return a.render(cmd.OutOrStdout(), estimateResult(a.runID, method, res))
		},
	}
	ef.register(cmd, temperature.MethodBisect.String())
	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "model YAML file")
	cmd.Flags().StringVarP(&samplesPath, "samples", "s", "", "samples YAML file")
	cmd.Flags().Float64Var(&guess, "guess", 0, "initial temperature guess (0 = from the largest excitation)")
	cmd.Flags().StringVar(&resample, "resample", "replicates", "bootstrap resample size: replicates or samples")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("samples")
	return cmd
}

func estimateResult(runID string, method temperature.Method, res temperature.Result) report {
	p := estimateReport{
		RunID:       runID,
		Temperature: res.T,
		StdErr:      res.StdErr(),
		Method:      method.String(),
		Bootstrap:   res.Bootstrap,
	}
	r := report{
		Title: "Effective temperature",
		Rows: []row{
			{"temperature", ff(res.T)},
			{"method", method.String()},
		},
	}
	if len(res.Bootstrap) > 0 {
		r.Rows = append(r.Rows,
			row{"std err", ff(p.StdErr)},
			row{"replicates", fmt.Sprint(len(res.Bootstrap))})
	}
	r.Rows = append(r.Rows, row{"run id", runID})
	for _, n := range res.Notices {
		p.Notices = append(p.Notices, n.Kind.String())
		r.Notes = append(r.Notes, n.Message)
	}
	r.Payload = p
	return r
}
