package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thermo/units"
)

func (a *app) freezeoutCmd() *cobra.Command {
	var (
		b, t           float64
		unitsB, unitsT string
	)
	cmd := &cobra.Command{
		Use:   "freezeout",
		Short: "Effective temperature from freeze-out schedule energy and device temperature",
		Long: `Compute the unitless temperature 2 kB T / B(s*) of problems sampled without
auto-scaling.

Examples:
  thermo freezeout --b 3.91 --t 15.4
  thermo freezeout --b 2.6e-24 --units-b J --t 0.0154 --units-t K`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ub, err := units.ParseEnergyUnit(unitsB)
			if err != nil {
				return err
			}
			ut, err := units.ParseTemperatureUnit(unitsT)
			if err != nil {
				return err
			}
			T, err := units.FreezeoutEffectiveTemperature(b, ub, t, ut)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), report{
				Title:   "Freeze-out effective temperature",
				Payload: map[string]float64{"temperature": T},
				Rows: []row{
					{"B(s*)", ff(b) + " " + ub.String()},
					{"device temperature", ff(t) + " " + ut.String()},
					{"effective temperature", ff(T)},
				},
			})
		},
	}
	cmd.Flags().Float64Var(&b, "b", 3.91, "schedule energy B(s*) at freeze-out")
	cmd.Flags().StringVar(&unitsB, "units-b", "GHz", "units of --b: GHz or J")
	cmd.Flags().Float64Var(&t, "t", 15.4, "physical device temperature")
	cmd.Flags().StringVar(&unitsT, "units-t", "mK", "units of --t: mK or K")
	return cmd
}

// deviceFlags collect units.Params from flags.
type deviceFlags struct {
	ip, b, mafm               float64
	unitsIp, unitsB, unitsMAF string
}

func (d *deviceFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&d.ip, "ip", 0, "persistent current (0 = infer from --b and --mafm)")
	cmd.Flags().Float64Var(&d.b, "b", units.DefaultB, "schedule energy B(s)")
	cmd.Flags().Float64Var(&d.mafm, "mafm", units.DefaultMAFM, "mutual inductance M_AFM")
	cmd.Flags().StringVar(&d.unitsIp, "units-ip", "uA", "units of --ip: uA or A")
	cmd.Flags().StringVar(&d.unitsB, "units-b", "GHz", "units of --b: GHz or J")
	cmd.Flags().StringVar(&d.unitsMAF, "units-mafm", "pH", "units of --mafm: pH or H")
}

func (d *deviceFlags) params() (units.Params, error) {
	var (
		p   = units.Params{B: d.b, MAFM: d.mafm}
		err error
	)
	if p.UnitsIp, err = units.ParseCurrentUnit(d.unitsIp); err != nil {
		return p, err
	}
	if p.UnitsB, err = units.ParseEnergyUnit(d.unitsB); err != nil {
		return p, err
	}
	if p.UnitsMAFM, err = units.ParseInductanceUnit(d.unitsMAF); err != nil {
		return p, err
	}
	if d.ip != 0 {
		ip := d.ip
		p.Ip = &ip
	}
	return p, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = x
	}
	return out, nil
}

type conversion func([]float64, units.Params) ([]float64, error)

func (a *app) conversionCmd(use, short, long, inName, outName string, conv conversion) *cobra.Command {
	var d deviceFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseFloats(args)
			if err != nil {
				return err
			}
			p, err := d.params()
			if err != nil {
				return err
			}
			out, err := conv(in, p)
			if err != nil {
				return err
			}
			scale, err := units.IpInUnitsOfB(p)
			if err != nil {
				return err
			}
			cells := make([]string, len(out))
			for i, x := range out {
				cells[i] = ff(x)
			}
			return a.render(cmd.OutOrStdout(), report{
				Title:   short,
				Payload: map[string][]float64{inName: in, outName: out},
				Rows: []row{
					{"Ip·Φ0 in units of B", ff(scale)},
					{outName, strings.Join(cells, " ")},
				},
			})
		},
	}
	d.register(cmd)
	return cmd
}

func (a *app) fluxBiasCmd() *cobra.Command {
	return a.conversionCmd("fluxbias H...", "Convert Ising biases h to flux biases",
		`Convert unitless biases h to the flux biases (in units of the flux quantum)
producing the same longitudinal field at the given schedule point.

Examples:
  thermo fluxbias 0.1 -0.2
  thermo fluxbias --ip 0.3 --units-ip uA --b 1.2 1`,
		"h", "flux_bias", units.HToFluxBiases)
}

func (a *app) hBiasCmd() *cobra.Command {
	return a.conversionCmd("hbias PHI...", "Convert flux biases to Ising biases h",
		`Convert flux biases (in units of the flux quantum) to equivalent unitless
biases h. Inverse of fluxbias.

Examples:
  thermo hbias -- -0.001 0.0005`,
		"flux_bias", "h", units.FluxBiasesToH)
}
