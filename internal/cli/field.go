package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thermo/bqm"
	"github.com/katalvlaran/thermo/problemfile"
	"github.com/katalvlaran/thermo/temperature"
)

type fieldReport struct {
	Form      string      `json:"form"`
	Variables []string    `json:"variables"`
	Values    [][]float64 `json:"values"`
	MaxValue  float64     `json:"max"`
}

func (a *app) fieldCmd() *cobra.Command {
	var modelPath, samplesPath, form string
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Print the effective field of every variable in every sample",
		Long: `Print effective fields h_i + sum_j J_ij s_j (--form field) or excitation
energies 2 s_i f_i (--form excitation). Without --samples the all-ones state
is used.

Examples:
  thermo field --model model.yaml
  thermo field --model m.yaml --samples s.yaml --form field --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var fform temperature.FieldForm
			switch strings.ToLower(form) {
			case "excitation":
				fform = temperature.Excitation
			case "field":
				fform = temperature.FieldOnly
			default:
				return fmt.Errorf("--form must be field or excitation, got %q", form)
			}
			m, err := problemfile.ReadModelFile(modelPath)
			if err != nil {
				return err
			}
			var s *bqm.SampleSet
			if samplesPath != "" {
				if s, err = problemfile.ReadSamplesFile(samplesPath); err != nil {
					return err
				}
			}
			f, err := temperature.EffectiveField(m, s, fform)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), fieldResult(f))
		},
	}
	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "model YAML file")
	cmd.Flags().StringVarP(&samplesPath, "samples", "s", "", "samples YAML file (default: all ones)")
	cmd.Flags().StringVar(&form, "form", "excitation", "field or excitation")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

func fieldResult(f *temperature.Field) report {
	p := fieldReport{Form: f.Form.String(), Variables: f.Variables, MaxValue: f.MaxExcitation()}
	r := report{Title: "Effective field (" + f.Form.String() + ")"}
	r.Rows = append(r.Rows, row{"variables", strings.Join(f.Variables, " ")})
	for i := 0; i < f.Len(); i++ {
		vals := f.Values.RawRowView(i)
		p.Values = append(p.Values, append([]float64(nil), vals...))
		cells := make([]string, len(vals))
		for j, x := range vals {
			cells[j] = fmt.Sprintf("%g", x)
		}
		r.Rows = append(r.Rows, row{fmt.Sprintf("sample %d", i), strings.Join(cells, " ")})
	}
	r.Payload = p
	return r
}
