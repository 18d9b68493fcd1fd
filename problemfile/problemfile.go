// SPDX-License-Identifier: MIT

// Package problemfile reads and writes models and sample batches as YAML.
//
// Model file:
//
//	vartype: SPIN
//	linear: {a: 0.5, b: -1}
//	quadratic:
//	  - {u: a, v: b, bias: -1}
//	offset: 0
//
// Samples file:
//
//	vartype: SPIN
//	variables: [a, b]
//	samples:
//	  - [1, -1]
//	  - [-1, -1]
package problemfile

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thermo/bqm"
)

// ErrEmptyDocument indicates a file with no YAML document.
var ErrEmptyDocument = errors.New("problemfile: empty document")

// Coupling is one quadratic term.
type Coupling struct {
	U    string  `yaml:"u"`
	V    string  `yaml:"v"`
	Bias float64 `yaml:"bias"`
}

// ModelFile is the on-disk form of a bqm.Model.
type ModelFile struct {
	Vartype   string             `yaml:"vartype"`
	Variables []string           `yaml:"variables,omitempty"`
	Linear    map[string]float64 `yaml:"linear,omitempty"`
	Quadratic []Coupling         `yaml:"quadratic,omitempty"`
	Offset    float64            `yaml:"offset,omitempty"`
}

// SamplesFile is the on-disk form of a bqm.SampleSet.
type SamplesFile struct {
	Vartype   string      `yaml:"vartype"`
	Variables []string    `yaml:"variables"`
	Samples   [][]float64 `yaml:"samples"`
	Energies  []float64   `yaml:"energies,omitempty"`
}

// Model converts the file to a model. Variables, when listed, fix the
// declaration order; remaining labels follow in sorted order, then
// coupling endpoints in file order.
func (f ModelFile) Model() (*bqm.Model, error) {
	vt, err := bqm.ParseVartype(f.Vartype)
	if err != nil {
		return nil, err
	}
	m := bqm.NewModel(vt)
	for _, v := range f.Variables {
		if err := m.AddVariable(v, f.Linear[v]); err != nil {
			return nil, err
		}
	}
	for _, v := range slices.Sorted(maps.Keys(f.Linear)) {
		if m.Has(v) {
			continue
		}
		if err := m.AddLinear(v, f.Linear[v]); err != nil {
			return nil, err
		}
	}
	for i, c := range f.Quadratic {
		if err := m.AddQuadratic(c.U, c.V, c.Bias); err != nil {
			return nil, fmt.Errorf("quadratic[%d]: %w", i, err)
		}
	}
	m.SetOffset(f.Offset)
	return m, nil
}

// FromModel captures m in declaration order.
func FromModel(m *bqm.Model) ModelFile {
	f := ModelFile{
		Vartype:   m.Vartype().String(),
		Variables: m.Variables(),
		Linear:    make(map[string]float64, m.NumVariables()),
		Offset:    m.Offset(),
	}
	for _, v := range f.Variables {
		f.Linear[v] = m.Linear(v)
	}
	for _, it := range m.Interactions() {
		f.Quadratic = append(f.Quadratic, Coupling{U: it.U, V: it.V, Bias: it.Bias})
	}
	return f
}

// SampleSet converts the file to a sample set.
func (f SamplesFile) SampleSet() (*bqm.SampleSet, error) {
	vt, err := bqm.ParseVartype(f.Vartype)
	if err != nil {
		return nil, err
	}
	s, err := bqm.NewSampleSet(f.Variables, f.Samples, vt)
	if err != nil {
		return nil, err
	}
	if f.Energies != nil {
		if err := s.SetEnergies(f.Energies); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// FromSampleSet captures s, energies included when recorded.
func FromSampleSet(s *bqm.SampleSet) SamplesFile {
	f := SamplesFile{
		Vartype:   s.Vartype().String(),
		Variables: s.Variables(),
		Samples:   make([][]float64, s.Len()),
		Energies:  s.Energies(),
	}
	for i := range f.Samples {
		row, _ := s.Row(i)
		f.Samples[i] = append([]float64(nil), row...)
	}
	return f
}

// LoadModel decodes one model document from r.
func LoadModel(r io.Reader) (*bqm.Model, error) {
	var f ModelFile
	if err := decode(r, &f); err != nil {
		return nil, fmt.Errorf("LoadModel: %w", err)
	}
	m, err := f.Model()
	if err != nil {
		return nil, fmt.Errorf("LoadModel: %w", err)
	}
	return m, nil
}

// LoadSamples decodes one samples document from r.
func LoadSamples(r io.Reader) (*bqm.SampleSet, error) {
	var f SamplesFile
	if err := decode(r, &f); err != nil {
		return nil, fmt.Errorf("LoadSamples: %w", err)
	}
	s, err := f.SampleSet()
	if err != nil {
		return nil, fmt.Errorf("LoadSamples: %w", err)
	}
	return s, nil
}

// ReadModelFile loads a model from path.
func ReadModelFile(path string) (*bqm.Model, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadModelFile: %w", err)
	}
	defer fh.Close()
	return LoadModel(fh)
}

// ReadSamplesFile loads a sample set from path.
func ReadSamplesFile(path string) (*bqm.SampleSet, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadSamplesFile: %w", err)
	}
	defer fh.Close()
	return LoadSamples(fh)
}

// EncodeModel writes m as YAML.
func EncodeModel(w io.Writer, m *bqm.Model) error {
	return encode(w, FromModel(m))
}

// EncodeSamples writes s as YAML.
func EncodeSamples(w io.Writer, s *bqm.SampleSet) error {
	return encode(w, FromSampleSet(s))
}

func decode(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyDocument
		}
		return err
	}
	return nil
}

func encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
