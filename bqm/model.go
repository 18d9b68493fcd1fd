// SPDX-License-Identifier: MIT

package bqm

import (
	"fmt"
	"math"
)

// equalTol is the absolute tolerance used by Model.Equal.
const equalTol = 1e-12

// Model is a binary quadratic model over labelled variables.
//
// Variables keep their insertion order. Couplings are stored symmetrically in
// adj (adj[i][j] == adj[j][i]) but represent one coefficient per pair.
type Model struct {
	vartype Vartype
	order   []string          // declared variable order
	index   map[string]int    // label -> position in order
	linear  []float64         // h (or Q_ii) by position
	adj     []map[int]float64 // neighbours by position, mirrored
	offset  float64
}

// NewModel returns an empty model of the given vartype.
func NewModel(vt Vartype) *Model {
	return &Model{
		vartype: vt,
		index:   make(map[string]int),
	}
}

// FromIsing builds a Spin model from linear biases h and couplings J.
// Map iteration order is not observable: variables from h are declared in
// sorted order first, followed by any new endpoints of J in sorted pair order.
func FromIsing(h map[string]float64, J map[[2]string]float64, offset float64) (*Model, error) {
	return fromMaps(Spin, h, J, offset)
}

// FromQUBO builds a Binary model from a QUBO dictionary. Diagonal entries
// Q[{v,v}] become linear biases; off-diagonal entries are couplings.
func FromQUBO(Q map[[2]string]float64, offset float64) (*Model, error) {
	h := make(map[string]float64)
	J := make(map[[2]string]float64)
	for k, bias := range Q {
		if k[0] == k[1] {
			h[k[0]] += bias
			continue
		}
		J[k] += bias
	}
	return fromMaps(Binary, h, J, offset)
}

func fromMaps(vt Vartype, h map[string]float64, J map[[2]string]float64, offset float64) (*Model, error) {
	m := NewModel(vt)
	for _, v := range sortedKeys(h) {
		if err := m.AddLinear(v, h[v]); err != nil {
			return nil, err
		}
	}
	for _, k := range sortedPairs(J) {
		if err := m.AddQuadratic(k[0], k[1], J[k]); err != nil {
			return nil, err
		}
	}
	if err := checkFinite(offset); err != nil {
		return nil, fmt.Errorf("offset: %w", err)
	}
	m.offset = offset
	return m, nil
}

// Vartype returns the model's variable domain.
func (m *Model) Vartype() Vartype { return m.vartype }

// Offset returns the constant energy term.
func (m *Model) Offset() float64 { return m.offset }

// SetOffset replaces the constant energy term.
func (m *Model) SetOffset(c float64) { m.offset = c }

// NumVariables returns the number of declared variables.
func (m *Model) NumVariables() int { return len(m.order) }

// NumInteractions returns the number of stored couplings (unordered pairs).
func (m *Model) NumInteractions() int {
	n := 0
	for _, nb := range m.adj {
		n += len(nb)
	}
	return n / 2
}

// Variables returns a copy of the declared variable order.
func (m *Model) Variables() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Has reports whether v is declared.
func (m *Model) Has(v string) bool {
	_, ok := m.index[v]
	return ok
}

// Index returns the position of v in the declared order.
func (m *Model) Index(v string) (int, bool) {
	i, ok := m.index[v]
	return i, ok
}

// AddVariable declares v (if absent) and adds bias to its linear term.
// It is an alias of AddLinear kept for readability at call sites that
// declare variables.
func (m *Model) AddVariable(v string, bias float64) error {
	return m.AddLinear(v, bias)
}

// AddLinear adds bias to the linear coefficient of v, declaring v if needed.
func (m *Model) AddLinear(v string, bias float64) error {
	if err := checkFinite(bias); err != nil {
		return fmt.Errorf("AddLinear(%s): %w", v, err)
	}
	i, err := m.ensure(v)
	if err != nil {
		return fmt.Errorf("AddLinear: %w", err)
	}
	m.linear[i] += bias
	return nil
}

// AddQuadratic adds bias to the coupling between u and v, declaring both
// endpoints if needed. (u,v) and (v,u) address the same coefficient.
func (m *Model) AddQuadratic(u, v string, bias float64) error {
	if u == v {
		return fmt.Errorf("AddQuadratic(%s,%s): %w", u, v, ErrSelfLoop)
	}
	if err := checkFinite(bias); err != nil {
		return fmt.Errorf("AddQuadratic(%s,%s): %w", u, v, err)
	}
	i, err := m.ensure(u)
	if err != nil {
		return fmt.Errorf("AddQuadratic: %w", err)
	}
	j, err := m.ensure(v)
	if err != nil {
		return fmt.Errorf("AddQuadratic: %w", err)
	}
	m.adj[i][j] += bias
	m.adj[j][i] = m.adj[i][j]
	return nil
}

// Linear returns h_v (0 for unknown variables).
func (m *Model) Linear(v string) float64 {
	if i, ok := m.index[v]; ok {
		return m.linear[i]
	}
	return 0
}

// Quadratic returns the coupling between u and v and whether it is stored.
func (m *Model) Quadratic(u, v string) (float64, bool) {
	i, ok := m.index[u]
	if !ok {
		return 0, false
	}
	j, ok := m.index[v]
	if !ok {
		return 0, false
	}
	b, ok := m.adj[i][j]
	return b, ok
}

// Degree returns the number of neighbours of v.
func (m *Model) Degree(v string) int {
	if i, ok := m.index[v]; ok {
		return len(m.adj[i])
	}
	return 0
}

// Neighbors returns the neighbours of v in declared variable order.
func (m *Model) Neighbors(v string) []Neighbor {
	i, ok := m.index[v]
	if !ok {
		return nil
	}
	out := make([]Neighbor, 0, len(m.adj[i]))
	for _, j := range sortedInts(m.adj[i]) {
		out = append(out, Neighbor{Label: m.order[j], Bias: m.adj[i][j]})
	}
	return out
}

// Interactions returns every stored coupling once, ordered by the position
// of U then V in the declared order (U precedes V).
func (m *Model) Interactions() []Interaction {
	out := make([]Interaction, 0, m.NumInteractions())
	for i := range m.order {
		for _, j := range sortedInts(m.adj[i]) {
			if j <= i {
				continue
			}
			out = append(out, Interaction{U: m.order[i], V: m.order[j], Bias: m.adj[i][j]})
		}
	}
	return out
}

// RemoveInteraction deletes the coupling between u and v and reports
// whether it existed. Both endpoints stay declared.
func (m *Model) RemoveInteraction(u, v string) bool {
	i, ok := m.index[u]
	if !ok {
		return false
	}
	j, ok := m.index[v]
	if !ok {
		return false
	}
	if _, ok := m.adj[i][j]; !ok {
		return false
	}
	delete(m.adj[i], j)
	delete(m.adj[j], i)
	return true
}

// RemoveVariable deletes v and all its couplings. Unknown labels are a no-op.
func (m *Model) RemoveVariable(v string) {
	k, ok := m.index[v]
	if !ok {
		return
	}
	rest := NewModel(m.vartype)
	rest.offset = m.offset
	for i, u := range m.order {
		if i == k {
			continue
		}
		_, _ = rest.ensure(u)
		rest.linear[rest.index[u]] = m.linear[i]
	}
	for _, it := range m.Interactions() {
		if it.U == v || it.V == v {
			continue
		}
		i, j := rest.index[it.U], rest.index[it.V]
		rest.adj[i][j] = it.Bias
		rest.adj[j][i] = it.Bias
	}
	*m = *rest
}

// Clone returns a deep copy.
func (m *Model) Clone() *Model {
	c := &Model{
		vartype: m.vartype,
		order:   append([]string(nil), m.order...),
		index:   make(map[string]int, len(m.index)),
		linear:  append([]float64(nil), m.linear...),
		adj:     make([]map[int]float64, len(m.adj)),
		offset:  m.offset,
	}
	for k, v := range m.index {
		c.index[k] = v
	}
	for i, nb := range m.adj {
		c.adj[i] = make(map[int]float64, len(nb))
		for j, b := range nb {
			c.adj[i][j] = b
		}
	}
	return c
}

// Equal reports whether m and o describe the same energy function over the
// same labelled variables in the same vartype. Declaration order is ignored;
// coefficients are compared with an absolute tolerance of 1e-12.
func (m *Model) Equal(o *Model) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.vartype != o.vartype || len(m.order) != len(o.order) || m.NumInteractions() != o.NumInteractions() {
		return false
	}
	if math.Abs(m.offset-o.offset) > equalTol {
		return false
	}
	for i, v := range m.order {
		if !o.Has(v) || math.Abs(m.linear[i]-o.Linear(v)) > equalTol {
			return false
		}
	}
	for _, it := range m.Interactions() {
		b, ok := o.Quadratic(it.U, it.V)
		if !ok || math.Abs(b-it.Bias) > equalTol {
			return false
		}
	}
	return true
}

// Vectors exports the model in the given column order as a dense linear
// vector and COO quadratic vectors (rows[k], cols[k], data[k]), one entry per
// stored pair. A nil order means the declared order.
func (m *Model) Vectors(order []string) (h []float64, rows, cols []int, data []float64, err error) {
	if order == nil {
		order = m.order
	}
	pos, err := m.positions(order)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("Vectors: %w", err)
	}
	h = make([]float64, len(order))
	for c, v := range order {
		h[c] = m.linear[m.index[v]]
	}
	n := m.NumInteractions()
	rows, cols, data = make([]int, 0, n), make([]int, 0, n), make([]float64, 0, n)
	for _, it := range m.Interactions() {
		rows = append(rows, pos[it.U])
		cols = append(cols, pos[it.V])
		data = append(data, it.Bias)
	}
	return h, rows, cols, data, nil
}

// positions maps each label of order to its column, requiring order to be a
// permutation of the declared variables.
func (m *Model) positions(order []string) (map[string]int, error) {
	if len(order) != len(m.order) {
		return nil, fmt.Errorf("%d labels for %d variables: %w", len(order), len(m.order), ErrVariableMismatch)
	}
	pos := make(map[string]int, len(order))
	for c, v := range order {
		if _, dup := pos[v]; dup {
			return nil, fmt.Errorf("label %q: %w", v, ErrDuplicateLabel)
		}
		if !m.Has(v) {
			return nil, fmt.Errorf("label %q: %w", v, ErrVariableMismatch)
		}
		pos[v] = c
	}
	return pos, nil
}

// ensure declares v if absent and returns its position.
func (m *Model) ensure(v string) (int, error) {
	if v == "" {
		return 0, ErrEmptyLabel
	}
	if i, ok := m.index[v]; ok {
		return i, nil
	}
	i := len(m.order)
	m.order = append(m.order, v)
	m.index[v] = i
	m.linear = append(m.linear, 0)
	m.adj = append(m.adj, make(map[int]float64))
	return i, nil
}

func checkFinite(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrNaNInf
	}
	return nil
}
