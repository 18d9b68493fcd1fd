// SPDX-License-Identifier: MIT

package bqm

// Spin returns the model rewritten over spin variables s = 2x - 1.
// A Spin model is returned as a copy.
//
// For x = (s+1)/2:
//
//	a·x          = a/2·s + a/2
//	b·x_u·x_v    = b/4·s_u·s_v + b/4·s_u + b/4·s_v + b/4
func (m *Model) Spin() *Model {
	if m.vartype == Spin {
		return m.Clone()
	}
	out := m.Clone()
	out.vartype = Spin
	for i, a := range m.linear {
		out.linear[i] = a / 2
		out.offset += a / 2
	}
	for _, it := range m.Interactions() {
		i, j := out.index[it.U], out.index[it.V]
		b := it.Bias / 4
		out.adj[i][j] = b
		out.adj[j][i] = b
		out.linear[i] += b
		out.linear[j] += b
		out.offset += b
	}
	return out
}

// Binary returns the model rewritten over binary variables x = (s+1)/2.
// A Binary model is returned as a copy.
//
// For s = 2x - 1:
//
//	h·s          = 2h·x - h
//	J·s_u·s_v    = 4J·x_u·x_v - 2J·x_u - 2J·x_v + J
func (m *Model) Binary() *Model {
	if m.vartype == Binary {
		return m.Clone()
	}
	out := m.Clone()
	out.vartype = Binary
	for i, h := range m.linear {
		out.linear[i] = 2 * h
		out.offset -= h
	}
	for _, it := range m.Interactions() {
		i, j := out.index[it.U], out.index[it.V]
		out.adj[i][j] = 4 * it.Bias
		out.adj[j][i] = 4 * it.Bias
		out.linear[i] -= 2 * it.Bias
		out.linear[j] -= 2 * it.Bias
		out.offset += it.Bias
	}
	return out
}

// As returns the model converted to vt.
func (m *Model) As(vt Vartype) *Model {
	if vt == Binary {
		return m.Binary()
	}
	return m.Spin()
}
