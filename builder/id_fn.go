// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a variable label. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn labels by decimal index: 0→"0", 42→"42".
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolIDFn labels 0..25 as "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx >= 26 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string(rune('A' + idx))
}

// AlphanumericIDFn labels in base 36: 10→"a", 36→"10". Panics on idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 36)
}

// HexIDFn labels in lowercase hexadecimal. Panics on idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// ExcelColumnIDFn labels like spreadsheet columns: 0→"A", 25→"Z", 26→"AA".
// Panics on idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf [16]byte
	pos := len(buf)
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		pos--
		buf[pos] = byte('A' + (n-1)%26)
	}
	return string(buf[pos:])
}

// SymbolNumberIDFn labels as prefix + decimal index: "q0", "q1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithSymbolIDs selects SymbolIDFn.
func WithSymbolIDs() Option { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() Option { return WithIDScheme(ExcelColumnIDFn) }

// WithAlphanumericIDs selects AlphanumericIDFn.
func WithAlphanumericIDs() Option { return WithIDScheme(AlphanumericIDFn) }

// WithPrefixIDs selects SymbolNumberIDFn(prefix).
func WithPrefixIDs(prefix string) Option { return WithIDScheme(SymbolNumberIDFn(prefix)) }
