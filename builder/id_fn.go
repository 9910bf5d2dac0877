// SPDX-License-Identifier: MIT
// Package: lvtraj/builder
//
// id_fn.go - trajectory identifier schemes.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/google/uuid"
)

// IDFn generates a trajectory identifier from its zero-based index.
// Panics in implementations indicate programmer error in configuration.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "t0", "t1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnIDFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// UUIDFn returns an IDFn that ignores idx and draws a version 4 UUID from
// rng. The sequence of identifiers is fixed by rng's seed. Panics on nil.
func UUIDFn(rng *rand.Rand) IDFn {
	if rng == nil {
		panic("builder: UUIDFn(nil)")
	}
	return func(int) string {
		// *rand.Rand.Read never fails
		return uuid.Must(uuid.NewRandomFromReader(rng)).String()
	}
}
