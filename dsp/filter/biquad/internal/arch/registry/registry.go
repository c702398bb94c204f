// Package registry selects the block kernel used by biquad sections.
//
// Kernels register themselves from init functions in the per-architecture
// packages. [Table.Best] picks the highest ranked kernel that the detected
// CPU features allow.
package registry

import (
	"cmp"
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients mirrors biquad.Coefficients so kernels do not import the
// parent package.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// State is the transposed direct form delay line {d0, d1}.
type State [2]float64

// BlockFunc filters buf in place starting from st and returns the state
// after the last sample.
type BlockFunc func(c Coefficients, st State, buf []float64) State

// Kernel is one block implementation.
type Kernel struct {
	Name  string
	Level cpu.SIMDLevel
	Rank  int
	Run   BlockFunc
}

// Table holds registered kernels ordered by descending rank.
type Table struct {
	mu      sync.RWMutex
	kernels []Kernel
}

// Default is the table the biquad package reads.
var Default = &Table{}

// Add registers k.
func (t *Table) Add(k Kernel) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.kernels = append(t.kernels, k)
	slices.SortStableFunc(t.kernels, func(a, b Kernel) int {
		return cmp.Compare(b.Rank, a.Rank)
	})
}

// Best returns the highest ranked kernel supported by features.
func (t *Table) Best(features cpu.Features) (Kernel, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, k := range t.kernels {
		if cpu.Supports(features, k.Level) {
			return k, true
		}
	}

	return Kernel{}, false
}

// Names lists the registered kernels, best first.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, len(t.kernels))
	for i, k := range t.kernels {
		names[i] = k.Name
	}
	return names
}
