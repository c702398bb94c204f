package registry

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable() *Table {
	t := &Table{}
	t.Add(Kernel{Name: "sse2", Level: cpu.SIMDSSE2, Rank: 10})
	t.Add(Kernel{Name: "generic", Level: cpu.SIMDNone})
	t.Add(Kernel{Name: "avx2", Level: cpu.SIMDAVX2, Rank: 20})
	return t
}

func TestTable_NamesOrderedByRank(t *testing.T) {
	assert.Equal(t, []string{"avx2", "sse2", "generic"}, newTable().Names())
}

func TestTable_Best(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"avx2", cpu.Features{HasSSE2: true, HasAVX2: true}, "avx2"},
		{"sse2 only", cpu.Features{HasSSE2: true}, "sse2"},
		{"none", cpu.Features{}, "generic"},
		{"forced generic", cpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true}, "generic"},
	}

	table := newTable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := table.Best(tt.features)
			require.True(t, ok)
			assert.Equal(t, tt.want, k.Name)
		})
	}
}

func TestTable_BestEmpty(t *testing.T) {
	_, ok := (&Table{}).Best(cpu.Features{})
	assert.False(t, ok)
}
