package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateSize(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int64
	}{
		{"nil", nil, scalarSize},
		{"bool", true, scalarSize},
		{"int", 42, scalarSize},
		{"float", 3.14, scalarSize},
		{"complex", complex(1, 2), 2 * scalarSize},
		{"string counts bytes", "hello", 5 + elementOverhead},
		{"empty string", "", elementOverhead},
		{"byte slice counts bytes", []byte("abcd"), 4 + elementOverhead},
		{"nil slice", []int(nil), scalarSize},
		{"nil map", map[string]int(nil), scalarSize},
		{"func falls back", func() {}, fallbackSize},
		{"channel falls back", make(chan int), fallbackSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateSize(tt.value))
		})
	}
}

func TestEstimateSize_Containers(t *testing.T) {
	// []int{1,2,3}: container overhead + 3 scalars + 3 element overheads.
	assert.Equal(t, int64(elementOverhead+3*(scalarSize+elementOverhead)),
		EstimateSize([]int{1, 2, 3}))

	// Containers grow with their contents.
	small := EstimateSize(map[string]int{"a": 1})
	large := EstimateSize(map[string]int{"a": 1, "b": 2, "c": 3})
	assert.Greater(t, large, small)

	nested := EstimateSize(map[string]any{
		"server": map[string]any{"host": "localhost", "port": 5432},
	})
	assert.Greater(t, nested, EstimateSize("localhost"))
}

func TestEstimateSize_Struct(t *testing.T) {
	type point struct {
		X, Y int
	}
	assert.Equal(t, int64(elementOverhead+2*scalarSize), EstimateSize(point{1, 2}))

	type wrapper struct {
		Name string
		P    *point
	}
	got := EstimateSize(wrapper{Name: "origin", P: &point{}})
	assert.Greater(t, got, int64(0))
}

func TestEstimateSize_Deterministic(t *testing.T) {
	value := map[string]any{
		"list": []any{"a", "b", map[string]int{"k": 1}},
		"n":    7,
	}
	first := EstimateSize(value)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, EstimateSize(value))
	}
}

func TestEstimateSize_DeepNestingUsesFallback(t *testing.T) {
	// Build a chain of maps deeper than the recursion cap.
	deep := any("leaf")
	for i := 0; i < maxEstimateDepth+10; i++ {
		deep = map[string]any{"next": deep}
	}

	// The estimator must terminate and return something positive.
	got := EstimateSize(deep)
	assert.Greater(t, got, int64(0))
}
