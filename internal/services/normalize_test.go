package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func values(vs []*float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		if v == nil {
			out[i] = nil
			continue
		}
		out[i] = *v
	}
	return out
}

func TestMinMaxNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []*float64
		want  []any
	}{
		{
			name:  "two distinct values",
			input: []*float64{ptr(1.0), ptr(2.0)},
			want:  []any{0.0, 1.0},
		},
		{
			name:  "all equal",
			input: []*float64{ptr(10), ptr(10), ptr(10)},
			want:  []any{1.0, 1.0, 1.0},
		},
		{
			name:  "interior values",
			input: []*float64{ptr(4), ptr(2), ptr(3), ptr(6)},
			want:  []any{0.5, 0.0, 0.25, 1.0},
		},
		{
			name:  "absent values stay absent",
			input: []*float64{ptr(1), nil, ptr(3)},
			want:  []any{0.0, nil, 1.0},
		},
		{
			name:  "only absent values",
			input: []*float64{nil, nil},
			want:  []any{nil, nil},
		},
		{
			name:  "single value",
			input: []*float64{ptr(0.27)},
			want:  []any{1.0},
		},
		{
			name:  "empty",
			input: []*float64{},
			want:  []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinMaxNormalize(tt.input)
			require.Len(t, got, len(tt.input))
			assert.Equal(t, tt.want, values(got))
		})
	}
}

func TestMinMaxNormalize_Range(t *testing.T) {
	input := []*float64{ptr(0.231), ptr(0.245), nil, ptr(0.219), ptr(0.262), ptr(0.25)}

	got := MinMaxNormalize(input)

	lo, hi := 1.0, 0.0
	for _, v := range got {
		if v == nil {
			continue
		}
		assert.GreaterOrEqual(t, *v, 0.0)
		assert.LessOrEqual(t, *v, 1.0)
		lo = min(lo, *v)
		hi = max(hi, *v)
	}
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)

	// input untouched
	assert.Equal(t, 0.231, *input[0])
}
