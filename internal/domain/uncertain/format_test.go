package uncertain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		q         Quantity
		precision int
		want      string
	}{
		{
			name:      "centered with precision",
			q:         MustFromValueAndUncertainty(1.00782503223, 0.00000000009),
			precision: 2,
			want:      "1.01±0.00",
		},
		{
			name:      "interval with zero precision",
			q:         MustFromBounds(10.806, 10.821),
			precision: 0,
			want:      "[11, 11]",
		},
		{
			name:      "centered full precision",
			q:         MustFromValueAndUncertainty(1.00782503223, 0.00000000009),
			precision: -1,
			want:      "1.00782503223±0.00000000009",
		},
		{
			name:      "interval full precision",
			q:         MustFromBounds(1.00784, 1.00811),
			precision: -1,
			want:      "[1.00784, 1.00811]",
		},
		{
			name:      "exact",
			q:         Exact(12),
			precision: 3,
			want:      "12.000±0.000",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.q.Text(tc.precision))
		})
	}
}

func TestFormatVerbs(t *testing.T) {
	t.Parallel()

	q := MustFromValueAndUncertainty(1.00782503223, 0.00000000009)
	interval := MustFromBounds(10.806, 10.821)

	assert.Equal(t, "1.01±0.00", fmt.Sprintf("%.2v", q))
	assert.Equal(t, "[11, 11]", fmt.Sprintf("%.0s", interval))
	assert.Equal(t, "[10.806, 10.821]", fmt.Sprintf("%v", interval))
	assert.Equal(t, "[10.806, 10.821]", interval.String())
	assert.Equal(t, "  [11, 11]", fmt.Sprintf("%10.0v", interval))
	assert.Equal(t, "[11, 11]  |", fmt.Sprintf("%-10.0v|", interval))
	assert.Equal(t, "%!d(uncertain.Quantity=[10.806, 10.821])", fmt.Sprintf("%d", interval))
}
