package uncertain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryArithmetic(t *testing.T) {
	t.Parallel()

	a := MustFromValueAndUncertainty(2.0, 0.1)
	b := MustFromValueAndUncertainty(3.0, 0.2)

	testCases := []struct {
		name string
		got  Quantity
		want Quantity
	}{
		{name: "add sums values and uncertainties", got: a.Add(b), want: MustFromValueAndUncertainty(5.0, 0.3)},
		{name: "sub still sums uncertainties", got: a.Sub(b), want: MustFromValueAndUncertainty(-1.0, 0.3)},
		// Literal sum of absolute uncertainties, not a product rule.
		{name: "mul sums uncertainties", got: a.Mul(b), want: MustFromValueAndUncertainty(6.0, 0.3)},
		{name: "div sums uncertainties", got: b.Div(a), want: MustFromValueAndUncertainty(1.5, 0.3)},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, KindCentered, tc.got.Kind())
			assert.True(t, tc.got.Equal(tc.want), "got %v, want %v", tc.got, tc.want)
		})
	}
}

func TestScalarArithmetic(t *testing.T) {
	t.Parallel()

	q := MustFromValueAndUncertainty(2.0, 0.1)

	testCases := []struct {
		name string
		got  Quantity
		want Quantity
	}{
		{name: "add scalar", got: q.AddScalar(1.5), want: MustFromValueAndUncertainty(3.5, 0.1)},
		{name: "sub scalar", got: q.SubScalar(0.5), want: MustFromValueAndUncertainty(1.5, 0.1)},
		// The uncertainty is not scaled with the value.
		{name: "mul scalar", got: q.MulScalar(3.0), want: MustFromValueAndUncertainty(6.0, 0.1)},
		{name: "div scalar", got: q.DivScalar(4.0), want: MustFromValueAndUncertainty(0.5, 0.1)},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, tc.got.Equal(tc.want), "got %v, want %v", tc.got, tc.want)
		})
	}
}

func TestArithmeticReducesIntervals(t *testing.T) {
	t.Parallel()

	interval := MustFromBounds(1.0, 2.0)
	centered := MustFromValueAndUncertainty(10.0, 0.25)

	sum := interval.Add(centered)
	assert.Equal(t, KindCentered, sum.Kind())
	assert.True(t, sum.Equal(MustFromValueAndUncertainty(11.5, 0.75)), "got %v", sum)

	scaled := interval.MulScalar(2)
	assert.True(t, scaled.Equal(MustFromValueAndUncertainty(3.0, 0.5)), "got %v", scaled)
}

func TestArithmeticLeavesOperandsUntouched(t *testing.T) {
	t.Parallel()

	a := MustFromBounds(1.0, 2.0)
	b := MustFromValueAndUncertainty(3.0, 0.5)
	_ = a.Mul(b)
	_ = b.DivScalar(7)

	assert.Equal(t, MustFromBounds(1.0, 2.0), a)
	assert.Equal(t, MustFromValueAndUncertainty(3.0, 0.5), b)
}
