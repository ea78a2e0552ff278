package uncertain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/periodic-api/internal/domain"
)

func TestFromValueAndUncertaintyBounds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		value       float64
		uncertainty float64
	}{
		{value: 4.002602, uncertainty: 0.000002},
		{value: 1.007825, uncertainty: 0},
		{value: -3.5, uncertainty: 1.25},
		{value: 0, uncertainty: 0.5},
		{value: 238.02891, uncertainty: 0.00003},
	}

	for _, tc := range testCases {
		q, err := FromValueAndUncertainty(tc.value, tc.uncertainty)
		require.NoError(t, err)

		assert.Equal(t, KindCentered, q.Kind())
		assert.Equal(t, tc.value-tc.uncertainty, q.Minimum(), "minimum of %v", q)
		assert.Equal(t, tc.value, q.Average(), "average of %v", q)
		assert.Equal(t, tc.value+tc.uncertainty, q.Maximum(), "maximum of %v", q)
	}
}

func TestFromBoundsConsistency(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		start float64
		end   float64
	}{
		{start: 1.00784, end: 1.00811},
		{start: 10.806, end: 10.821},
		{start: 206.14, end: 207.94},
		{start: -2, end: 3},
		{start: 5, end: 5},
	}

	for _, tc := range testCases {
		q, err := FromBounds(tc.start, tc.end)
		require.NoError(t, err)

		assert.Equal(t, KindInterval, q.Kind())
		assert.Equal(t, tc.start, q.Minimum())
		assert.Equal(t, (tc.start+tc.end)/2, q.Average())
		assert.Equal(t, tc.end, q.Maximum())
	}
}

func TestExact(t *testing.T) {
	t.Parallel()

	q := Exact(12)
	assert.Equal(t, KindCentered, q.Kind())
	assert.True(t, q.IsExact())
	assert.Equal(t, 12.0, q.Minimum())
	assert.Equal(t, 12.0, q.Maximum())
	assert.Equal(t, 0.0, q.Uncertainty())

	var zero Quantity
	assert.True(t, zero.Equal(Exact(0)), "zero Quantity should be an exact zero")
}

// Rejecting inverted bounds and negative uncertainty is stricter than the
// reference tables ever needed; they never contain such entries.
func TestConstructorValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		build     func() (Quantity, error)
		wantCause error
	}{
		{
			name:      "inverted bounds",
			build:     func() (Quantity, error) { return FromBounds(5.0, 1.0) },
			wantCause: ErrInvertedBounds,
		},
		{
			name:      "negative uncertainty",
			build:     func() (Quantity, error) { return FromValueAndUncertainty(1.0, -0.1) },
			wantCause: ErrNegativeUncertainty,
		},
		{
			name:      "NaN bound",
			build:     func() (Quantity, error) { return FromBounds(math.NaN(), 1.0) },
			wantCause: ErrNotFinite,
		},
		{
			name:      "infinite value",
			build:     func() (Quantity, error) { return FromValueAndUncertainty(math.Inf(1), 0) },
			wantCause: ErrNotFinite,
		},
		{
			name:      "NaN uncertainty",
			build:     func() (Quantity, error) { return FromValueAndUncertainty(1, math.NaN()) },
			wantCause: ErrNotFinite,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			q, err := tc.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantCause)
			assert.ErrorIs(t, err, domain.ErrValidation)

			var ve *domain.ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.Equal(t, Quantity{}, q, "failed construction should return the zero Quantity")
		})
	}
}

func TestMustConstructorsPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustFromBounds(2, 1) })
	assert.Panics(t, func() { MustFromValueAndUncertainty(2, -1) })
	assert.NotPanics(t, func() { MustFromBounds(1, 2) })
	assert.NotPanics(t, func() { MustFromValueAndUncertainty(2, 1) })
}

func TestWidenToSymmetric(t *testing.T) {
	t.Parallel()

	t.Run("hydrogen standard atomic weight", func(t *testing.T) {
		t.Parallel()

		q := MustFromBounds(1.00784, 1.00811).WidenToSymmetric()

		assert.Equal(t, KindCentered, q.Kind())
		assert.InDelta(t, 1.007975, q.Value(), 1e-15)
		assert.InDelta(t, 0.000135, q.Uncertainty(), 1e-15)
		assert.InDelta(t, 1.00784, q.Minimum(), 1e-15)
		assert.InDelta(t, 1.00811, q.Maximum(), 1e-15)
		assert.LessOrEqual(t, q.Minimum(), 1.00784)
		assert.GreaterOrEqual(t, q.Maximum(), 1.00811)
	})

	t.Run("covers original interval", func(t *testing.T) {
		t.Parallel()

		bounds := [][2]float64{
			{1.00784, 1.00811},
			{6.938, 6.997},
			{12.0096, 12.0116},
			{204.382, 204.385},
			{-7.3, 0.1},
			{-1e-3, 1e9},
			{0.1, 0.7},
		}
		for _, b := range bounds {
			q := MustFromBounds(b[0], b[1]).WidenToSymmetric()
			assert.LessOrEqual(t, q.Minimum(), b[0], "widened %v must start at or below %v", q, b[0])
			assert.GreaterOrEqual(t, q.Maximum(), b[1], "widened %v must end at or above %v", q, b[1])
		}
	})

	t.Run("centered is unchanged", func(t *testing.T) {
		t.Parallel()

		q := MustFromValueAndUncertainty(4.002602, 0.000002)
		assert.Equal(t, q, q.WidenToSymmetric())
	})
}

func TestLargeFiniteBounds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		start, end      float64
		wantAverage     float64
		wantUncertainty float64
	}{
		{name: "both at max", start: math.MaxFloat64, end: math.MaxFloat64, wantAverage: math.MaxFloat64, wantUncertainty: 0},
		{name: "symmetric about zero", start: -math.MaxFloat64, end: math.MaxFloat64, wantAverage: 0, wantUncertainty: math.MaxFloat64},
		{name: "upper half", start: math.MaxFloat64 / 2, end: math.MaxFloat64, wantAverage: 0.75 * math.MaxFloat64, wantUncertainty: 0.25 * math.MaxFloat64},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			q := MustFromBounds(tc.start, tc.end)
			assert.Equal(t, tc.wantAverage, q.Average())
			assert.Equal(t, tc.wantUncertainty, q.Uncertainty())

			w := q.WidenToSymmetric()
			assert.False(t, math.IsInf(w.Value(), 0), "widened value overflowed: %v", w)
			assert.False(t, math.IsInf(w.Uncertainty(), 0), "widened uncertainty overflowed: %v", w)
			assert.LessOrEqual(t, w.Value()-w.Uncertainty(), tc.start)
		})
	}
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	interval := MustFromBounds(10.806, 10.821)
	lo, hi := interval.Bounds()
	assert.Equal(t, 10.806, lo)
	assert.Equal(t, 10.821, hi)
	assert.InDelta(t, 0.0075, interval.Uncertainty(), 1e-12)
	assert.False(t, interval.IsExact())
	assert.True(t, interval.Contains(10.81))
	assert.False(t, interval.Contains(10.83))

	centered := MustFromValueAndUncertainty(39.0983, 0.0001)
	assert.True(t, centered.Contains(39.0983))
	assert.True(t, centered.Contains(39.09835))
	assert.False(t, centered.Contains(39.0985))

	assert.Equal(t, "Interval", KindInterval.String())
	assert.Equal(t, "Uncertain", KindCentered.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
