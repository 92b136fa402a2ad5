package classif

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testValues returns the 76-value corpus shared by the regression tests:
// a heavy bulk of small values with a secondary cluster and one outlier.
func testValues() []float64 {
	return []float64{
		1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3,
		3, 3, 3, 2, 2, 2, 2, 1, 1, 12, 3, 4, 5, 6, 7, 8, 9,
		10, 11, 5, 6, 7, 6, 5, 6, 7, 8, 8, 9, 8, 7, 6, 7, 8,
		9, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 3,
		2, 2, 2, 1, 1, 1,
	}
}

func TestNew_EqualInterval(t *testing.T) {
	b, err := New(testValues(), 4, EqualInterval)
	require.NoError(t, err)

	want := []float64{3.75, 6.5, 9.25, 12}
	if diff := cmp.Diff(want, b.Breaks); diff != "" {
		t.Errorf("breaks mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, EqualInterval, b.Method)
	assert.Equal(t, 1.0, b.Min)
	assert.Equal(t, 12.0, b.Max)
	assert.InDelta(t, 288.0/76.0, b.Mean, 1e-12)
}

func TestBounds_ClassIndex(t *testing.T) {
	b, err := New(testValues(), 4, EqualInterval)
	require.NoError(t, err)

	for _, tc := range []struct {
		value float64
		class int
		ok    bool
	}{
		{0.1, 0, false}, // below the minimum, no class
		{2, 0, true},
		{4, 1, true},
		{7, 2, true},
		{10, 3, true},
		{12, 3, true},
		{15, 0, false}, // above the maximum, no class
	} {
		class, ok := b.ClassIndex(tc.value)
		assert.Equalf(t, tc.ok, ok, "ClassIndex(%v)", tc.value)
		if tc.ok {
			assert.Equalf(t, tc.class, class, "ClassIndex(%v)", tc.value)
		}
	}
}

func TestNew_AllMethods(t *testing.T) {
	for _, m := range []Method{
		JenksNaturalBreaks, Quantiles, EqualInterval, Arithmetic, HeadTail, TailHead,
	} {
		t.Run(m.String(), func(t *testing.T) {
			b, err := New(testValues(), 4, m)
			require.NoError(t, err)
			require.NotEmpty(t, b.Breaks)
			assert.Equal(t, 12.0, b.Breaks[len(b.Breaks)-1], "last break must equal the maximum")
			for i := 1; i < len(b.Breaks); i++ {
				assert.LessOrEqual(t, b.Breaks[i-1], b.Breaks[i])
			}
		})
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{
		JenksNaturalBreaks, Quantiles, EqualInterval, Arithmetic, HeadTail, TailHead,
	} {
		parsed, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := ParseMethod("nope")
	assert.ErrorIs(t, err, ErrUnknownMethod)

	_, err = New(testValues(), 4, Method(42))
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestNew_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := New(nil, 3, EqualInterval)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
	t.Run("nan", func(t *testing.T) {
		_, err := New([]float64{1, math.NaN(), 3}, 2, Quantiles)
		assert.ErrorIs(t, err, ErrNonFinite)
	})
	t.Run("inf", func(t *testing.T) {
		_, err := New([]float64{1, math.Inf(1), 3}, 2, Quantiles)
		assert.ErrorIs(t, err, ErrNonFinite)
	})
	t.Run("k too small", func(t *testing.T) {
		_, err := New([]float64{1, 2, 3}, 0, JenksNaturalBreaks)
		assert.ErrorIs(t, err, ErrInvalidClassCount)
	})
	t.Run("k too large", func(t *testing.T) {
		_, err := New([]float64{1, 2, 3}, 4, JenksNaturalBreaks)
		assert.ErrorIs(t, err, ErrInvalidClassCount)
	})
}

func TestNew_NoData(t *testing.T) {
	values := []float64{-9999, 4, 1, -9999, 3, 2}

	b, err := New(values, 2, EqualInterval, NoData(-9999))
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.Min)
	assert.Equal(t, 4.0, b.Max)

	_, err = New([]float64{-9999, -9999}, 1, EqualInterval, NoData(-9999))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestNew_NaNIsNoData(t *testing.T) {
	values := []float64{math.NaN(), 4, 1, math.NaN(), 3, 2}

	b, err := New(values, 2, EqualInterval, NaNIsNoData())
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.Min)
	assert.Equal(t, 4.0, b.Max)

	_, err = New([]float64{math.NaN()}, 1, EqualInterval, NaNIsNoData())
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestNew_DoesNotMutateInput(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}
	original := append([]float64(nil), values...)

	_, err := New(values, 2, JenksNaturalBreaks)
	require.NoError(t, err)

	if diff := cmp.Diff(original, values); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}
