package periodic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardTable(t *testing.T) {
	t.Parallel()

	table := StandardTable()
	require.Len(t, table, Periods)

	testCases := []struct {
		element Element
		row     int
		col     int
	}{
		{H, 0, 0},
		{He, 0, 31},
		{B, 1, 26},
		{K, 3, 0},
		{Sc, 3, 16},
		{La, 5, 2},
		{Yb, 5, 15},
		{Lu, 5, 16},
		{Hf, 5, 17},
		{Ac, 6, 2},
		{Lr, 6, 16},
		{Og, 6, 31},
	}

	for _, tc := range testCases {
		row, col, ok := table.Position(tc.element)
		require.True(t, ok, "%s not placed", tc.element.Symbol())
		assert.Equal(t, tc.row, row, "%s row", tc.element.Symbol())
		assert.Equal(t, tc.col, col, "%s column", tc.element.Symbol())
	}

	assert.Zero(t, table[0][1])
	assert.Equal(t, Count, countCells(table))
}

func TestLeftStepTable(t *testing.T) {
	t.Parallel()

	table := LeftStepTable()
	require.Len(t, table, 8)

	testCases := []struct {
		element Element
		row     int
		col     int
	}{
		{H, 0, 30},
		{He, 0, 31},
		{Li, 1, 30},
		{B, 2, 24},
		{Mg, 2, 31},
		{Sc, 4, 14},
		{La, 6, 0},
		{Ra, 6, 31},
		{Ac, 7, 0},
		{Og, 7, 29},
	}

	for _, tc := range testCases {
		row, col, ok := table.Position(tc.element)
		require.True(t, ok, "%s not placed", tc.element.Symbol())
		assert.Equal(t, tc.row, row, "%s row", tc.element.Symbol())
		assert.Equal(t, tc.col, col, "%s column", tc.element.Symbol())
	}

	assert.Zero(t, table[7][30])
	assert.Zero(t, table[7][31])
	assert.Equal(t, Count, countCells(table))
}

func TestLayoutIsCopy(t *testing.T) {
	t.Parallel()

	table := StandardTable()
	table[0][0] = 0
	assert.Equal(t, H, StandardTable()[0][0])

	_, _, ok := table.Position(0)
	assert.False(t, ok)
}

func countCells(l Layout) int {
	n := 0
	for _, row := range l {
		for _, cell := range row {
			if cell.Valid() {
				n++
			}
		}
	}
	return n
}
