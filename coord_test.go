package rainreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordAddress(t *testing.T) {
	tests := []struct {
		c    Coord
		want string
	}{
		{Coord{0, 0}, "A1"},
		{Coord{40, 2}, "C41"},
		{Coord{13, colB}, "B14"},
		{Coord{0, 26}, "AA1"},
		{Coord{102, colM}, "M103"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.Address())
	}
}

func TestRange(t *testing.T) {
	r := Range{From: Coord{11, colA}, To: Coord{12, colB}}
	assert.Equal(t, "A12:B13", r.Ref())
	assert.Equal(t, []Coord{{11, 0}, {11, 1}, {12, 0}, {12, 1}}, r.cells())
	assert.True(t, r.Contains(Coord{12, colB}))
	assert.False(t, r.Contains(Coord{13, colA}))
	assert.False(t, r.Contains(Coord{11, colC}))

	single := span(4, colC, colC)
	assert.Equal(t, "C5", single.Ref())
	assert.Len(t, single.cells(), 1)
}

func TestLayoutFitsColumns(t *testing.T) {
	for i := range stationFields {
		label, value := stationCells(i)
		assert.Less(t, label.To.Col, value.From.Col)
		assert.Less(t, value.To.Col, numColumns)
	}
	assert.Equal(t, "M14", dayCell(1, 12).Address())
	assert.Equal(t, "B44", dayCell(31, 1).Address())
	assert.Equal(t, 45, rowTotals+1, "totals start right after day 31")
	assert.Equal(t, 103, rowAbnormalStatus+1)
}
