package colourlist

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmylchreest/swatch/internal/colour"
)

func TestMinMaxSum(t *testing.T) {
	l := Of(colour.Integer, colour.RGB(1, 9, -3), colour.RGB(4, 2, 6))

	assert.True(t, l.Min().Equal(colour.RGB(1, 2, -3)))
	assert.True(t, l.Max().Equal(colour.RGB(4, 9, 6)))
	assert.True(t, l.Sum().Equal(colour.RGB(5, 11, 3)))
}

func TestMinMaxEmpty(t *testing.T) {
	l := New(3, colour.Normal)

	assert.False(t, l.Min().IsDefined())
	assert.False(t, l.Max().IsDefined())
	assert.True(t, math.IsInf(l.Min().At(0), 1))
	assert.True(t, math.IsInf(l.Max().At(0), -1))
	assert.True(t, l.Sum().Equal(colour.RGB(0, 0, 0)))
}

func TestDistance2(t *testing.T) {
	tests := []struct {
		name string
		l    *List
		x    Operand
		want float64
	}{
		{
			name: "paired lists",
			l:    Of(colour.Integer, colour.RGB(1, 2, 3), colour.RGB(0, 0, 0)),
			x:    Of(colour.Integer, colour.RGB(1, 2, 5), colour.RGB(0, 0, 0)),
			want: 4,
		},
		{
			name: "longer operand adds its tail",
			l:    Of(colour.Integer, colour.RGB(1, 1, 1)),
			x:    Of(colour.Integer, colour.RGB(1, 1, 1), colour.RGB(1, 2, 2)),
			want: 9,
		},
		{
			name: "longer receiver adds its tail",
			l:    Of(colour.Integer, colour.RGB(1, 1, 1), colour.RGB(0, 3, 4)),
			x:    Of(colour.Integer, colour.RGB(1, 1, 1)),
			want: 25,
		},
		{
			name: "scalar against every colour",
			l:    Of(colour.Integer, colour.RGB(1, 1, 1), colour.RGB(2, 1, 1)),
			x:    Scalar(1),
			want: 1,
		},
		{
			name: "single against every colour",
			l:    Of(colour.Integer, colour.RGB(0, 0, 0), colour.RGB(1, 2, 2)),
			x:    Single(colour.RGB(1, 2, 2)),
			want: 9,
		},
		{
			name: "empty",
			l:    New(3, colour.Integer),
			x:    Scalar(5),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.l.Distance2(tt.x), 1e-9)
			assert.InDelta(t, math.Sqrt(tt.want), tt.l.Distance(tt.x), 1e-9)
		})
	}
}

func TestDistance2ArityMismatch(t *testing.T) {
	requireArityPanic(t, func() {
		Of(colour.Normal, colour.RGB(0, 0, 0)).Distance2(Single(colour.RGBA(0, 0, 0, 0)))
	})
}

func TestCompare(t *testing.T) {
	a := Of(colour.Integer, colour.RGB(1, 2, 3))
	b := Of(colour.Integer, colour.RGB(1, 2, 3), colour.RGB(0, 0, 0))

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a.Clone()))

	c := Of(colour.Integer, colour.RGB(1, 2, 4))
	assert.Equal(t, -1, b.Compare(c), "the first differing component decides before length")

	// Differences below the tolerance are ignored.
	assert.Equal(t, 0, a.Compare(Of(colour.Integer, colour.RGB(1.0002, 2, 3))))

	assert.Equal(t, 0, a.Compare(Single(colour.RGB(1, 2, 3))))
	assert.Equal(t, 1, a.Compare(Scalar(1)))
	assert.Equal(t, -1, a.Compare(Scalar(2)))
}

func TestSortLists(t *testing.T) {
	lists := []*List{
		Of(colour.Integer, colour.RGB(2, 0, 0)),
		Of(colour.Integer, colour.RGB(1, 0, 0), colour.RGB(1, 0, 0)),
		Of(colour.Integer, colour.RGB(1, 0, 0)),
	}
	slices.SortFunc(lists, Compare)

	assert.Equal(t, 1, lists[0].Len())
	assert.Equal(t, 2, lists[1].Len())
	c, _ := lists[2].At(0)
	assert.True(t, c.Equal(colour.RGB(2, 0, 0)))
}
