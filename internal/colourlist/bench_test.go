package colourlist

import (
	"testing"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/index"
)

func benchList(n int) *List {
	l := New(3, colour.Normal)
	for i := 0; i < n; i++ {
		x := float64(i%100) / 100
		l.Append(colour.RGB(x, 1-x, x/2))
	}
	return l
}

func BenchmarkApplyScalar(b *testing.B) {
	l := benchList(4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Mul(Scalar(0.999))
	}
}

func BenchmarkApplyList(b *testing.B) {
	l := benchList(4096)
	x := benchList(4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Add(x)
	}
}

func BenchmarkDistance2(b *testing.B) {
	l := benchList(4096)
	x := benchList(4000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Distance2(x)
	}
}

func BenchmarkSetSliceExtended(b *testing.B) {
	l := benchList(4096)
	in, _ := l.GetSlice(nil, nil, index.Int(-3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.SetSlice(nil, nil, index.Int(-3), in)
	}
}
