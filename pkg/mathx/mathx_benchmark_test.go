package mathx_test

import (
	"testing"

	"github.com/taoes/huturs/pkg/mathx"
)

func benchSlice(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i%100) * 1.5
	}
	return values
}

func BenchmarkSum(b *testing.B) {
	values := benchSlice(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mathx.Sum(values)
	}
}

func BenchmarkMaxIn(b *testing.B) {
	values := benchSlice(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mathx.MaxIn(values)
	}
}

func BenchmarkPower(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mathx.Power(3, 39)
	}
}
