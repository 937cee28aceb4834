package fractal

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/ajroetker/go-fractalsort/workerpool"
)

// Generate random data for benchmarks
func generateInts(n int) []int {
	rng := rand.New(rand.NewSource(int64(n)))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(n) - n/2
	}
	return data
}

func BenchmarkSort_1000(b *testing.B) {
	benchmarkSort(b, 1000)
}

func BenchmarkSort_10000(b *testing.B) {
	benchmarkSort(b, 10000)
}

func BenchmarkSort_100000(b *testing.B) {
	benchmarkSort(b, 100000)
}

func benchmarkSort(b *testing.B, n int) {
	ref := generateInts(n)
	sorter := NewSorter[int](Config{Rand: rand.New(rand.NewSource(1))})
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sorter.Sort(data)
	}
}

func BenchmarkSortParallel_10000(b *testing.B) {
	benchmarkSortParallel(b, 10000)
}

func BenchmarkSortParallel_100000(b *testing.B) {
	benchmarkSortParallel(b, 100000)
}

func benchmarkSortParallel(b *testing.B, n int) {
	ref := generateInts(n)
	sorter := NewSorter[int](Config{Rand: rand.New(rand.NewSource(1))})
	pool := workerpool.New(0)
	defer pool.Close()
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sorter.SortParallel(data, pool)
	}
}

// Standard library comparison
func BenchmarkStdSort_1000(b *testing.B) {
	benchmarkStdSort(b, 1000)
}

func BenchmarkStdSort_10000(b *testing.B) {
	benchmarkStdSort(b, 10000)
}

func BenchmarkStdSort_100000(b *testing.B) {
	benchmarkStdSort(b, 100000)
}

func benchmarkStdSort(b *testing.B, n int) {
	ref := generateInts(n)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

func BenchmarkTripleFix_12(b *testing.B) {
	ref := generateInts(12)
	data := make([]int, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		TripleFix(data)
	}
}

func BenchmarkMerge_16x1000(b *testing.B) {
	buckets := make([][]int, 16)
	for i := range buckets {
		buckets[i] = generateInts(1000)
		slices.Sort(buckets[i])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Merge(buckets)
	}
}
