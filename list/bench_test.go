package list_test

import (
	"testing"

	"github.com/hasbyte1/go-immutable-list/list"
)

// makeInts creates a List[int] of size n for benchmarks.
func makeInts(n int) *list.List[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return list.From(items)
}

func BenchmarkFilter(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Filter(func(n, _ int) bool { return n%2 == 0 })
	}
}

func BenchmarkMapFunc(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Map(l, func(n, _ int) int { return n * 2 })
	}
}

func BenchmarkReduceFunc(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Reduce(l, func(acc, n, _ int) int { return acc + n }, 0)
	}
}

func BenchmarkSplice(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Splice(5_000, 100, 1, 2, 3)
	}
}

func BenchmarkSort(b *testing.B) {
	l := makeInts(10_000).Shuffle() // pre-shuffle once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Sort(func(a, b int) bool { return a < b })
	}
}

func BenchmarkShuffle(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Shuffle()
	}
}

func BenchmarkUnique(b *testing.B) {
	// 50% duplicates
	items := make([]int, 10_000)
	for i := range items {
		items[i] = i % 5000
	}
	l := list.From(items)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Unique()
	}
}

func BenchmarkGroupBy(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.GroupBy(func(n, _ int) string {
			if n%2 == 0 {
				return "even"
			}
			return "odd"
		})
	}
}

func BenchmarkChunk(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Chunk(100)
	}
}

func BenchmarkZip(b *testing.B) {
	x := makeInts(10_000)
	y := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Zip(x, y)
	}
}
