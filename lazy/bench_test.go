package lazy_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-lazy-collections/lazy"
)

// makeInts creates n-element input and destination slices for benchmarks.
func makeInts(n int) (a, b, c, d []int) {
	a = make([]int, n)
	b = make([]int, n)
	c = make([]int, n)
	d = make([]int, n)
	for i := 0; i < n; i++ {
		a[i], b[i], c[i] = i+1, (i+1)*10, (i+1)*100
	}
	return a, b, c, d
}

func BenchmarkFusedAddChain(b *testing.B) {
	as, bs, cs, ds := makeInts(10_000)
	wa, wb, wc, wd := lazy.WrapSlice(as), lazy.WrapSlice(bs), lazy.WrapSlice(cs), lazy.WrapSlice(ds)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lazy.AddAssign(wd, lazy.Add[int](lazy.Add[int](wa, wb), wc))
	}
}

func BenchmarkNaiveAddChain(b *testing.B) {
	// One full pass per operator, materializing a temporary after each —
	// the rendition fusion avoids.
	as, bs, cs, ds := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tmp := make([]int, len(as))
		for j := range as {
			tmp[j] = as[j] + bs[j]
		}
		tmp2 := make([]int, len(as))
		for j := range as {
			tmp2[j] = tmp[j] + cs[j]
		}
		for j := range as {
			ds[j] += tmp2[j]
		}
	}
}

func BenchmarkFusedStringConcat(b *testing.B) {
	n := 1_000
	as := make([]string, n)
	bs := make([]string, n)
	ds := make([]string, n)
	for i := range as {
		as[i], bs[i] = "row "+strconv.Itoa(i), " suffix"
	}
	wa, wb := lazy.WrapSlice(as), lazy.WrapSlice(bs)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lazy.WrapSlice(ds).Assign(lazy.Add[string](wa, wb))
	}
}

func BenchmarkComposeOnly(b *testing.B) {
	as, bs, cs, _ := makeInts(10_000)
	wa, wb, wc := lazy.WrapSlice(as), lazy.WrapSlice(bs), lazy.WrapSlice(cs)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Composition cost is independent of collection size.
		_ = lazy.Mul[int](lazy.Add[int](wa, wb), wc)
	}
}
