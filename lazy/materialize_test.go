package lazy_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hasbyte1/go-lazy-collections/lazy"
	"github.com/hasbyte1/go-lazy-collections/ops"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fusion correctness
// ─────────────────────────────────────────────────────────────────────────────

func TestAssignFusedChain(t *testing.T) {
	as := []int{1, 2, 3}
	bs := []int{10, 20, 30}
	cs := []int{100, 200, 300}
	ds := make([]int, 3)

	a, b, c := lazy.WrapSlice(as), lazy.WrapSlice(bs), lazy.WrapSlice(cs)
	d := lazy.WrapSlice(ds)

	if err := d.Assign(lazy.Add[int](lazy.Add[int](a, b), c)); err != nil {
		t.Fatal(err)
	}

	// Identical to the naive elementwise loop.
	for i := range ds {
		if want := as[i] + bs[i] + cs[i]; ds[i] != want {
			t.Errorf("d[%d] = %d, want %d", i, ds[i], want)
		}
	}
	assertSlice(t, ds, []int{111, 222, 333})
}

func TestCompoundAssignFromExpression(t *testing.T) {
	as := []int{1, 2, 3}
	bs := []int{10, 20, 30}
	cs := []int{100, 200, 300}
	ds := []int{7, 8, 9}
	old := append([]int(nil), ds...)

	a, b, c := lazy.WrapSlice(as), lazy.WrapSlice(bs), lazy.WrapSlice(cs)
	d := lazy.WrapSlice(ds)

	// d += a + b + c
	if err := lazy.AddAssign(d, lazy.Add[int](lazy.Add[int](a, b), c)); err != nil {
		t.Fatal(err)
	}
	for i := range ds {
		if want := old[i] + as[i] + bs[i] + cs[i]; ds[i] != want {
			t.Errorf("d[%d] = %d, want %d", i, ds[i], want)
		}
	}
	assertSlice(t, ds, []int{118, 230, 342})
}

func TestCompoundAssignScenario(t *testing.T) {
	a := lazy.WrapSlice([]int{1, 2, 3})
	b := lazy.WrapSlice([]int{10, 20, 30})
	c := lazy.WrapSlice([]int{100, 200, 300})
	ds := []int{0, 0, 0}
	d := lazy.WrapSlice(ds)

	if err := lazy.AddAssign(d, lazy.Add[int](lazy.Add[int](a, b), c)); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, ds, []int{111, 222, 333})
}

func TestIntoMaterializesStrings(t *testing.T) {
	a := lazy.WrapSlice([]string{"x", "x"})
	b := lazy.WrapSlice([]string{"y", "y"})
	dst := make([]string, 2)

	w, err := lazy.Into[string](lazy.Slice[string](dst), lazy.Add[string](a, b))
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, dst, []string{"xy", "xy"})
	if w.Len() != 2 || w.At(1) != "xy" {
		t.Fatal("returned wrapper is not bound to the materialized destination")
	}
}

func TestAssignOverwritesInPlace(t *testing.T) {
	ds := []int{9, 9, 9}
	d := lazy.WrapSlice(ds)
	a := lazy.WrapSlice([]int{4, 5, 6})
	b := lazy.WrapSlice([]int{1, 1, 1})

	if err := d.Assign(lazy.Sub[int](a, b)); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, ds, []int{3, 4, 5})
}

// ─────────────────────────────────────────────────────────────────────────────
// Compound-assignment operator family
// ─────────────────────────────────────────────────────────────────────────────

func TestCompoundAssignScalar(t *testing.T) {
	ds := []int{1, 2, 3}
	d := lazy.WrapSlice(ds)
	if err := lazy.AddAssign(d, lazy.Const(5)); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, ds, []int{6, 7, 8})

	if err := lazy.MulAssign(d, lazy.Const(2)); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, ds, []int{12, 14, 16})
}

func TestCompoundAssignOperators(t *testing.T) {
	rhs := lazy.WrapSlice([]int{2, 2, 2})

	run := func(name string, init []int, fn func(lazy.Wrap[int]) error, want []int) {
		t.Helper()
		ds := append([]int(nil), init...)
		if err := fn(lazy.WrapSlice(ds)); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(ds) != len(want) {
			t.Fatalf("%s: length mismatch", name)
		}
		for i := range ds {
			if ds[i] != want[i] {
				t.Fatalf("%s: got %v, want %v", name, ds, want)
			}
		}
	}

	run("SubAssign", []int{10, 20, 30},
		func(d lazy.Wrap[int]) error { return lazy.SubAssign(d, rhs) }, []int{8, 18, 28})
	run("MulAssign", []int{10, 20, 30},
		func(d lazy.Wrap[int]) error { return lazy.MulAssign(d, rhs) }, []int{20, 40, 60})
	run("DivAssign", []int{10, 20, 30},
		func(d lazy.Wrap[int]) error { return lazy.DivAssign(d, rhs) }, []int{5, 10, 15})
	run("AndAssign", []int{0b1100, 0b1010, 0b0110},
		func(d lazy.Wrap[int]) error { return lazy.AndAssign(d, rhs) }, []int{0b0000, 0b0010, 0b0010})
	run("OrAssign", []int{0b1100, 0b1010, 0b0110},
		func(d lazy.Wrap[int]) error { return lazy.OrAssign(d, rhs) }, []int{0b1110, 0b1010, 0b0110})
	run("XorAssign", []int{0b1100, 0b1010, 0b0110},
		func(d lazy.Wrap[int]) error { return lazy.XorAssign(d, rhs) }, []int{0b1110, 0b1000, 0b0100})
	run("ShlAssign", []int{1, 2, 3},
		func(d lazy.Wrap[int]) error { return lazy.ShlAssign(d, rhs) }, []int{4, 8, 12})
	run("ShrAssign", []int{4, 8, 12},
		func(d lazy.Wrap[int]) error { return lazy.ShrAssign(d, rhs) }, []int{1, 2, 3})
}

func TestAddAssignStrings(t *testing.T) {
	ds := []string{"__", "__"}
	d := lazy.WrapSlice(ds)
	a := lazy.WrapSlice([]string{"lorem ", "lorem "})
	b := lazy.WrapSlice([]string{"ipsum", "ipsum"})

	if err := lazy.AddAssign(d, lazy.Add[string](a, b)); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, ds, []string{"__lorem ipsum", "__lorem ipsum"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Relational chains
// ─────────────────────────────────────────────────────────────────────────────

func TestRelationalChainIntoBools(t *testing.T) {
	a := lazy.WrapSlice([]int{1, 5, 3})
	b := lazy.WrapSlice([]int{1, 2, 3})
	dst := make([]bool, 3)

	if _, err := lazy.Into[bool](lazy.Slice[bool](dst), lazy.Eq[int](a, b)); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, dst, []bool{true, false, true})
}

func TestLogicalChain(t *testing.T) {
	a := lazy.WrapSlice([]int{1, 5, 3})
	b := lazy.WrapSlice([]int{1, 2, 3})
	c := lazy.WrapSlice([]int{0, 9, 9})
	dst := make([]bool, 3)

	// (a == b) || (c > a)
	e := lazy.Or(lazy.Eq[int](a, b), lazy.Gt[int](c, a))
	if _, err := lazy.Into[bool](lazy.Slice[bool](dst), e); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, dst, []bool{true, true, true})

	// (a == b) && (c > a)
	e2 := lazy.And(lazy.Eq[int](a, b), lazy.Gt[int](c, a))
	if _, err := lazy.Into[bool](lazy.Slice[bool](dst), e2); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, dst, []bool{false, false, true})
}

// ─────────────────────────────────────────────────────────────────────────────
// Length policy
// ─────────────────────────────────────────────────────────────────────────────

func TestAssignLengthMismatch(t *testing.T) {
	short := lazy.WrapSlice([]int{1, 2})
	long := lazy.WrapSlice([]int{1, 2, 3, 4})
	ds := []int{7, 7, 7}
	d := lazy.WrapSlice(ds)

	err := d.Assign(lazy.Add[int](short, long))
	if !errors.Is(err, lazy.ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
	if !strings.Contains(err.Error(), "2") || !strings.Contains(err.Error(), "3") {
		t.Fatalf("error should name both sizes, got %q", err)
	}
	// Fail fast: nothing was written.
	assertSlice(t, ds, []int{7, 7, 7})
}

func TestCompoundAssignLengthMismatch(t *testing.T) {
	ds := []int{1, 2, 3}
	d := lazy.WrapSlice(ds)
	short := lazy.WrapSlice([]int{1})

	if err := lazy.AddAssign[int](d, short); !errors.Is(err, lazy.ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
	assertSlice(t, ds, []int{1, 2, 3})
}

func TestLongerOperandsAreAllowed(t *testing.T) {
	a := lazy.WrapSlice([]int{1, 2, 3, 4, 5})
	b := lazy.WrapSlice([]int{10, 20, 30, 40})
	ds := make([]int, 3)

	if err := lazy.WrapSlice(ds).Assign(lazy.Add[int](a, b)); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, ds, []int{11, 22, 33})
}

func TestIntoNilDestination(t *testing.T) {
	_, err := lazy.Into[int](nil, lazy.Const(1))
	if !errors.Is(err, lazy.ErrNilCollection) {
		t.Fatalf("err = %v, want ErrNilCollection", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Single-pass guarantee
// ─────────────────────────────────────────────────────────────────────────────

func TestMaterializationReadsEachLeafOncePerIndex(t *testing.T) {
	a := newCounting([]int{1, 2, 3, 4})
	b := newCounting([]int{5, 6, 7, 8})
	c := newCounting([]int{9, 10, 11, 12})
	dst := newCounting(make([]int, 4))

	wa, _ := lazy.WrapCollection[int](a)
	wb, _ := lazy.WrapCollection[int](b)
	wc, _ := lazy.WrapCollection[int](c)
	wd, _ := lazy.WrapCollection[int](dst)

	if err := wd.Assign(lazy.Add[int](lazy.Add[int](wa, wb), wc)); err != nil {
		t.Fatal(err)
	}

	n := dst.Len()
	for name, col := range map[string]*countingCollection{"a": a, "b": b, "c": c} {
		if col.reads != n {
			t.Errorf("leaf %s read %d times over %d indices; fused pass must read once per index", name, col.reads, n)
		}
	}
	if dst.writes != n {
		t.Errorf("destination written %d times, want %d", dst.writes, n)
	}
}

func TestCompoundAssignReadsDestinationOncePerIndex(t *testing.T) {
	a := newCounting([]int{1, 2, 3})
	dst := newCounting([]int{10, 20, 30})

	wa, _ := lazy.WrapCollection[int](a)
	wd, _ := lazy.WrapCollection[int](dst)

	if err := lazy.AddAssign(wd, wa); err != nil {
		t.Fatal(err)
	}
	if a.reads != 3 || dst.reads != 3 || dst.writes != 3 {
		t.Fatalf("reads/writes: a=%d dst.reads=%d dst.writes=%d, want 3 each", a.reads, dst.reads, dst.writes)
	}
	assertSlice(t, dst.items, []int{11, 22, 33})
}

// ─────────────────────────────────────────────────────────────────────────────
// No intermediate collections
// ─────────────────────────────────────────────────────────────────────────────

func TestNoIntermediateAllocationWithReuse(t *testing.T) {
	n := 8
	as := make([][]byte, n)
	bs := make([][]byte, n)
	cs := make([][]byte, n)
	for i := range as {
		as[i], bs[i], cs[i] = []byte("aa"), []byte("bb"), []byte("cc")
	}

	var constructed int
	cat := func(x, y []byte) []byte {
		constructed++
		out := make([]byte, 0, len(x)+len(y))
		out = append(out, x...)
		return append(out, y...)
	}
	catInto := func(x, y []byte) []byte { return append(x, y...) }

	a := lazy.WrapSlice(as)
	b := lazy.WrapSlice(bs)
	c := lazy.WrapSlice(cs)

	inner := lazy.CombineReuse[[]byte](a, b, ops.OpAdd, cat, catInto, nil)
	outer := lazy.CombineReuse[[]byte](inner, c, ops.OpAdd, cat, catInto, nil)

	dst := make([][]byte, n)
	if _, err := lazy.Into[[]byte](lazy.Slice[[]byte](dst), outer); err != nil {
		t.Fatal(err)
	}

	// One constructed temporary per index (the inner node's), not two.
	if constructed != n {
		t.Fatalf("constructed %d temporaries over %d indices, want exactly %d", constructed, n, n)
	}
	for i := range dst {
		if string(dst[i]) != "aabbcc" {
			t.Fatalf("dst[%d] = %q, want %q", i, dst[i], "aabbcc")
		}
	}
}
