package list_test

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/hasbyte1/go-immutable-list/list"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *list.List[int] { return list.Of(ns...) }

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestOf(t *testing.T) {
	assertSlice(t, list.Of(1, 2, 3).All(), []int{1, 2, 3})
}

func TestFrom(t *testing.T) {
	s := []string{"a", "b", "c"}
	l := list.From(s)
	s[0] = "z" // mutate original – should not affect the list
	if l.All()[0] != "a" {
		t.Fatal("From did not copy the slice")
	}
}

func TestFromSeq(t *testing.T) {
	l := list.FromSeq(slices.Values([]int{1, 2, 3}))
	assertSlice(t, l.All(), []int{1, 2, 3})
}

func TestEmpty(t *testing.T) {
	if list.Empty[int]().Size() != 0 {
		t.Fatal("empty list should have Size 0")
	}
}

func TestRange(t *testing.T) {
	l, err := list.Range(0, 5)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, l.All(), []int{0, 1, 2, 3, 4})

	l, err = list.Range(1, 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, l.All(), []int{1, 3})
}

func TestRangeEmpty(t *testing.T) {
	l, err := list.Range(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if l.IsNotEmpty() {
		t.Fatalf("Range(4, 4) = %v; want empty", l.All())
	}
}

func TestRangeInvalidStep(t *testing.T) {
	for _, step := range []int{0, -1} {
		_, err := list.Range(0, 10, step)
		if !errors.Is(err, list.ErrInvalidStep) {
			t.Fatalf("Range step=%d: err = %v; want ErrInvalidStep", step, err)
		}
		if !errors.Is(err, list.ErrInvalidArgument) {
			t.Fatal("ErrInvalidStep should match ErrInvalidArgument")
		}
	}
}

func TestRangeFloat(t *testing.T) {
	l, err := list.Range(0.0, 1.0, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, l.All(), []float64{0, 0.25, 0.5, 0.75})
}

// ─────────────────────────────────────────────────────────────────────────────
// Element access
// ─────────────────────────────────────────────────────────────────────────────

func TestAt(t *testing.T) {
	l := ints(10, 20, 30)
	if v := l.At(1); v.GetOr(0) != 20 {
		t.Fatalf("At(1) = %v; want Some(20)", v)
	}
	if v := l.At(-1); v.GetOr(0) != 30 {
		t.Fatalf("At(-1) = %v; want Some(30)", v)
	}
	if l.At(3).IsPresent() || l.At(-4).IsPresent() {
		t.Fatal("At out of range should be absent")
	}
}

func TestAtNegativeNormalization(t *testing.T) {
	l := ints(1, 2, 3, 4, 5)
	n := l.Size()
	for i := 0; i < n; i++ {
		neg := l.At(-1 - i).MustGet()
		pos := l.At(n - 1 - i).MustGet()
		if neg != pos {
			t.Fatalf("At(%d) = %d, At(%d) = %d; want equal", -1-i, neg, n-1-i, pos)
		}
	}
}

func TestFirstLast(t *testing.T) {
	l := ints(1, 2, 3)
	if l.First().MustGet() != 1 || l.Last().MustGet() != 3 {
		t.Fatal("First/Last failed")
	}
	empty := list.Empty[int]()
	if empty.First().IsPresent() || empty.Last().IsPresent() {
		t.Fatal("First/Last on empty should be absent")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Inspection & conversion
// ─────────────────────────────────────────────────────────────────────────────

func TestSize(t *testing.T) {
	if ints(1, 2, 3).Size() != 3 {
		t.Fatal("Size failed")
	}
}

func TestIsEmpty(t *testing.T) {
	if !list.Empty[int]().IsEmpty() {
		t.Fatal("expected empty")
	}
	if ints(1).IsEmpty() {
		t.Fatal("should not be empty")
	}
	if !ints(1).IsNotEmpty() {
		t.Fatal("expected not empty")
	}
}

func TestAllCopies(t *testing.T) {
	l := ints(1, 2, 3)
	got := l.All()
	got[0] = 99 // mutate the copy – should not affect the list
	assertSlice(t, l.All(), []int{1, 2, 3})
	assertSlice(t, l.ToSlice(), []int{1, 2, 3})
}

func TestRoundTrip(t *testing.T) {
	l := ints(3, 1, 4, 1, 5)
	assertSlice(t, list.From(l.All()).All(), l.All())
}

func TestToSet(t *testing.T) {
	set := ints(1, 2, 2, 3).ToSet()
	if len(set) != 3 {
		t.Fatalf("ToSet size = %d; want 3", len(set))
	}
	if _, ok := set[2]; !ok {
		t.Fatal("ToSet missing element 2")
	}
}

func TestToJSON(t *testing.T) {
	b, err := ints(1, 2, 3).ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	var got []int
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []int{1, 2, 3})
}

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal(ints(1, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[1,2,3]" {
		t.Fatalf("json.Marshal = %s; want [1,2,3]", b)
	}
}

func TestString(t *testing.T) {
	if s := ints(1, 2, 3).String(); s != "1,2,3" {
		t.Fatalf("String() = %q; want 1,2,3", s)
	}
	if s := list.Empty[int]().String(); s != "" {
		t.Fatalf("String() of empty = %q; want \"\"", s)
	}
}

func TestImplode(t *testing.T) {
	got := list.Of("a", "b", "c").Implode(", ", func(s string) string { return s })
	if got != "a, b, c" {
		t.Fatalf("Implode = %q", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

func TestValues(t *testing.T) {
	l := ints(1, 2, 3)
	var got []int
	for v := range l.Values() {
		got = append(got, v)
	}
	assertSlice(t, got, []int{1, 2, 3})

	// Restartable: a second pass yields the same elements.
	got = got[:0]
	for v := range l.Values() {
		got = append(got, v)
	}
	assertSlice(t, got, []int{1, 2, 3})
}

func TestValuesEarlyBreak(t *testing.T) {
	var got []int
	for v := range ints(1, 2, 3, 4).Values() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assertSlice(t, got, []int{1, 2})
}

func TestEach(t *testing.T) {
	sum := 0
	ints(1, 2, 3, 4).Each(func(n, _ int) { sum += n })
	if sum != 10 {
		t.Fatalf("Each sum = %d; want 10", sum)
	}
}

func TestTap(t *testing.T) {
	var seen int
	result := ints(1, 2, 3).
		Tap(func(l *list.List[int]) { seen = l.Size() }).
		Size()
	if seen != 3 || result != 3 {
		t.Fatal("Tap failed")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Clone
// ─────────────────────────────────────────────────────────────────────────────

func TestClone(t *testing.T) {
	l := ints(1, 2, 3)
	c := l.Clone()
	assertSlice(t, c.All(), []int{1, 2, 3})
}

func TestCloneDeep(t *testing.T) {
	l := list.Of([]int{1, 2}, []int{3})
	c, err := l.CloneDeep()
	if err != nil {
		t.Fatal(err)
	}
	c.All()[0][0] = 99 // mutate nested storage of the clone
	if l.All()[0][0] != 1 {
		t.Fatal("CloneDeep shares nested storage with the original")
	}
}

func TestCloneDeepMaps(t *testing.T) {
	l := list.Of(map[string][]int{"a": {1, 2}})
	c, err := l.CloneDeep()
	if err != nil {
		t.Fatal(err)
	}
	c.All()[0]["a"][0] = 99
	if l.All()[0]["a"][0] != 1 {
		t.Fatal("CloneDeep shares nested map storage with the original")
	}
}

func TestCloneDeepUnsupported(t *testing.T) {
	_, err := list.Of(func() {}).CloneDeep()
	if !errors.Is(err, list.ErrUnsupportedOperation) {
		t.Fatalf("CloneDeep of func = %v; want ErrUnsupportedOperation", err)
	}

	type hidden struct{ n int }
	_, err = list.Of(hidden{n: 1}).CloneDeep()
	if !errors.Is(err, list.ErrUnsupportedOperation) {
		t.Fatalf("CloneDeep of unexported-field struct = %v; want ErrUnsupportedOperation", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional
// ─────────────────────────────────────────────────────────────────────────────

func TestWhen(t *testing.T) {
	l := ints(1, 2, 3).When(true, func(l *list.List[int]) *list.List[int] {
		return l.Append(4)
	})
	assertSlice(t, l.All(), []int{1, 2, 3, 4})

	l2 := ints(1, 2, 3).When(false, func(l *list.List[int]) *list.List[int] {
		return l.Append(99)
	})
	assertSlice(t, l2.All(), []int{1, 2, 3})
}

func TestUnless(t *testing.T) {
	l := ints(1, 2).Unless(false, func(l *list.List[int]) *list.List[int] {
		return l.Append(3)
	})
	assertSlice(t, l.All(), []int{1, 2, 3})
}

func TestWhenEmpty(t *testing.T) {
	filled := list.Empty[int]().WhenEmpty(func(l *list.List[int]) *list.List[int] {
		return l.Append(42)
	})
	assertSlice(t, filled.All(), []int{42})

	unchanged := ints(1).WhenEmpty(func(l *list.List[int]) *list.List[int] {
		return l.Append(99)
	})
	assertSlice(t, unchanged.All(), []int{1})
}

func TestWhenNotEmpty(t *testing.T) {
	l := ints(1, 2).WhenNotEmpty(func(l *list.List[int]) *list.List[int] {
		return l.Append(3)
	})
	assertSlice(t, l.All(), []int{1, 2, 3})
}

// ─────────────────────────────────────────────────────────────────────────────
// Macros
// ─────────────────────────────────────────────────────────────────────────────

func TestMacro(t *testing.T) {
	defer list.FlushMacros()

	list.RegisterMacro("evens", func(lst any, _ ...any) any {
		return lst.(*list.List[int]).Filter(func(n, _ int) bool { return n%2 == 0 })
	})
	if !list.HasMacro("evens") {
		t.Fatal("HasMacro should be true after RegisterMacro")
	}

	res, err := ints(1, 2, 3, 4).Macro("evens")
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, res.(*list.List[int]).All(), []int{2, 4})

	_, err = ints(1).Macro("missing")
	if !errors.Is(err, list.ErrMacroNotFound) {
		t.Fatalf("Macro(missing) err = %v; want ErrMacroNotFound", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Immutability
// ─────────────────────────────────────────────────────────────────────────────

func TestImmutability(t *testing.T) {
	orig := ints(3, 1, 2)
	_ = orig.Append(4)
	_ = orig.Prepend(0)
	_ = orig.Filter(func(n, _ int) bool { return n > 1 })
	_ = orig.Reverse()
	_ = orig.Sort()
	_ = orig.Shuffle()
	_ = orig.Rotate(2)
	_ = orig.Splice(0, 2, 9)
	assertSlice(t, orig.All(), []int{3, 1, 2}) // unchanged
}
