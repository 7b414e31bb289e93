package list

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/fpds"
	"github.com/npillmayer/fpds/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestListEmpty(t *testing.T) {
	var l List[int]
	if !l.IsEmpty() || l.Len() != 0 {
		t.Errorf("expected zero list to be empty, is %v", l)
	}
	if l.String() != "[NIL]" {
		t.Errorf("expected empty list to render as [NIL], is %s", l)
	}
	if !l.HeadSafe().IsEmpty() || !l.LastSafe().IsEmpty() {
		t.Error("expected HeadSafe/LastSafe of empty list to be empty results")
	}
}

func TestListConsSharesTail(t *testing.T) {
	tail := Of(2, 3)
	a := tail.Cons(1)
	b := tail.Cons(10)
	if a.first.tail != tail.first || b.first.tail != tail.first {
		t.Error("expected consed lists to share their tail")
	}
	if a.String() != "[1, 2, 3, NIL]" {
		t.Errorf("expected [1, 2, 3, NIL], is %s", a)
	}
	if a.Len() != 3 || a.LenComputed() != 3 {
		t.Errorf("expected length 3, is %d (computed %d)", a.Len(), a.LenComputed())
	}
}

func TestListPanicsOnEmpty(t *testing.T) {
	ops := map[string]func(List[int]){
		"head":    func(l List[int]) { l.Head() },
		"tail":    func(l List[int]) { l.Tail() },
		"init":    func(l List[int]) { l.Init() },
		"setHead": func(l List[int]) { l.SetHead(1) },
	}
	for name, op := range ops {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrEmptyContainer) {
					t.Errorf("%s: expected panic with ErrEmptyContainer, got %v", name, r)
				}
			}()
			op(List[int]{})
		}()
	}
}

func TestListConcatGetAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := Of(1, 2, 3).Concat(Of(4, 5, 6))
	if v := l.GetAt(0).GetOrElse(-1); v != 1 {
		t.Errorf("expected getAt(0) to be 1, is %d", v)
	}
	if v := l.GetAt(5).GetOrElse(-1); v != 6 {
		t.Errorf("expected getAt(5) to be 6, is %d", v)
	}
	for _, i := range []int{-1, 6} {
		r := l.GetAt(i)
		if !r.IsFailure() || !errors.Is(r.Err(), ErrIndexOutOfRange) {
			t.Errorf("expected getAt(%d) to fail with ErrIndexOutOfRange, is %v", i, r)
		}
	}
}

func TestListConcatSharesRight(t *testing.T) {
	right := Of(4, 5)
	l := Of(1, 2).Concat(right)
	if l.Drop(2).first != right.first {
		t.Error("expected Concat to share the right-hand list")
	}
	if diff := cmp.Diff([]int{1, 2, 4, 5}, l.Slice()); diff != "" {
		t.Errorf("concat mismatch (-want +got):\n%s", diff)
	}
}

func TestListLaws(t *testing.T) {
	l := Of(3, 1, 4, 1, 5, 9, 2, 6)
	if diff := cmp.Diff(l.Slice(), l.Reverse().Reverse().Slice()); diff != "" {
		t.Errorf("reverse.reverse (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(l.Slice(), l.Concat(Empty[int]()).Slice()); diff != "" {
		t.Errorf("concat empty (-want +got):\n%s", diff)
	}
	if Map(l, strconv.Itoa).Len() != l.Len() {
		t.Error("expected map to preserve length")
	}
	singleton := func(n int) List[int] { return Of(n) }
	if diff := cmp.Diff(l.Slice(), Flatten(Map(l, singleton)).Slice()); diff != "" {
		t.Errorf("flatten.map(singleton) (-want +got):\n%s", diff)
	}
}

func TestListMapFilterFlatMap(t *testing.T) {
	l := Of(1, 2, 3).Concat(Of(4, 5, 6))
	squares := Map(l, func(n int) int { return n * n })
	even := squares.Filter(func(n int) bool { return n%2 == 0 })
	both := FlatMap(even, func(n int) List[int] { return Of(n, -n) })
	want := []int{4, -4, 16, -16, 36, -36}
	if diff := cmp.Diff(want, both.Slice()); diff != "" {
		t.Errorf("map/filter/flatMap (-want +got):\n%s", diff)
	}
}

func TestListSplitAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := Of(1, 2, 3, 4, 5)
	cases := []struct {
		index       int
		front, rest []int
	}{
		{2, []int{1, 2}, []int{3, 4, 5}},
		{0, []int{}, []int{1, 2, 3, 4, 5}},
		{-3, []int{}, []int{1, 2, 3, 4, 5}},
		{5, []int{1, 2, 3, 4, 5}, []int{}},
		{17, []int{1, 2, 3, 4, 5}, []int{}},
	}
	for i, c := range cases {
		front, rest := l.SplitAt(c.index).Decompose()
		if diff := cmp.Diff(c.front, front.Slice()); diff != "" {
			t.Errorf("%d: splitAt(%d) front (-want +got):\n%s", i, c.index, diff)
		}
		if diff := cmp.Diff(c.rest, rest.Slice()); diff != "" {
			t.Errorf("%d: splitAt(%d) rest (-want +got):\n%s", i, c.index, diff)
		}
	}
}

func TestListDropInitSetHead(t *testing.T) {
	l := Of(1, 2, 3, 4)
	if diff := cmp.Diff([]int{3, 4}, l.Drop(2).Slice()); diff != "" {
		t.Errorf("drop (-want +got):\n%s", diff)
	}
	if !l.Drop(10).IsEmpty() {
		t.Error("expected drop beyond length to yield empty list")
	}
	small := func(n int) bool { return n < 3 }
	if diff := cmp.Diff([]int{3, 4}, l.DropWhile(small).Slice()); diff != "" {
		t.Errorf("dropWhile (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, l.Init().Slice()); diff != "" {
		t.Errorf("init (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{9, 2, 3, 4}, l.SetHead(9).Slice()); diff != "" {
		t.Errorf("setHead (-want +got):\n%s", diff)
	}
	if l.LastSafe().GetOrElse(0) != 4 {
		t.Errorf("expected last value 4, is %v", l.LastSafe())
	}
}

func TestListFolds(t *testing.T) {
	l := Of("a", "b", "c")
	left := FoldLeft(l, "", func(acc, s string) string { return "(" + acc + s + ")" })
	if left != "(((a)b)c)" {
		t.Errorf("expected foldLeft to be (((a)b)c), is %s", left)
	}
	right := FoldRight(l, "", func(s, acc string) string { return "(" + s + acc + ")" })
	if right != "(a(b(c)))" {
		t.Errorf("expected foldRight to be (a(b(c))), is %s", right)
	}
	co := CoFoldRight(l, "", func(s, acc string) string { return "(" + s + acc + ")" })
	if co != right {
		t.Errorf("expected coFoldRight to equal foldRight, is %s", co)
	}
}

func TestListFoldLeftUntil(t *testing.T) {
	l := Of(3, 0, 5, 7)
	calls := 0
	product := FoldLeftUntil(l, 1, 0, func(acc, n int) int {
		calls++
		return acc * n
	})
	if product != 0 || calls != 2 {
		t.Errorf("expected product to stop at 0 after 2 steps, is %d after %d", product, calls)
	}
	// a sentinel which occurs as a legitimate intermediate value stops too early
	add := func(acc, n int) int { return acc + n }
	if sum := FoldLeftUntil(Of(1, -2, 5), 1, 0, add); sum != 0 {
		t.Errorf("expected sum to stop at intermediate 0, is %d", sum)
	}
	if sum := FoldLeft(Of(1, -2, 5), 1, add); sum != 5 {
		t.Errorf("expected full sum 5, is %d", sum)
	}
	if sum := Sum(Of(1.5, 2.5)); sum != 4.0 {
		t.Errorf("expected Sum(1.5, 2.5) to be 4, is %f", sum)
	}
}

func TestListZipUnzipProduct(t *testing.T) {
	z := ZipWith(Of(1, 2, 3), Of("a", "b"), func(n int, s string) string { return s + strconv.Itoa(n) })
	if diff := cmp.Diff([]string{"a1", "b2"}, z.Slice()); diff != "" {
		t.Errorf("zipWith (-want +got):\n%s", diff)
	}
	pairs := Of(fpds.P(1, "one"), fpds.P(2, "two"))
	nums, names := Unzip(pairs).Decompose()
	if diff := cmp.Diff([]int{1, 2}, nums.Slice()); diff != "" {
		t.Errorf("unzip left (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"one", "two"}, names.Slice()); diff != "" {
		t.Errorf("unzip right (-want +got):\n%s", diff)
	}
	p := Product(Of(1, 2), Of(10, 20), func(a, b int) int { return a + b })
	if diff := cmp.Diff([]int{11, 21, 12, 22}, p.Slice()); diff != "" {
		t.Errorf("product (-want +got):\n%s", diff)
	}
}

func TestListMax(t *testing.T) {
	var m int
	var err error
	switch x := Max(Of(3, 9, 2)).Match(); x {
	case x.Left(&err):
		t.Errorf("expected max of non-empty list, got error %v", err)
	case x.Right(&m):
	}
	if m != 9 {
		t.Errorf("expected max to be 9, is %d", m)
	}
	e := Max(Empty[int]())
	if !e.IsLeft() {
		t.Fatalf("expected max of empty list to be Left, is %v", e)
	}
	switch x := e.Match(); x {
	case x.Left(&err):
	}
	if !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("expected ErrEmptyContainer, is %v", err)
	}
}

func TestListSequence(t *testing.T) {
	all := Of(maybe.Just(1), maybe.Just(2))
	s := Sequence(all).WithDefault(Of(-1))
	if diff := cmp.Diff([]int{1, 2}, s.Slice()); diff != "" {
		t.Errorf("sequence (-want +got):\n%s", diff)
	}
	gap := Of(maybe.Just(1), maybe.Nothing[int]())
	if !Sequence(gap).IsNothing() {
		t.Error("expected sequence with a missing value to be Nothing")
	}
	parsed := Traverse(Of("1", "x"), func(s string) maybe.Maybe[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return maybe.Nothing[int]()
		}
		return maybe.Just(n)
	})
	if !parsed.IsNothing() {
		t.Error("expected traverse over unparsable input to be Nothing")
	}
}
