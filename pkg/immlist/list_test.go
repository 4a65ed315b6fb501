package immlist

import (
	"slices"
	"testing"
)

func TestAppendToEmpty(t *testing.T) {
	l := Nil[int]()
	if !l.IsEmpty() {
		t.Fatalf("Nil() is not empty")
	}
	l = l.Append(1)
	if l.IsEmpty() || l.Len() != 1 {
		t.Fatalf("after Append(1): Len() = %d", l.Len())
	}
	l = l.Append(2)
	if got := l.Slice(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Slice() = %v, want [1 2]", got)
	}
}

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		in   []int
	}{
		{"one", []int{1}},
		{"two", []int{10, 20}},
		{"three", []int{10, 20, 30}},
		{"five", []int{5, 4, 3, 2, 1}},
		{"six", []int{5, 4, 3, 2, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.in...).Slice(); !slices.Equal(got, tt.in) {
				t.Errorf("Of(%v).Slice() = %v", tt.in, got)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	if got := Of(3, 2, 1).Reverse().Slice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Reverse() = %v", got)
	}
	for _, l := range []*List[int]{nil, Of(1), Of(1, 2), Of(4, 5, 6, 7)} {
		if !Equal(l.Reverse().Reverse(), l) {
			t.Errorf("reverse(reverse(%v)) = %v", l, l.Reverse().Reverse())
		}
	}
}

func TestAppendList(t *testing.T) {
	if got := Of(1, 2).AppendList(Of(3, 4, 5)).Slice(); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("AppendList = %v", got)
	}
	l := Of(1, 2, 3)
	if l.AppendList(Nil[int]()) != l {
		t.Errorf("appending the empty list should return the same list")
	}
	if Nil[int]().AppendList(l) != l {
		t.Errorf("appending to the empty list should return the argument")
	}
}

func TestPrependList(t *testing.T) {
	if got := Of(3, 4, 5).PrependList(Of(1, 2)).Slice(); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("PrependList = %v", got)
	}
}

func TestPrependHeadTail(t *testing.T) {
	l := Of(2, 3)
	p := l.Prepend(1)
	if p.Head() != 1 {
		t.Errorf("Head() = %d, want 1", p.Head())
	}
	if p.Tail() != l {
		t.Errorf("Tail() did not return the original list")
	}
	if Nil[int]().Tail() != nil {
		t.Errorf("tail of empty is not empty")
	}
}

func TestHeadTailWalk(t *testing.T) {
	values := []int{3, 4, 5}
	i := 0
	for it := From(values); it.NonEmpty(); it = it.Tail() {
		if it.Head() != values[i] {
			t.Errorf("element %d = %d, want %d", i, it.Head(), values[i])
		}
		i++
	}
	if i != len(values) {
		t.Errorf("walked %d elements, want %d", i, len(values))
	}
}

func TestLastGetContains(t *testing.T) {
	l := Of(1, 2, 3)
	if l.Last() != 3 {
		t.Errorf("Last() = %d", l.Last())
	}
	if l.Get(1) != 2 {
		t.Errorf("Get(1) = %d", l.Get(1))
	}
	if !Contains(l, 2) || Contains(l, 7) {
		t.Errorf("Contains mismatch")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Get(3) did not panic")
		}
	}()
	l.Get(3)
}

func TestSharedTail(t *testing.T) {
	tail := Of(3, 4)
	a := tail.Prepend(1)
	b := tail.Prepend(2)
	if a.Tail() != b.Tail() {
		t.Errorf("prepend did not share the tail")
	}
	if got := tail.Slice(); !slices.Equal(got, []int{3, 4}) {
		t.Errorf("tail changed: %v", got)
	}
}

func TestAllAndMap(t *testing.T) {
	var got []int
	for x := range Of(1, 2, 3).All() {
		if x == 3 {
			break
		}
		got = append(got, x)
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("All() = %v", got)
	}

	sq := Map(Of(1, 2, 3), func(x int) string { return string(rune('a' + x)) })
	if sq.String() != "b,c,d" {
		t.Errorf("Map = %q", sq.String())
	}
	if Of("x", "y").Format(" ") != "x y" {
		t.Errorf("Format = %q", Of("x", "y").Format(" "))
	}
}

func TestBuffer(t *testing.T) {
	var b Buffer[int]
	if !b.IsEmpty() || b.List() != nil {
		t.Fatalf("zero Buffer is not empty")
	}
	b.Append(1)
	b.AppendList(Of(2, 3))
	b.AppendList(nil)
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	first := b.List()
	b.Append(4)
	if got := first.Slice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("first List() = %v, want [1 2 3]", got)
	}
	if got := b.List().Slice(); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("List() = %v, want [1 2 3 4]", got)
	}
}

func TestBuffer_Large(t *testing.T) {
	const n = 100000
	var b Buffer[int]
	for i := range n {
		b.Append(i)
	}
	l := b.List()
	if l.Len() != n || l.Head() != 0 || l.Last() != n-1 {
		t.Errorf("Len() = %d, Head() = %d, Last() = %d", l.Len(), l.Head(), l.Last())
	}
}
