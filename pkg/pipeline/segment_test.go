package pipeline

import (
	"testing"

	"github.com/stowage-dev/stowage/pkg/lines"
)

func marker(capacity int) lines.Line {
	return lines.Line{Kind: lines.KindInventory, Capacity: capacity}
}

func request(id, qty int) lines.Line {
	return lines.Line{Kind: lines.KindStack, ItemID: id, Quantity: qty}
}

func other() lines.Line {
	return lines.Line{Kind: lines.KindOther}
}

func TestSegmentSplitsOnMarkers(t *testing.T) {
	ls := []lines.Line{
		other(),          // preamble
		marker(5),
		request(1, 3),
		request(2, 3),
		marker(10),
		request(1, 3),
	}

	segments := Segment(ls)
	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3 (preamble + one per marker)", len(segments))
	}
	if len(segments[0]) != 1 {
		t.Errorf("preamble length = %d, want 1", len(segments[0]))
	}
	if len(segments[1]) != 2 {
		t.Errorf("segment 1 length = %d, want 2", len(segments[1]))
	}
	if len(segments[2]) != 1 {
		t.Errorf("segment 2 length = %d, want 1", len(segments[2]))
	}
}

func TestSegmentExcludesMarkers(t *testing.T) {
	ls := []lines.Line{marker(5), request(1, 1), marker(10)}

	for _, seg := range Segment(ls) {
		for _, line := range seg {
			if line.Kind == lines.KindInventory {
				t.Fatal("markers are boundaries, they must not appear in any segment")
			}
		}
	}
}

func TestSegmentNoMarkers(t *testing.T) {
	ls := []lines.Line{request(1, 1), other(), request(2, 2)}

	segments := Segment(ls)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want exactly 1 for marker-free input", len(segments))
	}
	if len(segments[0]) != 3 {
		t.Errorf("segment length = %d, want the whole input (3)", len(segments[0]))
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	segments := Segment(nil)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if len(segments[0]) != 0 {
		t.Errorf("segment length = %d, want 0", len(segments[0]))
	}
}

func TestSegmentAdjacentMarkers(t *testing.T) {
	ls := []lines.Line{marker(1), marker(2)}

	segments := Segment(ls)
	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}
	for i, seg := range segments {
		if len(seg) != 0 {
			t.Errorf("segment %d length = %d, want 0", i, len(seg))
		}
	}
}

func TestSegmentCountInvariant(t *testing.T) {
	// len(Segment(ls)) == marker count + 1, for any input shape.
	inputs := [][]lines.Line{
		nil,
		{other()},
		{marker(1)},
		{request(1, 1), marker(1), request(2, 2), marker(2)},
		{marker(1), marker(2), marker(3)},
	}

	for _, ls := range inputs {
		markers := 0
		for _, line := range ls {
			if line.Kind == lines.KindInventory {
				markers++
			}
		}
		if got := len(Segment(ls)); got != markers+1 {
			t.Errorf("input %v: %d segments, want %d", ls, got, markers+1)
		}
	}
}

func TestInventoriesMatchMarkers(t *testing.T) {
	ls := []lines.Line{
		request(1, 1),
		marker(5),
		marker(0),
		request(2, 2),
		marker(-1),
	}

	invs := Inventories(ls)
	if len(invs) != 3 {
		t.Fatalf("got %d inventories, want 3", len(invs))
	}

	want := []int{5, 0, -1}
	for i, inv := range invs {
		if inv.Capacity() != want[i] {
			t.Errorf("inventory %d capacity = %d, want %d", i, inv.Capacity(), want[i])
		}
	}
}

func TestInventoriesNoMarkers(t *testing.T) {
	if got := Inventories([]lines.Line{request(1, 1)}); len(got) != 0 {
		t.Errorf("got %d inventories, want 0", len(got))
	}
}
