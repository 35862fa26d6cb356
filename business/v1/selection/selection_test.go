package selection_test

import (
	"testing"
	"time"

	"github.com/ribgsilva/geonote/business/v1/selection"
)

func exists(ids ...int64) func(int64) bool {
	return func(id int64) bool {
		for _, known := range ids {
			if known == id {
				return true
			}
		}
		return false
	}
}

func TestSelectHighlights(t *testing.T) {
	tr := selection.NewWithDuration(exists(1, 2), time.Minute)

	if !tr.Select(1) {
		t.Fatalf("selecting a known note should take effect")
	}
	id, active := tr.Current()
	if !active || id != 1 {
		t.Fatalf("note 1 should be highlighted: id=%d active=%v", id, active)
	}

	if !tr.Select(2) {
		t.Fatalf("selecting another known note should take effect")
	}
	id, active = tr.Current()
	if !active || id != 2 {
		t.Fatalf("note 2 should replace the highlight: id=%d active=%v", id, active)
	}
}

func TestSelectUnknownIdIsNoop(t *testing.T) {
	tr := selection.NewWithDuration(exists(1), time.Minute)

	if tr.Select(99) {
		t.Fatalf("selecting an unknown note should be a no-op")
	}
	if _, active := tr.Current(); active {
		t.Fatalf("nothing should be highlighted")
	}

	// an active highlight survives a bogus selection
	tr.Select(1)
	tr.Select(99)
	id, active := tr.Current()
	if !active || id != 1 {
		t.Fatalf("note 1 should still be highlighted: id=%d active=%v", id, active)
	}
}

func TestHighlightClearsItself(t *testing.T) {
	tr := selection.NewWithDuration(exists(1), 100*time.Millisecond)

	tr.Select(1)
	if _, active := tr.Current(); !active {
		t.Fatalf("highlight should be active right after select")
	}

	time.Sleep(300 * time.Millisecond)
	if _, active := tr.Current(); active {
		t.Fatalf("highlight should have cleared itself")
	}
}

func TestReselectRestartsTheClock(t *testing.T) {
	tr := selection.NewWithDuration(exists(1), 300*time.Millisecond)

	tr.Select(1)
	time.Sleep(200 * time.Millisecond)
	// still inside the first window: restart instead of stacking
	tr.Select(1)

	time.Sleep(200 * time.Millisecond)
	if _, active := tr.Current(); !active {
		t.Fatalf("highlight should still be active, the clock was restarted")
	}

	time.Sleep(300 * time.Millisecond)
	if _, active := tr.Current(); active {
		t.Fatalf("highlight should have cleared after the restarted window")
	}
}
