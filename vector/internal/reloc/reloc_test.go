package reloc

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/rawvec/errors"
)

// trivialOps mimics the default lifecycle for int: transfer + zero the
// source, value copy, zeroing drop.
func trivialOps(byMove bool) Ops[int] {
	return Ops[int]{
		Move: func(p *int) (int, error) {
			v := *p
			*p = 0
			return v, nil
		},
		Copy:   func(v int) (int, error) { return v, nil },
		Drop:   func(p *int) { *p = 0 },
		ByMove: byMove,
	}
}

// failingCopyOps fails the nth copy (0-based) and records drops.
func failingCopyOps(failAt int, dropped *[]int) Ops[int] {
	calls := 0
	ops := trivialOps(false)
	ops.Copy = func(v int) (int, error) {
		if calls == failAt {
			return 0, stderrors.New("copy refused")
		}
		calls++
		return v, nil
	}
	ops.Drop = func(p *int) {
		*dropped = append(*dropped, *p)
		*p = 0
	}
	return ops
}

func TestBlock_Move(t *testing.T) {
	src := []int{1, 2, 3}
	dst := make([]int, 3)

	if err := Block(trivialOps(true), src, dst); err != nil {
		t.Fatalf("Block failed: %v", err)
	}
	if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
		t.Fatalf("destination wrong: %v", dst)
	}
	for i, v := range src {
		if v != 0 {
			t.Fatalf("source slot %d not left moved-from: %d", i, v)
		}
	}
}

func TestBlock_Copy(t *testing.T) {
	src := []int{4, 5, 6}
	dst := make([]int, 3)

	if err := Block(trivialOps(false), src, dst); err != nil {
		t.Fatalf("Block failed: %v", err)
	}
	if dst[0] != 4 || dst[2] != 6 {
		t.Fatalf("destination wrong: %v", dst)
	}
	if src[0] != 4 || src[2] != 6 {
		t.Fatalf("copy mode mutated source: %v", src)
	}
}

func TestBlock_CopyFailureRollsBack(t *testing.T) {
	src := []int{7, 8, 9}
	dst := make([]int, 3)
	var dropped []int

	err := Block(failingCopyOps(2, &dropped), src, dst)
	if err == nil {
		t.Fatal("expected error")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseCopy, Kind: errors.KindCopyFailed}) {
		t.Fatalf("expected copy_failed, got %v", err)
	}
	if src[0] != 7 || src[1] != 8 || src[2] != 9 {
		t.Fatalf("source mutated on rollback: %v", src)
	}
	if len(dropped) != 2 {
		t.Fatalf("expected 2 rolled-back drops, got %v", dropped)
	}
}

func TestSplit_OpensGapAtPivot(t *testing.T) {
	for _, byMove := range []bool{true, false} {
		src := []int{1, 2, 3, 4}
		dst := make([]int, 5)

		if err := Split(trivialOps(byMove), src, dst, 2); err != nil {
			t.Fatalf("Split (byMove=%v) failed: %v", byMove, err)
		}
		want := []int{1, 2, 0, 3, 4}
		for i, w := range want {
			if dst[i] != w {
				t.Fatalf("Split (byMove=%v) dst = %v, want %v", byMove, dst, want)
			}
		}
	}
}

func TestSplit_EdgePivots(t *testing.T) {
	src := []int{1, 2, 3}

	dst := make([]int, 4)
	if err := Split(trivialOps(true), src, dst, 0); err != nil {
		t.Fatalf("Split pivot 0 failed: %v", err)
	}
	if dst[0] != 0 || dst[1] != 1 || dst[3] != 3 {
		t.Fatalf("pivot 0 dst = %v", dst)
	}

	src = []int{1, 2, 3}
	dst = make([]int, 4)
	if err := Split(trivialOps(true), src, dst, 3); err != nil {
		t.Fatalf("Split pivot len failed: %v", err)
	}
	if dst[0] != 1 || dst[2] != 3 || dst[3] != 0 {
		t.Fatalf("pivot len dst = %v", dst)
	}
}

func TestSplit_CopyFailureInBackHalfRollsBackFront(t *testing.T) {
	src := []int{1, 2, 3, 4}
	dst := make([]int, 5)
	var dropped []int

	// Fail on the third copy overall: front half copies 1,2 then the
	// back half fails on its first element.
	err := Split(failingCopyOps(2, &dropped), src, dst, 2)
	if err == nil {
		t.Fatal("expected error")
	}
	if src[0] != 1 || src[3] != 4 {
		t.Fatalf("source mutated: %v", src)
	}
	// Both copied front slots must have been dropped.
	if len(dropped) != 2 {
		t.Fatalf("expected 2 drops, got %v", dropped)
	}
}

func TestShiftLeft(t *testing.T) {
	window := []int{9, 1, 2, 3}
	// Caller semantics: window[0] already destroyed, compact leftward.
	window[0] = 0

	if err := ShiftLeft(trivialOps(true), window); err != nil {
		t.Fatalf("ShiftLeft failed: %v", err)
	}
	if window[0] != 1 || window[1] != 2 || window[2] != 3 {
		t.Fatalf("window after shift: %v", window)
	}
}

func TestShiftRightOne(t *testing.T) {
	// Two live elements 5, 6 with the former last (6) already moved
	// into the trailing slot; the live window shifts rightward leaving
	// its first slot moved-from for the incoming value.
	slots := []int{5, 0, 6}
	if err := ShiftRightOne(trivialOps(true), slots[:2]); err != nil {
		t.Fatalf("ShiftRightOne failed: %v", err)
	}
	if slots[0] != 0 || slots[1] != 5 || slots[2] != 6 {
		t.Fatalf("slots after shift: %v", slots)
	}
}

func TestShift_SingleElementWindows(t *testing.T) {
	if err := ShiftLeft(trivialOps(true), []int{1}); err != nil {
		t.Fatalf("ShiftLeft on single slot: %v", err)
	}
	if err := ShiftRightOne(trivialOps(true), []int{1}); err != nil {
		t.Fatalf("ShiftRightOne on single slot: %v", err)
	}
}
