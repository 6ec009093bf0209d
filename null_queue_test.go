package handoffqueue

import "testing"

func TestNullQueueDiscardsEverything(t *testing.T) {
	q := NewNull[int]("null")

	for i := 0; i < 10; i++ {
		if !q.Push(i) {
			t.Fatalf("expected NullQueue push to report success")
		}
	}

	if _, ok := q.Pop(); ok {
		t.Fatalf("expected NullQueue Pop to report no value")
	}
	if _, ok := q.PopBlocking(); ok {
		t.Fatalf("expected NullQueue PopBlocking to report no value")
	}
	if !q.IsEmpty() {
		t.Fatalf("expected NullQueue to always report empty")
	}

	var batch Batch[int]
	if q.BatchPop(&batch) {
		t.Fatalf("expected NullQueue BatchPop to report no values")
	}
	if batch.Len() != 0 {
		t.Fatalf("expected destination to stay empty, got length %d", batch.Len())
	}
}

func TestNullQueueShutdownAndResumeAreHarmless(t *testing.T) {
	q := NewNull[string]("null-cycle")

	q.Shutdown()
	if !q.Push("dropped") {
		t.Fatalf("expected NullQueue push to report success regardless of state")
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("expected NullQueue Pop to report no value")
	}

	q.Resume()
	if _, ok := q.PopBlocking(); ok {
		t.Fatalf("expected NullQueue PopBlocking to report no value after resume")
	}

	if q.ID() != "null-cycle" {
		t.Fatalf("unexpected id %q", q.ID())
	}
}

func TestNullQueueBatchPopKeepsPrecondition(t *testing.T) {
	filler := New[int]("filler")
	filler.Push(1)

	var batch Batch[int]
	if !filler.BatchPop(&batch) {
		t.Fatalf("setup drain failed")
	}

	q := NewNull[int]("null-precondition")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected BatchPop to panic on non-empty destination")
		}
	}()
	q.BatchPop(&batch)
}
