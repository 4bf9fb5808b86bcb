package pagingview

import "testing"

func TestPoolEnqueueResetsAndDequeuePopsLastIn(t *testing.T) {
	pool := newReusePool()
	a := &testPage{uid: "a"}
	b := &testPage{uid: "b"}
	pool.enqueue(a)
	pool.enqueue(b)
	if a.reused != 1 || b.reused != 1 {
		t.Fatalf("enqueue should reset pages: a=%d b=%d", a.reused, b.reused)
	}
	if got := pool.dequeue(DefaultPageIdentifier); got != Page(b) {
		t.Fatalf("dequeue = %q, want the most recently pooled page", uidOf(got))
	}
	if got := pool.dequeue(DefaultPageIdentifier); got != Page(a) {
		t.Fatalf("dequeue = %q, want a", uidOf(got))
	}
	if pool.dequeue(DefaultPageIdentifier) != nil {
		t.Fatalf("empty bucket should dequeue nil")
	}
}

func TestPoolBucketsByPageIdentifier(t *testing.T) {
	pool := newReusePool()
	text := &testPage{uid: "t", id: "text"}
	cover := &testPage{uid: "c", id: "cover"}
	pool.enqueue(text)
	pool.enqueue(cover)
	if got := pool.dequeue("text"); got != Page(text) {
		t.Fatalf("text bucket served %q", uidOf(got))
	}
	if got := pool.dequeue("cover"); got != Page(cover) {
		t.Fatalf("cover bucket served %q", uidOf(got))
	}
	if pool.dequeue("text") != nil {
		t.Fatalf("buckets must not leak across identifiers")
	}
}

func TestPoolEnqueueNilIsNoOp(t *testing.T) {
	pool := newReusePool()
	pool.enqueue(nil)
	if pool.count() != 0 {
		t.Fatalf("count = %d after nil enqueue", pool.count())
	}
}

func TestPoolRemoveDropsOnlyThatInstance(t *testing.T) {
	pool := newReusePool()
	a := &testPage{uid: "a"}
	b := &testPage{uid: "b"}
	pool.enqueue(a)
	pool.enqueue(b)
	pool.remove(a)
	if pool.count() != 1 {
		t.Fatalf("count = %d after remove, want 1", pool.count())
	}
	if got := pool.dequeue(DefaultPageIdentifier); got != Page(b) {
		t.Fatalf("remaining page = %q, want b", uidOf(got))
	}
	// Removing something absent changes nothing.
	pool.remove(a)
	if pool.count() != 0 {
		t.Fatalf("count = %d, want 0", pool.count())
	}
}

func TestPoolDoesNotDuplicateInstances(t *testing.T) {
	pool := newReusePool()
	a := &testPage{uid: "a"}
	pool.enqueue(a)
	if got := pool.dequeue(DefaultPageIdentifier); got != Page(a) {
		t.Fatalf("dequeue = %q", uidOf(got))
	}
	pool.enqueue(a)
	if pool.count() != 1 {
		t.Fatalf("count = %d after a full cycle, want 1", pool.count())
	}
}
