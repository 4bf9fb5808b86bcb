package pagingview

// reusePool holds recycled pages, keyed by reuse identifier, until a slot
// needs one again. Only slot evictions feed it, so buckets stay small.
type reusePool struct {
	buckets map[string][]Page
}

func newReusePool() *reusePool {
	return &reusePool{buckets: make(map[string][]Page)}
}

// identifierFor resolves the bucket a page recycles into.
func identifierFor(page Page) string {
	if p, ok := page.(IdentifiablePage); ok {
		if id := p.PageIdentifier(); id != "" {
			return id
		}
	}
	return DefaultPageIdentifier
}

// enqueue retires page into its bucket, resetting it through
// PrepareForReuse when supported. Enqueueing nil is a no-op.
func (p *reusePool) enqueue(page Page) {
	if page == nil {
		return
	}
	if r, ok := page.(ReusablePage); ok {
		r.PrepareForReuse()
	}
	id := identifierFor(page)
	p.buckets[id] = append(p.buckets[id], page)
}

// dequeue pops a pooled page for id, or nil when the bucket is empty.
func (p *reusePool) dequeue(id string) Page {
	bucket := p.buckets[id]
	if len(bucket) == 0 {
		return nil
	}
	page := bucket[len(bucket)-1]
	bucket[len(bucket)-1] = nil
	p.buckets[id] = bucket[:len(bucket)-1]
	return page
}

// remove deletes page from its bucket if pooled. Slot assignment goes
// through this so an instance a data source re-serves without dequeuing
// never sits in a slot and the pool at once.
func (p *reusePool) remove(page Page) {
	id := identifierFor(page)
	bucket := p.buckets[id]
	for i := range bucket {
		if bucket[i] == page {
			bucket[i] = bucket[len(bucket)-1]
			bucket[len(bucket)-1] = nil
			p.buckets[id] = bucket[:len(bucket)-1]
			return
		}
	}
}

// count reports pooled pages across all buckets.
func (p *reusePool) count() int {
	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
