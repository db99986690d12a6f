package parallel

// ForEachIndex runs fn(i) for every i in [0, n), split into one chunk per
// worker and executed through ExecuteAll. This is the fork-join primitive
// every subdivision kernel is built on: a kernel is exactly a parallel
// loop over a per-level count (halfedges, edges, faces or vertices)
// followed by the barrier ExecuteAll already provides by waiting for
// every chunk to finish before returning.
//
// If n is 0 this is a no-op. If the pool has more workers than n, each
// worker gets at most one index.
func (p *WorkerPool) ForEachIndex(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := p.workers
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers
	work := make([]func(), 0, workers)

	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		lo, hi := start, end
		work = append(work, func() {
			for i := lo; i < hi; i++ {
				fn(i)
			}
		})
	}

	p.ExecuteAll(work)
}
