package ccsubdiv

import "github.com/polymesh-go/ccsubdiv/internal/parallel"

// RefineCreases builds every derived level's crease chain, from the cage
// up through s.MaxDepth(). Per §4.3 each parent edge's two children are
// independent of every other parent edge's, so the work is parallel per
// level with a barrier between levels.
func RefineCreases(s *Subd, pool *parallel.WorkerPool) {
	for parentLevel := 0; parentLevel < s.maxDepth; parentLevel++ {
		refineCreaseLevel(s, pool, parentLevel)
	}
}

func refineCreaseLevel(s *Subd, pool *parallel.WorkerPool, parentLevel int) {
	childLevel := parentLevel + 1
	parentEdgeCount := s.counts.EdgeCountAtDepth(parentLevel)
	childBase := s.BaseEdgeOffset(childLevel)

	pool.ForEachIndex(int(parentEdgeCount), func(i int) {
		e := int32(i)
		p := creasePrevID(s, e, parentLevel)
		n := creaseNextID(s, e, parentLevel)
		S := creaseSharpness(s, e, parentLevel)
		Sp := creaseSharpness(s, p, parentLevel)
		Sn := creaseSharpness(s, n, parentLevel)

		t1 := creasePrevID(s, n, parentLevel) == e && n != e
		t2 := creaseNextID(s, p, parentLevel) == e && p != e

		child0Prev := 2 * p
		if t2 {
			child0Prev++
		}
		child1Next := 2*n + 1
		if t1 {
			child1Next = 2 * n
		}

		child0Sharp := maxf(0, (Sp+3*S)/4-1)
		child1Sharp := maxf(0, (3*S+Sn)/4-1)

		local := 2 * e
		s.creaseNextID[childBase+local] = local + 1
		s.creasePrevID[childBase+local] = child0Prev
		s.creaseSharpness[childBase+local] = child0Sharp

		s.creaseNextID[childBase+local+1] = child1Next
		s.creasePrevID[childBase+local+1] = local
		s.creaseSharpness[childBase+local+1] = child1Sharp
	})
}

func creaseNextID(s *Subd, e int32, l int) int32 {
	if l == 0 {
		return s.cage.CreaseNextID(e)
	}
	return s.creaseNextID[s.BaseEdgeOffset(l)+e]
}

func creasePrevID(s *Subd, e int32, l int) int32 {
	if l == 0 {
		return s.cage.CreasePrevID(e)
	}
	return s.creasePrevID[s.BaseEdgeOffset(l)+e]
}

func creaseSharpness(s *Subd, e int32, l int) float32 {
	if l == 0 {
		return s.cage.CreaseSharpness(e)
	}
	return s.creaseSharpness[s.BaseEdgeOffset(l)+e]
}
