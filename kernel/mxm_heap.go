package kernel

import (
	"container/heap"

	"github.com/srki/GraphBLAS/algebra"
	"github.com/srki/GraphBLAS/sched"
	"github.com/srki/GraphBLAS/sparse"
)

// headItem tracks one source column A(:,k)'s current unread head while
// merging into output column j, per spec §4.3's heap-merge method.
type headItem struct {
	row  int64
	k    int64
	pos  int64
	end  int64
	bVal []byte
}

type headHeap []*headItem

func (h headHeap) Len() int { return len(h) }
func (h headHeap) Less(a, b int) bool {
	if h[a].row != h[b].row {
		return h[a].row < h[b].row
	}
	return h[a].k < h[b].k // tie-break: left (lower k) operand processed first, per spec §4.3.
}
func (h headHeap) Swap(a, b int)      { h[a], h[b] = h[b], h[a] }
func (h *headHeap) Push(x any)        { *h = append(*h, x.(*headItem)) }
func (h *headHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// MxMHeapMerge computes T = A*B under semiring sr by building a min-heap of
// the head indices of every A(:,k) vector selected by B's column j, then
// popping and merging into sorted output directly, without a dense
// workspace (spec §4.3: "used when both A and B are hypersparse"). A and B
// must be ByCol-oriented exactly as for MxMGustavson.
func MxMHeapMerge(pool *sched.Pool, sr algebra.Semiring, A, B *sparse.Matrix, mask Mask) (sparse.CSXBuild, error) {
	_, innerDim := A.Dims()
	ncolsB, _ := B.Dims()

	results := make([]colResult, ncolsB)
	nB := int(B.NVec())

	pool.ParallelForAtomic(nB, func(slotJ int) {
		j := B.VecIndex(slotJ)
		bStart, bEnd := B.VecBounds(slotJ)

		var vm VectorMask
		if mask.Present() {
			vm = mask.VectorLookup(j)
		}

		h := &headHeap{}
		heap.Init(h)

		for p := bStart; p < bEnd; p++ {
			k := B.Inner(p)
			slotK, found := A.FindSlot(k)
			if !found {
				continue
			}
			aStart, aEnd := A.VecBounds(slotK)
			if aStart >= aEnd {
				continue
			}
			heap.Push(h, &headItem{
				row: A.Inner(aStart), k: k, pos: aStart, end: aEnd,
				bVal: B.ValueAt(p),
			})
		}

		var idx []int64
		var val []byte
		madd := NewMAdd(sr)

		for h.Len() > 0 {
			row := (*h)[0].row

			var acc []byte
			started := false
			terminal := false

			for h.Len() > 0 && (*h)[0].row == row {
				item := heap.Pop(h).(*headItem)

				if !terminal {
					aVal := A.ValueAt(item.pos)
					if !started {
						acc = make([]byte, madd.ZSize)
						madd.MulInto(acc, aVal, item.bVal)
						started = true
					} else {
						madd.AccumulateInto(acc, aVal, item.bVal)
					}
					// Shared contract of spec §4.3: once the running sum hits the
					// add monoid's terminal, no further add can change it, so
					// remaining same-row heap items are still drained (to advance
					// their source columns for later rows) but no longer folded in.
					if sr.Add.HasTerminal && bytesEqual(acc, sr.Add.Terminal) {
						terminal = true
					}
				}

				item.pos++
				if item.pos < item.end {
					item.row = A.Inner(item.pos)
					heap.Push(h, item)
				}
			}

			if !mask.Present() || vm.Admits(row) {
				idx = append(idx, row)
				val = append(val, acc...)
			}
		}

		results[j] = colResult{idx: idx, val: val}
	})

	return concatColumns(innerDim, ncolsB, sr.Add.Op.ZCode, results)
}
