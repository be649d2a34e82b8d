// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package balancer

import (
	"sort"

	"gopkg.in/typ.v4/sync2"

	"github.com/AccelByte/extend-ranked-engine/pkg/models"
)

// scratch reusable candidate buffers to reduce garbage collector pressure
// across concurrent Balance calls.
var scratch = &sync2.Pool[[]candidate]{
	New: func() []candidate {
		return make([]candidate, 0, models.MatchPlayerCount)
	},
}

// candidate is one pool index eligible for the slot being filled, tagged
// with its role priority there.
type candidate struct {
	poolIndex int
	priority  int
}

// frame is one level of the explicit backtracking stack: the ordered
// candidates for its slot, a cursor over them, and the choice currently
// occupying the slot (-1 when vacant).
type frame struct {
	candidates []candidate
	next       int
	chosen     int
}

// searchSlots fills the ten canonical slots by backtracking over the fixed
// slot order. At each slot the eligible unused candidates are tried in
// (priority asc, queue time asc, MMR desc) order; every complete assignment
// is scored by the absolute MMR gap between sides and the best one is kept.
// A zero-gap assignment cannot be improved, so it terminates the search.
// The stack is explicit rather than recursive so depth stays bounded by the
// slot count regardless of pool size.
func searchSlots(pool []models.QueuedPlayer) (best []int, found bool) {
	slots := models.SlotOrder()
	used := make([]bool, len(pool))
	assigned := make([]int, len(slots))

	bestDiff := -1
	best = make([]int, len(slots))

	frames := make([]frame, 0, len(slots))
	frames = append(frames, newFrame(pool, used, slots[0].Role))

	for len(frames) > 0 {
		top := &frames[len(frames)-1]
		slotIndex := len(frames) - 1

		// vacate the slot before moving the cursor
		if top.chosen >= 0 {
			used[top.chosen] = false
			top.chosen = -1
		}

		if top.next >= len(top.candidates) {
			scratch.Put(top.candidates[:0])
			frames = frames[:len(frames)-1]
			continue
		}

		pick := top.candidates[top.next].poolIndex
		top.next++
		top.chosen = pick
		used[pick] = true
		assigned[slotIndex] = pick

		if slotIndex == len(slots)-1 {
			diff := sideDiff(pool, slots, assigned)
			if bestDiff < 0 || diff < bestDiff {
				bestDiff = diff
				copy(best, assigned)
			}
			if diff == 0 {
				// perfectly balanced, stop the whole search
				break
			}
			continue
		}

		frames = append(frames, newFrame(pool, used, slots[slotIndex+1].Role))
	}

	// release whatever is left after an early exit
	for i := range frames {
		scratch.Put(frames[i].candidates[:0])
	}

	return best, bestDiff >= 0
}

// newFrame collects the unused candidates eligible for a slot role and
// orders them by (priority asc, queue time asc, MMR desc). The pool index is
// the final key, making the order total; this ordering is the full
// tie-break contract of the search and decides which equally-valid
// assignment is reached first.
func newFrame(pool []models.QueuedPlayer, used []bool, role models.Role) frame {
	candidates := scratch.Get()[:0]
	for i, player := range pool {
		if used[i] {
			continue
		}
		priority, ok := models.RolePriority(role, player)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{poolIndex: i, priority: priority})
	}
	// sorted in place so the pooled buffer survives the frame
	sort.Slice(candidates, func(i, j int) bool {
		c1, c2 := candidates[i], candidates[j]
		if c1.priority != c2.priority {
			return c1.priority < c2.priority
		}
		p1, p2 := pool[c1.poolIndex], pool[c2.poolIndex]
		if p1.QueuedAt != p2.QueuedAt {
			return p1.QueuedAt < p2.QueuedAt
		}
		if p1.MMR != p2.MMR {
			return p1.MMR > p2.MMR
		}
		return c1.poolIndex < c2.poolIndex
	})
	return frame{candidates: candidates, chosen: -1}
}

// sideDiff scores a complete assignment by the absolute MMR gap between the
// two sides.
func sideDiff(pool []models.QueuedPlayer, slots []models.RoleSlot, assigned []int) int {
	var sumA, sumB int
	for i, slot := range slots {
		if slot.Side == models.SideA {
			sumA += pool[assigned[i]].MMR
		} else {
			sumB += pool[assigned[i]].MMR
		}
	}
	if sumA > sumB {
		return sumA - sumB
	}
	return sumB - sumA
}
