package scheduler

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRepack_Invariants property-tests the drag pipeline over random day
// lists and random drag moves: no non-overflow blocks overlap, locked
// blocks never move, the block set is preserved, and re-running the
// pipeline on its own output changes nothing.
func TestRepack_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 300; trial++ {
		dayStart := 480 + rng.Intn(4)*30  // 08:00-09:30
		dayEnd := 960 + rng.Intn(5)*30    // 16:00-18:00
		lockedCount := rng.Intn(3)        // 0-2 locked anchors
		flexCount := rng.Intn(6) + 1      // 1-6 flexible blocks

		var blocks []domain.TimeBlock
		cursor := dayStart + 60
		for i := 0; i < lockedCount; i++ {
			start := cursor + rng.Intn(3)*30
			end := start + 30
			if end >= dayEnd {
				break
			}
			blocks = append(blocks, locked(fmt.Sprintf("lock-%d", i), start, end))
			cursor = end + 60
		}
		for i := 0; i < flexCount; i++ {
			s := dayStart + rng.Intn(dayEnd-dayStart-30)
			blocks = append(blocks, flex(fmt.Sprintf("flex-%d", i), s, s+30))
		}
		// Day lists start in time order with locked anchors in place.
		sort.SliceStable(blocks, func(i, j int) bool {
			return blocks[i].StartMinutes < blocks[j].StartMinutes
		})

		lockedTimes := make(map[string][2]int)
		for _, b := range blocks {
			if b.Locked() {
				lockedTimes[b.ID] = [2]int{b.StartMinutes, b.EndMinutes}
			}
		}

		// Drags only ever move flexible blocks.
		var flexPos []int
		for i, b := range blocks {
			if !b.Locked() {
				flexPos = append(flexPos, i)
			}
		}
		from := flexPos[rng.Intn(len(flexPos))]
		to := rng.Intn(len(blocks))
		out := Repack(MoveBlock(blocks, from, to), dayStart, dayEnd, SlotMinutes)

		require.Len(t, out, len(blocks), "trial %d: block count preserved", trial)

		seen := make(map[string]bool)
		for _, b := range out {
			seen[b.ID] = true
		}
		for _, b := range blocks {
			assert.True(t, seen[b.ID], "trial %d: block %s lost", trial, b.ID)
		}

		for _, b := range out {
			if !b.Locked() {
				continue
			}
			want := lockedTimes[b.ID]
			assert.Equal(t, want[0], b.StartMinutes, "trial %d: locked %s moved", trial, b.ID)
			assert.Equal(t, want[1], b.EndMinutes, "trial %d: locked %s resized", trial, b.ID)
		}

		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				a, b := out[i], out[j]
				if a.Overflow || b.Overflow || a.Duration() == 0 || b.Duration() == 0 {
					continue
				}
				assert.False(t, a.Overlaps(b),
					"trial %d: %s [%d,%d) overlaps %s [%d,%d)",
					trial, a.ID, a.StartMinutes, a.EndMinutes, b.ID, b.StartMinutes, b.EndMinutes)
			}
		}

		again := Repack(out, dayStart, dayEnd, SlotMinutes)
		assert.Equal(t, out, again, "trial %d: repack must be idempotent", trial)
	}
}
