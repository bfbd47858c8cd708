package scheduler

import (
	"fmt"

	"github.com/alexanderramin/horae/internal/domain"
)

// packWindow is one free time gap between locked blocks, paired with the
// slice of block-list positions that falls between the same anchors.
type packWindow struct {
	timeStart int
	timeEnd   int
	idxStart  int // inclusive list position
	idxEnd    int // exclusive list position
}

func (w packWindow) slots(slotMin int) int {
	return (w.timeEnd - w.timeStart) / slotMin
}

// MoveBlock applies array-move semantics: remove at from, insert at to.
// The input slice is not mutated.
func MoveBlock(blocks []domain.TimeBlock, from, to int) []domain.TimeBlock {
	out := make([]domain.TimeBlock, 0, len(blocks))
	out = append(out, blocks...)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]domain.TimeBlock{moved}, out[to:]...)...)
	return out
}

// Repack runs the drag pipeline on a reordered day list: per-window slot
// capacity enforcement with positional eviction, then time
// re-quantization. Locked blocks keep their times throughout. Repack is
// idempotent on its own output.
func Repack(blocks []domain.TimeBlock, dayStart, dayEnd, slotMin int) []domain.TimeBlock {
	evicted := enforceCapacity(blocks, dayStart, dayEnd, slotMin)
	return requantize(evicted, dayStart, dayEnd, slotMin)
}

// partitionWindows walks the locked blocks in list order and emits one
// window per gap whose time span is positive and which holds at least one
// list slot. Locked blocks are expected in ascending time order in the
// list; the engine keeps them that way.
func partitionWindows(blocks []domain.TimeBlock, dayStart, dayEnd int) []packWindow {
	var lockedPos []int
	for i, b := range blocks {
		if b.Locked() {
			lockedPos = append(lockedPos, i)
		}
	}

	var windows []packWindow
	for g := 0; g <= len(lockedPos); g++ {
		w := packWindow{timeStart: dayStart, timeEnd: dayEnd, idxStart: 0, idxEnd: len(blocks)}
		if g > 0 {
			prev := lockedPos[g-1]
			w.timeStart = blocks[prev].EndMinutes
			w.idxStart = prev + 1
		}
		if g < len(lockedPos) {
			next := lockedPos[g]
			w.timeEnd = blocks[next].StartMinutes
			w.idxEnd = next
		}
		if w.timeEnd > w.timeStart && w.idxEnd > w.idxStart {
			windows = append(windows, w)
		}
	}
	return windows
}

// enforceCapacity evicts, per window independently, the flexible blocks
// that exceed the window's slot capacity. Eviction is positional: the
// excess is taken from the end of the window's list range and appended,
// in original relative order, to the end of the whole day list.
func enforceCapacity(blocks []domain.TimeBlock, dayStart, dayEnd, slotMin int) []domain.TimeBlock {
	windows := partitionWindows(blocks, dayStart, dayEnd)
	evict := make(map[int]bool)
	for _, w := range windows {
		var flexPos []int
		for i := w.idxStart; i < w.idxEnd && i < len(blocks); i++ {
			if !blocks[i].Locked() {
				flexPos = append(flexPos, i)
			}
		}
		capacity := w.slots(slotMin)
		for k := capacity; k < len(flexPos); k++ {
			evict[flexPos[k]] = true
		}
	}
	if len(evict) == 0 {
		out := make([]domain.TimeBlock, len(blocks))
		copy(out, blocks)
		return out
	}

	kept := make([]domain.TimeBlock, 0, len(blocks))
	tail := make([]domain.TimeBlock, 0, len(evict))
	for i, b := range blocks {
		if evict[i] {
			tail = append(tail, b)
		} else {
			kept = append(kept, b)
		}
	}
	return append(kept, tail...)
}

// requantize re-derives flexible block times window by window: the
// window's slot capacity is split evenly across its flexible blocks, with
// remainder slots granted one each to the earliest-positioned blocks, and
// contiguous ranges assigned in list order from the window's start.
//
// The final window is bounded by the day end rather than a locked block;
// flexible blocks beyond its slot capacity are placed sequentially past the
// day end, one slot each, flagged as overflow. Interior windows never
// exceed capacity after enforcement.
func requantize(blocks []domain.TimeBlock, dayStart, dayEnd, slotMin int) []domain.TimeBlock {
	out := make([]domain.TimeBlock, len(blocks))
	copy(out, blocks)

	windows := partitionWindows(out, dayStart, dayEnd)
	for _, w := range windows {
		var flexPos []int
		for i := w.idxStart; i < w.idxEnd && i < len(out); i++ {
			if !out[i].Locked() {
				flexPos = append(flexPos, i)
			}
		}
		if len(flexPos) == 0 {
			continue
		}
		totalSlots := w.slots(slotMin)

		if len(flexPos) > totalSlots {
			// Only reachable in the day-end window: the fitting prefix
			// gets one slot each, the rest spill past the day end.
			cursor := w.timeStart
			for k, pos := range flexPos {
				if k < totalSlots {
					out[pos].StartMinutes = cursor
					out[pos].EndMinutes = min(cursor+slotMin, w.timeEnd)
					out[pos].Overflow = false
					cursor += slotMin
					continue
				}
				spill := w.timeEnd + (k-totalSlots)*slotMin
				out[pos].StartMinutes = spill
				out[pos].EndMinutes = spill + slotMin
				out[pos].Overflow = true
			}
			continue
		}

		baseSlots := totalSlots / len(flexPos)
		rem := totalSlots - baseSlots*len(flexPos)
		cursor := w.timeStart
		for k, pos := range flexPos {
			slots := baseSlots
			if k < rem {
				slots++
			}
			out[pos].StartMinutes = cursor
			out[pos].EndMinutes = min(cursor+slots*slotMin, w.timeEnd)
			out[pos].Overflow = false
			cursor = out[pos].EndMinutes
		}
	}
	return out
}

// ApplyOrder arranges freshly computed blocks to match a persisted order
// list. IDs missing from the computed set are skipped; computed blocks
// absent from the order keep their computed relative order at the tail.
func ApplyOrder(blocks []domain.TimeBlock, order []string) []domain.TimeBlock {
	if len(order) == 0 {
		out := make([]domain.TimeBlock, len(blocks))
		copy(out, blocks)
		return out
	}
	byID := make(map[string]int, len(blocks))
	for i, b := range blocks {
		byID[b.ID] = i
	}
	used := make(map[string]bool, len(order))
	out := make([]domain.TimeBlock, 0, len(blocks))
	for _, id := range order {
		if i, ok := byID[id]; ok && !used[id] {
			out = append(out, blocks[i])
			used[id] = true
		}
	}
	for _, b := range blocks {
		if !used[b.ID] {
			out = append(out, b)
		}
	}
	return out
}

// ApplyOverrides replaces block times with persisted manual edits. Stale
// overrides (IDs not in the computed set) are ignored.
func ApplyOverrides(blocks []domain.TimeBlock, overrides map[string]domain.BlockOverride) []domain.TimeBlock {
	out := make([]domain.TimeBlock, len(blocks))
	copy(out, blocks)
	for i := range out {
		if ov, ok := overrides[out[i].ID]; ok {
			out[i].StartMinutes = ov.StartMinutes
			out[i].EndMinutes = ov.EndMinutes
		}
	}
	return out
}

// ValidateEdit checks a manual single-block time edit: the range must be
// ascending, is clamped into the day window, and must not overlap any
// locked block. On success the clamped override is returned; on failure
// the prior state stands.
func ValidateEdit(blocks []domain.TimeBlock, blockID string, startMin, endMin, dayStart, dayEnd int) (domain.BlockOverride, error) {
	if startMin >= endMin {
		return domain.BlockOverride{}, fmt.Errorf("start %s must be before end %s",
			domain.FormatClock(startMin), domain.FormatClock(endMin))
	}
	s := max(startMin, dayStart)
	e := min(endMin, dayEnd)
	if s >= e {
		return domain.BlockOverride{}, fmt.Errorf("range %s-%s is outside the day window",
			domain.FormatClock(startMin), domain.FormatClock(endMin))
	}
	edited := domain.TimeBlock{StartMinutes: s, EndMinutes: e}
	for _, b := range blocks {
		if b.ID == blockID || !b.Locked() {
			continue
		}
		if b.Overlaps(edited) {
			return domain.BlockOverride{}, fmt.Errorf("range %s-%s overlaps %s (%s-%s)",
				domain.FormatClock(s), domain.FormatClock(e), b.Label,
				domain.FormatClock(b.StartMinutes), domain.FormatClock(b.EndMinutes))
		}
	}
	return domain.BlockOverride{BlockID: blockID, StartMinutes: s, EndMinutes: e}, nil
}
