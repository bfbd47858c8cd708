package store

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/horae/internal/domain"
)

// OverrideStore persists per-date manual block orders and per-block time
// overrides. Records never expire; entries referencing block IDs that no
// longer exist are tolerated and simply ignored by the engine.
type OverrideStore struct {
	kv KV
}

func NewOverrideStore(kv KV) *OverrideStore {
	return &OverrideStore{kv: kv}
}

func orderKey(date string) string {
	return "order/" + date
}

func tweakKey(date string) string {
	return "tweak/" + date
}

// Order returns the persisted block order for a date, or nil when absent
// or unreadable.
func (s *OverrideStore) Order(date string) []string {
	raw, ok := s.kv.Get(orderKey(date))
	if !ok {
		return nil
	}
	var order []string
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil
	}
	return order
}

// SaveOrder persists a date's canonical block order.
func (s *OverrideStore) SaveOrder(date string, order []string) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encoding order: %w", err)
	}
	if err := s.kv.Set(orderKey(date), string(raw)); err != nil {
		return fmt.Errorf("writing order %s: %w", date, err)
	}
	return nil
}

// Overrides returns the persisted time overrides for a date keyed by
// block ID. Absent or corrupt data reads as empty.
func (s *OverrideStore) Overrides(date string) map[string]domain.BlockOverride {
	raw, ok := s.kv.Get(tweakKey(date))
	if !ok {
		return map[string]domain.BlockOverride{}
	}
	var overrides map[string]domain.BlockOverride
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil || overrides == nil {
		return map[string]domain.BlockOverride{}
	}
	return overrides
}

// SaveOverride upserts one block's manual time override for a date.
func (s *OverrideStore) SaveOverride(date string, ov domain.BlockOverride) error {
	overrides := s.Overrides(date)
	overrides[ov.BlockID] = ov
	return s.writeOverrides(date, overrides)
}

// ClearOverrides drops the overrides for the given block IDs. Dragging
// recomputes times for every flexible block, so the service clears their
// overrides afterward.
func (s *OverrideStore) ClearOverrides(date string, blockIDs []string) error {
	overrides := s.Overrides(date)
	if len(overrides) == 0 {
		return nil
	}
	for _, id := range blockIDs {
		delete(overrides, id)
	}
	return s.writeOverrides(date, overrides)
}

func (s *OverrideStore) writeOverrides(date string, overrides map[string]domain.BlockOverride) error {
	raw, err := json.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("encoding overrides: %w", err)
	}
	if err := s.kv.Set(tweakKey(date), string(raw)); err != nil {
		return fmt.Errorf("writing overrides %s: %w", date, err)
	}
	return nil
}
