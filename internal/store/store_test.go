package store

import (
	"testing"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanStore_RoundTrip(t *testing.T) {
	kv := NewMemKV()
	s := NewPlanStore(kv)

	plan := &SavedPlan{
		WeekStartISO:        "2026-08-31",
		Scenario:            domain.ScenarioNormal,
		Days:                domain.DefaultWeek(),
		DefaultStartMinutes: 540,
		DefaultEndMinutes:   1020,
		Priorities: []PlanPriority{
			{ProjectID: "p-1", Enabled: true, WeeklyHours: 8},
			{ProjectID: "p-2", Enabled: false, WeeklyHours: 2.5},
		},
		ProjectDoneFromDayIndex: map[string]int{"p-2": 3},
	}
	require.NoError(t, s.Save(plan))

	got := s.Load("2026-08-31")
	require.NotNil(t, got)
	assert.Equal(t, "2026-08-31", got.WeekStartISO)
	assert.Len(t, got.Days, 7)
	assert.Equal(t, plan.Priorities, got.Priorities)
	assert.Equal(t, 3, got.ProjectDoneFromDayIndex["p-2"])
	assert.False(t, got.SavedAt.IsZero())

	raw, ok := kv.Get("plan/2026-08-31")
	require.True(t, ok)
	for _, key := range []string{
		`"weekStartIso"`, `"scenario"`, `"manualOrder"`,
		`"defaultStartMinutes"`, `"projectDoneFromDayIndex"`,
		`"id":"mon"`, `"startMinutes":540`, `"isCustomOverride":false`,
	} {
		assert.Contains(t, raw, key)
	}
}

func TestPlanStore_MissingAndCorruptReadAsAbsent(t *testing.T) {
	kv := NewMemKV()
	s := NewPlanStore(kv)

	assert.Nil(t, s.Load("2026-08-31"))

	require.NoError(t, kv.Set("plan/2026-08-31", "{not json"))
	assert.Nil(t, s.Load("2026-08-31"))
}

func TestPlanStore_SaveWithoutWeekRejected(t *testing.T) {
	s := NewPlanStore(NewMemKV())

	assert.Error(t, s.Save(&SavedPlan{}))
}

func TestSavedPlan_ItemsPreservePriorityOrder(t *testing.T) {
	plan := &SavedPlan{
		Priorities: []PlanPriority{
			{ProjectID: "p-2", Enabled: true, WeeklyHours: 2.5},
			{ProjectID: "p-1", Enabled: true, WeeklyHours: 8},
		},
	}

	items := plan.Items(map[string]string{"p-1": "Alpha"})

	require.Len(t, items, 2)
	assert.Equal(t, "p-2", items[0].ProjectID)
	assert.Equal(t, "p-2", items[0].DisplayName, "unknown names fall back to the ID")
	assert.Equal(t, 150, items[0].WeeklyMinutesRequested)
	assert.Equal(t, "Alpha", items[1].DisplayName)
	assert.Equal(t, 480, items[1].WeeklyMinutesRequested)
}

func TestOverrideStore_OrderRoundTrip(t *testing.T) {
	s := NewOverrideStore(NewMemKV())

	assert.Nil(t, s.Order("2026-08-31"))

	require.NoError(t, s.SaveOrder("2026-08-31", []string{"b", "a", "c"}))
	assert.Equal(t, []string{"b", "a", "c"}, s.Order("2026-08-31"))
	assert.Nil(t, s.Order("2026-09-01"), "orders are per date")
}

func TestOverrideStore_OverridesUpsertAndClear(t *testing.T) {
	s := NewOverrideStore(NewMemKV())

	require.NoError(t, s.SaveOverride("2026-08-31", domain.BlockOverride{BlockID: "a", StartMinutes: 540, EndMinutes: 600}))
	require.NoError(t, s.SaveOverride("2026-08-31", domain.BlockOverride{BlockID: "b", StartMinutes: 600, EndMinutes: 660}))
	require.NoError(t, s.SaveOverride("2026-08-31", domain.BlockOverride{BlockID: "a", StartMinutes: 555, EndMinutes: 615}))

	got := s.Overrides("2026-08-31")
	require.Len(t, got, 2)
	assert.Equal(t, 555, got["a"].StartMinutes)

	require.NoError(t, s.ClearOverrides("2026-08-31", []string{"a", "missing"}))
	got = s.Overrides("2026-08-31")
	require.Len(t, got, 1)
	_, ok := got["b"]
	assert.True(t, ok)
}

func TestOverrideStore_CorruptDataDegradesToEmpty(t *testing.T) {
	kv := NewMemKV()
	s := NewOverrideStore(kv)

	require.NoError(t, kv.Set("order/2026-08-31", `"not-a-list`))
	require.NoError(t, kv.Set("tweak/2026-08-31", `[1,2,3]`))

	assert.Nil(t, s.Order("2026-08-31"))
	assert.Empty(t, s.Overrides("2026-08-31"))

	// Writing through corrupt state replaces it.
	require.NoError(t, s.SaveOverride("2026-08-31", domain.BlockOverride{BlockID: "a", StartMinutes: 540, EndMinutes: 600}))
	assert.Len(t, s.Overrides("2026-08-31"), 1)
}

func TestDiskKV_RoundTrip(t *testing.T) {
	kv := NewDiskKV(t.TempDir())

	_, ok := kv.Get("plan/2026-08-31")
	assert.False(t, ok)

	require.NoError(t, kv.Set("plan/2026-08-31", `{"weekStartIso":"2026-08-31"}`))
	val, ok := kv.Get("plan/2026-08-31")
	require.True(t, ok)
	assert.Contains(t, val, "2026-08-31")
}
