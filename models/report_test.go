package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jt(s string) JSONTime {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return JSONTime(t)
}

func TestComputeReportSnapshotZeroItems(t *testing.T) {
	t.Parallel()

	snap := ComputeReportSnapshot(nil, nil, nil, time.Now(), 5)

	assert.Equal(t, 0, snap.TotalItems)
	assert.Equal(t, 0, snap.TotalQuantity)
	assert.Equal(t, 0.0, snap.TotalAssetValue)
	assert.Equal(t, 0.0, snap.MaintenanceCostYTD)
	assert.Equal(t, 0, snap.NeedsMaintenance)
	assert.Equal(t, 0, snap.NeedsReplacement)
	assert.Empty(t, snap.CategoryBreakdown)
	assert.Empty(t, snap.RecentMaintenance)
}

func TestComputeReportSnapshotCounts(t *testing.T) {
	t.Parallel()

	items := []InventoryItem{
		{Category: "Audio", Quantity: 4, Status: StatusInUse, Condition: ConditionGood},
		{Category: "Audio", Quantity: 6, Status: StatusAvailable, Condition: ConditionNeedsRepair},
		{Category: "Cables", Quantity: 12, Status: StatusUnderRepair, Condition: ConditionGood},
		{Category: "Instruments", Quantity: 1, Status: StatusAvailable, Condition: ConditionBroken},
	}
	acquisitions := []AcquisitionRecord{
		{Price: 5000}, {Price: 2500.50},
	}

	snap := ComputeReportSnapshot(items, nil, acquisitions, time.Now(), 5)

	assert.Equal(t, 4, snap.TotalItems)
	assert.Equal(t, 23, snap.TotalQuantity)
	assert.Equal(t, 7500.50, snap.TotalAssetValue)
	// status Under Repair, condition Needs Repair, condition Broken
	assert.Equal(t, 3, snap.NeedsMaintenance)
	assert.Equal(t, 1, snap.NeedsReplacement)
}

func TestCategoryPercentagesSumToHundred(t *testing.T) {
	t.Parallel()

	items := []InventoryItem{
		{Category: "Audio"}, {Category: "Audio"}, {Category: "Audio"},
		{Category: "Lighting"}, {Category: "Lighting"},
		{Category: "Video"},
		{Category: ""}, // counts under Other
	}

	snap := ComputeReportSnapshot(items, nil, nil, time.Now(), 5)

	var sum float64
	total := 0
	for _, share := range snap.CategoryBreakdown {
		sum += share.Percent
		total += share.Count
	}
	assert.InDelta(t, 100.0, sum, 0.01)
	assert.Equal(t, len(items), total)

	// Percentages are of item count; three of seven items are Audio.
	assert.Equal(t, "Audio", snap.CategoryBreakdown[0].Category)
	assert.InDelta(t, 300.0/7, snap.CategoryBreakdown[0].Percent, 0.01)
}

func TestMaintenanceCostYTDBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	records := []MaintenanceRecord{
		{Cost: 250, MaintenanceDate: jt("2026-03-15")},
		{Cost: 100, MaintenanceDate: jt("2026-01-01")}, // exactly Jan 1 counts
		{Cost: 999, MaintenanceDate: jt("2025-12-31")}, // last year does not
	}

	snap := ComputeReportSnapshot(nil, records, nil, now, 5)
	assert.Equal(t, 350.0, snap.MaintenanceCostYTD)
}

func TestSortMaintenanceDescOrderingAndTies(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)
	idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	records := []MaintenanceRecord{
		{ID: idB, MaintenanceDate: jt("2026-04-01"), CreatedAt: base},
		{ID: idA, MaintenanceDate: jt("2026-04-01"), CreatedAt: base}, // full tie: id decides
		{MaintenanceDate: jt("2026-05-01"), CreatedAt: base},
	}

	sorted := SortMaintenanceDesc(records)
	require.Len(t, sorted, 3)

	// Newest date first.
	assert.Equal(t, jt("2026-05-01"), sorted[0].MaintenanceDate)
	// Equal dates and creation times fall back to id order.
	assert.Equal(t, idA, sorted[1].ID)
	assert.Equal(t, idB, sorted[2].ID)

	// First element is always the maximum-date record.
	for _, rec := range sorted[1:] {
		assert.False(t, time.Time(sorted[0].MaintenanceDate).Before(time.Time(rec.MaintenanceDate)))
	}

	// Input order untouched.
	assert.Equal(t, idB, records[0].ID)
}

func TestRecentMaintenanceLimit(t *testing.T) {
	t.Parallel()

	var records []MaintenanceRecord
	for i := 0; i < 10; i++ {
		records = append(records, MaintenanceRecord{
			ID:              uuid.New(),
			MaintenanceDate: JSONTime(time.Date(2026, time.January, 1+i, 0, 0, 0, 0, time.UTC)),
		})
	}

	snap := ComputeReportSnapshot(nil, records, nil, time.Now(), 3)
	require.Len(t, snap.RecentMaintenance, 3)
	assert.Equal(t, 10, time.Time(snap.RecentMaintenance[0].MaintenanceDate).Day())
}
