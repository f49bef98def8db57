package models

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// DefaultRecentMaintenanceLimit caps the recent-maintenance log on the
// reports page.
const DefaultRecentMaintenanceLimit = 5

// CategoryShare is one slice of the category distribution. Percent is of
// item count, not total quantity.
type CategoryShare struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

// ReportSnapshot is the derived, display-ready aggregate view. It is
// computed per request and never persisted.
type ReportSnapshot struct {
	TotalItems         int                 `json:"totalItems"`
	TotalQuantity      int                 `json:"totalQuantity"`
	TotalAssetValue    float64             `json:"totalAssetValue"`
	MaintenanceCostYTD float64             `json:"maintenanceCostYtd"`
	NeedsMaintenance   int                 `json:"needsMaintenance"`
	NeedsReplacement   int                 `json:"needsReplacement"`
	CategoryBreakdown  []CategoryShare     `json:"categoryBreakdown"`
	RecentMaintenance  []MaintenanceRecord `json:"recentMaintenance"`
}

// ComputeReportSnapshot aggregates raw rows into the reports view.
// now fixes the YTD boundary so callers and tests agree on "this year".
func ComputeReportSnapshot(items []InventoryItem, records []MaintenanceRecord, acquisitions []AcquisitionRecord, now time.Time, recentLimit int) ReportSnapshot {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentMaintenanceLimit
	}

	snap := ReportSnapshot{
		TotalItems: len(items),
		TotalQuantity: lo.SumBy(items, func(i InventoryItem) int {
			return i.Quantity
		}),
		TotalAssetValue: lo.SumBy(acquisitions, func(a AcquisitionRecord) float64 {
			return a.Price
		}),
		NeedsMaintenance: lo.CountBy(items, func(i InventoryItem) bool {
			return i.NeedsMaintenance()
		}),
		NeedsReplacement: lo.CountBy(items, func(i InventoryItem) bool {
			return i.NeedsReplacement()
		}),
		CategoryBreakdown: []CategoryShare{},
		RecentMaintenance: []MaintenanceRecord{},
	}

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	snap.MaintenanceCostYTD = lo.SumBy(records, func(m MaintenanceRecord) float64 {
		if time.Time(m.MaintenanceDate).Before(yearStart) {
			return 0
		}
		return m.Cost
	})

	// Category percentages are of item count. Zero items means an empty
	// breakdown, never a division by zero.
	if len(items) > 0 {
		byCategory := lo.GroupBy(items, func(i InventoryItem) string {
			if i.Category == "" {
				return "Other"
			}
			return i.Category
		})
		for category, group := range byCategory {
			snap.CategoryBreakdown = append(snap.CategoryBreakdown, CategoryShare{
				Category: category,
				Count:    len(group),
				Percent:  float64(len(group)) * 100 / float64(len(items)),
			})
		}
		sort.Slice(snap.CategoryBreakdown, func(a, b int) bool {
			if snap.CategoryBreakdown[a].Count != snap.CategoryBreakdown[b].Count {
				return snap.CategoryBreakdown[a].Count > snap.CategoryBreakdown[b].Count
			}
			return snap.CategoryBreakdown[a].Category < snap.CategoryBreakdown[b].Category
		})
	}

	snap.RecentMaintenance = SortMaintenanceDesc(records)
	if len(snap.RecentMaintenance) > recentLimit {
		snap.RecentMaintenance = snap.RecentMaintenance[:recentLimit]
	}

	return snap
}

// SortMaintenanceDesc orders records for display: newest maintenance
// date first, ties broken by insertion time then id so the order is
// deterministic.
func SortMaintenanceDesc(records []MaintenanceRecord) []MaintenanceRecord {
	out := make([]MaintenanceRecord, len(records))
	copy(out, records)
	sort.Slice(out, func(a, b int) bool {
		da, db := time.Time(out[a].MaintenanceDate), time.Time(out[b].MaintenanceDate)
		if !da.Equal(db) {
			return da.After(db)
		}
		if !out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].CreatedAt.After(out[b].CreatedAt)
		}
		return out[a].ID.String() < out[b].ID.String()
	})
	return out
}
