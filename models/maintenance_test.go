package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyMaintenanceEvent(t *testing.T) {
	t.Parallel()

	inService := ItemState{Status: StatusAvailable, Condition: ConditionGood}

	tests := []struct {
		name  string
		cur   ItemState
		event MaintenanceType
		want  ItemState
	}{
		{
			name:  "broken pulls item out of service",
			cur:   inService,
			event: MaintenanceBroken,
			want:  ItemState{Status: StatusUnderRepair, Condition: ConditionBroken},
		},
		{
			name:  "repair needed pulls item out of service",
			cur:   ItemState{Status: StatusInUse, Condition: ConditionFair},
			event: MaintenanceRepairNeeded,
			want:  ItemState{Status: StatusUnderRepair, Condition: ConditionNeedsRepair},
		},
		{
			name:  "resolved returns item to service",
			cur:   ItemState{Status: StatusUnderRepair, Condition: ConditionBroken},
			event: MaintenanceResolved,
			want:  ItemState{Status: StatusAvailable, Condition: ConditionGood},
		},
		{
			name:  "routine check changes nothing",
			cur:   ItemState{Status: StatusInUse, Condition: ConditionFair},
			event: MaintenanceRoutineCheck,
			want:  ItemState{Status: StatusInUse, Condition: ConditionFair},
		},
		{
			name:  "missing changes nothing automatically",
			cur:   inService,
			event: MaintenanceMissing,
			want:  inService,
		},
		{
			name:  "unknown free-form type changes nothing",
			cur:   inService,
			event: MaintenanceType("String Change"),
			want:  inService,
		},
		{
			name:  "broken never returns an item to available",
			cur:   ItemState{Status: StatusUnderRepair, Condition: ConditionBroken},
			event: MaintenanceBroken,
			want:  ItemState{Status: StatusUnderRepair, Condition: ConditionBroken},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ApplyMaintenanceEvent(tc.cur, tc.event))
		})
	}
}

func TestParseCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{"12.50", 12.50},
		{"250", 250},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"12,500.75", 12500.75},
		{"₱2500", 2500},
		{"$99.99", 99.99},
		{"-45", 0}, // negative input never produces a negative cost
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCost(tc.in))
		})
	}
}
