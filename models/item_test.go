package models

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeFillsDefaults(t *testing.T) {
	t.Parallel()

	item := InventoryItem{Name: "Mystery Box"}
	item.Normalize()

	assert.Equal(t, StatusAvailable, item.Status)
	assert.Equal(t, ConditionGood, item.Condition)
	assert.Equal(t, "Other", item.Category)
	assert.JSONEq(t, "[]", string(item.Photos))
	assert.NotNil(t, item.MaintenanceHistory)
}

func TestNormalizeKeepsSetFields(t *testing.T) {
	t.Parallel()

	item := InventoryItem{
		Name:      "Stage Box",
		Category:  "Audio",
		Status:    StatusInUse,
		Condition: ConditionFair,
	}
	item.Normalize()

	assert.Equal(t, StatusInUse, item.Status)
	assert.Equal(t, ConditionFair, item.Condition)
	assert.Equal(t, "Audio", item.Category)
}

func TestBrandModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		brand *string
		model *string
		want  string
	}{
		{"both", strPtr("Shure"), strPtr("SM58"), "Shure SM58"},
		{"brand only", strPtr("Generic"), nil, "Generic"},
		{"model only", nil, strPtr("F310"), "F310"},
		{"empty strings", strPtr(""), strPtr(""), ""},
		{"neither", nil, nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := InventoryItem{Brand: tc.brand, Model: tc.model}
			assert.Equal(t, tc.want, item.BrandModel())
		})
	}
}

func TestStatusConditionAreIndependentAxes(t *testing.T) {
	t.Parallel()

	item := InventoryItem{Status: StatusAvailable, Condition: ConditionNeedsRepair}
	assert.True(t, item.NeedsMaintenance())
	assert.False(t, item.NeedsReplacement())

	item.Condition = ConditionBroken
	assert.True(t, item.NeedsReplacement())
}

func TestParseListParams(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/api/v1/items?status=Under%20Repair,Missing&condition=Broken&category=Audio&q=mic&page=2&limit=20", nil)
	p := ParseListParams(r)

	assert.Equal(t, []Status{StatusUnderRepair, StatusMissing}, p.Statuses)
	assert.Equal(t, []Condition{ConditionBroken}, p.Conditions)
	assert.Equal(t, "Audio", p.Category)
	assert.Equal(t, "mic", p.Search)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 20, p.Offset())
	require.NoError(t, p.Validate())
}

func TestParseListParamsDefaults(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/api/v1/items", nil)
	p := ParseListParams(r)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.Limit)
	assert.True(t, p.SortDesc)
	assert.Equal(t, 0, p.Offset())
	require.NoError(t, p.Validate())
}

func TestListParamsValidateRejectsUnknownEnums(t *testing.T) {
	t.Parallel()

	assert.Error(t, ListParams{Statuses: []Status{"Lost Forever"}}.Validate())
	assert.Error(t, ListParams{Conditions: []Condition{"Mint"}}.Validate())
	assert.Error(t, ListParams{Category: "Spaceships"}.Validate())
	assert.Error(t, ListParams{Limit: 10000}.Validate())
}
