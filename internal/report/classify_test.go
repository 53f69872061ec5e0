package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edumela/admin-api/internal/models"
)

func TestClassifyOrderType_Precedence(t *testing.T) {
	book := models.LineItem{ID: "b1", Name: "Physics Book"}
	shirt := models.LineItem{ID: "t1", Name: "Team T-Shirt"}
	pen := models.LineItem{ID: "p1", Name: "Pen Set"}

	tests := []struct {
		name     string
		items    []models.LineItem
		expected models.OrderType
	}{
		{name: "books and gifts", items: []models.LineItem{book, shirt}, expected: models.BooksAndGiftsType},
		{name: "only books", items: []models.LineItem{book}, expected: models.BooksType},
		{name: "only gifts", items: []models.LineItem{shirt}, expected: models.GiftsType},
		{name: "neither", items: []models.LineItem{pen}, expected: models.OtherType},
		{name: "empty", items: []models.LineItem{}, expected: models.OtherType},
		{name: "nil", items: nil, expected: models.OtherType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyOrderType(tt.items))
		})
	}
}

func TestClassifyOrderType_BengaliKeyword(t *testing.T) {
	items := []models.LineItem{{ID: "b2", Name: "গণিত বই"}}
	assert.Equal(t, models.BooksType, ClassifyOrderType(items))
}

func TestClassifyOrderType_KeywordInDescription(t *testing.T) {
	items := []models.LineItem{{ID: "x1", Name: "Bundle", Description: "Includes a gift wrap"}}
	assert.Equal(t, models.GiftsType, ClassifyOrderType(items))
}

func TestClassifyOrderType_Deterministic(t *testing.T) {
	items := []models.LineItem{
		{ID: "b1", Name: "Math Book"},
		{ID: "t1", Name: "Red Shirt"},
	}

	first := ClassifyOrderType(items)
	second := ClassifyOrderType(items)
	assert.Equal(t, first, second)
	assert.Equal(t, models.BooksAndGiftsType, first)
}

func TestExtractTShirtSize(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.LineItem
		expected string
	}{
		{
			name:     "size in name",
			items:    []models.LineItem{{Name: "T-Shirt XL Edition"}},
			expected: "XL",
		},
		{
			name:     "name checked before description",
			items:    []models.LineItem{{Name: "T-Shirt Large", Description: "available in small"}},
			expected: "LARGE",
		},
		{
			name:     "description fallback",
			items:    []models.LineItem{{Name: "T-Shirt", Description: "size: medium"}},
			expected: "MEDIUM",
		},
		{
			name: "first item wins",
			items: []models.LineItem{
				{Name: "T-Shirt M"},
				{Name: "T-Shirt XXL"},
			},
			expected: "M",
		},
		{
			name:     "boundary keeps s out of small",
			items:    []models.LineItem{{Name: "Small Mug"}},
			expected: "SMALL",
		},
		{
			name:     "dash counts as boundary",
			items:    []models.LineItem{{Name: "S-XL Combo"}},
			expected: "S",
		},
		{
			name:     "no match",
			items:    []models.LineItem{{Name: "Pen Set", Description: "blue ink"}},
			expected: "",
		},
		{
			name:     "empty input",
			items:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractTShirtSize(tt.items))
		})
	}
}
