package report

import (
	"strings"

	"github.com/edumela/admin-api/internal/models"
)

// StatusAll disables the status stage of ApplyFilters.
const StatusAll = "ALL"

// FilterCriteria is an immutable snapshot of the admin screen's filter
// controls. The zero value (with SelectedType AllTypes and SelectedStatus
// StatusAll) matches everything.
type FilterCriteria struct {
	SearchQuery     string
	SelectedType    models.OrderType
	SelectedStatus  string
	SelectedBookIDs []string
}

// BookProduct is one checkbox entry of the book filter.
type BookProduct struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ApplyFilters narrows the order list stage by stage: free-text search,
// order type, status, then selected book products. Each stage works on the
// output of the previous one and skipped stages pass the list through
// untouched. The input slice is never mutated and every returned element is
// one of the input elements.
func ApplyFilters(orders []models.Order, criteria FilterCriteria) []models.Order {
	filtered := orders

	if query := strings.ToLower(strings.TrimSpace(criteria.SearchQuery)); query != "" {
		next := make([]models.Order, 0, len(filtered))
		for _, order := range filtered {
			if strings.Contains(strings.ToLower(order.CustomerName), query) ||
				strings.Contains(strings.ToLower(order.CustomerEmail()), query) ||
				strings.Contains(strings.ToLower(order.CustomerAddress), query) {
				next = append(next, order)
			}
		}
		filtered = next
	}

	if criteria.SelectedType != "" && criteria.SelectedType != models.AllTypes {
		next := make([]models.Order, 0, len(filtered))
		for _, order := range filtered {
			if ClassifyOrderType(order.Products) == criteria.SelectedType {
				next = append(next, order)
			}
		}
		filtered = next
	}

	if criteria.SelectedStatus != "" && criteria.SelectedStatus != StatusAll {
		next := make([]models.Order, 0, len(filtered))
		for _, order := range filtered {
			if order.Status.EqualsFold(criteria.SelectedStatus) {
				next = append(next, order)
			}
		}
		filtered = next
	}

	if len(criteria.SelectedBookIDs) > 0 {
		selected := make(map[string]struct{}, len(criteria.SelectedBookIDs))
		for _, id := range criteria.SelectedBookIDs {
			selected[id] = struct{}{}
		}

		next := make([]models.Order, 0, len(filtered))
		for _, order := range filtered {
			for _, item := range order.Products {
				if _, ok := selected[item.ID]; ok {
					next = append(next, order)
					break
				}
			}
		}
		filtered = next
	}

	if filtered == nil {
		return []models.Order{}
	}
	return filtered
}

// CollectUniqueBookProducts scans every line item of every order and
// returns the book items in first-occurrence order. The dedup key is the
// (id, name) pair, so a product renamed between orders keeps an entry per
// observed name.
func CollectUniqueBookProducts(orders []models.Order) []BookProduct {
	seen := make(map[BookProduct]struct{})
	result := []BookProduct{}

	for _, order := range orders {
		for _, item := range order.Products {
			if !containsAny(strings.ToLower(item.Name), bookKeywords) {
				continue
			}
			entry := BookProduct{ID: item.ID, Name: item.Name}
			if _, ok := seen[entry]; ok {
				continue
			}
			seen[entry] = struct{}{}
			result = append(result, entry)
		}
	}

	return result
}
