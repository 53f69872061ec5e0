package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumela/admin-api/internal/models"
)

func sampleOrders() []models.Order {
	return []models.Order{
		{
			ID:     "1",
			Status: models.PendingStatus,
			Products: []models.LineItem{
				{ID: "b1", Name: "Math Book"},
			},
		},
		{
			ID:     "2",
			Status: models.DeliveredStatus,
			Products: []models.LineItem{
				{ID: "t1", Name: "Red Shirt"},
			},
		},
	}
}

func allCriteria() FilterCriteria {
	return FilterCriteria{
		SelectedType:   models.AllTypes,
		SelectedStatus: StatusAll,
	}
}

func TestApplyFilters_TypeStage(t *testing.T) {
	criteria := allCriteria()
	criteria.SelectedType = models.BooksType

	result := ApplyFilters(sampleOrders(), criteria)

	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestApplyFilters_StatusCaseInsensitive(t *testing.T) {
	criteria := allCriteria()
	criteria.SelectedStatus = "PENDING"

	result := ApplyFilters(sampleOrders(), criteria)

	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestApplyFilters_SearchMissingFields(t *testing.T) {
	orders := []models.Order{
		{ID: "1", CustomerAddress: "Dhaka"},
		{ID: "2"},
	}

	criteria := allCriteria()
	criteria.SearchQuery = "dhaka"

	result := ApplyFilters(orders, criteria)

	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestApplyFilters_SearchByEmail(t *testing.T) {
	orders := []models.Order{
		{ID: "1", User: &models.OrderUser{Email: "student@example.com"}},
		{ID: "2", User: nil},
	}

	criteria := allCriteria()
	criteria.SearchQuery = "STUDENT"

	result := ApplyFilters(orders, criteria)

	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestApplyFilters_BookProductStage(t *testing.T) {
	criteria := allCriteria()
	criteria.SelectedBookIDs = []string{"b1", "missing"}

	result := ApplyFilters(sampleOrders(), criteria)

	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestApplyFilters_Idempotent(t *testing.T) {
	criteria := FilterCriteria{
		SearchQuery:    "",
		SelectedType:   models.BooksType,
		SelectedStatus: "pending",
	}

	once := ApplyFilters(sampleOrders(), criteria)
	twice := ApplyFilters(once, criteria)

	assert.Equal(t, once, twice)
}

func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	orders := sampleOrders()

	criteria := allCriteria()
	criteria.SelectedStatus = "delivered"
	ApplyFilters(orders, criteria)

	require.Len(t, orders, 2)
	assert.Equal(t, "1", orders[0].ID)
	assert.Equal(t, "2", orders[1].ID)
}

func TestApplyFilters_AllStagesDisabled(t *testing.T) {
	result := ApplyFilters(sampleOrders(), allCriteria())
	assert.Len(t, result, 2)
}

func TestApplyFilters_NoOrdersMatch(t *testing.T) {
	criteria := allCriteria()
	criteria.SelectedStatus = "cancelled"

	result := ApplyFilters(sampleOrders(), criteria)
	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestCollectUniqueBookProducts(t *testing.T) {
	result := CollectUniqueBookProducts(sampleOrders())

	assert.Equal(t, []BookProduct{{ID: "b1", Name: "Math Book"}}, result)
}

func TestCollectUniqueBookProducts_RenamedProductKeepsBothEntries(t *testing.T) {
	orders := []models.Order{
		{ID: "1", Products: []models.LineItem{{ID: "b1", Name: "Algebra Book"}}},
		{ID: "2", Products: []models.LineItem{{ID: "b1", Name: "Algebra Book 2nd Ed"}}},
		{ID: "3", Products: []models.LineItem{{ID: "b1", Name: "Algebra Book"}}},
	}

	result := CollectUniqueBookProducts(orders)

	assert.Equal(t, []BookProduct{
		{ID: "b1", Name: "Algebra Book"},
		{ID: "b1", Name: "Algebra Book 2nd Ed"},
	}, result)
}

func TestCollectUniqueBookProducts_BengaliName(t *testing.T) {
	orders := []models.Order{
		{ID: "1", Products: []models.LineItem{{ID: "b9", Name: "গণিত বই"}}},
	}

	result := CollectUniqueBookProducts(orders)

	assert.Equal(t, []BookProduct{{ID: "b9", Name: "গণিত বই"}}, result)
}
