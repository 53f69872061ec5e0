package schemas

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edumela/admin-api/internal/models"
	"github.com/edumela/admin-api/internal/report"
)

func TestOrderFilterFromQuery_Defaults(t *testing.T) {
	criteria := OrderFilterFromQuery(url.Values{})

	assert.Equal(t, "", criteria.SearchQuery)
	assert.Equal(t, models.AllTypes, criteria.SelectedType)
	assert.Equal(t, report.StatusAll, criteria.SelectedStatus)
	assert.Empty(t, criteria.SelectedBookIDs)
}

func TestOrderFilterFromQuery_AllParameters(t *testing.T) {
	values := url.Values{}
	values.Set("search", "dhaka")
	values.Set("type", "books")
	values.Set("status", "pending")
	values.Set("bookProducts", "b1,b2")

	criteria := OrderFilterFromQuery(values)

	assert.Equal(t, "dhaka", criteria.SearchQuery)
	assert.Equal(t, models.BooksType, criteria.SelectedType)
	assert.Equal(t, "pending", criteria.SelectedStatus)
	assert.Equal(t, []string{"b1", "b2"}, criteria.SelectedBookIDs)
}
