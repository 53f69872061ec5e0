package schemas

import (
	"net/url"
	"strings"

	"github.com/edumela/admin-api/internal/models"
	"github.com/edumela/admin-api/internal/report"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending delivered"`
}

// OrderFilterFromQuery maps the admin screen's query parameters onto the
// report filter. Absent parameters leave the matching stage disabled.
func OrderFilterFromQuery(values url.Values) report.FilterCriteria {
	criteria := report.FilterCriteria{
		SearchQuery:    values.Get("search"),
		SelectedType:   models.AllTypes,
		SelectedStatus: report.StatusAll,
	}

	if orderType := values.Get("type"); orderType != "" {
		criteria.SelectedType = models.OrderType(strings.ToUpper(orderType))
	}
	if status := values.Get("status"); status != "" {
		criteria.SelectedStatus = status
	}
	if books := values.Get("bookProducts"); books != "" {
		criteria.SelectedBookIDs = strings.Split(books, ",")
	}

	return criteria
}
