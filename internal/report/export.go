package report

import (
	"strconv"
	"strings"

	"github.com/edumela/admin-api/internal/models"
)

const notAvailable = "N/A"

// ExportRow is one flat spreadsheet row. The column keys are fixed; the
// finance team matches them against previously exported reports.
type ExportRow struct {
	CustomerName  string `json:"Customer Name"`
	CustomerEmail string `json:"Customer Email"`
	CustomerPhone string `json:"Customer Phone"`
	TotalAmount   string `json:"Total Amount"`
	OrderType     string `json:"Order Type"`
	TShirtSize    string `json:"T-Shirt Size"`
	BooksOrdered  string `json:"Books Ordered"`
	OtherProducts string `json:"Other Products"`
	OrderStatus   string `json:"Order Status"`
	PaymentStatus string `json:"Payment Status"`
	Address       string `json:"Address"`
	CreatedAt     string `json:"Created At"`
}

// ExportColumns is the header row, in column order.
var ExportColumns = []string{
	"Customer Name",
	"Customer Email",
	"Customer Phone",
	"Total Amount",
	"Order Type",
	"T-Shirt Size",
	"Books Ordered",
	"Other Products",
	"Order Status",
	"Payment Status",
	"Address",
	"Created At",
}

func (row ExportRow) values() []string {
	return []string{
		row.CustomerName,
		row.CustomerEmail,
		row.CustomerPhone,
		row.TotalAmount,
		row.OrderType,
		row.TShirtSize,
		row.BooksOrdered,
		row.OtherProducts,
		row.OrderStatus,
		row.PaymentStatus,
		row.Address,
		row.CreatedAt,
	}
}

func orNA(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}

func joinNamesOrNA(names []string) string {
	if len(names) == 0 {
		return notAvailable
	}
	return strings.Join(names, ", ")
}

// BuildExportRows projects the (already filtered) order list into flat
// rows, one per order, re-running the classifier per row. Absent fields
// become the literal "N/A".
func BuildExportRows(orders []models.Order) []ExportRow {
	rows := make([]ExportRow, 0, len(orders))

	for _, order := range orders {
		var bookNames, otherNames []string
		for _, item := range order.Products {
			switch {
			case isBookItem(item):
				bookNames = append(bookNames, item.Name)
			case isGiftItem(item):
				// gifts are covered by the type and size columns
			default:
				otherNames = append(otherNames, item.Name)
			}
		}

		createdAt := ""
		if !order.CreatedAt.IsZero() {
			createdAt = order.CreatedAt.Format("1/2/2006")
		}

		rows = append(rows, ExportRow{
			CustomerName:  orNA(order.CustomerName),
			CustomerEmail: orNA(order.CustomerEmail()),
			CustomerPhone: orNA(order.CustomerPhone),
			TotalAmount:   strconv.FormatFloat(order.TotalAmount, 'f', -1, 64),
			OrderType:     string(ClassifyOrderType(order.Products)),
			TShirtSize:    orNA(ExtractTShirtSize(order.Products)),
			BooksOrdered:  joinNamesOrNA(bookNames),
			OtherProducts: joinNamesOrNA(otherNames),
			OrderStatus:   orNA(string(order.Status)),
			PaymentStatus: orNA(order.PaymentStatus),
			Address:       orNA(order.CustomerAddress),
			CreatedAt:     orNA(createdAt),
		})
	}

	return rows
}
