package repository

import (
	"context"
	"fmt"

	"github.com/edumela/admin-api/internal/config/db"
	"github.com/edumela/admin-api/internal/customerror"
	"github.com/edumela/admin-api/internal/models"
	"github.com/edumela/admin-api/internal/retry"
)

type OrderRepository struct {
	db *db.DB
}

type OrderStorageRepositoryI interface {
	GetList(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, newStatus models.OrderStatus) error
}

func NewOrderRepository(dbObj *db.DB) *OrderRepository {
	return &OrderRepository{db: dbObj}
}

func (repository *OrderRepository) GetList(ctx context.Context) ([]models.Order, error) {
	query := `SELECT o.id, o.customer_name, o.customer_phone, o.customer_address, o.user_email,
       o.status, o.total_amount, o.payment_method, o.transaction_id, o.rider_name, o.payment_status, o.created_at,
       i.product_id, i.name, i.description, i.price, i.discounted_price
FROM orders o
LEFT JOIN order_items i ON i.order_id = o.id
ORDER BY o.created_at DESC, o.id, i.position`

	return retry.DoRetryWithResult(ctx, func() ([]models.Order, error) {
		rows, err := repository.db.Pool.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		orders := []models.Order{}
		for rows.Next() {
			var (
				order           models.Order
				customerName    *string
				customerPhone   *string
				customerAddress *string
				userEmail       *string
				paymentMethod   *string
				transactionID   *string
				riderName       *string
				paymentStatus   *string
				itemProductID   *string
				itemName        *string
				itemDescription *string
				itemPrice       *float64
				itemDiscounted  *float64
			)

			err = rows.Scan(
				&order.ID, &customerName, &customerPhone, &customerAddress, &userEmail,
				&order.Status, &order.TotalAmount, &paymentMethod, &transactionID, &riderName, &paymentStatus, &order.CreatedAt,
				&itemProductID, &itemName, &itemDescription, &itemPrice, &itemDiscounted,
			)
			if err != nil {
				return nil, err
			}

			if len(orders) == 0 || orders[len(orders)-1].ID != order.ID {
				order.CustomerName = deref(customerName)
				order.CustomerPhone = deref(customerPhone)
				order.CustomerAddress = deref(customerAddress)
				order.PaymentMethod = deref(paymentMethod)
				order.TransactionID = deref(transactionID)
				order.RiderName = deref(riderName)
				order.PaymentStatus = deref(paymentStatus)
				order.Products = []models.LineItem{}
				if userEmail != nil {
					order.User = &models.OrderUser{Email: *userEmail}
				}
				orders = append(orders, order)
			}

			if itemProductID == nil {
				continue
			}
			current := &orders[len(orders)-1]
			item := models.LineItem{
				ID:              *itemProductID,
				Name:            deref(itemName),
				Description:     deref(itemDescription),
				DiscountedPrice: itemDiscounted,
			}
			if itemPrice != nil {
				item.Price = *itemPrice
			}
			current.Products = append(current.Products, item)
		}

		if err = rows.Err(); err != nil {
			return nil, err
		}
		return orders, nil
	})
}

func (repository *OrderRepository) UpdateStatus(ctx context.Context, orderID string, newStatus models.OrderStatus) error {
	query := `UPDATE orders SET status = $1 WHERE id = $2`
	return retry.DoRetry(ctx, func() error {
		row, err := repository.db.Pool.Exec(ctx, query, newStatus, orderID)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		if row.RowsAffected() == 0 {
			return customerror.NewNotFoundError(fmt.Sprintf("order with id %v not found", orderID))
		}
		return nil
	})
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
