package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusPending = "pending"

type Order struct {
	ID              int64
	OrderNumber     string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryMethod  string
	DeliveryAddress string
	City            string
	PostalCode      string
	Comment         string
	PaymentMethod   string
	TotalAmount     decimal.Decimal
	DeliveryPrice   decimal.Decimal
	Status          string
	CreatedAt       time.Time
	// UpdatedAt выставляется только при частичном обновлении, при создании он пуст
	UpdatedAt *time.Time

	Items []OrderItem
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	PerfumeID int64
	Name      string
	Brand     string
	Quantity  int
	Price     decimal.Decimal
}

// OrderPatch описывает частичное обновление заказа: меняются только
// заполненные поля, nil-поля остаются нетронутыми.
type OrderPatch struct {
	Status          *string
	CustomerName    *string
	CustomerPhone   *string
	CustomerEmail   *string
	DeliveryAddress *string
	City            *string
	Comment         *string
}

func (p OrderPatch) IsEmpty() bool {
	return p.Status == nil &&
		p.CustomerName == nil &&
		p.CustomerPhone == nil &&
		p.CustomerEmail == nil &&
		p.DeliveryAddress == nil &&
		p.City == nil &&
		p.Comment == nil
}
