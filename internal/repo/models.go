package repo

import (
	"database/sql"
	"time"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID              int64               `db:"id"`
	OrderNumber     string              `db:"order_number"`
	CustomerName    sql.NullString      `db:"customer_name"`
	CustomerPhone   sql.NullString      `db:"customer_phone"`
	CustomerEmail   sql.NullString      `db:"customer_email"`
	DeliveryMethod  sql.NullString      `db:"delivery_method"`
	DeliveryAddress sql.NullString      `db:"delivery_address"`
	City            sql.NullString      `db:"city"`
	PostalCode      sql.NullString      `db:"postal_code"`
	Comment         sql.NullString      `db:"comment"`
	PaymentMethod   sql.NullString      `db:"payment_method"`
	TotalAmount     decimal.NullDecimal `db:"total_amount"`
	DeliveryPrice   decimal.NullDecimal `db:"delivery_price"`
	Status          string              `db:"status"`
	CreatedAt       time.Time           `db:"created_at"`
	UpdatedAt       sql.NullTime        `db:"updated_at"`
}

type OrderItem struct {
	ID           int64           `db:"id"`
	OrderID      int64           `db:"order_id"`
	PerfumeID    int64           `db:"perfume_id"`
	PerfumeName  string          `db:"perfume_name"`
	PerfumeBrand string          `db:"perfume_brand"`
	Quantity     int             `db:"quantity"`
	Price        decimal.Decimal `db:"price"`
}

type Perfume struct {
	ID            int64           `db:"id"`
	Name          string          `db:"name"`
	Brand         string          `db:"brand"`
	Price         decimal.Decimal `db:"price"`
	Category      sql.NullString  `db:"category"`
	Volume        sql.NullString  `db:"volume"`
	Notes         pq.StringArray  `db:"notes"`
	Image         string          `db:"image"`
	Concentration sql.NullString  `db:"concentration"`
	Availability  bool            `db:"availability"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    nullStringToString(o.CustomerName),
		CustomerPhone:   nullStringToString(o.CustomerPhone),
		CustomerEmail:   nullStringToString(o.CustomerEmail),
		DeliveryMethod:  nullStringToString(o.DeliveryMethod),
		DeliveryAddress: nullStringToString(o.DeliveryAddress),
		City:            nullStringToString(o.City),
		PostalCode:      nullStringToString(o.PostalCode),
		Comment:         nullStringToString(o.Comment),
		PaymentMethod:   nullStringToString(o.PaymentMethod),
		TotalAmount:     nullDecimalToDecimal(o.TotalAmount),
		DeliveryPrice:   nullDecimalToDecimal(o.DeliveryPrice),
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
	}

	if o.UpdatedAt.Valid {
		t := o.UpdatedAt.Time
		order.UpdatedAt = &t
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ID,
		OrderID:   i.OrderID,
		PerfumeID: i.PerfumeID,
		Name:      i.PerfumeName,
		Brand:     i.PerfumeBrand,
		Quantity:  i.Quantity,
		Price:     i.Price,
	}
}

func PerfumeToEntity(p Perfume) entities.Perfume {
	return entities.Perfume{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Price:         p.Price,
		Category:      nullStringToString(p.Category),
		Volume:        nullStringToString(p.Volume),
		Notes:         p.Notes,
		Image:         p.Image,
		Concentration: nullStringToString(p.Concentration),
		Availability:  p.Availability,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullDecimalToDecimal(nd decimal.NullDecimal) decimal.Decimal {
	if nd.Valid {
		return nd.Decimal
	}
	return decimal.Zero
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
