package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"
	"github.com/pr-poehali-dev/perfume-shop-creation/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type ordersRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ordersRepo) InsertOrder(ctx context.Context, o entities.Order) (int64, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_number", "customer_name", "customer_phone", "customer_email",
			"delivery_method", "delivery_address", "city", "postal_code",
			"comment", "payment_method", "total_amount", "delivery_price", "status",
		).
		Values(
			o.OrderNumber, nullString(o.CustomerName), nullString(o.CustomerPhone), nullString(o.CustomerEmail),
			nullString(o.DeliveryMethod), nullString(o.DeliveryAddress), nullString(o.City), nullString(o.PostalCode),
			nullString(o.Comment), nullString(o.PaymentMethod), o.TotalAmount, o.DeliveryPrice, o.Status,
		).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return id, nil
}

func (r *ordersRepo) InsertItems(ctx context.Context, orderID int64, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "perfume_id", "perfume_name", "perfume_brand", "quantity", "price")

	for _, it := range items {
		q = q.Values(orderID, it.PerfumeID, it.Name, it.Brand, it.Quantity, it.Price)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *ordersRepo) ListOrders(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"id", "order_number", "customer_name", "customer_phone", "customer_email",
		"delivery_method", "delivery_address", "city", "postal_code",
		"comment", "payment_method", "total_amount", "delivery_price", "status",
		"created_at", "updated_at").
		From("orders").
		OrderBy("created_at DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	// Позиции забираем одним запросом на все заказы
	query, args = r.qb.Select(
		"id", "order_id", "perfume_id", "perfume_name", "perfume_brand", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[int64][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}

	return result, nil
}

func (r *ordersRepo) UpdateOrder(ctx context.Context, orderID int64, patch entities.OrderPatch) error {
	columns := patchColumns(patch)
	if len(columns) == 0 {
		return nil
	}

	query, args := r.qb.Update("orders").
		SetMap(columns).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	// Неизвестный id - ноль затронутых строк, ошибкой не считается
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

func (r *ordersRepo) DeleteItems(ctx context.Context, orderID int64) error {
	query, args := r.qb.Delete("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	return nil
}

func (r *ordersRepo) DeleteOrder(ctx context.Context, orderID int64) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

// patchColumns собирает set-часть UPDATE только из заполненных полей патча,
// без какой-либо конкатенации SQL.
func patchColumns(p entities.OrderPatch) map[string]any {
	columns := make(map[string]any)
	if p.Status != nil {
		columns["status"] = *p.Status
	}
	if p.CustomerName != nil {
		columns["customer_name"] = *p.CustomerName
	}
	if p.CustomerPhone != nil {
		columns["customer_phone"] = *p.CustomerPhone
	}
	if p.CustomerEmail != nil {
		columns["customer_email"] = *p.CustomerEmail
	}
	if p.DeliveryAddress != nil {
		columns["delivery_address"] = *p.DeliveryAddress
	}
	if p.City != nil {
		columns["city"] = *p.City
	}
	if p.Comment != nil {
		columns["comment"] = *p.Comment
	}
	return columns
}

func (r *ordersRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *ordersRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *ordersRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
