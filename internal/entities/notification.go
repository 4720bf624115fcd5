package entities

import "github.com/shopspring/decimal"

// CartItem — позиция корзины в том виде, в котором её присылает витрина.
// Это снапшот, а не ссылка на каталог.
type CartItem struct {
	Name     string
	Brand    string
	Quantity int
	Price    decimal.Decimal
}

type Customer struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

func (c Customer) IsEmpty() bool {
	return c == Customer{}
}

// DeliveryOutcome различает канал, который не пытались использовать,
// и канал, который попытался и не смог.
type DeliveryOutcome string

const (
	DeliverySkipped DeliveryOutcome = "skipped"
	DeliverySent    DeliveryOutcome = "sent"
	DeliveryFailed  DeliveryOutcome = "failed"
)

// DispatchResult показывает исход доставки по каждому каналу.
type DispatchResult struct {
	Telegram DeliveryOutcome
	Email    DeliveryOutcome
}

func CartTotal(cart []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
