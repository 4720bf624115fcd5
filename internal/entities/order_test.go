package entities_test

import (
	"testing"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderPatch_IsEmpty(t *testing.T) {
	assert.True(t, entities.OrderPatch{}.IsEmpty())

	status := "shipped"
	assert.False(t, entities.OrderPatch{Status: &status}.IsEmpty())

	empty := ""
	// указатель на пустую строку - это всё ещё заполненное поле
	assert.False(t, entities.OrderPatch{Comment: &empty}.IsEmpty())
}

func TestCartTotal(t *testing.T) {
	testCases := []struct {
		name string
		cart []entities.CartItem
		want string
	}{
		{
			name: "empty cart",
			cart: nil,
			want: "0",
		},
		{
			name: "single line",
			cart: []entities.CartItem{
				{Quantity: 2, Price: decimal.NewFromInt(50)},
			},
			want: "100",
		},
		{
			name: "multiple lines with fractional prices",
			cart: []entities.CartItem{
				{Quantity: 3, Price: decimal.RequireFromString("99.90")},
				{Quantity: 1, Price: decimal.RequireFromString("0.10")},
			},
			want: "299.8",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entities.CartTotal(tc.cart).String())
		})
	}
}

func TestCustomer_IsEmpty(t *testing.T) {
	assert.True(t, entities.Customer{}.IsEmpty())
	assert.False(t, entities.Customer{Phone: "123"}.IsEmpty())
}
