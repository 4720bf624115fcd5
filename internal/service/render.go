package service

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"

	"github.com/shopspring/decimal"
)

const notSpecified = "Не указано"

func renderText(cart []entities.CartItem, customer entities.Customer, total decimal.Decimal) string {
	var b strings.Builder

	b.WriteString("🛍 Новый заказ!\n\n")
	b.WriteString("👤 Клиент:\n")
	fmt.Fprintf(&b, "Имя: %s\n", orDefault(customer.Name))
	fmt.Fprintf(&b, "Телефон: %s\n", orDefault(customer.Phone))
	fmt.Fprintf(&b, "Email: %s\n", orDefault(customer.Email))
	fmt.Fprintf(&b, "Адрес: %s\n\n", orDefault(customer.Address))
	b.WriteString("📦 Товары:\n")

	for _, item := range cart {
		fmt.Fprintf(&b, "• %s (%s) - %d шт. x %s ₽\n", item.Name, item.Brand, item.Quantity, item.Price)
	}

	fmt.Fprintf(&b, "\n💰 Итого: %s ₽", total)
	return b.String()
}

var htmlTmpl = template.Must(template.New("order").Parse(`<html>
  <body style="font-family: Arial, sans-serif;">
    <h2>🛍 Новый заказ</h2>

    <h3>👤 Данные клиента:</h3>
    <ul>
      <li><strong>Имя:</strong> {{.Name}}</li>
      <li><strong>Телефон:</strong> {{.Phone}}</li>
      <li><strong>Email:</strong> {{.Email}}</li>
      <li><strong>Адрес:</strong> {{.Address}}</li>
    </ul>

    <h3>📦 Товары:</h3>
    <table border="1" cellpadding="10" cellspacing="0" style="border-collapse: collapse;">
      <tr>
        <th>Товар</th>
        <th>Бренд</th>
        <th>Количество</th>
        <th>Цена</th>
        <th>Сумма</th>
      </tr>
{{- range .Items}}
      <tr>
        <td>{{.Name}}</td>
        <td>{{.Brand}}</td>
        <td>{{.Quantity}}</td>
        <td>{{.Price}} ₽</td>
        <td>{{.Total}} ₽</td>
      </tr>
{{- end}}
    </table>

    <h3>💰 Итого: {{.Total}} ₽</h3>
  </body>
</html>`))

type htmlItem struct {
	Name     string
	Brand    string
	Quantity int
	Price    decimal.Decimal
	Total    decimal.Decimal
}

type htmlData struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Items   []htmlItem
	Total   decimal.Decimal
}

func renderHTML(cart []entities.CartItem, customer entities.Customer, total decimal.Decimal) string {
	data := htmlData{
		Name:    orDefault(customer.Name),
		Phone:   orDefault(customer.Phone),
		Email:   orDefault(customer.Email),
		Address: orDefault(customer.Address),
		Total:   total,
	}

	for _, item := range cart {
		data.Items = append(data.Items, htmlItem{
			Name:     item.Name,
			Brand:    item.Brand,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	var b strings.Builder
	// шаблон статический, выполнение не падает
	_ = htmlTmpl.Execute(&b, data)
	return b.String()
}

func orDefault(s string) string {
	if s == "" {
		return notSpecified
	}
	return s
}
