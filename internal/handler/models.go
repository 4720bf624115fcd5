package handler

import (
	"time"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"

	"github.com/shopspring/decimal"
)

// Витрина шлёт и ждёт цены числами, как в исходном API
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type CreateOrderRequest struct {
	Name           string            `json:"name" validate:"required"`
	Phone          string            `json:"phone" validate:"required"`
	Email          string            `json:"email" validate:"omitempty,email"`
	DeliveryMethod string            `json:"deliveryMethod"`
	Address        string            `json:"address"`
	City           string            `json:"city"`
	PostalCode     string            `json:"postalCode"`
	Comment        string            `json:"comment"`
	PaymentMethod  string            `json:"paymentMethod"`
	TotalAmount    decimal.Decimal   `json:"totalAmount"`
	DeliveryPrice  decimal.Decimal   `json:"deliveryPrice"`
	Items          []CreateOrderItem `json:"items" validate:"required,min=1,dive"`
}

// CreateOrderItem — строка корзины; name/brand/price это снапшот на момент
// покупки, каталог при сохранении не читается.
type CreateOrderItem struct {
	ID       int64           `json:"id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Brand    string          `json:"brand"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
	Price    decimal.Decimal `json:"price"`
}

type CreateOrderResponse struct {
	Success     bool   `json:"success"`
	OrderNumber string `json:"orderNumber"`
	OrderID     int64  `json:"orderId"`
}

type Order struct {
	ID              int64           `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerEmail   string          `json:"customerEmail"`
	DeliveryMethod  string          `json:"deliveryMethod"`
	DeliveryAddress string          `json:"deliveryAddress"`
	City            string          `json:"city"`
	PostalCode      string          `json:"postalCode"`
	Comment         string          `json:"comment"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	DeliveryPrice   decimal.Decimal `json:"deliveryPrice"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       *time.Time      `json:"updatedAt"`
	Items           []OrderItem     `json:"items"`
}

type OrderItem struct {
	PerfumeID    int64           `json:"perfumeId"`
	PerfumeName  string          `json:"perfumeName"`
	PerfumeBrand string          `json:"perfumeBrand"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

type UpdateOrderRequest struct {
	ID              int64   `json:"id" validate:"required"`
	Status          *string `json:"status"`
	CustomerName    *string `json:"customerName"`
	CustomerPhone   *string `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail"`
	DeliveryAddress *string `json:"deliveryAddress"`
	City            *string `json:"city"`
	Comment         *string `json:"comment"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type Perfume struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name" validate:"required"`
	Brand         string          `json:"brand" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	Volume        string          `json:"volume"`
	Notes         []string        `json:"notes"`
	Image         string          `json:"image"`
	Concentration string          `json:"concentration"`
	Availability  *bool           `json:"availability"`
}

type NotifyRequest struct {
	Cart     []NotifyCartItem `json:"cart"`
	Customer NotifyCustomer   `json:"customer"`
}

type NotifyCartItem struct {
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type NotifyCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type NotifyResults struct {
	Telegram bool `json:"telegram"`
	Email    bool `json:"email"`
}

type NotifyResponse struct {
	Success bool          `json:"success"`
	Results NotifyResults `json:"results"`
	Message string        `json:"message"`
}

func CreateOrderRequestToEntity(req CreateOrderRequest) entities.Order {
	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.OrderItem{
			PerfumeID: it.ID,
			Name:      it.Name,
			Brand:     it.Brand,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return entities.Order{
		CustomerName:    req.Name,
		CustomerPhone:   req.Phone,
		CustomerEmail:   req.Email,
		DeliveryMethod:  req.DeliveryMethod,
		DeliveryAddress: req.Address,
		City:            req.City,
		PostalCode:      req.PostalCode,
		Comment:         req.Comment,
		PaymentMethod:   req.PaymentMethod,
		TotalAmount:     req.TotalAmount,
		DeliveryPrice:   req.DeliveryPrice,
		Items:           items,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			PerfumeID:    it.PerfumeID,
			PerfumeName:  it.Name,
			PerfumeBrand: it.Brand,
			Quantity:     it.Quantity,
			Price:        it.Price,
		})
	}

	return Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerEmail:   o.CustomerEmail,
		DeliveryMethod:  o.DeliveryMethod,
		DeliveryAddress: o.DeliveryAddress,
		City:            o.City,
		PostalCode:      o.PostalCode,
		Comment:         o.Comment,
		PaymentMethod:   o.PaymentMethod,
		TotalAmount:     o.TotalAmount,
		DeliveryPrice:   o.DeliveryPrice,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           items,
	}
}

func UpdateOrderRequestToPatch(req UpdateOrderRequest) entities.OrderPatch {
	return entities.OrderPatch{
		Status:          req.Status,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		City:            req.City,
		Comment:         req.Comment,
	}
}

func PerfumeJSONToEntity(p Perfume) entities.Perfume {
	image := p.Image
	if image == "" {
		image = "/placeholder.svg"
	}
	availability := true
	if p.Availability != nil {
		availability = *p.Availability
	}

	return entities.Perfume{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Price:         p.Price,
		Category:      p.Category,
		Volume:        p.Volume,
		Notes:         p.Notes,
		Image:         image,
		Concentration: p.Concentration,
		Availability:  availability,
	}
}

func PerfumeEntityToJSON(p entities.Perfume) Perfume {
	notes := p.Notes
	if notes == nil {
		notes = []string{}
	}
	availability := p.Availability

	return Perfume{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Price:         p.Price,
		Category:      p.Category,
		Volume:        p.Volume,
		Notes:         notes,
		Image:         p.Image,
		Concentration: p.Concentration,
		Availability:  &availability,
	}
}

func NotifyCartToEntity(cart []NotifyCartItem) []entities.CartItem {
	items := make([]entities.CartItem, 0, len(cart))
	for _, it := range cart {
		items = append(items, entities.CartItem{
			Name:     it.Name,
			Brand:    it.Brand,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return items
}

func NotifyCustomerToEntity(c NotifyCustomer) entities.Customer {
	return entities.Customer{
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
}
