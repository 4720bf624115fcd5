package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

type Perfume struct {
	ID            int64
	Name          string
	Brand         string
	Price         decimal.Decimal
	Category      string
	Volume        string
	Notes         []string
	Image         string
	Concentration string
	Availability  bool
}

var (
	ErrPerfumeNotFound = errors.New("perfume not found")
)
