package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation is a soft allocation against a lot's on-hand quantity, bounded
// by on-hand minus existing reservations.
type Reservation struct {
	ID         int64
	LotID      int64
	CustomerID int64
	QuantityKg decimal.Decimal
	ReservedAt time.Time
	CreatedAt  time.Time
}

// Sale is the header of a multi-line sell-by-lot transaction.
type Sale struct {
	ID         int64
	CustomerID int64
	SoldAt     time.Time
	Notes      *string
	CreatedAt  time.Time
}

// SaleLine is one lot/quantity pair within a Sale.
type SaleLine struct {
	ID         int64
	SaleID     int64
	LotID      int64
	QuantityKg decimal.Decimal
}
