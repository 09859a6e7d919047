package billings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Billing es un cargo a una mascota. Amount nunca es negativo.
type Billing struct {
	ID          int64
	PetID       int64
	Date        *time.Time
	Amount      decimal.Decimal
	Description string
	Paid        bool
}
