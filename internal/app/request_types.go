package app

import (
	"time"

	"github.com/shopspring/decimal"

	"receivables/internal/core"
)

// CreateClientRequest is the input for creating a new client.
type CreateClientRequest struct {
	CompanyCode string
	Code        string
	Name        string
	LegalName   string
	Email       string
	Phone       string
}

// RecordSaleRequest is the input for recording a new sale line item.
// OrderID and OrderNumber are optional; a sale carrying neither becomes its
// own singleton order in every ledger computation.
type RecordSaleRequest struct {
	CompanyCode string
	ID          string // optional, generated when empty
	OrderID     string
	OrderNumber string
	ClientName  string
	Date        time.Time
	Product     string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	UnitCost    decimal.Decimal
	NetRevenue  decimal.Decimal
	HasTax      bool
	TaxRate     decimal.Decimal
	IsPaid      bool
	Delivery    core.DeliveryState
}

func (r RecordSaleRequest) lineItem() core.SaleLineItem {
	return core.SaleLineItem{
		ID:            r.ID,
		OrderID:       r.OrderID,
		OrderNumber:   r.OrderNumber,
		ClientName:    r.ClientName,
		Date:          r.Date,
		Product:       r.Product,
		Quantity:      r.Quantity,
		UnitPrice:     r.UnitPrice,
		UnitCost:      r.UnitCost,
		NetRevenue:    r.NetRevenue,
		HasTax:        r.HasTax,
		TaxRate:       r.TaxRate,
		IsPaid:        r.IsPaid,
		DeliveryState: r.Delivery,
	}
}
