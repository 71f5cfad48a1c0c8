package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Company is the tenant record. All clients and sale items belong to exactly
// one company, and every query is scoped to one company code.
type Company struct {
	ID          int    `json:"id"`
	CompanyCode string `json:"company_code"`
	Name        string `json:"name"`
	Currency    string `json:"currency"`
}

type DeliveryState string

const (
	DeliveryPending   DeliveryState = "pending"
	DeliveryDelivered DeliveryState = "delivered"
)

// Client represents a customer master record, scoped to a company.
// Name is the display name used on sale records; LegalName is the optional
// registered name that may appear on invoices instead. Both participate in
// ledger matching (see ClientIdentity).
type Client struct {
	ID        int       `json:"id"`
	CompanyID int       `json:"company_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	LegalName string    `json:"legal_name,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// Identity returns the matching identity for this client record.
func (c Client) Identity() ClientIdentity {
	return ClientIdentity{Name: c.Name, LegalName: c.LegalName}
}

// SaleLineItem is one product/service row of a sale as recorded upstream.
// OrderID and OrderNumber are optional correlators: a line carrying neither
// stands alone as its own order. ClientName is the free-text name recorded at
// sale time, not a foreign key — ledger selection matches it by string
// equality against the client master record.
type SaleLineItem struct {
	ID          string        `json:"id"`
	OrderID     string        `json:"order_id,omitempty"`
	OrderNumber string        `json:"order_number,omitempty"`
	ClientName  string        `json:"client_name"`
	Date        time.Time     `json:"date"`

	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`

	NetRevenue decimal.Decimal `json:"net_revenue"`
	HasTax     bool            `json:"has_tax"`
	TaxRate    decimal.Decimal `json:"tax_rate"` // percentage, meaningful only when HasTax

	IsPaid        bool          `json:"is_paid"`
	DeliveryState DeliveryState `json:"delivery_state"`
}

// GrossAmount is the tax-inclusive amount attributable to this line:
// netRevenue * (1 + taxRate/100) when taxed, netRevenue otherwise.
func (li SaleLineItem) GrossAmount() decimal.Decimal {
	if !li.HasTax {
		return li.NetRevenue
	}
	factor := decimal.NewFromInt(1).Add(li.TaxRate.Div(decimal.NewFromInt(100)))
	return li.NetRevenue.Mul(factor)
}

// Normalize cleans up a line item received from an external caller.
func (li *SaleLineItem) Normalize() {
	li.ID = strings.TrimSpace(li.ID)
	li.OrderID = strings.TrimSpace(li.OrderID)
	li.OrderNumber = strings.TrimSpace(li.OrderNumber)
	li.Product = strings.TrimSpace(li.Product)

	// ClientName is deliberately NOT trimmed: ledger matching is exact by
	// contract, and silently rewriting the recorded name would change which
	// client a line settles against.

	if li.DeliveryState == "" {
		li.DeliveryState = DeliveryPending
	}
	if !li.HasTax {
		li.TaxRate = decimal.Zero
	}
}

// Validate rejects malformed records at the boundary so the ledger engine can
// assume well-formed input. Absent order correlators are fine (the line
// becomes a singleton order); absent identity or dates are not.
func (li *SaleLineItem) Validate() error {
	if li.ID == "" {
		return errors.New("sale line item must have an id")
	}
	if li.ClientName == "" {
		return fmt.Errorf("sale line item %s must have a client name", li.ID)
	}
	if li.Date.IsZero() {
		return fmt.Errorf("sale line item %s must have a date", li.ID)
	}
	if li.NetRevenue.IsNegative() {
		return fmt.Errorf("net revenue cannot be negative for line item %s", li.ID)
	}
	if li.HasTax && li.TaxRate.IsNegative() {
		return fmt.Errorf("tax rate cannot be negative for line item %s", li.ID)
	}
	if li.Quantity.IsNegative() {
		return fmt.Errorf("quantity cannot be negative for line item %s", li.ID)
	}
	switch li.DeliveryState {
	case DeliveryPending, DeliveryDelivered:
	default:
		return fmt.Errorf("invalid delivery state %q for line item %s", li.DeliveryState, li.ID)
	}
	return nil
}
