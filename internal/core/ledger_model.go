package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgingBucket classifies how overdue an unpaid order is. Buckets are totally
// ordered by threshold: neutral < warning < late < critical. Fully settled
// orders always report BucketPaid regardless of how long settlement took.
type AgingBucket string

const (
	BucketPaid     AgingBucket = "paid"
	BucketNeutral  AgingBucket = "neutral"  // 0–15 days overdue
	BucketWarning  AgingBucket = "warning"  // 16–30 days overdue
	BucketLate     AgingBucket = "late"     // 31–60 days overdue
	BucketCritical AgingBucket = "critical" // 61+ days overdue
)

const (
	agingNeutralMaxDays = 15
	agingWarningMaxDays = 30
	agingLateMaxDays    = 60
)

// Order is a derived, ephemeral grouping of sale line items that were
// invoiced together. It is recomputed from raw line items on every ledger
// query and never stored.
//
// Balance follows the debt-or-settled convention: zero when fully paid,
// otherwise -(Total - Collected), clamped so it can never go positive even
// when upstream data marks more collected than invoiced.
type Order struct {
	Key   string         `json:"key"`
	Lines []SaleLineItem `json:"lines"`

	IssueDate time.Time       `json:"issue_date"` // earliest line date
	Total     decimal.Decimal `json:"total"`
	Collected decimal.Decimal `json:"collected"`
	FullyPaid bool            `json:"fully_paid"`
	Balance   decimal.Decimal `json:"balance"`

	// DaysSinceIssue is informational on paid orders (time to settlement);
	// DaysOverdue is zero for paid orders. The two are distinct on purpose.
	DaysSinceIssue int         `json:"days_since_issue"`
	DaysOverdue    int         `json:"days_overdue"`
	Bucket         AgingBucket `json:"bucket"`
}

// LedgerEntry is an order annotated with the statement-style cumulative
// balance: the sum of this order's balance and all chronologically earlier
// balances for the same client.
type LedgerEntry struct {
	Order          Order           `json:"order"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// ClientIdentity is the matching key for ledger selection. A sale line
// belongs to the client when its recorded ClientName equals Name or, when
// set, LegalName.
type ClientIdentity struct {
	Name      string `json:"name"`
	LegalName string `json:"legal_name,omitempty"`
}

// ClientLedger is the full receivables view for one client: invoiced and
// collected totals, the outstanding balance (always <= 0), and the client's
// orders sorted ascending by issue date with running balances.
type ClientLedger struct {
	Client             ClientIdentity  `json:"client"`
	TotalInvoiced      decimal.Decimal `json:"total_invoiced"`
	TotalCollected     decimal.Decimal `json:"total_collected"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	Entries            []LedgerEntry   `json:"entries"`
}

// ClientBalance is the batch-summary row for one client.
type ClientBalance struct {
	Client             ClientIdentity  `json:"client"`
	TotalInvoiced      decimal.Decimal `json:"total_invoiced"`
	TotalCollected     decimal.Decimal `json:"total_collected"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}
