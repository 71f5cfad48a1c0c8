package app

import (
	"github.com/shopspring/decimal"

	"receivables/internal/core"
)

// ClientLedgerResult is returned by GetClientLedger.
type ClientLedgerResult struct {
	CompanyCode string
	Currency    string
	Client      *core.Client
	Ledger      core.ClientLedger
}

// SummaryResult is returned by GetReceivablesSummary.
type SummaryResult struct {
	CompanyCode string
	Currency    string
	Rows        []SummaryRow
}

// SummaryRow pairs a client master record with its batch-computed balances.
type SummaryRow struct {
	Client  core.Client
	Balance core.ClientBalance
}

// AgingResult is returned by GetAgingReport.
type AgingResult struct {
	CompanyCode string
	Currency    string
	Client      *core.Client
	Entries     []core.LedgerEntry
	// ByBucket holds the outstanding balance per aging bucket (paid orders
	// contribute zero and are omitted).
	ByBucket map[core.AgingBucket]decimal.Decimal
}

// ClientListResult is returned by ListClients.
type ClientListResult struct {
	CompanyCode string
	Clients     []core.Client
}
