package app

import (
	"context"

	"receivables/internal/core"
)

// ApplicationService is the single interface all adapters (web, CLI) call.
// It decouples presentation from business logic. Implementations must contain
// no fmt.Println, no ANSI codes, and no display logic of any kind.
//
// Every ledger-shaped answer is recomputed from the raw sale items on each
// call; nothing here caches derived balances.
type ApplicationService interface {
	// GetClientLedger returns the full receivables ledger for one client:
	// invoiced/collected/outstanding totals and the chronological entries with
	// running balances. fromDate and toDate are optional YYYY-MM-DD bounds on
	// the underlying sale items (empty string means unbounded).
	GetClientLedger(ctx context.Context, companyCode, clientCode, fromDate, toDate string) (*ClientLedgerResult, error)

	// GetReceivablesSummary returns one balance row per client. Each row is
	// produced by the same aggregation the single-client ledger uses, so the
	// summary can never disagree with the detail view.
	GetReceivablesSummary(ctx context.Context, companyCode, fromDate, toDate string) (*SummaryResult, error)

	// GetAgingReport returns one client's orders with aging classification
	// plus the outstanding total per aging bucket.
	GetAgingReport(ctx context.Context, companyCode, clientCode, fromDate, toDate string) (*AgingResult, error)

	// ExportClientStatement renders a client's ledger as CSV. Pure formatting
	// over a computed ledger; no totals are recomputed here.
	ExportClientStatement(ctx context.Context, companyCode, clientCode, fromDate, toDate string) ([]byte, error)

	// ListClients returns all clients for a company.
	ListClients(ctx context.Context, companyCode string) (*ClientListResult, error)

	// CreateClient creates a new client master record.
	CreateClient(ctx context.Context, req CreateClientRequest) (*core.Client, error)

	// RecordSale validates and stores a new sale line item.
	RecordSale(ctx context.Context, req RecordSaleRequest) (*core.SaleLineItem, error)

	// MarkItemPaid flips the settlement flag on one sale line item.
	MarkItemPaid(ctx context.Context, companyCode, itemID string, paid bool) error

	// LoadDefaultCompany loads the active company. Uses COMPANY_CODE env var
	// if set; otherwise expects exactly one company in the database.
	LoadDefaultCompany(ctx context.Context) (*core.Company, error)
}
