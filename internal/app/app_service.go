package app

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"receivables/internal/core"
)

type appService struct {
	sales  core.SaleService
	engine *core.Engine
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(sales core.SaleService, engine *core.Engine) ApplicationService {
	return &appService{sales: sales, engine: engine}
}

func (s *appService) GetClientLedger(ctx context.Context, companyCode, clientCode, fromDate, toDate string) (*ClientLedgerResult, error) {
	company, err := s.sales.GetCompany(ctx, companyCode)
	if err != nil {
		return nil, err
	}
	client, err := s.sales.GetClient(ctx, companyCode, clientCode)
	if err != nil {
		return nil, err
	}
	items, err := s.sales.ListSaleItems(ctx, companyCode, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	return &ClientLedgerResult{
		CompanyCode: companyCode,
		Currency:    company.Currency,
		Client:      client,
		Ledger:      s.engine.BuildLedger(items, client.Identity()),
	}, nil
}

func (s *appService) GetReceivablesSummary(ctx context.Context, companyCode, fromDate, toDate string) (*SummaryResult, error) {
	company, err := s.sales.GetCompany(ctx, companyCode)
	if err != nil {
		return nil, err
	}
	clients, err := s.sales.ListClients(ctx, companyCode)
	if err != nil {
		return nil, err
	}
	items, err := s.sales.ListSaleItems(ctx, companyCode, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	identities := make([]core.ClientIdentity, len(clients))
	for i, c := range clients {
		identities[i] = c.Identity()
	}
	balances := s.engine.BalanceSummary(items, identities)

	result := &SummaryResult{CompanyCode: companyCode, Currency: company.Currency}
	for i, c := range clients {
		result.Rows = append(result.Rows, SummaryRow{Client: c, Balance: balances[i]})
	}
	return result, nil
}

func (s *appService) GetAgingReport(ctx context.Context, companyCode, clientCode, fromDate, toDate string) (*AgingResult, error) {
	ledger, err := s.GetClientLedger(ctx, companyCode, clientCode, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	byBucket := map[core.AgingBucket]decimal.Decimal{}
	for _, entry := range ledger.Ledger.Entries {
		o := entry.Order
		if o.FullyPaid {
			continue
		}
		byBucket[o.Bucket] = byBucket[o.Bucket].Add(o.Balance)
	}

	return &AgingResult{
		CompanyCode: companyCode,
		Currency:    ledger.Currency,
		Client:      ledger.Client,
		Entries:     ledger.Ledger.Entries,
		ByBucket:    byBucket,
	}, nil
}

func (s *appService) ListClients(ctx context.Context, companyCode string) (*ClientListResult, error) {
	clients, err := s.sales.ListClients(ctx, companyCode)
	if err != nil {
		return nil, err
	}
	return &ClientListResult{CompanyCode: companyCode, Clients: clients}, nil
}

func (s *appService) CreateClient(ctx context.Context, req CreateClientRequest) (*core.Client, error) {
	return s.sales.CreateClient(ctx, req.CompanyCode, req.Code, req.Name, req.LegalName, req.Email, req.Phone)
}

func (s *appService) RecordSale(ctx context.Context, req RecordSaleRequest) (*core.SaleLineItem, error) {
	return s.sales.CreateSaleItem(ctx, req.CompanyCode, req.lineItem())
}

func (s *appService) MarkItemPaid(ctx context.Context, companyCode, itemID string, paid bool) error {
	return s.sales.SetPaid(ctx, companyCode, itemID, paid)
}

// LoadDefaultCompany loads the company named by COMPANY_CODE, falling back to
// the sole company on record when the variable is unset.
func (s *appService) LoadDefaultCompany(ctx context.Context) (*core.Company, error) {
	if code := os.Getenv("COMPANY_CODE"); code != "" {
		return s.sales.GetCompany(ctx, code)
	}

	companies, err := s.sales.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	switch len(companies) {
	case 0:
		return nil, fmt.Errorf("no companies on record; seed one or set COMPANY_CODE")
	case 1:
		return &companies[0], nil
	default:
		return nil, fmt.Errorf("%d companies on record; set COMPANY_CODE to pick one", len(companies))
	}
}
