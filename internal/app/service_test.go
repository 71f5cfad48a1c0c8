package app_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"testing"
	"time"

	"receivables/internal/app"
	"receivables/internal/core"

	"github.com/shopspring/decimal"
)

// stubSaleService serves fixtures from memory so facade tests need no database.
type stubSaleService struct {
	company core.Company
	clients []core.Client
	items   []core.SaleLineItem
}

func (s *stubSaleService) GetCompany(_ context.Context, companyCode string) (*core.Company, error) {
	if companyCode != s.company.CompanyCode {
		return nil, fmt.Errorf("company code %s not found", companyCode)
	}
	return &s.company, nil
}

func (s *stubSaleService) ListCompanies(context.Context) ([]core.Company, error) {
	return []core.Company{s.company}, nil
}

func (s *stubSaleService) CreateClient(_ context.Context, _, code, name, legalName, email, phone string) (*core.Client, error) {
	c := core.Client{ID: len(s.clients) + 1, Code: code, Name: name, LegalName: legalName, Email: email, Phone: phone}
	s.clients = append(s.clients, c)
	return &c, nil
}

func (s *stubSaleService) GetClient(_ context.Context, _, clientCode string) (*core.Client, error) {
	for _, c := range s.clients {
		if c.Code == clientCode {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("client %s not found", clientCode)
}

func (s *stubSaleService) ListClients(context.Context, string) ([]core.Client, error) {
	return s.clients, nil
}

func (s *stubSaleService) CreateSaleItem(_ context.Context, _ string, item core.SaleLineItem) (*core.SaleLineItem, error) {
	item.Normalize()
	if err := item.Validate(); err != nil {
		return nil, err
	}
	s.items = append(s.items, item)
	return &item, nil
}

func (s *stubSaleService) ListSaleItems(context.Context, string, string, string) ([]core.SaleLineItem, error) {
	return s.items, nil
}

func (s *stubSaleService) SetPaid(_ context.Context, _, itemID string, paid bool) error {
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].IsPaid = paid
			return nil
		}
	}
	return fmt.Errorf("sale item %s not found", itemID)
}

var stubNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func fixtureService() (app.ApplicationService, *stubSaleService) {
	sales := &stubSaleService{
		company: core.Company{ID: 1, CompanyCode: "1000", Name: "Test Co", Currency: "EUR"},
		clients: []core.Client{
			{ID: 1, Code: "ACME", Name: "Acme", LegalName: "Acme Corporation S.A."},
			{ID: 2, Code: "BETA", Name: "Beta"},
		},
		items: []core.SaleLineItem{
			{ID: "L1", OrderID: "A", ClientName: "Acme", Date: stubNow.AddDate(0, 0, -40),
				NetRevenue: decimal.NewFromInt(50), IsPaid: false},
			{ID: "L2", OrderID: "B", ClientName: "Acme Corporation S.A.", Date: stubNow.AddDate(0, 0, -10),
				NetRevenue: decimal.NewFromInt(30), IsPaid: false},
			{ID: "L3", ClientName: "Acme", Date: stubNow.AddDate(0, 0, -5),
				NetRevenue: decimal.NewFromInt(20), IsPaid: true},
			{ID: "L4", ClientName: "Beta", Date: stubNow.AddDate(0, 0, -70),
				NetRevenue: decimal.NewFromInt(100), IsPaid: false},
		},
	}
	engine := core.NewEngine(core.WithClock(func() time.Time { return stubNow }))
	return app.NewAppService(sales, engine), sales
}

func TestGetReceivablesSummary_MatchesClientLedger(t *testing.T) {
	svc, sales := fixtureService()
	ctx := context.Background()

	summary, err := svc.GetReceivablesSummary(ctx, "1000", "", "")
	if err != nil {
		t.Fatalf("GetReceivablesSummary failed: %v", err)
	}
	if len(summary.Rows) != len(sales.clients) {
		t.Fatalf("expected %d rows, got %d", len(sales.clients), len(summary.Rows))
	}

	for _, row := range summary.Rows {
		ledger, err := svc.GetClientLedger(ctx, "1000", row.Client.Code, "", "")
		if err != nil {
			t.Fatalf("GetClientLedger(%s) failed: %v", row.Client.Code, err)
		}
		if !row.Balance.OutstandingBalance.Equal(ledger.Ledger.OutstandingBalance) {
			t.Errorf("%s: summary outstanding %s != ledger outstanding %s",
				row.Client.Code, row.Balance.OutstandingBalance, ledger.Ledger.OutstandingBalance)
		}
		if !row.Balance.TotalInvoiced.Equal(ledger.Ledger.TotalInvoiced) {
			t.Errorf("%s: summary invoiced %s != ledger invoiced %s",
				row.Client.Code, row.Balance.TotalInvoiced, ledger.Ledger.TotalInvoiced)
		}
	}
}

func TestGetClientLedger_LegalNameLinesIncluded(t *testing.T) {
	svc, _ := fixtureService()

	result, err := svc.GetClientLedger(context.Background(), "1000", "ACME", "", "")
	if err != nil {
		t.Fatalf("GetClientLedger failed: %v", err)
	}
	if result.Currency != "EUR" {
		t.Errorf("currency = %s, want EUR", result.Currency)
	}
	// L1 (display name), L2 (legal name), L3 (paid singleton) all belong to Acme.
	if len(result.Ledger.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(result.Ledger.Entries))
	}
	if !result.Ledger.OutstandingBalance.Equal(decimal.NewFromInt(-80)) {
		t.Errorf("outstanding = %s, want -80", result.Ledger.OutstandingBalance)
	}
}

func TestGetAgingReport_BucketTotals(t *testing.T) {
	svc, _ := fixtureService()

	report, err := svc.GetAgingReport(context.Background(), "1000", "ACME", "", "")
	if err != nil {
		t.Fatalf("GetAgingReport failed: %v", err)
	}

	// L1 is 40 days overdue (late, -50); L2 is 10 days overdue (neutral, -30);
	// L3 is paid and contributes nothing.
	if got := report.ByBucket[core.BucketLate]; !got.Equal(decimal.NewFromInt(-50)) {
		t.Errorf("late bucket = %s, want -50", got)
	}
	if got := report.ByBucket[core.BucketNeutral]; !got.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("neutral bucket = %s, want -30", got)
	}
	if _, ok := report.ByBucket[core.BucketPaid]; ok {
		t.Error("paid orders must not appear in bucket totals")
	}
}

func TestExportClientStatement(t *testing.T) {
	svc, _ := fixtureService()

	out, err := svc.ExportClientStatement(context.Background(), "1000", "ACME", "", "")
	if err != nil {
		t.Fatalf("ExportClientStatement failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	// Header + 3 orders + totals row.
	if len(records) != 5 {
		t.Fatalf("expected 5 CSV records, got %d", len(records))
	}
	if records[0][0] != "order" || records[0][len(records[0])-1] != "running_balance" {
		t.Errorf("unexpected header: %v", records[0])
	}

	totals := records[len(records)-1]
	if totals[0] != "TOTAL" {
		t.Fatalf("last row should be totals, got %v", totals)
	}
	if totals[4] != "-80.00" {
		t.Errorf("totals balance = %s, want -80.00", totals[4])
	}
}

func TestRecordSale_RejectsMalformed(t *testing.T) {
	svc, _ := fixtureService()

	_, err := svc.RecordSale(context.Background(), app.RecordSaleRequest{
		CompanyCode: "1000",
		ID:          "L9",
		Date:        stubNow,
		NetRevenue:  decimal.NewFromInt(10),
		// missing client name
	})
	if err == nil {
		t.Fatal("expected validation error for missing client name")
	}
}
