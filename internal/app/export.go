package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
)

// statementHeader is the column layout of the exported client statement.
var statementHeader = []string{
	"order", "issue_date", "total", "collected", "balance",
	"status", "days_overdue", "bucket", "running_balance",
}

// ExportClientStatement renders one client's ledger as CSV: a header row, one
// row per order in chronological order, and a totals row. All numbers come
// straight from the computed ledger.
func (s *appService) ExportClientStatement(ctx context.Context, companyCode, clientCode, fromDate, toDate string) ([]byte, error) {
	result, err := s.GetClientLedger(ctx, companyCode, clientCode, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(statementHeader); err != nil {
		return nil, fmt.Errorf("writing statement header: %w", err)
	}

	for _, entry := range result.Ledger.Entries {
		o := entry.Order
		status := "open"
		if o.FullyPaid {
			status = "paid"
		}
		row := []string{
			o.Key,
			o.IssueDate.Format("2006-01-02"),
			o.Total.StringFixed(2),
			o.Collected.StringFixed(2),
			o.Balance.StringFixed(2),
			status,
			strconv.Itoa(o.DaysOverdue),
			string(o.Bucket),
			entry.RunningBalance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing statement row: %w", err)
		}
	}

	totals := []string{
		"TOTAL", "",
		result.Ledger.TotalInvoiced.StringFixed(2),
		result.Ledger.TotalCollected.StringFixed(2),
		result.Ledger.OutstandingBalance.StringFixed(2),
		"", "", "",
		result.Ledger.OutstandingBalance.StringFixed(2),
	}
	if err := w.Write(totals); err != nil {
		return nil, fmt.Errorf("writing statement totals: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing statement: %w", err)
	}
	return buf.Bytes(), nil
}
