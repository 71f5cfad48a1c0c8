package cli

import (
	"fmt"
	"strings"

	"receivables/internal/app"
	"receivables/internal/core"
)

// PrintSummary renders the batch receivables summary as a terminal table.
func PrintSummary(result *app.SummaryResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  RECEIVABLES SUMMARY — Company %s (%s)\n", result.CompanyCode, result.Currency)
	fmt.Println(strings.Repeat("=", 78))
	if len(result.Rows) == 0 {
		fmt.Println("  No clients found.")
		fmt.Println(strings.Repeat("=", 78))
		return
	}
	fmt.Printf("  %-8s %-28s %14s %14s %14s\n", "CODE", "CLIENT", "INVOICED", "COLLECTED", "OUTSTANDING")
	fmt.Println(strings.Repeat("-", 78))
	for _, row := range result.Rows {
		fmt.Printf("  %-8s %-28s %14s %14s %14s\n",
			row.Client.Code, row.Client.Name,
			row.Balance.TotalInvoiced.StringFixed(2),
			row.Balance.TotalCollected.StringFixed(2),
			row.Balance.OutstandingBalance.StringFixed(2))
	}
	fmt.Println(strings.Repeat("=", 78))
}

// PrintLedger renders one client's statement with running balances.
func PrintLedger(result *app.ClientLedgerResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 86))
	fmt.Printf("  CLIENT LEDGER — %s", result.Client.Name)
	if result.Client.LegalName != "" {
		fmt.Printf(" (%s)", result.Client.LegalName)
	}
	fmt.Println()
	fmt.Printf("  Company  : %s\n", result.CompanyCode)
	fmt.Printf("  Currency : %s\n", result.Currency)
	fmt.Println(strings.Repeat("=", 86))
	if len(result.Ledger.Entries) == 0 {
		fmt.Println("  No orders on record.")
		fmt.Println(strings.Repeat("=", 86))
		return
	}
	fmt.Printf("  %-14s %-12s %12s %12s %12s %-9s %12s\n",
		"ORDER", "ISSUED", "TOTAL", "COLLECTED", "BALANCE", "BUCKET", "RUNNING")
	fmt.Println(strings.Repeat("-", 86))
	for _, entry := range result.Ledger.Entries {
		o := entry.Order
		fmt.Printf("  %-14s %-12s %12s %12s %12s %-9s %12s\n",
			o.Key, o.IssueDate.Format("2006-01-02"),
			o.Total.StringFixed(2), o.Collected.StringFixed(2), o.Balance.StringFixed(2),
			o.Bucket, entry.RunningBalance.StringFixed(2))
	}
	fmt.Println(strings.Repeat("-", 86))
	fmt.Printf("  %-27s %12s %12s %12s %22s\n", "TOTAL",
		result.Ledger.TotalInvoiced.StringFixed(2),
		result.Ledger.TotalCollected.StringFixed(2),
		result.Ledger.OutstandingBalance.StringFixed(2), "")
	fmt.Println(strings.Repeat("=", 86))
}

// PrintAging renders one client's aging table plus per-bucket totals.
func PrintAging(result *app.AgingResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  AGING — %s (Company %s, %s)\n", result.Client.Name, result.CompanyCode, result.Currency)
	fmt.Println(strings.Repeat("=", 72))
	if len(result.Entries) == 0 {
		fmt.Println("  No orders on record.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-14s %-12s %8s %8s %-9s %14s\n",
		"ORDER", "ISSUED", "AGE", "OVERDUE", "BUCKET", "BALANCE")
	fmt.Println(strings.Repeat("-", 72))
	for _, entry := range result.Entries {
		o := entry.Order
		fmt.Printf("  %-14s %-12s %7dd %7dd %-9s %14s\n",
			o.Key, o.IssueDate.Format("2006-01-02"),
			o.DaysSinceIssue, o.DaysOverdue, o.Bucket, o.Balance.StringFixed(2))
	}
	fmt.Println(strings.Repeat("-", 72))
	for _, bucket := range []core.AgingBucket{core.BucketNeutral, core.BucketWarning, core.BucketLate, core.BucketCritical} {
		if total, ok := result.ByBucket[bucket]; ok {
			fmt.Printf("  %-45s %-9s %14s\n", "", bucket, total.StringFixed(2))
		}
	}
	fmt.Println(strings.Repeat("=", 72))
}
