package main

import (
	"context"
	"flag"
	"log"
	"os"

	"receivables/internal/adapters/cli"
	"receivables/internal/app"
	"receivables/internal/core"
	"receivables/internal/db"

	"github.com/joho/godotenv"
)

// report prints receivables views to the terminal, or a client statement as
// CSV with -csv. Without -client it prints the company-wide summary.
func main() {
	companyFlag := flag.String("company", "", "company code (defaults to COMPANY_CODE or the sole company)")
	clientFlag := flag.String("client", "", "client code for a per-client ledger")
	fromFlag := flag.String("from", "", "start date YYYY-MM-DD (inclusive)")
	toFlag := flag.String("to", "", "end date YYYY-MM-DD (inclusive)")
	agingFlag := flag.Bool("aging", false, "print the aging table instead of the ledger")
	csvFlag := flag.Bool("csv", false, "write the client statement as CSV to stdout")
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	svc := app.NewAppService(core.NewSaleService(pool), core.NewEngine())

	company := *companyFlag
	if company == "" {
		c, err := svc.LoadDefaultCompany(ctx)
		if err != nil {
			log.Fatalf("company: %v", err)
		}
		company = c.CompanyCode
	}

	if *clientFlag == "" {
		summary, err := svc.GetReceivablesSummary(ctx, company, *fromFlag, *toFlag)
		if err != nil {
			log.Fatalf("summary: %v", err)
		}
		cli.PrintSummary(summary)
		return
	}

	switch {
	case *csvFlag:
		out, err := svc.ExportClientStatement(ctx, company, *clientFlag, *fromFlag, *toFlag)
		if err != nil {
			log.Fatalf("statement: %v", err)
		}
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatalf("writing statement: %v", err)
		}
	case *agingFlag:
		report, err := svc.GetAgingReport(ctx, company, *clientFlag, *fromFlag, *toFlag)
		if err != nil {
			log.Fatalf("aging: %v", err)
		}
		cli.PrintAging(report)
	default:
		ledger, err := svc.GetClientLedger(ctx, company, *clientFlag, *fromFlag, *toFlag)
		if err != nil {
			log.Fatalf("ledger: %v", err)
		}
		cli.PrintLedger(ledger)
	}
}
