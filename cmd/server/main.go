package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"receivables/internal/adapters/web"
	"receivables/internal/app"
	"receivables/internal/core"
	"receivables/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	sales := core.NewSaleService(pool)

	// CLIENT_MATCH=folded tolerates case/whitespace drift in recorded client
	// names; the default is exact matching.
	var engineOpts []core.EngineOption
	if os.Getenv("CLIENT_MATCH") == "folded" {
		engineOpts = append(engineOpts, core.WithMatcher(core.FoldedMatch))
	}
	engine := core.NewEngine(engineOpts...)
	svc := app.NewAppService(sales, engine)

	company, err := svc.LoadDefaultCompany(ctx)
	if err != nil {
		log.Fatalf("company: %v", err)
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := web.NewHandler(svc, allowedOrigins, company.CompanyCode)

	log.Printf("server starting on :%s (company %s)", port, company.CompanyCode)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
