package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SaleService is the boundary to the hosted data platform that owns raw sale
// records. The ledger engine never touches storage: callers fetch a snapshot
// of line items here (already scoped to one company and time window) and feed
// it to the Engine.
type SaleService interface {
	// Companies
	GetCompany(ctx context.Context, companyCode string) (*Company, error)
	ListCompanies(ctx context.Context) ([]Company, error)

	// Master data
	CreateClient(ctx context.Context, companyCode, code, name, legalName, email, phone string) (*Client, error)
	GetClient(ctx context.Context, companyCode, clientCode string) (*Client, error)
	ListClients(ctx context.Context, companyCode string) ([]Client, error)

	// Sale line items
	CreateSaleItem(ctx context.Context, companyCode string, item SaleLineItem) (*SaleLineItem, error)
	// ListSaleItems returns all line items for a company, ordered by date then
	// id. fromDate and toDate are optional YYYY-MM-DD bounds — pass empty
	// string for no bound. The tenant/time-window filter lives here, not in
	// the engine.
	ListSaleItems(ctx context.Context, companyCode, fromDate, toDate string) ([]SaleLineItem, error)
	// SetPaid flips the binary settlement flag on one line item.
	SetPaid(ctx context.Context, companyCode, itemID string, paid bool) error
}

type saleService struct {
	pool *pgxpool.Pool
}

// NewSaleService constructs a SaleService backed by the given pool.
func NewSaleService(pool *pgxpool.Pool) SaleService {
	return &saleService{pool: pool}
}

// resolveCompanyID looks up the internal company ID from a company code.
func (s *saleService) resolveCompanyID(ctx context.Context, companyCode string) (int, error) {
	var id int
	err := s.pool.QueryRow(ctx, "SELECT id FROM companies WHERE company_code = $1", companyCode).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("company code %s not found", companyCode)
		}
		return 0, fmt.Errorf("failed to resolve company %s: %w", companyCode, err)
	}
	return id, nil
}

// ── Companies ────────────────────────────────────────────────────────────────

func (s *saleService) GetCompany(ctx context.Context, companyCode string) (*Company, error) {
	var c Company
	err := s.pool.QueryRow(ctx, `
		SELECT id, company_code, name, currency FROM companies WHERE company_code = $1
	`, companyCode).Scan(&c.ID, &c.CompanyCode, &c.Name, &c.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("company code %s not found", companyCode)
		}
		return nil, fmt.Errorf("failed to fetch company %s: %w", companyCode, err)
	}
	return &c, nil
}

func (s *saleService) ListCompanies(ctx context.Context) ([]Company, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, company_code, name, currency FROM companies ORDER BY company_code")
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	var companies []Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.CompanyCode, &c.Name, &c.Currency); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// ── Master data ──────────────────────────────────────────────────────────────

func (s *saleService) CreateClient(ctx context.Context, companyCode, code, name, legalName, email, phone string) (*Client, error) {
	companyID, err := s.resolveCompanyID(ctx, companyCode)
	if err != nil {
		return nil, err
	}
	if code == "" || name == "" {
		return nil, errors.New("client code and name are required")
	}

	var c Client
	err = s.pool.QueryRow(ctx, `
		INSERT INTO clients (company_id, code, name, legal_name, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, company_id, code, name, legal_name, email, phone, created_at
	`, companyID, code, name, legalName, email, phone).Scan(
		&c.ID, &c.CompanyID, &c.Code, &c.Name, &c.LegalName, &c.Email, &c.Phone, &c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &c, nil
}

func (s *saleService) GetClient(ctx context.Context, companyCode, clientCode string) (*Client, error) {
	companyID, err := s.resolveCompanyID(ctx, companyCode)
	if err != nil {
		return nil, err
	}

	var c Client
	err = s.pool.QueryRow(ctx, `
		SELECT id, company_id, code, name, legal_name, email, phone, created_at
		FROM clients
		WHERE company_id = $1 AND code = $2
	`, companyID, clientCode).Scan(
		&c.ID, &c.CompanyID, &c.Code, &c.Name, &c.LegalName, &c.Email, &c.Phone, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client %s not found", clientCode)
		}
		return nil, fmt.Errorf("failed to fetch client %s: %w", clientCode, err)
	}
	return &c, nil
}

func (s *saleService) ListClients(ctx context.Context, companyCode string) ([]Client, error) {
	companyID, err := s.resolveCompanyID(ctx, companyCode)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, company_id, code, name, legal_name, email, phone, created_at
		FROM clients
		WHERE company_id = $1
		ORDER BY code
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Code, &c.Name, &c.LegalName,
			&c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// ── Sale line items ──────────────────────────────────────────────────────────

func (s *saleService) CreateSaleItem(ctx context.Context, companyCode string, item SaleLineItem) (*SaleLineItem, error) {
	companyID, err := s.resolveCompanyID(ctx, companyCode)
	if err != nil {
		return nil, err
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.Normalize()
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sale line item: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO sale_items (id, company_id, order_id, order_number, client_name, date,
			product, quantity, unit_price, unit_cost,
			net_revenue, has_tax, tax_rate, is_paid, delivery_state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, item.ID, companyID, item.OrderID, item.OrderNumber, item.ClientName, item.Date,
		item.Product, item.Quantity, item.UnitPrice, item.UnitCost,
		item.NetRevenue, item.HasTax, item.TaxRate, item.IsPaid, string(item.DeliveryState))
	if err != nil {
		return nil, fmt.Errorf("failed to insert sale line item: %w", err)
	}
	return &item, nil
}

func (s *saleService) ListSaleItems(ctx context.Context, companyCode, fromDate, toDate string) ([]SaleLineItem, error) {
	companyID, err := s.resolveCompanyID(ctx, companyCode)
	if err != nil {
		return nil, err
	}

	q := `
		SELECT id, order_id, order_number, client_name, date,
		       product, quantity, unit_price, unit_cost,
		       net_revenue, has_tax, tax_rate, is_paid, delivery_state
		FROM sale_items
		WHERE company_id = $1`

	args := []any{companyID}
	if fromDate != "" {
		args = append(args, fromDate)
		q += fmt.Sprintf(" AND date >= $%d::date", len(args))
	}
	if toDate != "" {
		args = append(args, toDate)
		q += fmt.Sprintf(" AND date <= $%d::date", len(args))
	}
	q += " ORDER BY date ASC, id ASC"

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	var items []SaleLineItem
	for rows.Next() {
		var li SaleLineItem
		var state string
		if err := rows.Scan(&li.ID, &li.OrderID, &li.OrderNumber, &li.ClientName, &li.Date,
			&li.Product, &li.Quantity, &li.UnitPrice, &li.UnitCost,
			&li.NetRevenue, &li.HasTax, &li.TaxRate, &li.IsPaid, &state); err != nil {
			return nil, fmt.Errorf("failed to scan sale item: %w", err)
		}
		li.DeliveryState = DeliveryState(state)
		items = append(items, li)
	}
	return items, rows.Err()
}

func (s *saleService) SetPaid(ctx context.Context, companyCode, itemID string, paid bool) error {
	companyID, err := s.resolveCompanyID(ctx, companyCode)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE sale_items SET is_paid = $1 WHERE company_id = $2 AND id = $3
	`, paid, companyID, itemID)
	if err != nil {
		return fmt.Errorf("failed to update sale item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sale item %s not found", itemID)
	}
	return nil
}
