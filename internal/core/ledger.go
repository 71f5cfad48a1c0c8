package core

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ClientMatcher decides whether a recorded sale client name belongs to the
// given client identity. The default is ExactMatch; FoldedMatch exists for
// deployments that need to tolerate inconsistent data entry.
type ClientMatcher func(recorded string, id ClientIdentity) bool

// ExactMatch matches by exact string equality against Name or LegalName.
// No case folding, no trimming, no partial match: a near-miss must not leak
// another client's balance.
func ExactMatch(recorded string, id ClientIdentity) bool {
	if recorded == id.Name {
		return true
	}
	return id.LegalName != "" && recorded == id.LegalName
}

// FoldedMatch matches after trimming surrounding whitespace and folding case.
func FoldedMatch(recorded string, id ClientIdentity) bool {
	r := strings.TrimSpace(recorded)
	if strings.EqualFold(r, strings.TrimSpace(id.Name)) {
		return true
	}
	return id.LegalName != "" && strings.EqualFold(r, strings.TrimSpace(id.LegalName))
}

// Engine turns flat sale line items into evaluated orders and client ledgers.
// It is pure and stateless: it performs no I/O, never mutates its input, and
// may be shared freely across goroutines. Every query recomputes from
// scratch; nothing is cached.
type Engine struct {
	now   func() time.Time
	match ClientMatcher
}

type EngineOption func(*Engine)

// WithClock overrides the clock used for aging. Tests pin it.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithMatcher overrides the client matching strategy.
func WithMatcher(m ClientMatcher) EngineOption {
	return func(e *Engine) { e.match = m }
}

func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{now: time.Now, match: ExactMatch}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// groupKey derives the order grouping key for a line: OrderID when present,
// else OrderNumber, else the line's own ID. A line carrying no order
// correlator therefore becomes a singleton order — that is how ad-hoc sales
// not linked to any order are represented, not a defect.
func groupKey(li SaleLineItem) string {
	if li.OrderID != "" {
		return li.OrderID
	}
	if li.OrderNumber != "" {
		return li.OrderNumber
	}
	return li.ID
}

// GroupOrders partitions line items into orders by grouping key and evaluates
// each order's totals, settlement status, and aging. Every input line lands
// in exactly one order; orders come back in first-seen key order.
func (e *Engine) GroupOrders(items []SaleLineItem) []Order {
	index := make(map[string]int, len(items))
	var orders []Order
	for _, li := range items {
		key := groupKey(li)
		i, ok := index[key]
		if !ok {
			i = len(orders)
			index[key] = i
			orders = append(orders, Order{Key: key})
		}
		orders[i].Lines = append(orders[i].Lines, li)
	}

	now := e.now()
	for i := range orders {
		e.evaluate(&orders[i], now)
	}
	return orders
}

// evaluate computes an order's total, collected amount, settlement flag,
// balance, and aging classification in place.
func (e *Engine) evaluate(o *Order, now time.Time) {
	issue := o.Lines[0].Date
	total := decimal.Zero
	collected := decimal.Zero
	fullyPaid := true

	for _, li := range o.Lines {
		if li.Date.Before(issue) {
			issue = li.Date
		}
		gross := li.GrossAmount()
		total = total.Add(gross)
		if li.IsPaid {
			collected = collected.Add(gross)
		} else {
			fullyPaid = false
		}
	}

	o.IssueDate = issue
	o.Total = total
	o.Collected = collected
	o.FullyPaid = fullyPaid

	if fullyPaid {
		o.Balance = decimal.Zero
	} else {
		// Debt-or-settled convention: the balance is never positive. When
		// upstream data marks more collected than invoiced on an unsettled
		// order, clamp to zero instead of reporting a credit.
		balance := collected.Sub(total)
		if balance.IsPositive() {
			balance = decimal.Zero
		}
		o.Balance = balance
	}

	days := wholeDaysBetween(issue, now)
	o.DaysSinceIssue = days
	if fullyPaid {
		o.DaysOverdue = 0
		o.Bucket = BucketPaid
		return
	}
	o.DaysOverdue = days
	o.Bucket = bucketFor(days)
}

func wholeDaysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

func bucketFor(daysOverdue int) AgingBucket {
	switch {
	case daysOverdue <= agingNeutralMaxDays:
		return BucketNeutral
	case daysOverdue <= agingWarningMaxDays:
		return BucketWarning
	case daysOverdue <= agingLateMaxDays:
		return BucketLate
	default:
		return BucketCritical
	}
}

// BuildLedger selects the given client's line items, groups and evaluates
// them, and aggregates the result into a ledger with a chronological running
// balance. A client with no matching lines gets a zeroed ledger with no
// entries; that is a valid answer, not an error.
func (e *Engine) BuildLedger(items []SaleLineItem, id ClientIdentity) ClientLedger {
	var matched []SaleLineItem
	for _, li := range items {
		if e.match(li.ClientName, id) {
			matched = append(matched, li)
		}
	}

	orders := e.GroupOrders(matched)
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].IssueDate.Equal(orders[j].IssueDate) {
			// Deterministic statement ordering for same-day orders.
			return orders[i].Key < orders[j].Key
		}
		return orders[i].IssueDate.Before(orders[j].IssueDate)
	})

	ledger := ClientLedger{
		Client:             id,
		TotalInvoiced:      decimal.Zero,
		TotalCollected:     decimal.Zero,
		OutstandingBalance: decimal.Zero,
	}
	running := decimal.Zero
	for _, o := range orders {
		ledger.TotalInvoiced = ledger.TotalInvoiced.Add(o.Total)
		ledger.TotalCollected = ledger.TotalCollected.Add(o.Collected)
		ledger.OutstandingBalance = ledger.OutstandingBalance.Add(o.Balance)
		running = running.Add(o.Balance)
		ledger.Entries = append(ledger.Entries, LedgerEntry{Order: o, RunningBalance: running})
	}
	return ledger
}

// BalanceSummary computes the batch receivables summary: one ClientBalance
// per client, each derived by the same BuildLedger call the single-client
// view uses. One shared aggregation path is what keeps the summary table and
// the per-client detail from ever drifting apart.
func (e *Engine) BalanceSummary(items []SaleLineItem, clients []ClientIdentity) []ClientBalance {
	out := make([]ClientBalance, 0, len(clients))
	for _, c := range clients {
		ledger := e.BuildLedger(items, c)
		out = append(out, ClientBalance{
			Client:             c,
			TotalInvoiced:      ledger.TotalInvoiced,
			TotalCollected:     ledger.TotalCollected,
			OutstandingBalance: ledger.OutstandingBalance,
		})
	}
	return out
}
