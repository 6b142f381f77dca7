package services

import (
	"database/sql"
	"errors"

	"sellerdesk/internal/domain"
	"sellerdesk/internal/repos"
)

// InventoryService reconciles requested order lines against product stock.
//
// The protocol is two-phase: every line is validated against current stock
// before any decrement is applied, and the decrements themselves run inside a
// single guarded transaction. Either all lines commit or none do.
type InventoryService struct {
	Prods *repos.ProductRepo
}

func NewInventoryService(prods *repos.ProductRepo) *InventoryService {
	return &InventoryService{Prods: prods}
}

// LineRequest is a requested product+quantity before reconciliation.
type LineRequest struct {
	ProductID string
	Amount    int
	Name      string
	Price     float64
}

// Reconcile validates the requested lines in input order and commits the
// stock decrements. The committed lines carry name/price snapshots taken from
// the product record unless the request already supplied them.
func (s *InventoryService) Reconcile(reqs []LineRequest) ([]domain.OrderLine, error) {
	if len(reqs) == 0 {
		return nil, invalidInput("order has no lines")
	}
	for _, req := range reqs {
		if req.Amount < 1 {
			return nil, invalidInput("line amount must be at least 1")
		}
	}
	reqs = mergeLines(reqs)

	// Phase 1: validate every line against current stock. A missing product
	// and insufficient stock are distinct failures.
	lines := make([]domain.OrderLine, 0, len(reqs))
	for _, req := range reqs {
		p, err := s.Prods.Get(req.ProductID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, notFound("product")
			}
			return nil, err
		}
		if req.Amount > p.Stock {
			return nil, stockInvalid(p.Name)
		}
		ln := domain.OrderLine{ProductID: p.ID, Amount: req.Amount, Name: req.Name, Price: req.Price}
		if ln.Name == "" {
			ln.Name = p.Name
		}
		if ln.Price == 0 {
			ln.Price = p.Price
		}
		lines = append(lines, ln)
	}

	// Phase 2: commit all decrements, or none. The guarded UPDATE re-checks
	// stock, so a concurrent order that won the race rolls this one back.
	if err := s.Prods.DecrementStocks(lines); err != nil {
		var conflict *repos.StockConflictError
		if errors.As(err, &conflict) {
			name := conflict.ProductID
			for _, ln := range lines {
				if ln.ProductID == conflict.ProductID {
					name = ln.Name
					break
				}
			}
			return nil, stockInvalid(name)
		}
		return nil, err
	}
	return lines, nil
}

// mergeLines folds repeated product ids into a single request, summing the
// amounts. Requests stay in first-seen order. Without the fold a duplicated
// line would validate per-line and then collide on the order_lines key.
func mergeLines(reqs []LineRequest) []LineRequest {
	at := make(map[string]int, len(reqs))
	out := make([]LineRequest, 0, len(reqs))
	for _, req := range reqs {
		i, seen := at[req.ProductID]
		if !seen {
			at[req.ProductID] = len(out)
			out = append(out, req)
			continue
		}
		out[i].Amount += req.Amount
		if out[i].Name == "" {
			out[i].Name = req.Name
		}
		if out[i].Price == 0 {
			out[i].Price = req.Price
		}
	}
	return out
}
