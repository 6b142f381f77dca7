package services

import (
	"database/sql"

	"sellerdesk/internal/domain"
	"sellerdesk/internal/repos"

	"github.com/google/uuid"
)

type OrderService struct {
	Orders  *repos.OrderRepo
	Clients *repos.ClientRepo
	Inv     *InventoryService
}

func NewOrderService(orders *repos.OrderRepo, clients *repos.ClientRepo, inv *InventoryService) *OrderService {
	return &OrderService{Orders: orders, Clients: clients, Inv: inv}
}

// OrderInput carries the writable order fields. Total is a pointer so an
// update can distinguish "leave the total alone" from "set it to zero".
type OrderInput struct {
	Lines    []LineRequest
	Total    *float64
	ClientID string
	State    string
}

// Create places a new order: client must exist, the caller must own the
// client, and every line must reconcile against stock. The order starts
// PENDING and is owned by the caller.
func (s *OrderService) Create(in OrderInput, caller *domain.Claims) (domain.Order, error) {
	if caller == nil {
		return domain.Order{}, ErrNotLoggedIn
	}

	cl, err := s.Clients.Get(in.ClientID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Order{}, notFound("client")
		}
		return domain.Order{}, err
	}
	if err := Authorize(cl.SellerID, caller.ID); err != nil {
		return domain.Order{}, err
	}

	lines, err := s.Inv.Reconcile(in.Lines)
	if err != nil {
		return domain.Order{}, err
	}

	total := 0.0
	if in.Total != nil {
		total = *in.Total
	}
	o := domain.Order{
		ID:       uuid.NewString(),
		Lines:    lines,
		Total:    total,
		ClientID: cl.ID,
		SellerID: caller.ID,
		State:    domain.StatePending,
	}
	if err := s.Orders.Create(o); err != nil {
		return domain.Order{}, err
	}
	return s.Orders.Get(o.ID)
}

// Update applies field-level changes to an existing order. When new lines are
// supplied they are reconciled against stock as a fresh reservation; stock
// held by the order's previous lines is not restored.
func (s *OrderService) Update(id string, in OrderInput, caller *domain.Claims) (domain.Order, error) {
	if caller == nil {
		return domain.Order{}, ErrNotLoggedIn
	}

	o, err := s.Orders.Get(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Order{}, notFound("order")
		}
		return domain.Order{}, err
	}
	if err := Authorize(o.SellerID, caller.ID); err != nil {
		return domain.Order{}, err
	}

	clientID := in.ClientID
	if clientID == "" {
		clientID = o.ClientID
	}
	cl, err := s.Clients.Get(clientID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Order{}, notFound("client")
		}
		return domain.Order{}, err
	}
	if err := Authorize(cl.SellerID, caller.ID); err != nil {
		return domain.Order{}, err
	}

	replaceLines := len(in.Lines) > 0
	if replaceLines {
		lines, err := s.Inv.Reconcile(in.Lines)
		if err != nil {
			return domain.Order{}, err
		}
		o.Lines = lines
	}
	o.ClientID = cl.ID
	if in.Total != nil {
		o.Total = *in.Total
	}
	if in.State != "" {
		if !domain.ValidState(in.State) {
			return domain.Order{}, invalidInput("unknown order state: " + in.State)
		}
		o.State = in.State
	}

	if err := s.Orders.Update(o, replaceLines); err != nil {
		return domain.Order{}, err
	}
	return s.Orders.Get(o.ID)
}

// Get resolves a single order and enforces ownership.
func (s *OrderService) Get(id string, caller *domain.Claims) (domain.Order, error) {
	if caller == nil {
		return domain.Order{}, ErrNotLoggedIn
	}
	o, err := s.Orders.Get(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Order{}, notFound("order")
		}
		return domain.Order{}, err
	}
	if err := Authorize(o.SellerID, caller.ID); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

// Delete removes an order owned by the caller and returns the deleted record.
func (s *OrderService) Delete(id string, caller *domain.Claims) (domain.Order, error) {
	o, err := s.Get(id, caller)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.Orders.Delete(id); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.Orders.List()
}

func (s *OrderService) ListSeller(caller *domain.Claims) ([]domain.Order, error) {
	if caller == nil {
		return nil, ErrNotLoggedIn
	}
	return s.Orders.ListBySeller(caller.ID)
}

func (s *OrderService) ListSellerState(state string, caller *domain.Claims) ([]domain.Order, error) {
	if caller == nil {
		return nil, ErrNotLoggedIn
	}
	if !domain.ValidState(state) {
		return nil, invalidInput("unknown order state: " + state)
	}
	return s.Orders.ListBySellerState(caller.ID, state)
}
