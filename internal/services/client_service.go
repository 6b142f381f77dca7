package services

import (
	"database/sql"
	"strings"

	"sellerdesk/internal/domain"
	"sellerdesk/internal/repos"

	"github.com/google/uuid"
)

type ClientService struct {
	Clients *repos.ClientRepo
}

func NewClientService(clients *repos.ClientRepo) *ClientService {
	return &ClientService{Clients: clients}
}

type ClientInput struct {
	Name     string
	LastName string
	Business string
	Email    string
	Phone    string
}

// Create registers a client owned by the caller. Client emails are globally
// unique across all sellers.
func (s *ClientService) Create(in ClientInput, caller *domain.Claims) (domain.Client, error) {
	if caller == nil {
		return domain.Client{}, ErrNotLoggedIn
	}
	taken, err := s.Clients.EmailTaken(in.Email)
	if err != nil {
		return domain.Client{}, err
	}
	if taken {
		return domain.Client{}, alreadyExists("client")
	}

	c := domain.Client{
		ID:       uuid.NewString(),
		Name:     in.Name,
		LastName: in.LastName,
		Business: in.Business,
		Email:    in.Email,
		Phone:    in.Phone,
		SellerID: caller.ID,
	}
	if err := s.Clients.Create(c); err != nil {
		return domain.Client{}, err
	}
	return s.Clients.Get(c.ID)
}

// Lookup fetches a client without an ownership check. It backs the client
// field on order payloads, where access was already authorized at the order
// level.
func (s *ClientService) Lookup(id string) (domain.Client, error) {
	c, err := s.Clients.Get(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Client{}, notFound("client")
		}
		return domain.Client{}, err
	}
	return c, nil
}

// Get resolves a single client and enforces ownership.
func (s *ClientService) Get(id string, caller *domain.Claims) (domain.Client, error) {
	if caller == nil {
		return domain.Client{}, ErrNotLoggedIn
	}
	c, err := s.Clients.Get(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Client{}, notFound("client")
		}
		return domain.Client{}, err
	}
	if err := Authorize(c.SellerID, caller.ID); err != nil {
		return domain.Client{}, err
	}
	return c, nil
}

func (s *ClientService) Update(id string, in ClientInput, caller *domain.Claims) (domain.Client, error) {
	c, err := s.Get(id, caller)
	if err != nil {
		return domain.Client{}, err
	}
	if !strings.EqualFold(in.Email, c.Email) {
		taken, err := s.Clients.EmailTaken(in.Email)
		if err != nil {
			return domain.Client{}, err
		}
		if taken {
			return domain.Client{}, alreadyExists("client")
		}
	}
	c.Name = in.Name
	c.LastName = in.LastName
	c.Business = in.Business
	c.Email = in.Email
	c.Phone = in.Phone
	if err := s.Clients.Update(c); err != nil {
		return domain.Client{}, err
	}
	return s.Clients.Get(id)
}

// Delete removes a client owned by the caller and returns the deleted record.
func (s *ClientService) Delete(id string, caller *domain.Claims) (domain.Client, error) {
	c, err := s.Get(id, caller)
	if err != nil {
		return domain.Client{}, err
	}
	if err := s.Clients.Delete(id); err != nil {
		return domain.Client{}, err
	}
	return c, nil
}

func (s *ClientService) List() ([]domain.Client, error) {
	return s.Clients.List()
}

func (s *ClientService) ListSeller(caller *domain.Claims) ([]domain.Client, error) {
	if caller == nil {
		return nil, ErrNotLoggedIn
	}
	return s.Clients.ListBySeller(caller.ID)
}
