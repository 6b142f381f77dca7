package services

import (
	"database/sql"

	"sellerdesk/internal/domain"
	"sellerdesk/internal/repos"

	"github.com/google/uuid"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

type ProductInput struct {
	Name  string
	Price float64
	Stock int
}

func (s *CatalogService) Create(in ProductInput) (domain.Product, error) {
	if in.Stock < 0 {
		return domain.Product{}, invalidInput("stock must not be negative")
	}
	p := domain.Product{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Price: in.Price,
		Stock: in.Stock,
	}
	if err := s.Prods.Create(p); err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Get(p.ID)
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Product{}, notFound("product")
		}
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) Update(id string, in ProductInput) (domain.Product, error) {
	p, err := s.Get(id)
	if err != nil {
		return domain.Product{}, err
	}
	if in.Stock < 0 {
		return domain.Product{}, invalidInput("stock must not be negative")
	}
	p.Name = in.Name
	p.Price = in.Price
	p.Stock = in.Stock
	if err := s.Prods.Update(p); err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Get(id)
}

func (s *CatalogService) Delete(id string) (domain.Product, error) {
	p, err := s.Get(id)
	if err != nil {
		return domain.Product{}, err
	}
	if err := s.Prods.Delete(id); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) List() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) Search(q string) ([]domain.Product, error) {
	return s.Prods.Search(q)
}
