package services

import (
	"sellerdesk/internal/domain"
	"sellerdesk/internal/repos"
)

// ReportService exposes the revenue rollups. Both reports only count orders
// in the COMPLETED state.
type ReportService struct {
	Orders *repos.OrderRepo
}

func NewReportService(orders *repos.OrderRepo) *ReportService {
	return &ReportService{Orders: orders}
}

func (s *ReportService) TopClients() ([]domain.TopClient, error) {
	return s.Orders.TopClients()
}

func (s *ReportService) TopSellers() ([]domain.TopSeller, error) {
	return s.Orders.TopSellers()
}
