package service

import (
	"context"
	"time"

	"github.com/sangkips/billdesk-api/internal/domain/billing"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

// RecentBillsLimit is the number of bills listed on the dashboard
const RecentBillsLimit = 5

// DashboardService provides the business overview
type DashboardService struct {
	billRepo   repository.BillRepository
	clientRepo repository.ClientRepository
	now        func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(billRepo repository.BillRepository, clientRepo repository.ClientRepository) *DashboardService {
	return &DashboardService{
		billRepo:   billRepo,
		clientRepo: clientRepo,
		now:        time.Now,
	}
}

// Dashboard is the overview shown after login
type Dashboard struct {
	Summary     billing.DashboardSummary `json:"summary"`
	RecentBills []BillView               `json:"recent_bills"`
}

// GetDashboard fetches bills and clients concurrently and rolls them up.
// If either fetch fails the whole dashboard fails.
func (s *DashboardService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var (
		bills   []entity.Bill
		clients []entity.Client
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bills, err = s.billRepo.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		clients, err = s.clientRepo.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeError(err)
	}

	now := s.now()
	recent := billing.RecentBills(bills, RecentBillsLimit)

	return &Dashboard{
		Summary:     billing.SummarizeDashboard(bills, clients, now),
		RecentBills: newBillViews(recent, billing.ClientNames(clients), now),
	}, nil
}
