package dashboard

import (
	"context"

	"github.com/agaman/jobboard-api/internal/domain"
)

type Service interface {
	Counts(ctx context.Context) (*domain.DashboardCounts, error)
	CountsForAffiliate(ctx context.Context, affiliateID string) (*domain.DashboardCounts, error)
}

type userCounter interface {
	Count(ctx context.Context, affiliateID string) (int, error)
}

type counter interface {
	Count(ctx context.Context) (int, error)
}

type service struct {
	users      userCounter
	affiliates counter
	jobs       counter
	promos     counter
	packages   counter
	orders     counter
}

type ServiceDeps struct {
	Users      userCounter
	Affiliates counter
	Jobs       counter
	Promos     counter
	Packages   counter
	Orders     counter
}

func NewService(deps ServiceDeps) Service {
	return &service{
		users:      deps.Users,
		affiliates: deps.Affiliates,
		jobs:       deps.Jobs,
		promos:     deps.Promos,
		packages:   deps.Packages,
		orders:     deps.Orders,
	}
}

func (s *service) Counts(ctx context.Context) (*domain.DashboardCounts, error) {
	return s.counts(ctx, "")
}

// CountsForAffiliate scopes the user count to accounts recruited through the
// given affiliate; the remaining counts stay global.
func (s *service) CountsForAffiliate(ctx context.Context, affiliateID string) (*domain.DashboardCounts, error) {
	return s.counts(ctx, affiliateID)
}

func (s *service) counts(ctx context.Context, affiliateID string) (*domain.DashboardCounts, error) {
	var c domain.DashboardCounts
	var err error
	if c.Users, err = s.users.Count(ctx, affiliateID); err != nil {
		return nil, err
	}
	if c.Affiliates, err = s.affiliates.Count(ctx); err != nil {
		return nil, err
	}
	if c.Jobs, err = s.jobs.Count(ctx); err != nil {
		return nil, err
	}
	if c.Promos, err = s.promos.Count(ctx); err != nil {
		return nil, err
	}
	if c.Packages, err = s.packages.Count(ctx); err != nil {
		return nil, err
	}
	if c.Orders, err = s.orders.Count(ctx); err != nil {
		return nil, err
	}
	return &c, nil
}
