package service

import (
	"context"

	"github.com/deppfellow/jobly/internal/model"
)

type CompanyService struct {
	store CompanyStore
}

func NewCompanyService(store CompanyStore) *CompanyService {
	return &CompanyService{store: store}
}

func (s *CompanyService) Create(ctx context.Context, c model.Company) (*model.Company, error) {
	return s.store.Create(ctx, c)
}

func (s *CompanyService) FindAll(ctx context.Context, f model.CompanyFilter) ([]model.Company, error) {
	companies, err := s.store.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []model.Company{}
	}
	return companies, nil
}

func (s *CompanyService) Get(ctx context.Context, handle string) (*model.CompanyDetail, error) {
	company, err := s.store.Get(ctx, handle)
	if err != nil {
		return nil, err
	}
	if company.Jobs == nil {
		company.Jobs = []model.CompanyJob{}
	}
	return company, nil
}

func (s *CompanyService) Update(ctx context.Context, handle string, u model.CompanyUpdate) (*model.Company, error) {
	return s.store.Update(ctx, handle, u)
}

func (s *CompanyService) Remove(ctx context.Context, handle string) error {
	return s.store.Remove(ctx, handle)
}
