package service

import (
	"context"

	"github.com/deppfellow/jobly/internal/model"
)

type JobService struct {
	store JobStore
}

func NewJobService(store JobStore) *JobService {
	return &JobService{store: store}
}

func (s *JobService) Create(ctx context.Context, j model.NewJob) (*model.Job, error) {
	return s.store.Create(ctx, j)
}

func (s *JobService) FindAll(ctx context.Context, f model.JobFilter) ([]model.JobListing, error) {
	jobs, err := s.store.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []model.JobListing{}
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id int) (*model.JobDetail, error) {
	return s.store.Get(ctx, id)
}

func (s *JobService) Update(ctx context.Context, id int, u model.JobUpdate) (*model.Job, error) {
	return s.store.Update(ctx, id, u)
}

func (s *JobService) Remove(ctx context.Context, id int) error {
	return s.store.Remove(ctx, id)
}
