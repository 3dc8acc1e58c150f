package reflection

import (
	"context"
	"sort"
	"time"
)

type Service interface {
	GetReflection(ctx context.Context, date string) (*Reflection, error)
	ListReflections(ctx context.Context) ([]Reflection, error)
	UpsertReflection(ctx context.Context, date string, input UpsertReflectionInput) (*Reflection, error)
}

type UpsertReflectionInput struct {
	Well        string `json:"well"`
	Improvement string `json:"improvement"`
	Journal     string `json:"journal"`
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetReflection(ctx context.Context, date string) (*Reflection, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	r, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrReflectionNotFound
	}
	return r, nil
}

func (s *service) ListReflections(ctx context.Context) ([]Reflection, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
	return items, nil
}

func (s *service) UpsertReflection(ctx context.Context, date string, input UpsertReflectionInput) (*Reflection, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	r := &Reflection{
		Date:        date,
		Well:        input.Well,
		Improvement: input.Improvement,
		Journal:     input.Journal,
	}
	if err := s.repo.Upsert(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
