package habits

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	CreateHabit(ctx context.Context, input CreateHabitInput) (*Habit, error)
	GetHabit(ctx context.Context, id uuid.UUID) (*Habit, error)
	ListHabits(ctx context.Context, filter HabitFilter) ([]Habit, error)
	UpdateHabit(ctx context.Context, id uuid.UUID, input UpdateHabitInput) (*Habit, error)
	DeleteHabit(ctx context.Context, id uuid.UUID) error
	// ToggleHistory flips the done flag for the given date. An empty
	// date means today.
	ToggleHistory(ctx context.Context, id uuid.UUID, date string) (*Habit, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func (s *service) CreateHabit(ctx context.Context, input CreateHabitInput) (*Habit, error) {
	if input.Name == "" {
		return nil, ErrInvalidInput
	}

	habit := &Habit{
		ID:        uuid.New(),
		Name:      input.Name,
		Icon:      input.Icon,
		Category:  input.Category,
		CreatedAt: time.Now().Format(DateLayout),
		History:   make(map[string]bool),
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *service) GetHabit(ctx context.Context, id uuid.UUID) (*Habit, error) {
	habit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}
	return habit, nil
}

func (s *service) ListHabits(ctx context.Context, filter HabitFilter) ([]Habit, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *service) UpdateHabit(ctx context.Context, id uuid.UUID, input UpdateHabitInput) (*Habit, error) {
	habit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}

	if input.Name != nil {
		habit.Name = *input.Name
	}
	if input.Icon != nil {
		habit.Icon = *input.Icon
	}
	if input.Category != nil {
		habit.Category = *input.Category
	}

	if err := habit.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *service) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	habit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if habit == nil {
		return ErrHabitNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ToggleHistory(ctx context.Context, id uuid.UUID, date string) (*Habit, error) {
	if date == "" {
		date = time.Now().Format(DateLayout)
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	habit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}

	done := habit.ToggleDay(date)
	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	s.logger.Info("Toggled habit history",
		zap.String("habit_id", habit.ID.String()),
		zap.String("date", date),
		zap.Bool("done", done))

	return habit, nil
}
