package stats

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ahmedmaged64/LifeQuest/internal/domain/habits"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/task"
)

type Service interface {
	GetStats(ctx context.Context) (*UserStats, error)
}

type service struct {
	tasks  task.TaskRepository
	habits habits.Repository
	logger *zap.Logger
}

func NewService(tasks task.TaskRepository, habits habits.Repository, logger *zap.Logger) Service {
	return &service{tasks: tasks, habits: habits, logger: logger}
}

func (s *service) GetStats(ctx context.Context) (*UserStats, error) {
	taskList, err := s.tasks.List(ctx, task.TaskFilter{})
	if err != nil {
		return nil, err
	}
	habitList, err := s.habits.FindAll(ctx, habits.HabitFilter{})
	if err != nil {
		return nil, err
	}

	result := Compute(taskList, habitList, time.Now().Format(task.DateLayout))
	return &result, nil
}
