package advice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ahmedmaged64/LifeQuest/internal/domain/task"
)

// Fallback is served whenever generation is unavailable or fails. The
// coach is a best-effort extra; it never surfaces an error.
const Fallback = "Focus on one task at a time, starting with the most important. Small consistent wins beat a perfect plan."

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// Generator produces advisory text from a prompt. A disabled generator
// is never called.
type Generator interface {
	Enabled() bool
	Complete(ctx context.Context, prompt string) (string, error)
}

// Advice is the coach's output for one day.
type Advice struct {
	Date      string `json:"date"`
	Text      string `json:"text"`
	Generated bool   `json:"generated"`
}

type Service interface {
	DailyAdvice(ctx context.Context, date string) (*Advice, error)
}

type service struct {
	tasks     task.TaskRepository
	generator Generator
	logger    *logrus.Logger
}

func NewService(tasks task.TaskRepository, generator Generator, logger *logrus.Logger) Service {
	return &service{tasks: tasks, generator: generator, logger: logger}
}

func (s *service) DailyAdvice(ctx context.Context, date string) (*Advice, error) {
	if date == "" {
		date = time.Now().Format(task.DateLayout)
	}
	if _, err := time.Parse(task.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	dayTasks, err := s.tasks.List(ctx, task.TaskFilter{Date: &date})
	if err != nil {
		return nil, err
	}

	if !s.generator.Enabled() {
		s.logger.WithField("date", date).Info("advice generation disabled, serving fallback")
		return &Advice{Date: date, Text: Fallback}, nil
	}

	text, err := s.generator.Complete(ctx, buildPrompt(date, dayTasks))
	if err != nil {
		s.logger.WithError(err).WithField("date", date).Warn("advice generation failed, serving fallback")
		return &Advice{Date: date, Text: Fallback}, nil
	}
	if strings.TrimSpace(text) == "" {
		s.logger.WithField("date", date).Warn("advice generation returned empty text, serving fallback")
		return &Advice{Date: date, Text: Fallback}, nil
	}

	return &Advice{Date: date, Text: text, Generated: true}, nil
}

func buildPrompt(date string, tasks []task.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a friendly productivity coach. My schedule for %s:\n", date)

	if len(tasks) == 0 {
		b.WriteString("- nothing scheduled\n")
	}
	for i := range tasks {
		t := &tasks[i]
		span := "all day"
		if !t.IsAllDay && t.StartTime != "" {
			span = t.StartTime
			if t.EndTime != "" {
				span = t.StartTime + "-" + t.EndTime
			}
		}
		fmt.Fprintf(&b, "- [%s] %s (%s priority, %s)\n", span, t.Title, t.Priority, t.Status)
	}

	b.WriteString("In two or three sentences, tell me how to make the most of this day.")
	return b.String()
}
