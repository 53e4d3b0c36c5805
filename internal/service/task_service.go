package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"task-manager/internal/deadline"
	"task-manager/internal/model"
)

// TaskStore is the persistence the service needs. It is satisfied by
// *repository.TaskRepository.
type TaskStore interface {
	Initialize(ctx context.Context) error
	Create(ctx context.Context, task *model.Task) error
	List(ctx context.Context) ([]model.Task, error)
	Delete(ctx context.Context, taskID uint) error
}

// TaskInput represents data required to create a task, as typed in the form.
type TaskInput struct {
	Title       string
	Description string
	Deadline    string
}

// TaskService validates form input and delegates to the store.
type TaskService struct {
	store    TaskStore
	location *time.Location
	logger   *slog.Logger
}

func NewTaskService(store TaskStore, location *time.Location, logger *slog.Logger) *TaskService {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{store: store, location: location, logger: logger}
}

// Location is the zone deadlines are interpreted in.
func (s *TaskService) Location() *time.Location {
	return s.location
}

func (s *TaskService) Initialize(ctx context.Context) error {
	return s.store.Initialize(ctx)
}

// CreateTask checks the deadline format and stores the task. A
// *deadline.ValidationError means nothing was written. The title is
// passed through untouched; the schema rejects an empty one.
func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	due, err := deadline.Parse(input.Deadline, s.location)
	if err != nil {
		return nil, err
	}

	task := model.Task{
		Title:    input.Title,
		Deadline: deadline.Format(due),
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		task.Description = &input.Description
	}

	if err := s.store.Create(ctx, &task); err != nil {
		return nil, err
	}

	s.logger.Info("task created", "id", task.ID, "deadline", task.Deadline)
	return &task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.store.List(ctx)
}

// DeleteTask removes a task. Deleting an unknown id is not an error.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint) error {
	if err := s.store.Delete(ctx, taskID); err != nil {
		return err
	}
	s.logger.Info("task deleted", "id", taskID)
	return nil
}
