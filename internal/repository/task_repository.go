package repository

import (
	"context"

	"gorm.io/gorm"

	"task-manager/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Initialize creates the tasks table if it does not exist. Safe to
// call on every startup.
func (r *TaskRepository) Initialize(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&model.Task{}); err != nil {
		return &StorageError{Op: "initialize", Err: err}
	}
	return nil
}

// Create inserts task and sets its ID. The deadline format is not checked.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return &StorageError{Op: "create", Err: err}
	}
	return nil
}

// List returns every task in id order.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return tasks, nil
}

// Delete removes the task with the given id. Missing ids are not an error.
func (r *TaskRepository) Delete(ctx context.Context, taskID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", taskID).Delete(&model.Task{}).Error; err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}
