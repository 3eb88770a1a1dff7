package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/caronvincent/todo-burbanie/internal/core/domain"
	"github.com/caronvincent/todo-burbanie/internal/core/ports"
)

const (
	insertTaskQuery = `
INSERT INTO tasks (name, description, deadline, category_id, author)
VALUES (?, ?, ?, ?, ?)
`
	selectTaskByIDQuery = `
SELECT id, name, description, deadline, category_id, author
FROM tasks
WHERE id = ?
`
	updateTaskQuery = `
UPDATE tasks
SET name = ?, description = ?, deadline = ?, category_id = ?
WHERE id = ?
`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Deadline    time.Time      `db:"deadline"`
	CategoryID  uint64         `db:"category_id"`
	Author      string         `db:"author"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	task.Deadline = task.Deadline.UTC()

	result, err := r.db.ExecContext(
		ctx,
		insertTaskQuery,
		task.Name,
		nullString(task.Description),
		task.Deadline,
		task.CategoryID,
		task.Author,
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}
	task.ID = uint64(id)

	return task, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, selectTaskByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, fmt.Errorf("%w: %d", domain.ErrTaskNotFound, id)
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

// Update never writes the author column.
func (r *TaskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	task.Deadline = task.Deadline.UTC()

	_, err := r.db.ExecContext(
		ctx,
		updateTaskQuery,
		task.Name,
		nullString(task.Description),
		task.Deadline,
		task.CategoryID,
		task.ID,
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task %d: %w", task.ID, err)
	}

	return task, nil
}

// Delete does not report missing rows.
func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	if _, err := r.db.ExecContext(ctx, deleteTaskQuery, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

func (r *TaskRepository) Search(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query, args, err := buildTaskSearch(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build task search: %w", err)
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:         row.ID,
		Name:       row.Name,
		Deadline:   row.Deadline.UTC(),
		CategoryID: row.CategoryID,
		Author:     row.Author,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	return task
}
