package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ncastrod/taskcash/internal/apperrors"
	"github.com/ncastrod/taskcash/internal/logger"
	"github.com/ncastrod/taskcash/internal/models"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

type TaskRepository interface {
	GetTask(ctx context.Context, taskID int64) (*models.Task, error)
	GetActiveTasks(ctx context.Context) ([]models.Task, error)
	Complete(ctx context.Context, userID int64, task *models.Task) (*models.UserTask, models.Balance, error)
	GetUserCompletions(ctx context.Context, userID int64) ([]models.UserTask, error)
}

type taskRepo struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepo{db: db}
}

func (r *taskRepo) GetTask(ctx context.Context, taskID int64) (*models.Task, error) {
	query := `SELECT id, title, description, provider, reward, active FROM tasks WHERE id = $1`
	var task models.Task
	err := r.db.QueryRowContext(ctx, query, taskID).Scan(
		&task.ID, &task.Title, &task.Description, &task.Provider, &task.Reward, &task.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepo) GetActiveTasks(ctx context.Context) ([]models.Task, error) {
	query := `SELECT id, title, description, provider, reward, active FROM tasks WHERE active ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Log.Error("failed to query tasks", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.Provider, &task.Reward, &task.Active); err != nil {
			logger.Log.Error("failed to scan task", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Complete records the completion, credits the reward and bumps the
// tasks_completed counter in a single transaction. The unique constraint
// on (user_id, task_id) is the authoritative double-completion guard;
// concurrent inserts lose with ErrTaskAlreadyCompleted and nothing is
// paid. A completion row is never committed without its credit.
func (r *taskRepo) Complete(ctx context.Context, userID int64, task *models.Task) (*models.UserTask, models.Balance, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, models.Balance{}, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	completion := &models.UserTask{
		UserID: userID,
		TaskID: task.ID,
		Reward: task.Reward,
		Status: "completed",
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO user_tasks (user_id, task_id, reward, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, completed_at
	`, userID, task.ID, task.Reward, completion.Status).Scan(&completion.ID, &completion.CompletedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			err = apperrors.ErrTaskAlreadyCompleted
			return nil, models.Balance{}, err
		}
		return nil, models.Balance{}, fmt.Errorf("failed to insert completion: %w", err)
	}

	description := fmt.Sprintf("reward for task %q", task.Title)
	balance, err := applyDelta(ctx, tx, userID, task.Reward, true, models.TransactionTypeEarn, description)
	if err != nil {
		return nil, models.Balance{}, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE users SET tasks_completed = tasks_completed + 1 WHERE id = $1
	`, userID)
	if err != nil {
		return nil, models.Balance{}, fmt.Errorf("failed to increment tasks_completed: %w", err)
	}

	message := fmt.Sprintf("you earned %d for completing %q", task.Reward, task.Title)
	if err = insertNotification(ctx, tx, userID, models.NotificationTypeReward, message); err != nil {
		return nil, models.Balance{}, fmt.Errorf("failed to insert notification: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, models.Balance{}, err
	}
	return completion, balance, nil
}

func (r *taskRepo) GetUserCompletions(ctx context.Context, userID int64) ([]models.UserTask, error) {
	query := `
		SELECT id, user_id, task_id, reward, status, completed_at
		FROM user_tasks WHERE user_id = $1 ORDER BY completed_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.Log.Error("failed to query completions", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var completions []models.UserTask
	for rows.Next() {
		var c models.UserTask
		if err := rows.Scan(&c.ID, &c.UserID, &c.TaskID, &c.Reward, &c.Status, &c.CompletedAt); err != nil {
			logger.Log.Error("failed to scan completion", zap.Error(err))
			return nil, err
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}
