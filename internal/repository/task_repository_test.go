package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/ncastrod/taskcash/internal/apperrors"
	"github.com/ncastrod/taskcash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_GetTask(t *testing.T) {
	r := NewTaskRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	task, err := r.GetTask(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "install app", task.Title)
	assert.Equal(t, int64(5000), task.Reward)
	assert.True(t, task.Active)

	_, err = r.GetTask(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestTaskRepo_GetActiveTasks(t *testing.T) {
	r := NewTaskRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	tasks, err := r.GetActiveTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.True(t, task.Active)
	}
}

func TestTaskRepo_Complete(t *testing.T) {
	r := NewTaskRepository(testDB)
	ctx := context.Background()

	t.Run("pays reward and increments counter", func(t *testing.T) {
		setupTestData(t, testDB)

		task, err := r.GetTask(ctx, 1)
		require.NoError(t, err)

		completion, balance, err := r.Complete(ctx, 2, task)
		require.NoError(t, err)
		assert.NotZero(t, completion.ID)
		assert.Equal(t, int64(5000), completion.Reward)
		assert.Equal(t, int64(5000), balance.Current)
		assert.Equal(t, int64(5000), balance.TotalEarnings)

		var tasksCompleted int64
		err = testDB.QueryRow(`SELECT tasks_completed FROM users WHERE id = 2`).Scan(&tasksCompleted)
		require.NoError(t, err)
		assert.Equal(t, int64(3), tasksCompleted)

		var txCount int
		err = testDB.QueryRow(`SELECT count(*) FROM transactions WHERE user_id = 2 AND type = 'earn' AND amount = 5000`).Scan(&txCount)
		require.NoError(t, err)
		assert.Equal(t, 1, txCount)
	})

	t.Run("second completion fails and pays nothing", func(t *testing.T) {
		setupTestData(t, testDB)

		task, err := r.GetTask(ctx, 1)
		require.NoError(t, err)

		_, _, err = r.Complete(ctx, 2, task)
		require.NoError(t, err)

		_, _, err = r.Complete(ctx, 2, task)
		assert.ErrorIs(t, err, apperrors.ErrTaskAlreadyCompleted)

		var balance int64
		err = testDB.QueryRow(`SELECT balance FROM users WHERE id = 2`).Scan(&balance)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), balance)

		var count int
		err = testDB.QueryRow(`SELECT count(*) FROM user_tasks WHERE user_id = 2 AND task_id = 1`).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("concurrent completions pay exactly once", func(t *testing.T) {
		setupTestData(t, testDB)

		task, err := r.GetTask(ctx, 1)
		require.NoError(t, err)

		const attempts = 5
		var wg sync.WaitGroup
		errs := make([]error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, _, errs[i] = r.Complete(ctx, 2, task)
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, apperrors.ErrTaskAlreadyCompleted)
			}
		}
		assert.Equal(t, 1, succeeded)

		var balance int64
		err = testDB.QueryRow(`SELECT balance FROM users WHERE id = 2`).Scan(&balance)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), balance)
	})
}

func TestTaskRepo_CompletionRacingWithdrawal(t *testing.T) {
	taskRepo := NewTaskRepository(testDB)
	balanceRepo := NewBalanceRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	task, err := taskRepo.GetTask(ctx, 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _, err := taskRepo.Complete(ctx, 3, task)
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		w := &models.Withdrawal{
			UserID: 3, Amount: 25000, Fee: 2500, NetAmount: 22500,
			Method: "paypal", AccountInfo: "user@example.com", Status: models.WithdrawalStatusPending,
		}
		assert.NoError(t, balanceRepo.CreateWithdrawal(ctx, w))
	}()
	wg.Wait()

	// 30000 + 5000 reward - 25000 withdrawal, regardless of ordering
	balance, err := balanceRepo.GetBalance(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), balance.Current)
	assert.GreaterOrEqual(t, balance.Current, int64(0))
}

func TestTaskRepo_GetUserCompletions(t *testing.T) {
	r := NewTaskRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	task, err := r.GetTask(ctx, 2)
	require.NoError(t, err)
	_, _, err = r.Complete(ctx, 2, task)
	require.NoError(t, err)

	completions, err := r.GetUserCompletions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, completions, 1)
	assert.Equal(t, int64(2), completions[0].TaskID)
	assert.Equal(t, int64(1000), completions[0].Reward)
}
