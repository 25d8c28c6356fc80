package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/ncastrod/taskcash/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferralRepo_Link(t *testing.T) {
	r := NewReferralRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	require.NoError(t, r.Link(ctx, 1, 3))

	ref, err := r.GetByReferredID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ref.ReferrerID)
	assert.Equal(t, int64(3), ref.ReferredID)
	assert.Zero(t, ref.BonusEarned)

	var count int64
	err = testDB.QueryRow(`SELECT referrals_count FROM users WHERE id = 1`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestReferralRepo_GetByReferredID(t *testing.T) {
	r := NewReferralRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	ref, err := r.GetByReferredID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ref.ID)
	assert.Equal(t, int64(2), ref.TasksCompleted)

	_, err = r.GetByReferredID(ctx, 3)
	assert.ErrorIs(t, err, apperrors.ErrReferralNotFound)
}

func TestReferralRepo_UpdateSnapshot(t *testing.T) {
	r := NewReferralRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	require.NoError(t, r.UpdateSnapshot(ctx, 1, 5))

	ref, err := r.GetByReferredID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), ref.TasksCompleted)

	// a stale evaluation must not move the snapshot backwards
	require.NoError(t, r.UpdateSnapshot(ctx, 1, 3))

	ref, err = r.GetByReferredID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), ref.TasksCompleted)
}

func TestReferralRepo_AwardBonus(t *testing.T) {
	r := NewReferralRepository(testDB)
	ctx := context.Background()

	t.Run("pays referrer and advances snapshot", func(t *testing.T) {
		setupTestData(t, testDB)

		ref, err := r.GetByReferredID(ctx, 2)
		require.NoError(t, err)

		awarded, err := r.AwardBonus(ctx, ref, 5000, 3)
		require.NoError(t, err)
		assert.True(t, awarded)

		ref, err = r.GetByReferredID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), ref.BonusEarned)
		assert.Equal(t, int64(3), ref.TasksCompleted)

		var balance, totalEarnings int64
		err = testDB.QueryRow(`SELECT balance, total_earnings FROM users WHERE id = 1`).Scan(&balance, &totalEarnings)
		require.NoError(t, err)
		assert.Equal(t, int64(105000), balance)
		assert.Equal(t, int64(105000), totalEarnings)

		var txCount int
		err = testDB.QueryRow(`SELECT count(*) FROM transactions WHERE user_id = 1 AND type = 'bonus' AND amount = 5000`).Scan(&txCount)
		require.NoError(t, err)
		assert.Equal(t, 1, txCount)

		var notifCount int
		err = testDB.QueryRow(`SELECT count(*) FROM notifications WHERE user_id = 1 AND NOT sent`).Scan(&notifCount)
		require.NoError(t, err)
		assert.Equal(t, 1, notifCount)
	})

	t.Run("does not pay past a current snapshot", func(t *testing.T) {
		setupTestData(t, testDB)

		ref, err := r.GetByReferredID(ctx, 2)
		require.NoError(t, err)

		awarded, err := r.AwardBonus(ctx, ref, 5000, 3)
		require.NoError(t, err)
		require.True(t, awarded)

		awarded, err = r.AwardBonus(ctx, ref, 5000, 3)
		require.NoError(t, err)
		assert.False(t, awarded)

		var balance int64
		err = testDB.QueryRow(`SELECT balance FROM users WHERE id = 1`).Scan(&balance)
		require.NoError(t, err)
		assert.Equal(t, int64(105000), balance)
	})

	t.Run("concurrent evaluations pay exactly once", func(t *testing.T) {
		setupTestData(t, testDB)

		ref, err := r.GetByReferredID(ctx, 2)
		require.NoError(t, err)

		const attempts = 5
		var wg sync.WaitGroup
		results := make([]bool, attempts)
		errs := make([]error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = r.AwardBonus(ctx, ref, 5000, 3)
			}(i)
		}
		wg.Wait()

		awarded := 0
		for i := range results {
			require.NoError(t, errs[i])
			if results[i] {
				awarded++
			}
		}
		assert.Equal(t, 1, awarded)

		var balance int64
		err = testDB.QueryRow(`SELECT balance FROM users WHERE id = 1`).Scan(&balance)
		require.NoError(t, err)
		assert.Equal(t, int64(105000), balance)
	})
}
