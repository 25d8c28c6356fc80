package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepo_GetUnsentAndMarkSent(t *testing.T) {
	r := NewNotificationRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	_, err := testDB.Exec(`
		INSERT INTO notifications (user_id, type, message, sent) VALUES
		(1, 'reward', 'first', FALSE),
		(1, 'bonus', 'second', FALSE),
		(2, 'reward', 'already delivered', TRUE)
	`)
	require.NoError(t, err)

	pending, err := r.GetUnsent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	messages := []string{pending[0].Message, pending[1].Message}
	assert.ElementsMatch(t, []string{"first", "second"}, messages)

	require.NoError(t, r.MarkSent(ctx, []int64{pending[0].ID, pending[1].ID}))

	pending, err = r.GetUnsent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestNotificationRepo_MarkSentEmpty(t *testing.T) {
	r := NewNotificationRepository(testDB)

	assert.NoError(t, r.MarkSent(context.Background(), nil))
}
