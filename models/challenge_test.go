package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddParticipant(t *testing.T) {
	now := time.Now()
	userID := primitive.NewObjectID()
	challenge := Challenge{Target: 10}

	participant, err := challenge.AddParticipant(userID, now)
	require.NoError(t, err)
	assert.Equal(t, userID, participant.User)
	assert.Equal(t, float64(0), participant.Progress)
	assert.False(t, participant.Completed)
	assert.Len(t, challenge.Participants, 1)

	_, err = challenge.AddParticipant(userID, now)
	assert.ErrorIs(t, err, ErrAlreadyJoined)
	assert.Len(t, challenge.Participants, 1)
}

func TestApplyProgressClampsToTarget(t *testing.T) {
	userID := primitive.NewObjectID()
	challenge := Challenge{Target: 10}
	challenge.AddParticipant(userID, time.Now())

	participant, completed, err := challenge.ApplyProgress(userID, 15)
	require.NoError(t, err)
	assert.Equal(t, float64(10), participant.Progress)
	assert.True(t, participant.Completed)
	assert.True(t, completed)
}

func TestApplyProgressCompletionFiresOnce(t *testing.T) {
	userID := primitive.NewObjectID()
	challenge := Challenge{Target: 7}
	challenge.AddParticipant(userID, time.Now())

	_, completed, err := challenge.ApplyProgress(userID, 3)
	require.NoError(t, err)
	assert.False(t, completed)

	_, completed, err = challenge.ApplyProgress(userID, 7)
	require.NoError(t, err)
	assert.True(t, completed)

	// resubmitting at the target must not fire a second completion
	_, completed, err = challenge.ApplyProgress(userID, 7)
	require.NoError(t, err)
	assert.False(t, completed)
}

func TestApplyProgressErrors(t *testing.T) {
	userID := primitive.NewObjectID()
	challenge := Challenge{Target: 10}

	_, _, err := challenge.ApplyProgress(userID, 5)
	assert.ErrorIs(t, err, ErrNotJoined)

	challenge.AddParticipant(userID, time.Now())
	_, _, err = challenge.ApplyProgress(userID, -1)
	assert.ErrorIs(t, err, ErrInvalidProgress)
}

func TestFindParticipant(t *testing.T) {
	userID := primitive.NewObjectID()
	other := primitive.NewObjectID()
	challenge := Challenge{Target: 5}
	challenge.AddParticipant(userID, time.Now())

	assert.NotNil(t, challenge.FindParticipant(userID))
	assert.Nil(t, challenge.FindParticipant(other))
}
