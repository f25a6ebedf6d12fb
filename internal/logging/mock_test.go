package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_RecordsEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("loaded", Field{Key: FieldCount, Value: 2})
	mock.Error("failed")

	require.Len(t, mock.Entries, 2)
	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.Equal(t, "loaded", mock.Entries[0].Message)
	require.Len(t, mock.Entries[0].Fields, 1)
	assert.Equal(t, FieldCount, mock.Entries[0].Fields[0].Key)
	assert.Equal(t, "ERROR", mock.Entries[1].Level)
}

func TestMockLogger_HasMessage(t *testing.T) {
	mock := &MockLogger{}
	mock.Warn("something odd")

	assert.True(t, mock.HasMessage("something odd"))
	assert.False(t, mock.HasMessage("never logged"))
}

func TestMockLogger_WithErrorAttachesError(t *testing.T) {
	mock := &MockLogger{}
	cause := errors.New("boom")

	derived, ok := mock.WithError(cause).(*MockLogger)
	require.True(t, ok)
	derived.Error("operation failed")

	require.Len(t, derived.Entries, 1)
	assert.Equal(t, cause, derived.Entries[0].Error)
}
