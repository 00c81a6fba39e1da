package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteDedupOperationSkipsWhenExists(t *testing.T) {
	operationCalled := false

	created, err := ExecuteDedupOperation(
		func() (bool, error) { return true, nil },
		func() error {
			operationCalled = true
			return nil
		},
	)

	require.NoError(t, err)
	assert.False(t, created)
	assert.False(t, operationCalled)
}

func TestExecuteDedupOperationCreatesWhenAbsent(t *testing.T) {
	operationCalled := false

	created, err := ExecuteDedupOperation(
		func() (bool, error) { return false, nil },
		func() error {
			operationCalled = true
			return nil
		},
	)

	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, operationCalled)
}

func TestExecuteDedupOperationPropagatesErrors(t *testing.T) {
	checkErr := errors.New("check failed")
	_, err := ExecuteDedupOperation(
		func() (bool, error) { return false, checkErr },
		func() error { return nil },
	)
	assert.Equal(t, checkErr, err)

	opErr := errors.New("operation failed")
	created, err := ExecuteDedupOperation(
		func() (bool, error) { return false, nil },
		func() error { return opErr },
	)
	assert.False(t, created)
	assert.Equal(t, opErr, err)
}
