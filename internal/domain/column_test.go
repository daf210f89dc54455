package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColumn(t *testing.T) {
	column, err := NewColumn("In Progress")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, column.ID)
	assert.Equal(t, "In Progress", column.Name)

	column, err = NewColumn("")
	assert.ErrorIs(t, err, ErrEmptyColumnName)
	assert.Nil(t, column)
}

func TestColumn_Rename(t *testing.T) {
	column, err := NewColumn("To Do")
	require.NoError(t, err)

	require.NoError(t, column.Rename("Backlog"))
	assert.Equal(t, "Backlog", column.Name)

	assert.ErrorIs(t, column.Rename(""), ErrEmptyColumnName)
	assert.Equal(t, "Backlog", column.Name)
}
