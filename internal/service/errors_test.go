package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("delete: %w", gorm.ErrForeignKeyViolated)))
	assert.True(t, isForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, isForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(nil))

	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: tags.normalized_name")))
	assert.False(t, isUniqueViolation(errors.New("disk full")))
}

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	id := uuid.New()
	err := fmt.Errorf("lookup: %w", notFound("tag", id))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrTagNotFound)
	assert.Equal(t, "lookup: tag "+id.String()+" not found", err.Error())
}
