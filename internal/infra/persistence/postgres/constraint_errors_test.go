package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}, "insert")
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_stores_owner"}
	check := &pgconn.PgError{Code: "23514"}
	notNull := &pgconn.PgError{Code: "23502"}
	plain := errors.New("connection reset")

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.Equal(t, "idx_users_email", constraintName(unique))
	assert.False(t, isUniqueConstraintViolation(fk))

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isNotNullConstraintViolation(notNull))

	assert.False(t, isUniqueConstraintViolation(plain))
	assert.False(t, isForeignKeyConstraintViolation(plain))
	assert.Empty(t, constraintName(plain))
}

func TestConstraintViolations_TranslatedGormErrors(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
}
