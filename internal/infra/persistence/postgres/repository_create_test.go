package postgres

import (
	"context"
	"testing"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newFailingInsertDB returns a gorm session whose inserts fail with insertErr
// before any statement reaches a server. The pgx pool is opened lazily and
// never pinged.
func newFailingInsertDB(t *testing.T, insertErr error) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=127.0.0.1 port=1 user=storerating dbname=storerating sslmode=disable",
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	err = db.Callback().Create().Before("gorm:create").Register("storerating:fail_insert", func(tx *gorm.DB) {
		_ = tx.AddError(insertErr)
	})
	require.NoError(t, err)

	return db
}

func TestRatingRepository_Create_MapsConstraintErrors(t *testing.T) {
	tests := []struct {
		name     string
		pgErr    *pgconn.PgError
		want     error
		wantKind domainerrors.Kind
	}{
		{
			name:     "duplicate user and store",
			pgErr:    &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_ratings_user_store"},
			want:     domainerrors.ErrRatingAlreadyExists,
			wantKind: domainerrors.KindConflict,
		},
		{
			name:     "store deleted meanwhile",
			pgErr:    &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_ratings_store"},
			want:     domainerrors.ErrStoreNotFound,
			wantKind: domainerrors.KindNotFound,
		},
		{
			name:     "user deleted meanwhile",
			pgErr:    &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_ratings_user"},
			want:     domainerrors.ErrUserNotFound,
			wantKind: domainerrors.KindNotFound,
		},
		{
			name:     "value out of range",
			pgErr:    &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "chk_ratings_value"},
			wantKind: domainerrors.KindValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewRatingRepository(newFailingInsertDB(t, tt.pgErr))

			err := repo.Create(context.Background(), &entity.Rating{UserID: uuid.New(), StoreID: uuid.New(), Value: 4})
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			assert.Equal(t, tt.wantKind, domainerrors.KindOf(err))
		})
	}
}

func TestStoreRepository_Create_SecondStoreForOwnerConflicts(t *testing.T) {
	repo := NewStoreRepository(newFailingInsertDB(t, &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_stores_owner"}))

	err := repo.Create(context.Background(), &entity.Store{Name: "Corner Shop", OwnerID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrStoreAlreadyOwned)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestStoreRepository_Create_UnknownOwner(t *testing.T) {
	repo := NewStoreRepository(newFailingInsertDB(t, &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_stores_owner"}))

	err := repo.Create(context.Background(), &entity.Store{Name: "Corner Shop", OwnerID: uuid.New()})
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestUserRepository_Create_DuplicateEmailConflicts(t *testing.T) {
	repo := NewUserRepository(newFailingInsertDB(t, &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_users_email"}))

	err := repo.Create(context.Background(), &entity.User{Email: "dup@example.com", Role: entity.RoleUser})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestUserRepository_Create_OtherFailuresAreInternal(t *testing.T) {
	repo := NewUserRepository(newFailingInsertDB(t, &pgconn.PgError{Code: "57P01"}))

	err := repo.Create(context.Background(), &entity.User{Email: "x@example.com", Role: entity.RoleUser})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}
