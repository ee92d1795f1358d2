package policy

import (
	"context"
	"testing"
	"time"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	mockRepo "storerating/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type evaluatorFixtures struct {
	evaluator *Evaluator
	storeRepo *mockRepo.MockStoreRepository
}

func createTestEvaluator(t *testing.T) evaluatorFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)

	return evaluatorFixtures{
		evaluator: NewEvaluator(storeRepo),
		storeRepo: storeRepo,
	}
}

func actorWithRole(role entity.Role) *Actor {
	return &Actor{ID: uuid.New(), Email: string(role) + "@example.com", Role: role}
}

func TestEvaluator_PublicBrowse_AllowsAnonymous(t *testing.T) {
	fx := createTestEvaluator(t)

	decision, err := fx.evaluator.Authorize(context.Background(), nil, OpStoreBrowse, Target{})
	require.NoError(t, err)
	assert.Equal(t, PublicFields, decision.Fields)
}

func TestEvaluator_AnonymousOnGuardedOperation(t *testing.T) {
	ops := []Operation{
		OpAdminManage, OpOwnerDashboard, OpRatingSubmit, OpRatingViewOwn,
		OpRatingMutate, OpStoreManage, OpMyRatingForStore, OpProfile,
	}

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			fx := createTestEvaluator(t)

			_, err := fx.evaluator.Authorize(context.Background(), nil, op, Target{})
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

func TestEvaluator_AdminManage(t *testing.T) {
	tests := []struct {
		role    entity.Role
		allowed bool
	}{
		{entity.RoleAdmin, true},
		{entity.RoleOwner, false},
		{entity.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			fx := createTestEvaluator(t)

			decision, err := fx.evaluator.Authorize(context.Background(), actorWithRole(tt.role), OpAdminManage, Target{})
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, FullFields, decision.Fields)

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrForbidden)
			assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
		})
	}
}

func TestEvaluator_OwnerDashboard_WithStore(t *testing.T) {
	fx := createTestEvaluator(t)
	ctx := context.Background()
	owner := actorWithRole(entity.RoleOwner)
	store := &entity.Store{ID: uuid.New(), Name: "Corner Bakery and Coffee House", OwnerID: owner.ID}

	fx.storeRepo.EXPECT().FindByOwnerID(ctx, owner.ID).Return(store, nil).Once()

	decision, err := fx.evaluator.Authorize(ctx, owner, OpOwnerDashboard, Target{})
	require.NoError(t, err)
	assert.Equal(t, store, decision.Store)
	assert.Equal(t, RaterFields, decision.Fields)
}

func TestEvaluator_OwnerDashboard_WithoutStoreIsForbidden(t *testing.T) {
	fx := createTestEvaluator(t)
	ctx := context.Background()
	owner := actorWithRole(entity.RoleOwner)

	fx.storeRepo.EXPECT().FindByOwnerID(ctx, owner.ID).Return(nil, repository.ErrStoreNotFound).Once()

	decision, err := fx.evaluator.Authorize(ctx, owner, OpOwnerDashboard, Target{})
	assert.Nil(t, decision)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
}

func TestEvaluator_OwnerDashboard_LookupFailure(t *testing.T) {
	fx := createTestEvaluator(t)
	ctx := context.Background()
	owner := actorWithRole(entity.RoleOwner)

	fx.storeRepo.EXPECT().FindByOwnerID(ctx, owner.ID).Return(nil, errors.New("connection reset")).Once()

	_, err := fx.evaluator.Authorize(ctx, owner, OpOwnerDashboard, Target{})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestEvaluator_OwnerDashboard_AdminIsNotOwner(t *testing.T) {
	fx := createTestEvaluator(t)

	// No store lookup is expected: the role check fails first.
	_, err := fx.evaluator.Authorize(context.Background(), actorWithRole(entity.RoleAdmin), OpOwnerDashboard, Target{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestEvaluator_RatingSubmit_OnlyUsers(t *testing.T) {
	for _, role := range entity.Roles() {
		t.Run(string(role), func(t *testing.T) {
			fx := createTestEvaluator(t)

			_, err := fx.evaluator.Authorize(context.Background(), actorWithRole(role), OpRatingSubmit, Target{})
			if role == entity.RoleUser {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrForbidden)
			}
		})
	}
}

func TestEvaluator_RatingMutate(t *testing.T) {
	author := actorWithRole(entity.RoleUser)
	rating := &entity.Rating{ID: uuid.New(), UserID: author.ID, StoreID: uuid.New(), Value: 4}

	t.Run("author", func(t *testing.T) {
		fx := createTestEvaluator(t)

		_, err := fx.evaluator.Authorize(context.Background(), author, OpRatingMutate, Target{Rating: rating})
		assert.NoError(t, err)
	})

	t.Run("other user", func(t *testing.T) {
		fx := createTestEvaluator(t)

		_, err := fx.evaluator.Authorize(context.Background(), actorWithRole(entity.RoleUser), OpRatingMutate, Target{Rating: rating})
		assert.ErrorIs(t, err, domainerrors.ErrRatingOwnershipViolation)
		assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
	})

	t.Run("admin", func(t *testing.T) {
		fx := createTestEvaluator(t)

		_, err := fx.evaluator.Authorize(context.Background(), actorWithRole(entity.RoleAdmin), OpRatingMutate, Target{Rating: rating})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing rating", func(t *testing.T) {
		fx := createTestEvaluator(t)

		_, err := fx.evaluator.Authorize(context.Background(), author, OpRatingMutate, Target{})
		assert.ErrorIs(t, err, domainerrors.ErrRatingNotFound)
	})
}

func TestEvaluator_StoreManage(t *testing.T) {
	owner := actorWithRole(entity.RoleOwner)
	store := &entity.Store{ID: uuid.New(), OwnerID: owner.ID}

	t.Run("admin", func(t *testing.T) {
		fx := createTestEvaluator(t)

		decision, err := fx.evaluator.Authorize(context.Background(), actorWithRole(entity.RoleAdmin), OpStoreManage, Target{Store: store})
		require.NoError(t, err)
		assert.Equal(t, FullFields, decision.Fields)
	})

	t.Run("store owner", func(t *testing.T) {
		fx := createTestEvaluator(t)

		decision, err := fx.evaluator.Authorize(context.Background(), owner, OpStoreManage, Target{Store: store})
		require.NoError(t, err)
		assert.Equal(t, RaterFields, decision.Fields)
	})

	t.Run("other owner", func(t *testing.T) {
		fx := createTestEvaluator(t)

		_, err := fx.evaluator.Authorize(context.Background(), actorWithRole(entity.RoleOwner), OpStoreManage, Target{Store: store})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("plain user", func(t *testing.T) {
		fx := createTestEvaluator(t)

		_, err := fx.evaluator.Authorize(context.Background(), actorWithRole(entity.RoleUser), OpStoreManage, Target{Store: store})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestEvaluator_MyRatingForStore_AnyRole(t *testing.T) {
	for _, role := range entity.Roles() {
		t.Run(string(role), func(t *testing.T) {
			fx := createTestEvaluator(t)

			_, err := fx.evaluator.Authorize(context.Background(), actorWithRole(role), OpMyRatingForStore, Target{})
			assert.NoError(t, err)
		})
	}
}

func TestEvaluator_UnknownOperationIsDenied(t *testing.T) {
	fx := createTestEvaluator(t)

	_, err := fx.evaluator.Authorize(context.Background(), actorWithRole(entity.RoleAdmin), Operation("store.transfer"), Target{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestFieldSet_Project(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Margaret Hamilton Rivera",
		Email:        "margaret@example.com",
		PasswordHash: "$2a$10$hash",
		Address:      "12 Harbour Street",
		Role:         entity.RoleUser,
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	public := PublicFields.Project(user)
	assert.Equal(t, user.ID, public.ID)
	assert.Equal(t, user.Name, public.Name)
	assert.Empty(t, public.Email)
	assert.Empty(t, public.Address)
	assert.Nil(t, public.CreatedAt)

	rater := RaterFields.Project(user)
	assert.Equal(t, user.Email, rater.Email)
	assert.Empty(t, rater.Address)
	assert.Empty(t, rater.Role)

	full := FullFields.Project(user)
	assert.Equal(t, user.Address, full.Address)
	assert.Equal(t, entity.RoleUser, full.Role)
	require.NotNil(t, full.CreatedAt)
	assert.Equal(t, created, *full.CreatedAt)

	assert.Nil(t, FullFields.Project(nil))
}

func TestFieldsFor(t *testing.T) {
	subject := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	assert.Equal(t, FullFields, FieldsFor(&Actor{ID: subject.ID, Role: entity.RoleUser}, subject))
	assert.Equal(t, FullFields, FieldsFor(actorWithRole(entity.RoleAdmin), subject))
	assert.Equal(t, PublicFields, FieldsFor(actorWithRole(entity.RoleOwner), subject))
	assert.Equal(t, PublicFields, FieldsFor(nil, subject))
}
