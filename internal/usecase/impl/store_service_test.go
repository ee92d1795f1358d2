package impl

import (
	"context"
	"testing"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/policy"
	"storerating/internal/domain/repository"
	mockRepo "storerating/internal/mocks/repository"
	mockService "storerating/internal/mocks/service"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeServiceFixtures struct {
	service    usecase.StoreUsecase
	userRepo   *mockRepo.MockUserRepository
	storeRepo  *mockRepo.MockStoreRepository
	ratingRepo *mockRepo.MockRatingRepository
	qrService  *mockService.MockQRCodeService
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	qrService := mockService.NewMockQRCodeService(t)

	srv := NewStoreService(StoreServiceParams{
		UserRepo:   userRepo,
		StoreRepo:  storeRepo,
		RatingRepo: ratingRepo,
		Evaluator:  policy.NewEvaluator(storeRepo),
		QRService:  qrService,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return storeServiceFixtures{
		service:    srv,
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
		qrService:  qrService,
	}
}

func TestStoreService_ListStores_Anonymous(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	a := &entity.Store{ID: uuid.New(), Name: "Alpha"}
	b := &entity.Store{ID: uuid.New(), Name: "Beta"}

	fx.storeRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f entity.StoreFilter) bool {
			return f.Page == 1 && f.Limit == 100 && f.Search == "al"
		})).
		Return([]*entity.Store{a, b}, int64(2), nil)
	fx.ratingRepo.EXPECT().FindByStores(ctx, []uuid.UUID{a.ID, b.ID}).Return([]*entity.Rating{
		{StoreID: a.ID, Value: 4},
		{StoreID: a.ID, Value: 5},
	}, nil)

	page, err := fx.service.ListStores(ctx, nil, entity.StoreFilter{Search: "al", PageRequest: entity.PageRequest{Limit: 500}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Items[0].Rating.Count)
	assert.InDelta(t, 4.5, page.Items[0].Rating.Average, 0.0001)
	assert.Equal(t, 0, page.Items[1].Rating.Count)
	assert.Nil(t, page.Items[0].MyRating)
}

func TestStoreService_ListStores_WithOwnRating(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	actor := newActor(entity.RoleUser)
	store := &entity.Store{ID: uuid.New()}
	mine := &entity.Rating{ID: uuid.New(), UserID: actor.ID, StoreID: store.ID, Value: 3}

	fx.storeRepo.EXPECT().List(ctx, mock.Anything).Return([]*entity.Store{store}, int64(1), nil)
	fx.ratingRepo.EXPECT().FindByStores(ctx, []uuid.UUID{store.ID}).Return([]*entity.Rating{mine}, nil)
	fx.ratingRepo.EXPECT().FindByUserForStores(ctx, actor.ID, []uuid.UUID{store.ID}).Return([]*entity.Rating{mine}, nil)

	page, err := fx.service.ListStores(ctx, actor, entity.StoreFilter{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.NotNil(t, page.Items[0].MyRating)
	assert.Equal(t, mine.ID, page.Items[0].MyRating.ID)
	assert.Equal(t, 20, page.Limit)
}

func TestStoreService_ListStores_Empty(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().List(ctx, mock.Anything).Return(nil, int64(0), nil)

	page, err := fx.service.ListStores(ctx, newActor(entity.RoleUser), entity.StoreFilter{})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestStoreService_GetStore_NotFound(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.storeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrStoreNotFound)

	_, err := fx.service.GetStore(ctx, nil, id)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_StoreQRCode(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.storeRepo.EXPECT().FindByID(ctx, id).Return(&entity.Store{ID: id}, nil)
	fx.qrService.EXPECT().GenerateStoreQR(id).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.StoreQRCode(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, byte(0x89), png[0])
}

func TestStoreService_ManageStore_OwnerSeesRaterEmails(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	actor := newActor(entity.RoleOwner)
	owner := &entity.User{ID: actor.ID, Name: "Owner", Email: "owner@example.com", Role: entity.RoleOwner}
	store := &entity.Store{ID: uuid.New(), OwnerID: actor.ID}
	rater := &entity.User{ID: uuid.New(), Name: "Rater", Email: "rater@example.com", Address: "hidden"}

	fx.storeRepo.EXPECT().FindByID(ctx, store.ID).Return(store, nil)
	fx.userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)
	fx.ratingRepo.EXPECT().FindByStore(ctx, store.ID).Return([]*entity.Rating{
		{ID: uuid.New(), UserID: rater.ID, StoreID: store.ID, Value: 5},
	}, nil)
	fx.userRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{rater.ID}).Return([]*entity.User{rater}, nil)

	managed, err := fx.service.ManageStore(ctx, actor, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", managed.Owner.Email)
	require.Len(t, managed.Ratings, 1)
	assert.Equal(t, "rater@example.com", managed.Ratings[0].Rater.Email)
	assert.Equal(t, 1, managed.Rating.Count)
}

func TestStoreService_ManageStore_OtherOwnerForbidden(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	store := &entity.Store{ID: uuid.New(), OwnerID: uuid.New()}

	fx.storeRepo.EXPECT().FindByID(ctx, store.ID).Return(store, nil)

	_, err := fx.service.ManageStore(ctx, newActor(entity.RoleOwner), store.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestStoreService_UpdateStore(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	actor := newActor(entity.RoleAdmin)
	store := &entity.Store{ID: uuid.New(), Name: "Old", Email: "old@example.com", Address: "Old St", OwnerID: uuid.New()}

	fx.storeRepo.EXPECT().FindByID(ctx, store.ID).Return(store, nil)
	fx.storeRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(s *entity.Store) bool {
			return s.Name == "New" && s.Email == "new@example.com" && s.Address == "Old St"
		})).
		Return(nil)

	view, err := fx.service.UpdateStore(ctx, actor, store.ID, usecase.UpdateStoreInput{
		Name:  strPtr("New"),
		Email: strPtr(" NEW@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New", view.Name)
}

func TestStoreService_UpdateStore_Missing(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.storeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrStoreNotFound)

	_, err := fx.service.UpdateStore(ctx, newActor(entity.RoleAdmin), id, usecase.UpdateStoreInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}
