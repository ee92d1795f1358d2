package postgres

import (
	"context"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

var storeSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"address":   "address",
	"createdAt": "created_at",
}

// storeRepository implements the domain.StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	return repo.first(ctx, "id = ?", id)
}

// FindByOwnerID reads from the primary: ownership decides authorization and
// must not lag behind a just-committed store creation.
func (repo *storeRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	return repo.first(ctx, "owner_id = ?", ownerID)
}

func (repo *storeRepository) first(ctx context.Context, query string, arg any) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where(query, arg).
		First(&storeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return toStoreDomain(&storeM), nil
}

func (repo *storeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error) {
	if len(ids) == 0 {
		return []*entity.Store{}, nil
	}

	var models []*model.StoreModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores by ids")
	}

	return toStoreDomains(models), nil
}

// List returns one page of stores. Search matches name or address; the other
// filters match their own column.
func (repo *storeRepository) List(ctx context.Context, filter entity.StoreFilter) ([]*entity.Store, int64, error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.StoreModel{})
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where(clause.Or(
			clause.Expr{SQL: "? ILIKE ?", Vars: []any{clause.Column{Name: "name"}, pattern}},
			clause.Expr{SQL: "? ILIKE ?", Vars: []any{clause.Column{Name: "address"}, pattern}},
		))
	}
	query = whereContains(query, "name", filter.Name)
	query = whereContains(query, "email", filter.Email)
	query = whereContains(query, "address", filter.Address)
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count stores")
	}

	var models []*model.StoreModel
	page := paginate(orderBy(query, storeSortColumns, filter.SortBy, filter.Order, "name"), filter.PageRequest)
	if err := page.Find(&models).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list stores")
	}

	return toStoreDomains(models), total, nil
}

func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.StoreModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return total, nil
}

// Create persists a new store. The unique owner index turns a concurrent
// second store for the same owner into ErrStoreAlreadyOwned.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStoreAlreadyOwned
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WithDetails("store owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required store information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	storeM := &model.StoreModel{ID: store.ID}
	result := repo.db.WithContext(ctx).
		Model(storeM).
		Updates(map[string]any{
			"name":    store.Name,
			"email":   store.Email,
			"address": store.Address,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// Delete removes a store; its ratings cascade.
func (repo *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StoreModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Address:   data.Address,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toStoreDomains(models []*model.StoreModel) []*entity.Store {
	stores := make([]*entity.Store, 0, len(models))
	for _, m := range models {
		stores = append(stores, toStoreDomain(m))
	}

	return stores
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	return &model.StoreModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Address:   data.Address,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
