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

const newestFirst = "created_at DESC, id DESC"

// ratingRepository implements the domain.RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

func (repo *ratingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *ratingRepository) FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error) {
	return repo.first(ctx, "user_id = ? AND store_id = ?", userID, storeID)
}

func (repo *ratingRepository) first(ctx context.Context, query string, args ...any) (*entity.Rating, error) {
	var ratingM model.RatingModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where(query, args...).
		First(&ratingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return toRatingDomain(&ratingM), nil
}

func (repo *ratingRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Rating, error) {
	return repo.find(ctx, "store_id = ?", storeID)
}

func (repo *ratingRepository) FindByStores(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.Rating, error) {
	if len(storeIDs) == 0 {
		return []*entity.Rating{}, nil
	}

	return repo.find(ctx, "store_id IN ?", storeIDs)
}

func (repo *ratingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Rating, error) {
	return repo.find(ctx, "user_id = ?", userID)
}

func (repo *ratingRepository) FindByUserForStores(ctx context.Context, userID uuid.UUID, storeIDs []uuid.UUID) ([]*entity.Rating, error) {
	if len(storeIDs) == 0 {
		return []*entity.Rating{}, nil
	}

	return repo.find(ctx, "user_id = ? AND store_id IN ?", userID, storeIDs)
}

// find returns the matching ratings, newest first. Aggregates are computed
// from these rows on every request, so reads go to the primary.
func (repo *ratingRepository) find(ctx context.Context, query string, args ...any) ([]*entity.Rating, error) {
	var models []*model.RatingModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where(query, args...).
		Order(newestFirst).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ratings")
	}

	ratings := make([]*entity.Rating, 0, len(models))
	for _, m := range models {
		ratings = append(ratings, toRatingDomain(m))
	}

	return ratings, nil
}

func (repo *ratingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.RatingModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count ratings")
	}

	return total, nil
}

// Create persists a new rating. Constraint violations map to domain errors so a
// race past the service-level check still reports the right kind.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(ratingM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrRatingAlreadyExists
		case isForeignKeyConstraintViolation(err):
			if constraintName(err) == "fk_ratings_user" {
				return domainerrors.ErrUserNotFound
			}

			return domainerrors.ErrStoreNotFound
		case isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WithDetails("rating value must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// Update writes the value and comment of an existing rating in place.
func (repo *ratingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	ratingM := &model.RatingModel{ID: rating.ID}
	result := repo.db.WithContext(ctx).
		Model(ratingM).
		Updates(map[string]any{
			"value":   rating.Value,
			"comment": rating.Comment,
		})
	if err := result.Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("rating value must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

func (repo *ratingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RatingModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	return nil
}

func (repo *ratingRepository) DeleteByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	return repo.deleteWhere(ctx, "store_id = ?", storeID)
}

func (repo *ratingRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return repo.deleteWhere(ctx, "user_id = ?", userID)
}

func (repo *ratingRepository) deleteWhere(ctx context.Context, query string, arg any) (int64, error) {
	result := repo.db.WithContext(ctx).Where(query, arg).Delete(&model.RatingModel{})
	if err := result.Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete ratings")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:        data.ID,
		UserID:    data.UserID,
		StoreID:   data.StoreID,
		Value:     data.Value,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	return &model.RatingModel{
		ID:        data.ID,
		UserID:    data.UserID,
		StoreID:   data.StoreID,
		Value:     data.Value,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
