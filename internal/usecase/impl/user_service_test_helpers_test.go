package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storerating/config"
	"storerating/internal/domain/entity"
	"storerating/internal/domain/policy"
	"storerating/internal/domain/repository"
	mockRepo "storerating/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

const txFuncType = "func(repository.RepositoryFactory) error"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth:       &config.AuthConfig{BcryptCost: 4},
		Stats:      &config.StatsConfig{TrendMonths: 6, RecentRatingsLimit: 2},
		Pagination: &config.PaginationConfig{DefaultLimit: 20, MaxLimit: 100},
	}
}

// txRepos are the transaction-bound repositories handed to Execute callbacks.
type txRepos struct {
	factory *mockRepo.MockRepositoryFactory
	users   *mockRepo.MockUserRepository
	stores  *mockRepo.MockStoreRepository
	ratings *mockRepo.MockRatingRepository
}

func newTxRepos(t *testing.T) *txRepos {
	repos := &txRepos{
		factory: mockRepo.NewMockRepositoryFactory(t),
		users:   mockRepo.NewMockUserRepository(t),
		stores:  mockRepo.NewMockStoreRepository(t),
		ratings: mockRepo.NewMockRatingRepository(t),
	}

	repos.factory.EXPECT().UserRepo().Return(repos.users).Maybe()
	repos.factory.EXPECT().StoreRepo().Return(repos.stores).Maybe()
	repos.factory.EXPECT().RatingRepo().Return(repos.ratings).Maybe()

	return repos
}

// expectTx makes the transaction manager run its callback against repos and
// return the callback's error, as a real transaction would.
func expectTx(txManager *mockRepo.MockTransactionManager, repos *txRepos) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType(txFuncType)).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		}).
		Once()
}

func newActor(role entity.Role) *policy.Actor {
	return &policy.Actor{ID: uuid.New(), Email: string(role) + "@example.com", Role: role}
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
