// Package policy decides which actor may perform which operation and which
// user fields the actor may see in the result. It is the single place where
// roles are dispatched on.
package policy

import (
	"context"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/errors"

	"github.com/google/uuid"
)

// Actor is the authenticated caller. A nil *Actor is an anonymous caller.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  entity.Role
}

// Operation names a guarded action.
type Operation string

const (
	// OpAdminManage covers user and store administration and the admin dashboard.
	OpAdminManage Operation = "admin.manage"
	// OpOwnerDashboard covers the owner's dashboard, store and rating views.
	OpOwnerDashboard Operation = "owner.dashboard"
	// OpRatingSubmit creates a rating.
	OpRatingSubmit Operation = "rating.submit"
	// OpRatingViewOwn lists the caller's own ratings.
	OpRatingViewOwn Operation = "rating.view_own"
	// OpRatingMutate updates or deletes a rating; Target.Rating is required.
	OpRatingMutate Operation = "rating.mutate"
	// OpStoreManage views or modifies an arbitrary store; Target.Store is required.
	OpStoreManage Operation = "store.manage"
	// OpStoreBrowse lists and shows stores publicly.
	OpStoreBrowse Operation = "store.browse"
	// OpMyRatingForStore reads the caller's rating for one store.
	OpMyRatingForStore Operation = "store.my_rating"
	// OpProfile reads or changes the caller's own account.
	OpProfile Operation = "profile"
)

// Target is the resource an operation acts on. Unused fields stay nil.
type Target struct {
	Store  *entity.Store
	Rating *entity.Rating
	User   *entity.User
}

// Decision is the result of an allowed authorization.
type Decision struct {
	// Fields is the user field subset the caller may see in the response.
	Fields FieldSet
	// Store is the actor's own store, resolved for OpOwnerDashboard.
	Store *entity.Store
}

// Evaluator authorizes operations. The only state it reads is store ownership.
type Evaluator struct {
	stores repository.StoreRepository
}

// NewEvaluator creates an Evaluator backed by the given store repository.
func NewEvaluator(stores repository.StoreRepository) *Evaluator {
	return &Evaluator{stores: stores}
}

// Authorize returns a Decision when actor may perform op on target.
// Anonymous callers on guarded operations get ErrUnauthenticated; every other
// denial is ErrForbidden or, for foreign ratings, ErrRatingOwnershipViolation.
func (e *Evaluator) Authorize(ctx context.Context, actor *Actor, op Operation, target Target) (*Decision, error) {
	if op == OpStoreBrowse {
		return &Decision{Fields: PublicFields}, nil
	}

	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	switch op {
	case OpAdminManage:
		if actor.Role != entity.RoleAdmin {
			return nil, domainerrors.ErrForbidden
		}

		return &Decision{Fields: FullFields}, nil

	case OpOwnerDashboard:
		return e.authorizeOwner(ctx, actor)

	case OpRatingSubmit, OpRatingViewOwn:
		if actor.Role != entity.RoleUser {
			return nil, domainerrors.ErrForbidden
		}

		return &Decision{Fields: PublicFields}, nil

	case OpRatingMutate:
		if actor.Role != entity.RoleUser {
			return nil, domainerrors.ErrForbidden
		}
		if target.Rating == nil {
			return nil, domainerrors.ErrRatingNotFound
		}
		if !target.Rating.IsWrittenBy(actor.ID) {
			return nil, domainerrors.ErrRatingOwnershipViolation
		}

		return &Decision{Fields: PublicFields}, nil

	case OpStoreManage:
		if target.Store == nil {
			return nil, domainerrors.ErrStoreNotFound
		}
		if actor.Role == entity.RoleAdmin {
			return &Decision{Fields: FullFields}, nil
		}
		if target.Store.IsOwnedBy(actor.ID) {
			return &Decision{Fields: RaterFields, Store: target.Store}, nil
		}

		return nil, domainerrors.ErrForbidden

	case OpMyRatingForStore:
		if !actor.Role.IsValid() {
			return nil, domainerrors.ErrForbidden
		}

		return &Decision{Fields: PublicFields}, nil

	case OpProfile:
		return &Decision{Fields: FullFields}, nil
	}

	return nil, domainerrors.ErrForbidden
}

// authorizeOwner requires the owner role and an existing store. A missing
// store is a denial, not a failure.
func (e *Evaluator) authorizeOwner(ctx context.Context, actor *Actor) (*Decision, error) {
	if actor.Role != entity.RoleOwner {
		return nil, domainerrors.ErrForbidden
	}

	store, err := e.stores.FindByOwnerID(ctx, actor.ID)
	if err != nil {
		if errors.IsAny(err, repository.ErrStoreNotFound, domainerrors.ErrStoreNotFound) {
			return nil, domainerrors.ErrForbidden.WithDetails("no store is linked to this account")
		}

		return nil, errors.Wrap(err, "failed to look up owner store")
	}

	return &Decision{Fields: RaterFields, Store: store}, nil
}
