package handler

import (
	"log/slog"
	"net/http"

	"storerating/internal/delivery/api/middleware"
	"storerating/internal/delivery/api/response"
	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/domain/entity"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves user and store administration.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// CreateUserRequest defines an account created by an admin.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Address  string `json:"address" validate:"max=400"`
	Role     string `json:"role" validate:"required,role"`
}

// UserListQuery defines the query parameters of the user listing.
type UserListQuery struct {
	Name    string `query:"name" validate:"omitempty,max=60"`
	Email   string `query:"email" validate:"omitempty,max=255"`
	Address string `query:"address" validate:"omitempty,max=400"`
	Role    string `query:"role" validate:"omitempty,role"`
	PageQuery
}

func (q UserListQuery) filter() entity.UserFilter {
	role, _ := entity.ParseRole(q.Role)

	return entity.UserFilter{
		Name:        q.Name,
		Email:       q.Email,
		Address:     q.Address,
		Role:        role,
		SortBy:      q.SortBy,
		Order:       q.sortOrder(),
		PageRequest: q.pageRequest(),
	}
}

// ChangeRoleRequest defines the new role of a user.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,role"`
}

// CreateStoreRequest defines a store for an existing user.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=60"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"max=400"`
	OwnerID string `json:"owner_id" validate:"required,uuid"`
}

// NewOwnerRequest defines the account created together with a store.
type NewOwnerRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Address  string `json:"address" validate:"max=400"`
}

// CreateStoreWithOwnerRequest defines a store and its brand-new owner.
type CreateStoreWithOwnerRequest struct {
	Name    string          `json:"name" validate:"required,min=1,max=60"`
	Email   string          `json:"email" validate:"required,email"`
	Address string          `json:"address" validate:"max=400"`
	Owner   NewOwnerRequest `json:"owner" validate:"required"`
}

// GetDashboard returns platform-wide totals.
func (h *AdminHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.adminUC.Dashboard(c.Request().Context(), middleware.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// CreateUser creates an account with any role.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	role, _ := entity.ParseRole(req.Role)
	user, err := h.adminUC.CreateUser(c.Request().Context(), middleware.GetActor(c), usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// ListUsers returns a filtered page of users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var query UserListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationFailed(c, err)
	}

	page, err := h.adminUC.ListUsers(c.Request().Context(), middleware.GetActor(c), query.filter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetUser returns a user; store owners include their store and its rating.
func (h *AdminHandler) GetUser(c echo.Context) error {
	userID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	detail, err := h.adminUC.GetUser(c.Request().Context(), middleware.GetActor(c), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// ChangeUserRole assigns a new role to a user.
func (h *AdminHandler) ChangeUserRole(c echo.Context) error {
	userID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req ChangeRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	role, _ := entity.ParseRole(req.Role)
	user, err := h.adminUC.ChangeUserRole(c.Request().Context(), middleware.GetActor(c), userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("User role changed",
		slog.String("user_id", userID.String()),
		slog.String("role", role.String()),
	)

	return response.Success(c, http.StatusOK, user)
}

// DeleteUser removes a user together with their ratings.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), middleware.GetActor(c), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// CreateStore creates a store for an existing user.
func (h *AdminHandler) CreateStore(c echo.Context) error {
	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	store, err := h.adminUC.CreateStore(c.Request().Context(), middleware.GetActor(c), usecase.CreateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: ownerID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, store)
}

// CreateStoreWithOwner creates a store and its owner account in one step.
func (h *AdminHandler) CreateStoreWithOwner(c echo.Context) error {
	var req CreateStoreWithOwnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	result, err := h.adminUC.CreateStoreWithOwner(c.Request().Context(), middleware.GetActor(c), usecase.CreateStoreWithOwnerInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Owner: usecase.NewOwnerInput{
			Name:     req.Owner.Name,
			Email:    req.Owner.Email,
			Password: req.Owner.Password,
			Address:  req.Owner.Address,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// ListStores returns a filtered page of stores.
func (h *AdminHandler) ListStores(c echo.Context) error {
	var query StoreListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationFailed(c, err)
	}

	page, err := h.adminUC.ListStores(c.Request().Context(), middleware.GetActor(c), query.filter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// DeleteStore removes a store together with its ratings.
func (h *AdminHandler) DeleteStore(c echo.Context) error {
	storeID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	if err := h.adminUC.DeleteStore(c.Request().Context(), middleware.GetActor(c), storeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Store deleted successfully"})
}
