package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
)

// UserService defines the admin operations on user accounts.
type UserService interface {
	ListUsers(ctx context.Context, session *model.Session, query model.UserQuery) (model.UserPage, error)
	GetUser(ctx context.Context, session *model.Session, userID string) (model.User, error)
	UpdateUser(ctx context.Context, session *model.Session, userID string, patch model.UserPatch) (model.User, error)
	SetAdminGrantedPro(ctx context.Context, session *model.Session, userID string, granted bool) (model.User, error)
	DeleteUser(ctx context.Context, session *model.Session, userID string) error
}

// Users handles the /admin/users endpoints.
type Users struct {
	base
	userService UserService
}

// NewUsers creates a new Users handler.
func NewUsers(userService UserService, contextManager model.ContextManager, publicURL string, logger *logger.Logger) *Users {
	return &Users{
		base:        base{contextManager: contextManager, publicURL: publicURL, logger: logger},
		userService: userService,
	}
}

type listUsersRequest struct {
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
	Offset        int    `form:"offset"`
	Query         string `form:"query"`
	SortBy        string `form:"sortBy"`
	SortDirection string `form:"sortDirection"`
}

type pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type listUsersResponse struct {
	Users      []model.UserListItem `json:"users"`
	Pagination pagination           `json:"pagination"`
}

// List returns one page of users.
func (h *Users) List(c *gin.Context) {
	var req listUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "page, limit and offset must be integers")
		return
	}

	page, err := h.userService.ListUsers(c.Request.Context(), h.session(c), model.UserQuery{
		Search:        req.Query,
		SortBy:        model.SortField(req.SortBy),
		SortDirection: model.SortDirection(req.SortDirection),
		Limit:         req.Limit,
		Offset:        req.Offset,
		Page:          req.Page,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	users := page.Users
	if users == nil {
		users = []model.UserListItem{}
	}

	c.JSON(http.StatusOK, listUsersResponse{
		Users: users,
		Pagination: pagination{
			Page:       page.Page(),
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.Pages(),
		},
	})
}

// Get returns one user.
func (h *Users) Get(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), h.session(c), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type patchUserRequest struct {
	Role      *string `json:"role" binding:"omitempty,oneof=user admin"`
	Banned    *bool   `json:"banned"`
	BanReason *string `json:"banReason"`
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

func (r patchUserRequest) patch() model.UserPatch {
	p := model.UserPatch{
		Name:      r.Name,
		Email:     r.Email,
		Banned:    r.Banned,
		BanReason: r.BanReason,
	}
	if r.Role != nil {
		role := model.Role(*r.Role)
		p.Role = &role
	}
	return p
}

// Patch applies a partial update to one user.
func (h *Users) Patch(c *gin.Context) {
	var req patchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), h.session(c), c.Param("userId"), req.patch())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete removes one user.
func (h *Users) Delete(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), h.session(c), c.Param("userId")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type proStatusRequest struct {
	AdminGrantedPro *bool `json:"adminGrantedPro" binding:"required"`
}

// ProStatus sets the admin-granted pro override of one user.
func (h *Users) ProStatus(c *gin.Context) {
	var req proStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "adminGrantedPro must be a boolean")
		return
	}

	user, err := h.userService.SetAdminGrantedPro(c.Request.Context(), h.session(c), c.Param("userId"), *req.AdminGrantedPro)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
