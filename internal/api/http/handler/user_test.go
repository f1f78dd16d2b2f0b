package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/adminpanel-server/internal/mocks"
	"github.com/dtroode/adminpanel-server/internal/model"
	"github.com/dtroode/adminpanel-server/internal/testutil"
)

func newUsersRouter(t *testing.T) (http.Handler, *mocks.UserService) {
	svc := mocks.NewUserService(t)
	r, cm := newTestRouter()
	h := NewUsers(svc, cm, testPublicURL, testutil.MakeNoopLogger())
	r.GET("/admin/users", h.List)
	r.GET("/admin/users/:userId", h.Get)
	r.PATCH("/admin/users/:userId", h.Patch)
	r.DELETE("/admin/users/:userId", h.Delete)
	r.PATCH("/admin/users/:userId/pro-status", h.ProStatus)
	return r, svc
}

func TestUsers_List(t *testing.T) {
	t.Run("maps query parameters and pagination", func(t *testing.T) {
		r, svc := newUsersRouter(t)
		ann := testutil.MakeUser("ann")

		svc.On("ListUsers", mock.Anything, callerSession, model.UserQuery{
			Search:        "ann",
			SortBy:        model.SortByEmail,
			SortDirection: model.SortAsc,
			Limit:         10,
			Page:          2,
		}).Return(model.UserPage{
			Users:  []model.UserListItem{{ID: ann.ID, Name: ann.Name, Email: ann.Email, Role: ann.Role, ChatCount: 3}},
			Total:  25,
			Limit:  10,
			Offset: 10,
		}, nil)

		w := do(t, r, http.MethodGet, "/admin/users?page=2&limit=10&query=ann&sortBy=email&sortDirection=asc", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"pagination":{"page":2,"limit":10,"total":25,"totalPages":3}`)
		assert.Contains(t, w.Body.String(), `"chatCount":3`)
	})

	t.Run("empty page is an empty array", func(t *testing.T) {
		r, svc := newUsersRouter(t)
		svc.On("ListUsers", mock.Anything, callerSession, mock.Anything).
			Return(model.UserPage{Limit: 10}, nil)

		w := do(t, r, http.MethodGet, "/admin/users", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"users":[]`)
	})

	t.Run("non-integer page", func(t *testing.T) {
		r, _ := newUsersRouter(t)

		w := do(t, r, http.MethodGet, "/admin/users?page=abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid query from service", func(t *testing.T) {
		r, svc := newUsersRouter(t)
		svc.On("ListUsers", mock.Anything, callerSession, mock.Anything).
			Return(model.UserPage{}, model.NewInvalidQueryError("limit must not be negative"))

		w := do(t, r, http.MethodGet, "/admin/users?limit=-1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"limit must not be negative"}`, w.Body.String())
	})

	t.Run("non-admin api caller", func(t *testing.T) {
		r, svc := newUsersRouter(t)
		svc.On("ListUsers", mock.Anything, callerSession, mock.Anything).
			Return(model.UserPage{}, model.ErrUnauthorized)

		w := do(t, r, http.MethodGet, "/admin/users", "", "Accept", "application/json")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"unauthorized: admin access required"}`, w.Body.String())
	})

	t.Run("non-admin browser is redirected", func(t *testing.T) {
		r, svc := newUsersRouter(t)
		svc.On("ListUsers", mock.Anything, callerSession, mock.Anything).
			Return(model.UserPage{}, model.ErrUnauthorized)

		w := do(t, r, http.MethodGet, "/admin/users", "", "Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, testPublicURL, w.Header().Get("Location"))
	})

	t.Run("store failure is opaque", func(t *testing.T) {
		r, svc := newUsersRouter(t)
		svc.On("ListUsers", mock.Anything, callerSession, mock.Anything).
			Return(model.UserPage{}, fmt.Errorf("failed to list users: %w", errors.New("relation \"users\" does not exist")))

		w := do(t, r, http.MethodGet, "/admin/users", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})
}

func TestUsers_Get(t *testing.T) {
	r, svc := newUsersRouter(t)
	ann := testutil.MakeUser("ann")
	svc.On("GetUser", mock.Anything, callerSession, ann.ID).Return(ann, nil)
	svc.On("GetUser", mock.Anything, callerSession, "missing").Return(model.User{}, model.ErrNotFound)

	w := do(t, r, http.MethodGet, "/admin/users/"+ann.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"ann@example.com"`)

	w = do(t, r, http.MethodGet, "/admin/users/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, w.Body.String())
}

func TestUsers_Patch(t *testing.T) {
	t.Run("passes the partial update", func(t *testing.T) {
		r, svc := newUsersRouter(t)
		ann := testutil.MakeUser("ann")
		ann.Banned = true

		svc.On("UpdateUser", mock.Anything, callerSession, ann.ID, mock.MatchedBy(func(p model.UserPatch) bool {
			return p.Role == nil && p.Name == nil && p.Email == nil &&
				p.Banned != nil && *p.Banned &&
				p.BanReason != nil && *p.BanReason == "spam"
		})).Return(ann, nil)

		w := do(t, r, http.MethodPatch, "/admin/users/"+ann.ID, `{"banned":true,"banReason":"spam"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"banned":true`)
	})

	t.Run("own role change is forbidden", func(t *testing.T) {
		r, svc := newUsersRouter(t)
		svc.On("UpdateUser", mock.Anything, callerSession, callerSession.UserID, mock.MatchedBy(func(p model.UserPatch) bool {
			return p.Role != nil && *p.Role == model.RoleAdmin
		})).Return(model.User{}, model.NewSelfActionError("change the role of"))

		w := do(t, r, http.MethodPatch, "/admin/users/"+callerSession.UserID, `{"role":"admin"}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"you cannot change the role of your own account"}`, w.Body.String())
	})

	t.Run("unknown role rejected before the service", func(t *testing.T) {
		r, _ := newUsersRouter(t)

		w := do(t, r, http.MethodPatch, "/admin/users/u1", `{"role":"superuser"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed email rejected before the service", func(t *testing.T) {
		r, _ := newUsersRouter(t)

		w := do(t, r, http.MethodPatch, "/admin/users/u1", `{"email":"not-an-address"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		r, svc := newUsersRouter(t)
		svc.On("UpdateUser", mock.Anything, callerSession, "u1", mock.Anything).
			Return(model.User{}, fmt.Errorf("failed to update user: %w", model.ErrConflict))

		w := do(t, r, http.MethodPatch, "/admin/users/u1", `{"email":"taken@example.com"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("broken json", func(t *testing.T) {
		r, _ := newUsersRouter(t)

		w := do(t, r, http.MethodPatch, "/admin/users/u1", `{"banned":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUsers_Delete(t *testing.T) {
	r, svc := newUsersRouter(t)
	svc.On("DeleteUser", mock.Anything, callerSession, "u1").Return(nil)
	svc.On("DeleteUser", mock.Anything, callerSession, "gone").Return(model.ErrNotFound)
	svc.On("DeleteUser", mock.Anything, callerSession, callerSession.UserID).Return(model.NewSelfActionError("delete"))

	w := do(t, r, http.MethodDelete, "/admin/users/u1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = do(t, r, http.MethodDelete, "/admin/users/gone", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodDelete, "/admin/users/"+callerSession.UserID, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUsers_ProStatus(t *testing.T) {
	t.Run("grants and revokes", func(t *testing.T) {
		r, svc := newUsersRouter(t)
		ann := testutil.MakeUser("ann")
		svc.On("SetAdminGrantedPro", mock.Anything, callerSession, ann.ID, false).Return(ann, nil)

		w := do(t, r, http.MethodPatch, "/admin/users/"+ann.ID+"/pro-status", `{"adminGrantedPro":false}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})

	for name, body := range map[string]string{
		"string value":  `{"adminGrantedPro":"yes"}`,
		"number value":  `{"adminGrantedPro":1}`,
		"missing field": `{}`,
		"null value":    `{"adminGrantedPro":null}`,
	} {
		t.Run(name, func(t *testing.T) {
			r, _ := newUsersRouter(t)

			w := do(t, r, http.MethodPatch, "/admin/users/u1/pro-status", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"adminGrantedPro must be a boolean"}`, w.Body.String())
		})
	}
}
