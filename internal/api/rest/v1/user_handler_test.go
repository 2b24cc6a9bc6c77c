//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_GetMe(t *testing.T) {
	handler := NewUserHandler(new(MockUserService), testutil.SetupTestLogger(t))

	c, w := newTestContext(t, http.MethodGet, "/api/users/me", nil)
	handler.GetMe(withUser(c, testUser(1, users.RoleUser)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jane@example.com")
}

func TestUserHandler_UpdateMe(t *testing.T) {
	mockUserService := new(MockUserService)
	handler := NewUserHandler(mockUserService, testutil.SetupTestLogger(t))

	updated := testUser(1, users.RoleUser)
	about := "street photographer"
	updated.About = &about
	mockUserService.On("UpdateProfile", mock.Anything, uint(1), mock.MatchedBy(func(u *users.ProfileUpdate) bool {
		return u.About != nil && *u.About == about
	})).Return(updated, nil)

	c, w := newTestContext(t, http.MethodPatch, "/api/users/me", map[string]string{"about": about})
	handler.UpdateMe(withUser(c, testUser(1, users.RoleUser)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), about)
	mockUserService.AssertExpectations(t)
}

func TestUserHandler_UpdateMe_InvalidBirthday(t *testing.T) {
	mockUserService := new(MockUserService)
	handler := NewUserHandler(mockUserService, testutil.SetupTestLogger(t))

	c, w := newTestContext(t, http.MethodPatch, "/api/users/me", map[string]string{"birthday": "tomorrow"})
	handler.UpdateMe(withUser(c, testUser(1, users.RoleUser)))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockUserService.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockUserService := new(MockUserService)
		handler := NewUserHandler(mockUserService, testutil.SetupTestLogger(t))
		mockUserService.On("GetByID", mock.Anything, uint(4)).Return(testUser(4, users.RoleUser), nil)

		c, w := newTestContext(t, http.MethodGet, "/api/users/4", nil)
		handler.GetByID(withParam(c, "user_id", "4"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		mockUserService := new(MockUserService)
		handler := NewUserHandler(mockUserService, testutil.SetupTestLogger(t))
		mockUserService.On("GetByID", mock.Anything, uint(4)).Return(nil, users.ErrUserNotFound)

		c, w := newTestContext(t, http.MethodGet, "/api/users/4", nil)
		handler.GetByID(withParam(c, "user_id", "4"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", decodeDetail(t, w))
	})

	t.Run("malformed id", func(t *testing.T) {
		handler := NewUserHandler(new(MockUserService), testutil.SetupTestLogger(t))

		c, w := newTestContext(t, http.MethodGet, "/api/users/abc", nil)
		handler.GetByID(withParam(c, "user_id", "abc"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUserHandler_ChangeRole(t *testing.T) {
	t.Run("valid role", func(t *testing.T) {
		mockUserService := new(MockUserService)
		handler := NewUserHandler(mockUserService, testutil.SetupTestLogger(t))
		mockUserService.On("ChangeRole", mock.Anything, uint(4), users.RoleModerator).Return(testUser(4, users.RoleModerator), nil)

		c, w := newTestContext(t, http.MethodPatch, "/api/users/4/role", RoleRequest{Role: "moderator"})
		handler.ChangeRole(withParam(c, "user_id", "4"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"moderator"`)
	})

	t.Run("unknown role", func(t *testing.T) {
		mockUserService := new(MockUserService)
		handler := NewUserHandler(mockUserService, testutil.SetupTestLogger(t))
		mockUserService.On("ChangeRole", mock.Anything, uint(4), users.Role("root")).Return(nil, users.ErrInvalidRole)

		c, w := newTestContext(t, http.MethodPatch, "/api/users/4/role", RoleRequest{Role: "root"})
		handler.ChangeRole(withParam(c, "user_id", "4"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUserHandler_Block(t *testing.T) {
	t.Run("regular user", func(t *testing.T) {
		mockUserService := new(MockUserService)
		handler := NewUserHandler(mockUserService, testutil.SetupTestLogger(t))
		blocked := testUser(4, users.RoleUser)
		blocked.IsBlocked = true
		mockUserService.On("SetBlocked", mock.Anything, uint(4), true).Return(blocked, nil)

		c, w := newTestContext(t, http.MethodPost, "/api/users/4/block", nil)
		handler.Block(withParam(c, "user_id", "4"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "is blocked")
	})

	t.Run("admin", func(t *testing.T) {
		mockUserService := new(MockUserService)
		handler := NewUserHandler(mockUserService, testutil.SetupTestLogger(t))
		mockUserService.On("SetBlocked", mock.Anything, uint(1), true).Return(nil, users.ErrCannotBlockAdmin)

		c, w := newTestContext(t, http.MethodPost, "/api/users/1/block", nil)
		handler.Block(withParam(c, "user_id", "1"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Admins cannot be blocked", decodeDetail(t, w))
	})

	t.Run("unblock", func(t *testing.T) {
		mockUserService := new(MockUserService)
		handler := NewUserHandler(mockUserService, testutil.SetupTestLogger(t))
		mockUserService.On("SetBlocked", mock.Anything, uint(4), false).Return(testUser(4, users.RoleUser), nil)

		c, w := newTestContext(t, http.MethodPost, "/api/users/4/unblock", nil)
		handler.Unblock(withParam(c, "user_id", "4"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "is unblocked")
	})
}
