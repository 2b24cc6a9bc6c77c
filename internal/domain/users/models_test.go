//go:build unit
// +build unit

package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleModerator.IsValid())
	assert.True(t, RoleUser.IsValid())
	assert.False(t, Role("root").IsValid())
}

func TestUser_HasRole(t *testing.T) {
	u := &User{Role: RoleModerator}
	assert.True(t, u.HasRole(RoleAdmin, RoleModerator))
	assert.False(t, u.HasRole(RoleAdmin))
	assert.False(t, u.HasRole())
}

func TestUser_Validate(t *testing.T) {
	u := &User{
		Username:       "jane",
		Email:          "jane@example.com",
		HashedPassword: "hash",
		FirstName:      "Jane",
		LastName:       "Doe",
		Role:           RoleUser,
	}
	require.NoError(t, u.Validate())

	u.Email = "not-an-email"
	err := u.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Email, Tag: email")
}

func TestSignupRequest_Validate(t *testing.T) {
	req := &SignupRequest{
		Email:     "jane@example.com",
		Username:  "jane",
		Password:  "secret1",
		FirstName: "Jane",
		LastName:  "Doe",
	}
	require.NoError(t, req.Validate())

	req.Password = "123"
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Password")
}

func TestProfileUpdate(t *testing.T) {
	first := "Janet"
	phone := "+380501234567"
	update := &ProfileUpdate{FirstName: &first, Phone: &phone}
	require.NoError(t, update.Validate())

	u := &User{FirstName: "Jane", LastName: "Doe"}
	update.Apply(u)
	assert.Equal(t, "Janet", u.FirstName)
	assert.Equal(t, "Doe", u.LastName)
	require.NotNil(t, u.Phone)
	assert.Equal(t, phone, *u.Phone)

	future := time.Now().Add(48 * time.Hour)
	assert.Error(t, (&ProfileUpdate{Birthday: &future}).Validate())

	long := "+3805012345678901"
	assert.Error(t, (&ProfileUpdate{Phone: &long}).Validate())
}
