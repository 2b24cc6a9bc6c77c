package v1

import (
	"fmt"
	"time"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/comments"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
)

// DateLayout is the wire format of calendar dates such as birthdays
const DateLayout = "2006-01-02"

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse carries a short informational message
type MessageResponse struct {
	Msg string `json:"msg"`
}

// HealthResponse is returned by the health checker
type HealthResponse struct {
	Message string `json:"message"`
}

// SigninRequest is the JSON body of a signin call
type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned on signin and refresh
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// NewTokenResponse converts a token pair
func NewTokenResponse(pair *users.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
	}
}

// UserResponse is the public representation of a user
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	Avatar    *string   `json:"avatar"`
	About     *string   `json:"about"`
	Birthday  *string   `json:"birthday"`
	Phone     *string   `json:"phone"`
	IsBlocked bool      `json:"is_blocked"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse converts a domain user, leaving out credentials
func NewUserResponse(user *users.User) UserResponse {
	response := UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		Avatar:    user.Avatar,
		About:     user.About,
		Phone:     user.Phone,
		IsBlocked: user.IsBlocked,
		CreatedAt: user.CreatedAt,
	}
	if user.Birthday != nil {
		birthday := user.Birthday.Format(DateLayout)
		response.Birthday = &birthday
	}
	return response
}

// ProfileUpdateRequest is the body of PATCH /users/me
type ProfileUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	About     *string `json:"about"`
	Birthday  *string `json:"birthday"`
	Phone     *string `json:"phone"`
}

// ToDomain parses the request into a validated profile update
func (r *ProfileUpdateRequest) ToDomain() (*users.ProfileUpdate, error) {
	update := &users.ProfileUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		About:     r.About,
		Phone:     r.Phone,
	}
	if r.Birthday != nil {
		birthday, err := time.Parse(DateLayout, *r.Birthday)
		if err != nil {
			return nil, fmt.Errorf("birthday must be formatted as %s", DateLayout)
		}
		update.Birthday = &birthday
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}
	return update, nil
}

// RoleRequest is the body of a role change
type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// DescriptionRequest is the body of a photo description update
type DescriptionRequest struct {
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// CommentRequest is the body of comment create and update calls
type CommentRequest struct {
	Text string `json:"text" binding:"required,min=1,max=500"`
}

// PostResponse is the representation of a photo post
type PostResponse struct {
	ID          uint      `json:"id"`
	URL         string    `json:"url"`
	QRCodeURL   *string   `json:"qr_code_url"`
	Description *string   `json:"description"`
	ContentType string    `json:"content_type"`
	OwnerID     uint      `json:"owner_id"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPostResponse converts a domain post
func NewPostResponse(post *posts.Post) PostResponse {
	return PostResponse{
		ID:          post.ID,
		URL:         post.ImageURL,
		QRCodeURL:   post.QRCodeURL,
		Description: post.Description,
		ContentType: post.ContentType,
		OwnerID:     post.OwnerID,
		Tags:        post.TagNames(),
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

// CommentResponse is the representation of a comment
type CommentResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `json:"user_id"`
	PostID    uint      `json:"post_id"`
}

// NewCommentResponse converts a domain comment
func NewCommentResponse(comment *comments.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		UserID:    comment.UserID,
		PostID:    comment.PostID,
	}
}
