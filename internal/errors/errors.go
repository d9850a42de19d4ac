package errors

import (
	"errors"
	"net/http"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("invalid data")
	// ErrUserExists is returned when the email or username is already taken.
	ErrUserExists = errors.New("this user already exists")
	// ErrPasswordMismatch is returned when password and verifyPassword differ.
	ErrPasswordMismatch = errors.New("passwords do not match, please try again")
	// ErrUserNotFound is returned when no user matches the given email or id.
	ErrUserNotFound = errors.New("this user does not exist")
	// ErrWrongPassword is returned when the password hash comparison fails.
	ErrWrongPassword = errors.New("wrong password")
	// ErrInvalidInfo is returned from change-password when the new password
	// equals the current one or the old password does not match. Deliberately
	// vague so the response does not reveal which check failed.
	ErrInvalidInfo = errors.New("invalid info")
	// ErrNoToken is returned when a protected route is hit without a bearer token.
	ErrNoToken = errors.New("access denied: no token provided")
	// ErrInvalidToken is returned on a malformed, tampered, or expired token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrPostExists is returned when a post with the same title already exists.
	ErrPostExists = errors.New("this post already exists")
	// ErrPostNotFound is returned when no post matches the given title.
	ErrPostNotFound = errors.New("this post does not exist")
	// ErrNoPosts is returned when the caller owns no posts.
	ErrNoPosts = errors.New("no posts found for this user")
	// ErrNotPostOwner is returned when a caller mutates a post they do not own.
	ErrNotPostOwner = errors.New("you can only modify your own posts")
)

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
	Token   string `json:"token,omitempty"`
	Post    any    `json:"post,omitempty"`
	Posts   any    `json:"posts,omitempty"`
}

// Success builds a success envelope with the given comment.
func Success(comment string) Response {
	return Response{Status: "success", Comment: comment}
}

// Error builds an error envelope with the given comment.
func Error(comment string) Response {
	return Response{Status: "error", Comment: comment}
}

// MapError maps a domain error to an HTTP status code and a client-safe
// comment. Unknown errors degrade to 500 with a generic message so internal
// detail never leaks to the client.
func MapError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrWrongPassword),
		errors.Is(err, ErrInvalidInfo),
		errors.Is(err, ErrUserExists),
		errors.Is(err, ErrPostExists),
		errors.Is(err, ErrNoToken):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, ErrNotPostOwner):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPostNotFound),
		errors.Is(err, ErrNoPosts):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "an unexpected error occurred, please try again later"
	}
}

// IsDuplicateKey reports whether err is a storage-level unique-constraint
// violation. Both the GORM translated error and the raw MySQL 1062 error are
// recognized.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
