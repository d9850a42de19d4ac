package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"eksiblog/internal/auth"
	apperrors "eksiblog/internal/errors"
	"eksiblog/internal/service"
)

// PostHandler handles post endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePostRequest represents a post creation request.
type CreatePostRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdatePostRequest represents a post update request.
type UpdatePostRequest struct {
	Title          string `json:"title" validate:"required"`
	NewDescription string `json:"newDescription" validate:"required"`
}

// DeletePostRequest represents a post deletion request.
type DeletePostRequest struct {
	Title string `json:"title" validate:"required"`
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePostRequest true "Post data"
// @Success 201 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrValidation)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrValidation)
	}

	post, err := h.postService.Create(c.Request().Context(), callerID, req.Title, req.Description)
	if err != nil {
		return respondError(c, err)
	}

	resp := apperrors.Success("post created successfully")
	resp.Post = post
	return c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List the caller's posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return respondError(c, err)
	}

	posts, err := h.postService.ListByOwner(c.Request().Context(), callerID)
	if err != nil {
		return respondError(c, err)
	}

	resp := apperrors.Success(fmt.Sprintf("there are %d posts for user %s", len(posts), callerID))
	resp.Posts = posts
	return c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Update a post's description by title
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdatePostRequest true "Update data"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /change_post [patch]
func (h *PostHandler) Update(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrValidation)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrValidation)
	}

	post, err := h.postService.UpdateDescription(c.Request().Context(), callerID, req.Title, req.NewDescription)
	if err != nil {
		return respondError(c, err)
	}

	resp := apperrors.Success("post updated")
	resp.Post = post
	return c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a post by title
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeletePostRequest true "Deletion data"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /delete_post [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req DeletePostRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrValidation)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrValidation)
	}

	if err := h.postService.Delete(c.Request().Context(), callerID, req.Title); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.Success(fmt.Sprintf("%s named post is deleted", req.Title)))
}
