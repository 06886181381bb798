package http

import (
	"errors"
	"net/http"
	"strconv"

	"lofi-basho/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HaikuHandler struct {
	haikuUseCase usecase.HaikuUseCase
}

func NewHaikuHandler(haikuUseCase usecase.HaikuUseCase) *HaikuHandler {
	return &HaikuHandler{
		haikuUseCase: haikuUseCase,
	}
}

type CreateHaikuRequest struct {
	Text    string   `json:"text" binding:"required"`
	Color   string   `json:"color"`
	IsDraft bool     `json:"is_draft"`
	Tags    []string `json:"tags"`
}

// Create godoc
// @Summary      Create a haiku owned by the current user
// @Tags         haikus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateHaikuRequest true "Haiku data"
// @Success      200  {object}  entity.Haiku
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /haikus/ [post]
func (h *HaikuHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CreateHaikuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	haiku, err := h.haikuUseCase.Create(user.ID, req.Text, req.Color, req.Tags, req.IsDraft)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidTag) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, haiku)
}

// List godoc
// @Summary      List public haikus
// @Tags         haikus
// @Produce      json
// @Param        skip  query int false "Offset"   default(0)
// @Param        limit query int false "Page cap" default(10)
// @Success      200  {array}  entity.Haiku
// @Router       /haikus/ [get]
func (h *HaikuHandler) List(c *gin.Context) {
	skip := usecase.DefaultSkip
	limit := usecase.DefaultLimit

	if skipStr := c.Query("skip"); skipStr != "" {
		if s, err := strconv.Atoi(skipStr); err == nil && s >= 0 {
			skip = s
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	haikus, err := h.haikuUseCase.List(nil, false, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch haikus"})
		return
	}

	c.JSON(http.StatusOK, haikus)
}

// Get godoc
// @Summary      Get a haiku by id
// @Tags         haikus
// @Produce      json
// @Param        id path int true "Haiku ID"
// @Success      200  {object}  entity.Haiku
// @Failure      404  {object}  map[string]string
// @Router       /haikus/{id} [get]
func (h *HaikuHandler) Get(c *gin.Context) {
	haikuID, ok := parseID(c)
	if !ok {
		return
	}

	haiku, err := h.haikuUseCase.Get(haikuID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Haiku not found"})
		return
	}

	c.JSON(http.StatusOK, haiku)
}

// Mine godoc
// @Summary      List the current user's haikus
// @Tags         haikus
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Haiku
// @Failure      401  {object}  map[string]string
// @Router       /haikus/mine/ [get]
func (h *HaikuHandler) Mine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// Same non-draft filter as the public listing, scoped to the caller.
	// Drafts are only served on /haikus/drafts/.
	haikus, err := h.haikuUseCase.List(&user.ID, false, usecase.DefaultSkip, usecase.DefaultLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch haikus"})
		return
	}

	c.JSON(http.StatusOK, haikus)
}

// Drafts godoc
// @Summary      List the current user's drafts
// @Tags         haikus
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Haiku
// @Failure      401  {object}  map[string]string
// @Router       /haikus/drafts/ [get]
func (h *HaikuHandler) Drafts(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	haikus, err := h.haikuUseCase.List(&user.ID, true, usecase.DefaultSkip, usecase.DefaultLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch haikus"})
		return
	}

	c.JSON(http.StatusOK, haikus)
}

// Liked godoc
// @Summary      List haikus the current user has liked
// @Tags         haikus
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Haiku
// @Failure      401  {object}  map[string]string
// @Router       /haikus/liked/ [get]
func (h *HaikuHandler) Liked(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	haikus, err := h.haikuUseCase.ListLiked(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch liked haikus"})
		return
	}

	c.JSON(http.StatusOK, haikus)
}

// ToggleLike godoc
// @Summary      Like or unlike a haiku
// @Description  Toggles the like for the current user and reports the new state
// @Tags         haikus
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Haiku ID"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /haikus/{id}/like/ [post]
func (h *HaikuHandler) ToggleLike(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	haikuID, ok := parseID(c)
	if !ok {
		return
	}

	liked, err := h.haikuUseCase.ToggleLike(haikuID, user.ID)
	if err != nil {
		if errors.Is(err, usecase.ErrHaikuNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Haiku not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// IsLiked godoc
// @Summary      Check whether the current user likes a haiku
// @Tags         haikus
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Haiku ID"
// @Success      200  {object}  map[string]bool
// @Router       /haikus/{id}/is-liked [get]
func (h *HaikuHandler) IsLiked(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	haikuID, ok := parseID(c)
	if !ok {
		return
	}

	isLiked, err := h.haikuUseCase.IsLiked(haikuID, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check like status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_liked": isLiked})
}
