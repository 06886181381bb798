package http

import (
	"net/http"
	"strconv"

	"lofi-basho/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authUseCase  usecase.AuthUseCase
	haikuUseCase usecase.HaikuUseCase
}

func NewUserHandler(authUseCase usecase.AuthUseCase, haikuUseCase usecase.HaikuUseCase) *UserHandler {
	return &UserHandler{
		authUseCase:  authUseCase,
		haikuUseCase: haikuUseCase,
	}
}

// GetUser godoc
// @Summary      Get a user's public profile
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.authUseCase.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserHaikus godoc
// @Summary      List a user's public haikus
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {array}  entity.Haiku
// @Router       /users/{id}/haikus/ [get]
func (h *UserHandler) GetUserHaikus(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	haikus, err := h.haikuUseCase.List(&userID, false, usecase.DefaultSkip, usecase.DefaultLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch haikus"})
		return
	}

	c.JSON(http.StatusOK, haikus)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
