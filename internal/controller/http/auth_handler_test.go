package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"lofi-basho/internal/entity"
	"lofi-basho/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(username, email, password, avatar string) (*entity.User, error) {
	args := m.Called(username, email, password, avatar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) Login(email, password string) (string, error) {
	args := m.Called(email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUseCase) GetUser(userID uint) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) GetUserByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UploadAvatar(userID uint, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error) {
	args := m.Called(userID, fileReader, fileKey, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func TestToken_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/token", handler.Token)

	mockUseCase.On("Login", "basho@example.com", "secret123").Return("signed.jwt.token", nil)

	form := url.Values{}
	form.Set("username", "basho@example.com")
	form.Set("password", "secret123")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response TokenResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "signed.jwt.token", response.AccessToken)
	assert.Equal(t, "bearer", response.TokenType)

	mockUseCase.AssertExpectations(t)
}

func TestToken_WrongPassword(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/token", handler.Token)

	mockUseCase.On("Login", "basho@example.com", "wrong").Return("", usecase.ErrInvalidCredentials)

	form := url.Values{}
	form.Set("username", "basho@example.com")
	form.Set("password", "wrong")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Incorrect email or password", response["error"])

	mockUseCase.AssertExpectations(t)
}

func TestRegister_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	mockUser := &entity.User{
		ID:       1,
		Username: "basho",
		Email:    "basho@example.com",
		Avatar:   "https://example.com/avatar.png",
	}

	mockUseCase.On("Register", "basho", "basho@example.com", "secret123", "").Return(mockUser, nil)

	body, _ := json.Marshal(RegisterRequest{
		Username: "basho",
		Email:    "basho@example.com",
		Password: "secret123",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["id"])
	assert.Equal(t, "basho", response["username"])
	assert.NotContains(t, response, "password")
	assert.NotContains(t, response, "hashed_password")

	mockUseCase.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	mockUseCase.On("Register", "basho", "basho@example.com", "secret123", "").
		Return(nil, usecase.ErrEmailRegistered)

	body, _ := json.Marshal(RegisterRequest{
		Username: "basho",
		Email:    "basho@example.com",
		Password: "secret123",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Email already registered", response["error"])

	mockUseCase.AssertExpectations(t)
}

func TestRegister_InvalidBody(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Register")
}

func TestMe_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/users/me", withUser(testUser(), handler.Me))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/me", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "basho@example.com", response["email"])
}

func TestMe_NoUser(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/users/me", handler.Me)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/me", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResolveUser_DeletedSubject(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)

	router := setupTestRouter()
	router.GET("/protected", func(c *gin.Context) {
		c.Set(ctxEmailKey, "gone@example.com")
		ResolveUser(mockUseCase)(c)
	}, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"reached": true})
	})

	mockUseCase.On("GetUserByEmail", "gone@example.com").Return(nil, usecase.ErrUserNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Could not validate credentials", response["error"])

	mockUseCase.AssertExpectations(t)
}

func TestResolveUser_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)

	router := setupTestRouter()
	router.GET("/protected", func(c *gin.Context) {
		c.Set(ctxEmailKey, "basho@example.com")
		ResolveUser(mockUseCase)(c)
	}, func(c *gin.Context) {
		user, ok := currentUser(c)
		assert.True(t, ok)
		c.JSON(http.StatusOK, user)
	})

	mockUseCase.On("GetUserByEmail", "basho@example.com").Return(testUser(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetUser_NotFound(t *testing.T) {
	mockAuth := new(MockAuthUseCase)
	mockHaiku := new(MockHaikuUseCase)
	handler := NewUserHandler(mockAuth, mockHaiku)

	router := setupTestRouter()
	router.GET("/users/:id", handler.GetUser)

	mockAuth.On("GetUser", uint(999)).Return(nil, usecase.ErrUserNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/999", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "User not found", response["error"])

	mockAuth.AssertExpectations(t)
}

func TestGetUserHaikus_Success(t *testing.T) {
	mockAuth := new(MockAuthUseCase)
	mockHaiku := new(MockHaikuUseCase)
	handler := NewUserHandler(mockAuth, mockHaiku)

	router := setupTestRouter()
	router.GET("/users/:id/haikus/", handler.GetUserHaikus)

	ownerID := uint(7)
	mockHaikus := []*entity.Haiku{{ID: 1, Text: "text", OwnerID: 7}}
	mockHaiku.On("List", &ownerID, false, 0, 10).Return(mockHaikus, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/7/haikus/", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockHaiku.AssertExpectations(t)
}

func TestGetUserHaikus_ListError(t *testing.T) {
	mockAuth := new(MockAuthUseCase)
	mockHaiku := new(MockHaikuUseCase)
	handler := NewUserHandler(mockAuth, mockHaiku)

	router := setupTestRouter()
	router.GET("/users/:id/haikus/", handler.GetUserHaikus)

	ownerID := uint(7)
	mockHaiku.On("List", &ownerID, false, 0, 10).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/7/haikus/", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockHaiku.AssertExpectations(t)
}
