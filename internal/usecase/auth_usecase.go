package usecase

import (
	"errors"
	"fmt"
	"io"

	"lofi-basho/internal/entity"
	"lofi-basho/internal/repo/persistent"
	"lofi-basho/pkg/jwt"
	"lofi-basho/pkg/logger"
	"lofi-basho/pkg/s3"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUseCase interface {
	Register(username, email, password, avatar string) (*entity.User, error)
	Login(email, password string) (string, error)
	GetUser(userID uint) (*entity.User, error)
	GetUserByEmail(email string) (*entity.User, error)
	UploadAvatar(userID uint, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(username, email, password, avatar string) (*entity.User, error) {
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		uc.logger.Error("Failed to look up email: %v", err)
		return nil, fmt.Errorf("failed to process registration")
	}
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Avatar:   avatar,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user")
	}

	user.Password = ""
	return user, nil
}

// Login verifies credentials and issues an access token whose subject is
// the user's email. Lookup failure and password mismatch are reported
// identically so the response does not leak which emails exist.
func (uc *authUseCase) Login(email, password string) (string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		uc.logger.Error("Failed to look up email: %v", err)
		return "", ErrInvalidCredentials
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return "", fmt.Errorf("failed to generate token")
	}

	return token, nil
}

func (uc *authUseCase) GetUser(userID uint) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) GetUserByEmail(email string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) UploadAvatar(userID uint, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error) {
	avatarURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := uc.userRepo.UpdateAvatar(userID, avatarURL); err != nil {
		uc.logger.Error("Failed to update avatar: %v", err)
		return nil, fmt.Errorf("failed to update avatar")
	}

	user.Password = ""
	user.Avatar = avatarURL
	return user, nil
}
