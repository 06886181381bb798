package usecase

import (
	"errors"
	"fmt"

	"lofi-basho/internal/entity"
	"lofi-basho/internal/model"
	"lofi-basho/internal/repo/persistent"
	"lofi-basho/pkg/logger"
)

var (
	ErrHaikuNotFound = errors.New("haiku not found")
	ErrInvalidTag    = errors.New("tags must not contain the ',' character")
)

const (
	DefaultSkip  = 0
	DefaultLimit = 10
)

type HaikuUseCase interface {
	Create(ownerID uint, text, color string, tags []string, isDraft bool) (*entity.Haiku, error)
	List(ownerID *uint, isDraft bool, skip, limit int) ([]*entity.Haiku, error)
	Get(haikuID uint) (*entity.Haiku, error)
	ListLiked(userID uint) ([]*entity.Haiku, error)
	ToggleLike(haikuID, userID uint) (bool, error)
	IsLiked(haikuID, userID uint) (bool, error)
}

type haikuUseCase struct {
	haikuRepo persistent.HaikuRepository
	logger    *logger.Logger
}

func NewHaikuUseCase(haikuRepo persistent.HaikuRepository, logger *logger.Logger) HaikuUseCase {
	return &haikuUseCase{
		haikuRepo: haikuRepo,
		logger:    logger,
	}
}

// Create validates the tag list against the storage delimiter up front, so
// a tag that would not round-trip never reaches the database.
func (uc *haikuUseCase) Create(ownerID uint, text, color string, tags []string, isDraft bool) (*entity.Haiku, error) {
	if _, err := model.JoinTags(tags); err != nil {
		return nil, ErrInvalidTag
	}

	haiku := &entity.Haiku{
		Text:    text,
		Color:   color,
		Tags:    tags,
		IsDraft: isDraft,
		OwnerID: ownerID,
	}

	if err := uc.haikuRepo.Create(haiku); err != nil {
		uc.logger.Error("Failed to create haiku: %v", err)
		return nil, fmt.Errorf("failed to create haiku")
	}

	return haiku, nil
}

func (uc *haikuUseCase) List(ownerID *uint, isDraft bool, skip, limit int) ([]*entity.Haiku, error) {
	if skip < 0 {
		skip = DefaultSkip
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return uc.haikuRepo.List(ownerID, isDraft, skip, limit)
}

func (uc *haikuUseCase) Get(haikuID uint) (*entity.Haiku, error) {
	haiku, err := uc.haikuRepo.GetByID(haikuID)
	if err != nil {
		return nil, err
	}
	if haiku == nil {
		return nil, ErrHaikuNotFound
	}
	return haiku, nil
}

func (uc *haikuUseCase) ListLiked(userID uint) ([]*entity.Haiku, error) {
	return uc.haikuRepo.ListLiked(userID)
}

func (uc *haikuUseCase) ToggleLike(haikuID, userID uint) (bool, error) {
	exists, err := uc.haikuRepo.Exists(haikuID)
	if err != nil {
		uc.logger.Error("Failed to check haiku existence: %v", err)
		return false, fmt.Errorf("failed to toggle like")
	}
	if !exists {
		return false, ErrHaikuNotFound
	}

	return uc.haikuRepo.ToggleLike(haikuID, userID)
}

func (uc *haikuUseCase) IsLiked(haikuID, userID uint) (bool, error) {
	return uc.haikuRepo.IsLiked(haikuID, userID)
}
