package persistent

import (
	"errors"

	"lofi-basho/internal/entity"
	"lofi-basho/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByID(id uint) (*entity.User, error)
	UpdateAvatar(id uint, avatarURL string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user and copies the assigned id and defaulted
// avatar back onto the entity.
func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

// GetByEmail returns (nil, nil) when no user has the email.
func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

// GetByID returns (nil, nil) when the id does not exist.
func (r *userRepository) GetByID(id uint) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.First(&userModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) UpdateAvatar(id uint, avatarURL string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Update("avatar", avatarURL).Error
}
