package persistent

import (
	"lofi-basho/internal/entity"
	"lofi-basho/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:       m.ID,
		Username: m.Username,
		Email:    m.Email,
		Password: m.HashedPassword,
		Avatar:   m.Avatar,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:             e.ID,
		Username:       e.Username,
		Email:          e.Email,
		HashedPassword: e.Password,
		Avatar:         e.Avatar,
	}
}

// ToHaikuEntity builds the read model for one haiku row: tags split back
// to list form, owner attached, like count as counted at read time.
func ToHaikuEntity(m *model.HaikuModel, owner *model.UserModel, likesCount int) *entity.Haiku {
	if m == nil {
		return nil
	}

	haiku := &entity.Haiku{
		ID:         m.ID,
		Text:       m.Text,
		Color:      m.Color,
		IsDraft:    m.IsDraft,
		Tags:       model.SplitTags(m.Tags),
		Date:       m.Date,
		OwnerID:    m.OwnerID,
		LikesCount: likesCount,
	}

	if owner != nil {
		ownerEntity := ToUserEntity(owner)
		ownerEntity.Password = ""
		haiku.Owner = ownerEntity
	}

	return haiku
}
