package persistent

import (
	"errors"

	"lofi-basho/internal/entity"
	"lofi-basho/internal/model"

	"gorm.io/gorm"
)

type HaikuRepository interface {
	Create(haiku *entity.Haiku) error
	GetByID(id uint) (*entity.Haiku, error)
	List(ownerID *uint, isDraft bool, skip, limit int) ([]*entity.Haiku, error)
	ListLiked(userID uint) ([]*entity.Haiku, error)
	Exists(id uint) (bool, error)
	ToggleLike(haikuID, userID uint) (bool, error)
	IsLiked(haikuID, userID uint) (bool, error)
}

type haikuRepository struct {
	db *gorm.DB
}

func NewHaikuRepository(db *gorm.DB) HaikuRepository {
	return &haikuRepository{db: db}
}

// Create persists a haiku with tags in their joined storage form and
// rebuilds the entity from the stored row. A brand-new haiku cannot have
// likes yet, so the count is zero without a query.
func (r *haikuRepository) Create(haiku *entity.Haiku) error {
	stored, err := model.JoinTags(haiku.Tags)
	if err != nil {
		return err
	}

	haikuModel := &model.HaikuModel{
		Text:    haiku.Text,
		Color:   haiku.Color,
		Tags:    stored,
		IsDraft: haiku.IsDraft,
		OwnerID: haiku.OwnerID,
	}
	if err := r.db.Create(haikuModel).Error; err != nil {
		return err
	}

	var owner model.UserModel
	if err := r.db.First(&owner, haikuModel.OwnerID).Error; err != nil {
		return err
	}

	*haiku = *ToHaikuEntity(haikuModel, &owner, 0)
	return nil
}

// GetByID returns (nil, nil) when the id does not exist.
func (r *haikuRepository) GetByID(id uint) (*entity.Haiku, error) {
	var haikuModel model.HaikuModel
	if err := r.db.First(&haikuModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	haikus, err := r.shape([]model.HaikuModel{haikuModel})
	if err != nil {
		return nil, err
	}
	return haikus[0], nil
}

// List filters by draft flag and optionally by owner, ordered by ascending
// id (creation order), with offset and cap applied in the query.
func (r *haikuRepository) List(ownerID *uint, isDraft bool, skip, limit int) ([]*entity.Haiku, error) {
	query := r.db.Where("is_draft = ?", isDraft)
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}

	var haikuModels []model.HaikuModel
	if err := query.Distinct().Order("id ASC").Offset(skip).Limit(limit).Find(&haikuModels).Error; err != nil {
		return nil, err
	}

	return r.shape(haikuModels)
}

// ListLiked returns every haiku the user has a like row for, drafts
// included, ordered by ascending haiku id.
func (r *haikuRepository) ListLiked(userID uint) ([]*entity.Haiku, error) {
	var haikuModels []model.HaikuModel
	err := r.db.Model(&model.HaikuModel{}).
		Joins("INNER JOIN likes ON likes.haiku_id = haikus.id").
		Where("likes.user_id = ?", userID).
		Order("haikus.id ASC").
		Find(&haikuModels).Error
	if err != nil {
		return nil, err
	}

	return r.shape(haikuModels)
}

func (r *haikuRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.HaikuModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ToggleLike deletes the like row if present, otherwise inserts it. The
// check and the write run in one transaction; if a concurrent toggle wins
// the insert race, the composite key rejects the duplicate and the result
// is reported as not-liked.
func (r *haikuRepository) ToggleLike(haikuID, userID uint) (bool, error) {
	liked := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.LikeModel
		err := tx.Where("haiku_id = ? AND user_id = ?", haikuID, userID).First(&existing).Error
		if err == nil {
			return tx.Where("haiku_id = ? AND user_id = ?", haikuID, userID).
				Delete(&model.LikeModel{}).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		createErr := tx.Create(&model.LikeModel{UserID: userID, HaikuID: haikuID}).Error
		if createErr != nil {
			if errors.Is(createErr, gorm.ErrDuplicatedKey) {
				// the other request won; the pair is already liked
				return nil
			}
			return createErr
		}
		liked = true
		return nil
	})
	return liked, err
}

func (r *haikuRepository) IsLiked(haikuID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("haiku_id = ? AND user_id = ?", haikuID, userID).
		Count(&count).Error
	return count > 0, err
}

type likeCountRow struct {
	HaikuID uint
	Count   int
}

// shape turns rows into read models: owners loaded in one batch and like
// counts in one grouped count, instead of per-row navigation.
func (r *haikuRepository) shape(haikuModels []model.HaikuModel) ([]*entity.Haiku, error) {
	if len(haikuModels) == 0 {
		return []*entity.Haiku{}, nil
	}

	haikuIDs := make([]uint, 0, len(haikuModels))
	ownerIDs := make([]uint, 0, len(haikuModels))
	for _, h := range haikuModels {
		haikuIDs = append(haikuIDs, h.ID)
		ownerIDs = append(ownerIDs, h.OwnerID)
	}

	var owners []model.UserModel
	if err := r.db.Where("id IN ?", ownerIDs).Find(&owners).Error; err != nil {
		return nil, err
	}
	ownerByID := make(map[uint]*model.UserModel, len(owners))
	for i := range owners {
		ownerByID[owners[i].ID] = &owners[i]
	}

	var counts []likeCountRow
	err := r.db.Model(&model.LikeModel{}).
		Select("haiku_id, COUNT(*) AS count").
		Where("haiku_id IN ?", haikuIDs).
		Group("haiku_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	countByID := make(map[uint]int, len(counts))
	for _, c := range counts {
		countByID[c.HaikuID] = c.Count
	}

	haikus := make([]*entity.Haiku, len(haikuModels))
	for i := range haikuModels {
		haikus[i] = ToHaikuEntity(&haikuModels[i], ownerByID[haikuModels[i].OwnerID], countByID[haikuModels[i].ID])
	}
	return haikus, nil
}
