package main

import (
	"errors"
	"fmt"

	"lofi-basho/internal/model"
	"lofi-basho/pkg/config"
	"lofi-basho/pkg/database"
	"lofi-basho/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		username string
		password string
	}{
		{"alice@test.com", "alice_haiku", "password123"},
		{"bob@test.com", "bob_haiku", "password123"},
		{"charlie@test.com", "charlie_haiku", "password123"},
	}

	userIDs := make([]uint, 0, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &model.UserModel{
			Email:          userData.email,
			Username:       userData.username,
			HashedPassword: string(hashedPassword),
		}

		var existingUser model.UserModel
		result := db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existingUser)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Username)
			userIDs = append(userIDs, existingUser.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)
	}

	if len(userIDs) == 0 {
		return fmt.Errorf("no users available for seeding haikus")
	}

	testHaikus := []struct {
		text    string
		color   string
		tags    []string
		isDraft bool
	}{
		{"an old silent pond\na frog jumps into the pond\nsplash! silence again", "bg-green-100/70", []string{"nature", "classic"}, false},
		{"over the wintry\nforest winds howl in rage\nwith no leaves to blow", "bg-blue-100/70", []string{"winter"}, false},
		{"light of the moon\nmoves west flowers' shadows\ncreep eastward", "", []string{"moon", "night"}, false},
		{"first autumn morning\nthe mirror I stare into\nshows my father's face", "bg-amber-100/70", []string{"autumn", "family"}, false},
		{"in the twilight rain\nthese brilliant-hued hibiscus\na lovely sunset", "", []string{"rain"}, true},
	}

	haikuIDs := make([]uint, 0, len(testHaikus))

	for i, haikuData := range testHaikus {
		tags, err := model.JoinTags(haikuData.tags)
		if err != nil {
			return fmt.Errorf("invalid seed tags: %w", err)
		}

		haiku := &model.HaikuModel{
			Text:    haikuData.text,
			Color:   haikuData.color,
			Tags:    tags,
			IsDraft: haikuData.isDraft,
			OwnerID: userIDs[i%len(userIDs)],
		}

		var existingHaiku model.HaikuModel
		result := db.Where("text = ?", haiku.Text).First(&existingHaiku)
		if result.Error == nil {
			log.Info("Haiku %d already exists, skipping", existingHaiku.ID)
			haikuIDs = append(haikuIDs, existingHaiku.ID)
			continue
		}

		if err := db.Create(haiku).Error; err != nil {
			log.Error("Failed to create haiku: %v", err)
			continue
		}

		log.Info("Created haiku %d for user %d", haiku.ID, haiku.OwnerID)
		if !haiku.IsDraft {
			haikuIDs = append(haikuIDs, haiku.ID)
		}
	}

	// Cross-like the published haikus so the feed has counts to show.
	for i, haikuID := range haikuIDs {
		for j, userID := range userIDs {
			if (i+j)%2 != 0 {
				continue
			}

			like := &model.LikeModel{
				UserID:  userID,
				HaikuID: haikuID,
			}
			if err := db.Create(like).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					continue
				}
				log.Error("Failed to create like: %v", err)
			}
		}
	}

	return nil
}
