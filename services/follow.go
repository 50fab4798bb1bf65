package services

import (
	"errors"

	"github.com/pmitra96/foodshare/logger"
	"github.com/pmitra96/foodshare/models"

	"gorm.io/gorm"
)

// SubscriptionView is one followed author with a capped list of their
// recipes and the total authored count, independent of the cap.
type SubscriptionView struct {
	UserView
	Recipes      []RecipeSummary `json:"recipes"`
	RecipesCount int64           `json:"recipes_count"`
}

// FollowService manages user-to-user subscriptions.
type FollowService struct {
	DB *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{DB: db}
}

// Follow subscribes userID to targetID's recipes. Following yourself is
// rejected, duplicate subscriptions fail with ErrAlreadyExists.
func (s *FollowService) Follow(userID, targetID uint) (*SubscriptionView, error) {
	if userID == targetID {
		return nil, ErrSelfFollow
	}

	var target models.User
	if err := s.DB.First(&target, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var count int64
	err := s.DB.Model(&models.Follow{}).
		Where("user_id = ? AND following_id = ?", userID, targetID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyExists
	}

	relation := models.Follow{UserID: userID, FollowingID: targetID}
	if err := s.DB.Create(&relation).Error; err != nil {
		return nil, translateWriteError(err)
	}

	logger.Info("User subscribed", "user_id", userID, "following_id", targetID)
	view, err := s.subscriptionView(&target, 0)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Unfollow removes the subscription or fails with ErrNotFound.
func (s *FollowService) Unfollow(userID, targetID uint) error {
	var target models.User
	if err := s.DB.First(&target, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	result := s.DB.
		Where("user_id = ? AND following_id = ?", userID, targetID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	logger.Info("User unsubscribed", "user_id", userID, "following_id", targetID)
	return nil
}

// Subscriptions lists every author the user follows, each with their
// recipes capped at recipesLimit (0 = uncapped, insertion order) and the
// uncapped recipe count.
func (s *FollowService) Subscriptions(userID uint, recipesLimit int) ([]SubscriptionView, error) {
	var follows []models.Follow
	err := s.DB.
		Preload("Following").
		Where("user_id = ?", userID).
		Order("id").
		Find(&follows).Error
	if err != nil {
		return nil, err
	}

	views := make([]SubscriptionView, 0, len(follows))
	for i := range follows {
		view, err := s.subscriptionView(&follows[i].Following, recipesLimit)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *FollowService) subscriptionView(author *models.User, recipesLimit int) (*SubscriptionView, error) {
	query := s.DB.Where("author_id = ?", author.ID).Order("id")
	if recipesLimit > 0 {
		query = query.Limit(recipesLimit)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}

	var total int64
	if err := s.DB.Model(&models.Recipe{}).Where("author_id = ?", author.ID).Count(&total).Error; err != nil {
		return nil, err
	}

	summaries := make([]RecipeSummary, 0, len(recipes))
	for i := range recipes {
		summaries = append(summaries, summarize(&recipes[i]))
	}

	view := SubscriptionView{
		UserView: UserView{
			ID:        author.ID,
			Email:     author.Email,
			Username:  author.Username,
			FirstName: author.FirstName,
			LastName:  author.LastName,
			// Always true here: the author came from this user's
			// follow rows.
			IsSubscribed: true,
		},
		Recipes:      summaries,
		RecipesCount: total,
	}
	return &view, nil
}
