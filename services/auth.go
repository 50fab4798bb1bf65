package services

import (
	"errors"

	"github.com/pmitra96/foodshare/logger"
	"github.com/pmitra96/foodshare/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService manages user accounts. Token issuance lives in the HTTP
// layer; the core only stores and checks credentials.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Register creates a user with a bcrypt-hashed password. A taken email or
// username fails with ErrAlreadyExists.
func (s *AuthService) Register(email, username, firstName, lastName, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:     email,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Password:  string(hash),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, translateWriteError(err)
	}

	logger.Info("User registered", "user_id", user.ID, "username", username)
	return &user, nil
}

// Authenticate checks the credentials and returns the matching user.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUser returns the user representation as seen by viewerID.
func (s *AuthService) GetUser(userID, viewerID uint) (*UserView, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view, err := userView(s.DB, &user, viewerID)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
