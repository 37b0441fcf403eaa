package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/emilsberzins2000/AnonForum/models"
	"github.com/emilsberzins2000/AnonForum/utils"
)

// CreateUser records a new anonymous identity under the given display name
// and issues it a fresh anon token. The name is trimmed and truncated to 30
// runes; an empty result is a ValidationError. Binding the token to a
// session is the caller's job.
func (s *ForumStore) CreateUser(displayName string) (*models.User, error) {
	name := normalize(displayName, MaxDisplayName)
	if name == "" {
		return nil, validationf("display name cannot be empty")
	}

	token, err := utils.NewAnonToken()
	if err != nil {
		return nil, &StorageError{Op: "generate anon token", Err: err}
	}

	user := models.User{DisplayName: name, AnonID: token}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, wrapWriteErr("create user", err)
	}
	return &user, nil
}

// GetUserByAnonID resolves an anon token to its user. A missing token
// returns (nil, nil): the caller is a guest.
func (s *ForumStore) GetUserByAnonID(anonID string) (*models.User, error) {
	if anonID == "" {
		return nil, nil
	}
	var user models.User
	err := s.db.Where("anon_id = ?", anonID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "lookup user", Err: err}
	}
	return &user, nil
}
