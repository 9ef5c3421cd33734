package store

import (
	"time"

	"github.com/taskhub-dev/taskhub/internal/models"
	"gorm.io/gorm"
)

// Users is the credential store adapter. Callers are expected to pass emails
// already lower-cased and trimmed.
type Users struct {
	conn *gorm.DB
}

func NewUsers(conn *gorm.DB) *Users {
	return &Users{conn: conn}
}

// Create persists a new user. The unique email index is the only duplicate
// check; a violation surfaces as ErrConflict.
func (s *Users) Create(user *models.User, now time.Time) error {
	user.CreatedAt = now
	return translate(s.conn.Create(user).Error)
}

func (s *Users) FindByEmail(email string) (*models.User, error) {
	var user models.User

	if err := s.conn.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

func (s *Users) FindByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.conn.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

func (s *Users) UpdatePasswordHash(id uint, hash string) error {
	result := s.conn.Model(&models.User{}).Where("id = ?", id).Update("password_hash", hash)

	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
