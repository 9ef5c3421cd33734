package store

import (
	"time"

	"github.com/taskhub-dev/taskhub/internal/models"
	"gorm.io/gorm"
)

// Tasks is the task store adapter. Timestamps are an explicit contract:
// every mutating call takes "now" and sets created/updated itself instead of
// relying on ORM hooks.
type Tasks struct {
	conn *gorm.DB
}

func NewTasks(conn *gorm.DB) *Tasks {
	return &Tasks{conn: conn}
}

func (s *Tasks) Create(task *models.Task, now time.Time) error {
	task.CreatedAt = now
	task.UpdatedAt = now
	return translate(s.conn.Create(task).Error)
}

func (s *Tasks) FindByID(id uint) (*models.Task, error) {
	var task models.Task

	if err := s.conn.Where("id = ?", id).First(&task).Error; err != nil {
		return nil, translate(err)
	}

	return &task, nil
}

// ListByOwner returns the owner's tasks newest first. No pagination.
func (s *Tasks) ListByOwner(ownerID uint) ([]models.Task, error) {
	tasks := []models.Task{}

	if err := s.conn.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, translate(err)
	}

	return tasks, nil
}

// Update applies the given column changes, refreshes updated_at to now, and
// returns the updated record. Omitted columns are left unchanged.
func (s *Tasks) Update(id uint, changes map[string]interface{}, now time.Time) (*models.Task, error) {
	changes["updated_at"] = now

	result := s.conn.Model(&models.Task{}).Where("id = ?", id).Updates(changes)

	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return s.FindByID(id)
}

func (s *Tasks) Delete(id uint) error {
	result := s.conn.Delete(&models.Task{}, id)

	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
