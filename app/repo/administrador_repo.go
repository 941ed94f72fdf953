package repo

import (
	"errors"

	"frota-api/app/models"

	"gorm.io/gorm"
)

type AdministradorRepository struct{ db *gorm.DB }

func NewAdministradorRepository(db *gorm.DB) *AdministradorRepository {
	return &AdministradorRepository{db: db}
}

func (r *AdministradorRepository) Create(a *models.Administrator) error {
	return r.db.Create(a).Error
}

// FindByEmail returns (nil, nil) when no account matches.
func (r *AdministradorRepository) FindByEmail(email string) (*models.Administrator, error) {
	var a models.Administrator
	if err := r.db.Where("email = ?", email).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AdministradorRepository) FindByID(id uint) (*models.Administrator, error) {
	var a models.Administrator
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AdministradorRepository) List(page int) ([]models.Administrator, error) {
	if page < 1 {
		page = 1
	}
	var accounts []models.Administrator
	err := r.db.Offset((page - 1) * pageSize).Limit(pageSize).Find(&accounts).Error
	return accounts, err
}

func (r *AdministradorRepository) CountByEmail(email string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Administrator{}).Where("email = ?", email).Count(&count).Error
}
