package repo

import (
	"errors"
	"strings"

	"frota-api/app/models"

	"gorm.io/gorm"
)

// pageSize is the fixed page length for every listing route.
const pageSize = 10

type VeiculoRepository struct{ db *gorm.DB }

func NewVeiculoRepository(db *gorm.DB) *VeiculoRepository { return &VeiculoRepository{db: db} }

func (r *VeiculoRepository) Create(v *models.Vehicle) error { return r.db.Create(v).Error }

// Update replaces the whole row keyed by ID; last writer wins.
func (r *VeiculoRepository) Update(v *models.Vehicle) error { return r.db.Save(v).Error }

func (r *VeiculoRepository) FindByID(id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := r.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *VeiculoRepository) Delete(v *models.Vehicle) error { return r.db.Delete(v).Error }

// List returns the page-th page of 10 vehicles, optionally filtered by a
// case-insensitive substring match on the name. Pages are 1-indexed.
func (r *VeiculoRepository) List(page int, nome string) ([]models.Vehicle, error) {
	if page < 1 {
		page = 1
	}
	q := r.db.Model(&models.Vehicle{})
	if nome != "" {
		q = q.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(nome)+"%")
	}
	var vehicles []models.Vehicle
	err := q.Offset((page - 1) * pageSize).Limit(pageSize).Find(&vehicles).Error
	return vehicles, err
}
