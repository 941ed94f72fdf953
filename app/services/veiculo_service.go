package services

import (
	"frota-api/app/models"
	"frota-api/app/repo"
)

// VeiculoService is the contract the route layer programs against, so
// handlers can be exercised with a fake store.
type VeiculoService interface {
	Create(v *models.Vehicle) error
	Update(v *models.Vehicle) error
	FindByID(id uint) (*models.Vehicle, error)
	Delete(v *models.Vehicle) error
	List(page int, nome string) ([]models.Vehicle, error)
}

type veiculoService struct{ vehicles *repo.VeiculoRepository }

func NewVeiculoService(vehicles *repo.VeiculoRepository) VeiculoService {
	return &veiculoService{vehicles: vehicles}
}

func (s *veiculoService) Create(v *models.Vehicle) error { return s.vehicles.Create(v) }

func (s *veiculoService) Update(v *models.Vehicle) error { return s.vehicles.Update(v) }

func (s *veiculoService) FindByID(id uint) (*models.Vehicle, error) {
	return s.vehicles.FindByID(id)
}

func (s *veiculoService) Delete(v *models.Vehicle) error { return s.vehicles.Delete(v) }

func (s *veiculoService) List(page int, nome string) ([]models.Vehicle, error) {
	return s.vehicles.List(page, nome)
}
