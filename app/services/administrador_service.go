package services

import (
	"errors"
	"fmt"

	"frota-api/app/models"
	"frota-api/app/repo"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AdministradorService is the account-side counterpart of VeiculoService.
type AdministradorService interface {
	Login(email, senha string) (*models.Administrator, error)
	Create(email, senha, perfil string) (*models.Administrator, error)
	FindByID(id uint) (*models.Administrator, error)
	List(page int) ([]models.Administrator, error)
	EnsureAdmin(email, senha string) error
}

type administradorService struct{ accounts *repo.AdministradorRepository }

func NewAdministradorService(accounts *repo.AdministradorRepository) AdministradorService {
	return &administradorService{accounts: accounts}
}

// Login compares the supplied password against the stored bcrypt hash and
// returns ErrInvalidCredentials on any mismatch, including unknown emails.
func (s *administradorService) Login(email, senha string) (*models.Administrator, error) {
	a, err := s.accounts.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("find administrator: %w", err)
	}
	if a == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(senha)) != nil {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

func (s *administradorService) Create(email, senha, perfil string) (*models.Administrator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	a := &models.Administrator{Email: email, PasswordHash: string(hash), Role: perfil}
	if err := s.accounts.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *administradorService) FindByID(id uint) (*models.Administrator, error) {
	return s.accounts.FindByID(id)
}

func (s *administradorService) List(page int) ([]models.Administrator, error) {
	return s.accounts.List(page)
}

// EnsureAdmin seeds the configured Admin account once, so the Admin-only
// creation route is reachable on a fresh database.
func (s *administradorService) EnsureAdmin(email, senha string) error {
	count, err := s.accounts.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.Create(email, senha, models.RoleAdmin)
	return err
}
