package services

import (
	"testing"

	"frota-api/app/models"
	"frota-api/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAccountService(t *testing.T) AdministradorService {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Administrator{}))
	return NewAdministradorService(repo.NewAdministradorRepository(gdb))
}

func TestCreateHashesPassword(t *testing.T) {
	s := newAccountService(t)
	a, err := s.Create("adm@frota.local", "segredo", models.RoleAdmin)
	require.NoError(t, err)
	assert.NotZero(t, a.ID)
	assert.NotEqual(t, "segredo", a.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("segredo")))
}

func TestLogin(t *testing.T) {
	s := newAccountService(t)
	_, err := s.Create("adm@frota.local", "segredo", models.RoleAdmin)
	require.NoError(t, err)

	a, err := s.Login("adm@frota.local", "segredo")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, a.Role)

	_, err = s.Login("adm@frota.local", "errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login("ninguem@frota.local", "segredo")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdminIdempotent(t *testing.T) {
	s := newAccountService(t)
	require.NoError(t, s.EnsureAdmin("adm@frota.local", "segredo"))
	require.NoError(t, s.EnsureAdmin("adm@frota.local", "segredo"))

	accounts, err := s.List(1)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, models.RoleAdmin, accounts[0].Role)
}
