package models

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// ValidRole reports whether perfil is one of the known roles.
func ValidRole(perfil string) bool {
	return perfil == RoleAdmin || perfil == RoleUser
}

// Administrator is an API account. The senha column holds a bcrypt hash,
// never the raw password.
type Administrator struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:255;not null;column:email" json:"email"`
	PasswordHash string `gorm:"size:255;not null;column:senha" json:"-"`
	Role         string `gorm:"size:32;not null;column:perfil" json:"perfil"`
}

func (Administrator) TableName() string { return "administradores" }
