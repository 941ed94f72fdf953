package dto

type AdministradorDTO struct {
	Email  string `json:"email"`
	Senha  string `json:"senha"`
	Perfil string `json:"perfil"`
}

// AdministradorView is the outward shape of an account; it never carries
// the password hash.
type AdministradorView struct {
	ID     uint   `json:"id"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
}
