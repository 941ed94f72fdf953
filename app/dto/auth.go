package dto

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoggedAdministrator is the login response body.
type LoggedAdministrator struct {
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
	Token  string `json:"token"`
}
