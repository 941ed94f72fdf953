package validation

import "frota-api/app/models"

// ValidateAdministrador checks an account payload. Perfil is expected to be
// defaulted by the caller before calling; empty perfil is reported, not
// defaulted here.
func ValidateAdministrador(email, senha, perfil string) []string {
	var msgs []string
	if len(perfil) < 3 {
		msgs = append(msgs, "O perfil do administrador deve conter ao menos 3 caracteres.")
	} else if !models.ValidRole(perfil) {
		msgs = append(msgs, "O perfil do administrador deve ser Admin ou User.")
	}
	if len(email) < 3 {
		msgs = append(msgs, "O email do administrador deve conter ao menos 3 caracteres.")
	}
	if len(senha) < 3 {
		msgs = append(msgs, "A senha do administrador deve conter ao menos 3 caracteres.")
	}
	return msgs
}
