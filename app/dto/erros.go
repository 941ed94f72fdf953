package dto

// ValidationErrors is the 400 response body shared by every mutating route.
type ValidationErrors struct {
	Mensagens []string `json:"mensagens"`
}
