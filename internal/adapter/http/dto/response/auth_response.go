package response

import "barbearia_matheus/internal/domain/entities"

type AdminLoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

type AdminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func FromAdmin(a entities.Admin) AdminResponse {
	return AdminResponse{
		ID:       a.ID,
		Username: a.Username,
		Name:     a.Name,
	}
}
