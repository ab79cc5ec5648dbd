package request

type ClientCreateRequest struct {
	Name  string `json:"name" binding:"required"`
	CPF   string `json:"cpf" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

type ClientUpdateRequest struct {
	Name  string `json:"name" binding:"required"`
	CPF   string `json:"cpf" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

// ClientLoginRequest carries the passwordless login identifier. The console
// sends whatever the client typed; formatting punctuation is stripped
// server-side, so "111.444.777-35" and "11144477735" are the same login.

type ClientLoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}
