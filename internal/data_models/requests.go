package dto

// CreateTicketRequest carries the Spanish wire fields the original frontend
// sends; the same shape is reused for updates.
type CreateTicketRequest struct {
	Subject        string `json:"asunto"`
	InitialMessage string `json:"mensaje_inicial"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
