package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse proyección pública de la identidad activa.
type SessionResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Avatar     string `json:"avatar"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  SessionResponse `json:"user"`
}
