package entity

// Session es la identidad activa: la proyección pública de un User
// (sin password). Se persiste bajo la clave crm_user y sobrevive reinicios.
type Session struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Avatar     string `json:"avatar"`
}

// NewSession proyecta un User a su sesión pública.
func NewSession(u *User) *Session {
	return &Session{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		Avatar:     u.Avatar,
	}
}

// HasRole devuelve true si el rol de la sesión está dentro del conjunto requerido.
func (s *Session) HasRole(roles ...string) bool {
	if s == nil {
		return false
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
