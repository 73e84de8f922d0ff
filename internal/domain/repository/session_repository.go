package repository

import "github.com/dominickcapital/crm-api/internal/domain/entity"

// SessionRepository persiste la identidad activa bajo su propia clave del
// store; sobrevive reinicios del proceso y se carga una vez al arranque.
type SessionRepository interface {
	// Current devuelve la sesión activa o nil si nadie inició sesión.
	Current() *entity.Session
	Save(s *entity.Session) error
	Clear() error
}
