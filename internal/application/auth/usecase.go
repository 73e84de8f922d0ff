package auth

import (
	"github.com/dominickcapital/crm-api/internal/application/dto"
	"github.com/dominickcapital/crm-api/internal/domain"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/domain/repository"
	"github.com/dominickcapital/crm-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de identidad: login, logout y sesión activa.
// No hay límite de intentos ni bloqueo de cuenta.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	verifier CredentialVerifier
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, sessions repository.SessionRepository, verifier CredentialVerifier, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions, verifier: verifier, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el directorio, persiste la sesión
// activa y genera el JWT. Devuelve ErrInvalidCredentials sin distinguir
// email inexistente de password incorrecto.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !uc.verifier.Verify(user.Password, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	session := entity.NewSession(user)
	if err := uc.sessions.Save(session); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toSessionResponse(session),
	}, nil
}

// Logout limpia la identidad activa persistida.
func (uc *AuthUseCase) Logout() error {
	return uc.sessions.Clear()
}

// Current devuelve la sesión activa persistida, o nil.
func (uc *AuthUseCase) Current() *entity.Session {
	return uc.sessions.Current()
}

// CurrentResponse proyecta la sesión activa a DTO, o nil si no hay sesión.
func (uc *AuthUseCase) CurrentResponse() *dto.SessionResponse {
	return toSessionResponse(uc.sessions.Current())
}

// HasRole informa si la sesión activa pertenece a alguno de los roles dados.
func (uc *AuthUseCase) HasRole(roles ...string) bool {
	return uc.sessions.Current().HasRole(roles...)
}

// SessionFor reconstruye la identidad de un request autenticado a partir de
// los claims del token; el directorio aporta los campos no incluidos en el JWT.
func (uc *AuthUseCase) SessionFor(userID string) (*entity.Session, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return entity.NewSession(user), nil
}

func toSessionResponse(s *entity.Session) *dto.SessionResponse {
	if s == nil {
		return nil
	}
	return &dto.SessionResponse{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Role:       s.Role,
		Department: s.Department,
		Avatar:     s.Avatar,
	}
}
