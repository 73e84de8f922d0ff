package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dominickcapital/crm-api/internal/application/auth"
	"github.com/dominickcapital/crm-api/internal/application/dto"
	"github.com/dominickcapital/crm-api/internal/domain"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/infrastructure/crmstore"
	"github.com/dominickcapital/crm-api/internal/infrastructure/storage"
	pkgjwt "github.com/dominickcapital/crm-api/pkg/jwt"
)

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "crm-test"}

// buildAuth arma el caso de uso sobre un store en memoria. Sin usuarios
// previos, el repositorio siembra el directorio de demostración.
func buildAuth(t *testing.T, verifier auth.CredentialVerifier) *auth.AuthUseCase {
	t.Helper()
	store := storage.NewMemoryStore()
	users, err := crmstore.NewUserRepository(store)
	require.NoError(t, err)
	sessions, err := crmstore.NewSessionRepository(store)
	require.NoError(t, err)
	return auth.NewAuthUseCase(users, sessions, verifier, testJWT)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AdminConCredencialesSemilla(t *testing.T) {
	uc := buildAuth(t, auth.PlainVerifier{})

	out, err := uc.Login(dto.LoginRequest{Email: "admin@crm.com", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Admin Usuario", out.User.Name)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	// El token lleva los claims de identidad.
	userID, name, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)
	assert.Equal(t, "Admin Usuario", name)
	assert.Equal(t, entity.RoleAdmin, role)

	// La sesión queda persistida.
	session := uc.Current()
	require.NotNil(t, session)
	assert.Equal(t, "admin@crm.com", session.Email)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := buildAuth(t, auth.PlainVerifier{})

	_, err := uc.Login(dto.LoginRequest{Email: "admin@crm.com", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Email inexistente produce el mismo error, sin distinguir el caso.
	_, err = uc.Login(dto.LoginRequest{Email: "nadie@crm.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogout_LimpiaLaSesion(t *testing.T) {
	uc := buildAuth(t, auth.PlainVerifier{})
	_, err := uc.Login(dto.LoginRequest{Email: "legal@crm.com", Password: "legal123"})
	require.NoError(t, err)
	require.NotNil(t, uc.Current())

	require.NoError(t, uc.Logout())
	assert.Nil(t, uc.Current())
	assert.Nil(t, uc.CurrentResponse())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests hasRole
// ──────────────────────────────────────────────────────────────────────────────

func TestHasRole_ConjuntoDeRoles(t *testing.T) {
	uc := buildAuth(t, auth.PlainVerifier{})
	_, err := uc.Login(dto.LoginRequest{Email: "admin@crm.com", Password: "admin123"})
	require.NoError(t, err)

	assert.True(t, uc.HasRole(entity.RoleAdmin, entity.RoleLegal),
		"admin pertenece al conjunto {admin, legal}")
	assert.False(t, uc.HasRole(entity.RoleLegal),
		"admin no es legal")
}

func TestHasRole_SinSesion(t *testing.T) {
	uc := buildAuth(t, auth.PlainVerifier{})
	assert.False(t, uc.HasRole(entity.RoleAdmin), "sin sesión activa ningún rol aplica")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests verificadores de credenciales
// ──────────────────────────────────────────────────────────────────────────────

func TestPlainVerifier(t *testing.T) {
	v := auth.PlainVerifier{}
	assert.True(t, v.Verify("admin123", "admin123"))
	assert.False(t, v.Verify("admin123", "otro"))
	assert.False(t, v.Verify("", ""), "credencial vacía nunca verifica")
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	v := auth.BcryptVerifier{}
	assert.True(t, v.Verify(string(hash), "admin123"))
	assert.False(t, v.Verify(string(hash), "otro"))
}

func TestNewVerifier_SeleccionPorModo(t *testing.T) {
	assert.IsType(t, auth.BcryptVerifier{}, auth.NewVerifier("bcrypt"))
	assert.IsType(t, auth.PlainVerifier{}, auth.NewVerifier("plain"))
	assert.IsType(t, auth.PlainVerifier{}, auth.NewVerifier(""), "el modo por defecto es plain")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SessionFor
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionFor_ReconstruyeDesdeElDirectorio(t *testing.T) {
	uc := buildAuth(t, auth.PlainVerifier{})

	session, err := uc.SessionFor("5")
	require.NoError(t, err)
	assert.Equal(t, "Ana Legal", session.Name)
	assert.Equal(t, entity.RoleLegal, session.Role)

	_, err = uc.SessionFor("999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
