package entity

// Roles válidos para User. El pipeline de originación asigna una etapa a cada rol.
const (
	RoleAdmin                 = "admin"
	RoleSupervisorCallCenter  = "supervisor_callcenter"
	RoleMarketing             = "marketing"
	RoleEjecutivoPrestamos    = "ejecutivo_prestamos"
	RoleEjecutivoInversiones  = "ejecutivo_inversiones"
	RoleLegal                 = "legal"
	RoleComercial             = "comercial"
	RoleCloser                = "closer"
	RoleGestorTasacion        = "gestor_tasacion"
)

// User representa un usuario del directorio interno. El directorio se crea
// como datos semilla al inicializar el sistema y es inmutable durante la sesión.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"` // comparación directa por paridad; ver auth.CredentialVerifier
	Role       string `json:"role"`
	Department string `json:"department"`
	Avatar     string `json:"avatar"`
}

// ExecutiveRoleFor devuelve el rol de ejecutivo que atiende un tipo de lead:
// "inversión" -> ejecutivo_inversiones; cualquier otro valor -> ejecutivo_prestamos.
func ExecutiveRoleFor(leadType string) string {
	if leadType == LeadTypeInversion {
		return RoleEjecutivoInversiones
	}
	return RoleEjecutivoPrestamos
}
