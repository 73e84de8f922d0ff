package auth

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier compara la credencial almacenada en el directorio con
// la provista en el login. El directorio semilla guarda passwords en claro;
// el verificador bcrypt permite sustituir ese esquema sin tocar los puntos
// de llamada.
type CredentialVerifier interface {
	Verify(stored, provided string) bool
}

// PlainVerifier comparación directa en claro.
type PlainVerifier struct{}

// Verify compara por igualdad exacta.
func (PlainVerifier) Verify(stored, provided string) bool {
	return stored != "" && stored == provided
}

// BcryptVerifier espera hashes bcrypt en el directorio.
type BcryptVerifier struct{}

// Verify compara el hash almacenado contra el password provisto.
func (BcryptVerifier) Verify(stored, provided string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(provided)) == nil
}

// NewVerifier selecciona el verificador según el modo de configuración.
// Cualquier valor distinto de "bcrypt" usa comparación en claro.
func NewVerifier(mode string) CredentialVerifier {
	if mode == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlainVerifier{}
}
