// Package storage implementa el blob store de colecciones: un mapa global de
// claves a documentos JSON. Cada tipo de entidad reclama una clave
// (crm_users, crm_leads, ...) y su repositorio posee acceso exclusivo de
// lectura/escritura sobre ella. No hay transacciones entre claves.
package storage

// Store es un almacén clave-valor síncrono de documentos JSON-serializables.
// Los drivers file y postgres sobreviven reinicios del proceso; memory no.
type Store interface {
	// Get deserializa el valor de key en v. Devuelve false si la clave no existe.
	Get(key string, v any) (bool, error)
	// Set serializa v y lo escribe bajo key, reemplazando el valor anterior.
	Set(key string, v any) error
	// Remove elimina la clave. Eliminar una clave inexistente no es error.
	Remove(key string) error
}

// Claves de colección.
const (
	KeySession     = "crm_user"
	KeyUsers       = "crm_users"
	KeyLeads       = "crm_leads"
	KeyClients     = "crm_clients"
	KeyCampaigns   = "crm_campaigns"
	KeyAssignments = "crm_assignments"
)
