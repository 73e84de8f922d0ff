package repository

import "github.com/dominickcapital/crm-api/internal/domain/entity"

// LeadRepository define el puerto de persistencia para leads.
// Las implementaciones reescriben la colección completa en cada mutación
// (write-through): una lectura inmediatamente posterior ve el cambio.
type LeadRepository interface {
	List() []*entity.Lead
	GetByID(id string) (*entity.Lead, error)
	Add(leads ...*entity.Lead) error
	// Update reemplaza el lead con el mismo ID y persiste.
	Update(lead *entity.Lead) error
	// ReplaceAll sustituye la colección entera (redistribución) y persiste.
	ReplaceAll(leads []*entity.Lead) error
	Delete(id string) error
	// Filter devuelve los leads que cumplen el predicado, en orden de inserción.
	Filter(pred func(*entity.Lead) bool) []*entity.Lead
}
