package lead

import (
	"fmt"
	"time"

	"github.com/dominickcapital/crm-api/internal/application/dto"
	"github.com/dominickcapital/crm-api/internal/domain"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
)

// Slots de documentos del expediente.
const (
	SlotDNI          = "dni"
	SlotPUHR         = "puhr"
	SlotCopiaLiteral = "copia_literal"
	SlotPhotography  = "photography"
)

func documentSlot(l *entity.Lead, slot string) (**entity.Document, error) {
	switch slot {
	case SlotDNI:
		return &l.DNIFile, nil
	case SlotPUHR:
		return &l.PUHRFile, nil
	case SlotCopiaLiteral:
		return &l.CopiaLiteralFile, nil
	case SlotPhotography:
		return &l.PhotographyFile, nil
	default:
		return nil, fmt.Errorf("%w: slot de documento desconocido %q", domain.ErrValidation, slot)
	}
}

// AttachDocument guarda un documento en el slot indicado del lead. Un slot
// ocupado se sobreescribe: los documentos del expediente sí son
// reemplazables, a diferencia de los registros de etapa.
func (uc *UseCase) AttachDocument(id, slot string, in dto.DocumentPayload) (*entity.Lead, error) {
	current, err := uc.leads.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Data == "" {
		return nil, fmt.Errorf("%w: el documento no tiene contenido", domain.ErrValidation)
	}

	l := *current
	dst, err := documentSlot(&l, slot)
	if err != nil {
		return nil, err
	}
	*dst = &entity.Document{Name: in.Name, Data: in.Data}
	now := time.Now()
	l.UpdatedAt = &now
	if err := uc.leads.Update(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// GetDocument devuelve el documento del slot indicado, o ErrNotFound si el
// slot está vacío.
func (uc *UseCase) GetDocument(id, slot string) (*entity.Document, error) {
	current, err := uc.leads.GetByID(id)
	if err != nil {
		return nil, err
	}
	l := *current
	src, err := documentSlot(&l, slot)
	if err != nil {
		return nil, err
	}
	if *src == nil {
		return nil, fmt.Errorf("%w: el lead no tiene documento en %q", domain.ErrNotFound, slot)
	}
	return *src, nil
}
