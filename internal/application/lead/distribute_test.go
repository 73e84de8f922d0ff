package lead_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dominickcapital/crm-api/internal/application/dto"
	"github.com/dominickcapital/crm-api/internal/application/lead"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/infrastructure/crmstore"
	"github.com/dominickcapital/crm-api/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func ejecutivo(id, name, role string) *entity.User {
	return &entity.User{ID: id, Name: name, Email: id + "@crm.com", Password: "x", Role: role}
}

func unassigned(id, name string) *entity.Lead {
	return &entity.Lead{ID: id, Name: name, LeadType: entity.LeadTypePrestamo}
}

// buildUseCase arma el caso de uso sobre un store en memoria con el
// directorio de usuarios dado.
func buildUseCase(t *testing.T, users []*entity.User) *lead.UseCase {
	t.Helper()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyUsers, users))

	userRepo, err := crmstore.NewUserRepository(store)
	require.NoError(t, err)
	leadRepo, err := crmstore.NewLeadRepository(store)
	require.NoError(t, err)
	clientRepo, err := crmstore.NewClientRepository(store)
	require.NoError(t, err)
	campaignRepo, err := crmstore.NewCampaignRepository(store)
	require.NoError(t, err)

	return lead.NewUseCase(leadRepo, userRepo, clientRepo, campaignRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Distribute (función pura)
// ──────────────────────────────────────────────────────────────────────────────

func TestDistribute_RoundRobinPorPosicion(t *testing.T) {
	eligible := []*entity.User{
		ejecutivo("e1", "Ejecutivo Uno", entity.RoleEjecutivoPrestamos),
		ejecutivo("e2", "Ejecutivo Dos", entity.RoleEjecutivoPrestamos),
	}
	leads := []*entity.Lead{unassigned("l1", "A"), unassigned("l2", "B"), unassigned("l3", "C")}

	out := lead.Distribute(leads, eligible)

	require.Len(t, out, 3)
	assert.Equal(t, "e1", out[0].AssignedTo, "posición 0 → primer ejecutivo")
	assert.Equal(t, "e2", out[1].AssignedTo, "posición 1 → segundo ejecutivo")
	assert.Equal(t, "e1", out[2].AssignedTo, "posición 2 → vuelve al primero")
	assert.Equal(t, "Ejecutivo Uno", out[0].AssignedToName)
	assert.NotNil(t, out[0].AssignedAt)
}

func TestDistribute_IndexaSoloSobreNoAsignados(t *testing.T) {
	// El índice round-robin cuenta posiciones dentro del subconjunto sin
	// asignar: los leads ya asignados no consumen turno.
	eligible := []*entity.User{
		ejecutivo("e1", "Ejecutivo Uno", entity.RoleEjecutivoPrestamos),
		ejecutivo("e2", "Ejecutivo Dos", entity.RoleEjecutivoPrestamos),
	}
	asignado := unassigned("l2", "B")
	asignado.AssignedTo = "e9"
	asignado.AssignedToName = "Otro"
	leads := []*entity.Lead{unassigned("l1", "A"), asignado, unassigned("l3", "C")}

	out := lead.Distribute(leads, eligible)

	assert.Equal(t, "e1", out[0].AssignedTo)
	assert.Equal(t, "e9", out[1].AssignedTo, "un lead asignado nunca se reasigna")
	assert.Equal(t, "e2", out[2].AssignedTo,
		"el tercer lead es el segundo sin asignar, le toca el segundo ejecutivo")
}

func TestDistribute_PoolVacioDejaIntacto(t *testing.T) {
	leads := []*entity.Lead{unassigned("l1", "A")}
	out := lead.Distribute(leads, nil)
	assert.Empty(t, out[0].AssignedTo, "con pool vacío el lead queda sin asignar")
}

func TestDistribute_Idempotente(t *testing.T) {
	eligible := []*entity.User{
		ejecutivo("e1", "Ejecutivo Uno", entity.RoleEjecutivoPrestamos),
		ejecutivo("e2", "Ejecutivo Dos", entity.RoleEjecutivoPrestamos),
	}
	leads := []*entity.Lead{unassigned("l1", "A"), unassigned("l2", "B")}

	once := lead.Distribute(leads, eligible)
	twice := lead.Distribute(once, eligible)

	for i := range once {
		assert.Equal(t, once[i].AssignedTo, twice[i].AssignedTo,
			"re-distribuir no debe mover leads ya asignados")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de distribución vía caso de uso (particiones por tipo)
// ──────────────────────────────────────────────────────────────────────────────

func TestAddLead_DistribuyeContraPoolDeSuTipo(t *testing.T) {
	uc := buildUseCase(t, []*entity.User{
		ejecutivo("p1", "Prestamos Uno", entity.RoleEjecutivoPrestamos),
		ejecutivo("i1", "Inversiones Uno", entity.RoleEjecutivoInversiones),
	})

	prestamo, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente Préstamo"})
	require.NoError(t, err)
	assert.Equal(t, "p1", prestamo.AssignedTo)
	assert.Equal(t, entity.LeadTypePrestamo, prestamo.LeadType, "leadType vacío defaultea a préstamo")

	inversion, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Inversionista", LeadType: entity.LeadTypeInversion})
	require.NoError(t, err)
	assert.Equal(t, "i1", inversion.AssignedTo)
}

func TestAddBulkLeads_ParticionesIndependientes(t *testing.T) {
	uc := buildUseCase(t, []*entity.User{
		ejecutivo("p1", "Prestamos Uno", entity.RoleEjecutivoPrestamos),
		ejecutivo("p2", "Prestamos Dos", entity.RoleEjecutivoPrestamos),
		ejecutivo("i1", "Inversiones Uno", entity.RoleEjecutivoInversiones),
	})

	out, err := uc.AddBulkLeads(nil, dto.BulkLeadsRequest{Leads: []dto.CreateLeadRequest{
		{Name: "P-A"},
		{Name: "I-A", LeadType: entity.LeadTypeInversion},
		{Name: "P-B"},
		{Name: "P-C"},
	}})
	require.NoError(t, err)
	require.Len(t, out, 4)

	// La partición de préstamos se indexa sin contar el lead de inversión.
	assert.Equal(t, "p1", out[0].AssignedTo)
	assert.Equal(t, "i1", out[1].AssignedTo)
	assert.Equal(t, "p2", out[2].AssignedTo)
	assert.Equal(t, "p1", out[3].AssignedTo)
}

func TestAddLead_SinPoolQuedaSinAsignar(t *testing.T) {
	// Directorio sin ejecutivos de inversiones.
	uc := buildUseCase(t, []*entity.User{
		ejecutivo("p1", "Prestamos Uno", entity.RoleEjecutivoPrestamos),
	})

	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Inversionista", LeadType: entity.LeadTypeInversion})
	require.NoError(t, err)
	assert.Empty(t, l.AssignedTo, "sin pool el lead queda sin asignar, no falla")
}

func TestDistribution_CargaPorEjecutivo(t *testing.T) {
	uc := buildUseCase(t, []*entity.User{
		ejecutivo("p1", "Prestamos Uno", entity.RoleEjecutivoPrestamos),
		ejecutivo("p2", "Prestamos Dos", entity.RoleEjecutivoPrestamos),
	})

	_, err := uc.AddBulkLeads(nil, dto.BulkLeadsRequest{Leads: []dto.CreateLeadRequest{
		{Name: "A", Source: "call_center"},
		{Name: "B", Source: "call_center"},
		{Name: "C", Source: "web"},
	}})
	require.NoError(t, err)

	loads := uc.Distribution(entity.LeadTypePrestamo)
	require.Len(t, loads, 2)
	// Solo los leads de call_center cuentan en la vista del supervisor.
	total := loads[0].Count + loads[1].Count
	assert.Equal(t, 2, total)
}
