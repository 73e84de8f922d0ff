package crmstore

import "github.com/dominickcapital/crm-api/internal/domain/entity"

// SeedUsers devuelve el directorio inicial de usuarios de demostración,
// uno por rol del pipeline. Los passwords son en claro por paridad con el
// verificador por defecto (ver auth.PlainVerifier).
func SeedUsers() []*entity.User {
	return []*entity.User{
		{ID: "1", Name: "Admin Usuario", Email: "admin@crm.com", Password: "admin123", Role: entity.RoleAdmin, Department: "Administración", Avatar: "👤"},
		{ID: "2", Name: "Carlos Supervisor", Email: "supervisor@crm.com", Password: "super123", Role: entity.RoleSupervisorCallCenter, Department: "Call Center", Avatar: "📞"},
		{ID: "3", Name: "María Marketing", Email: "marketing@crm.com", Password: "marketing123", Role: entity.RoleMarketing, Department: "Marketing", Avatar: "📢"},
		{ID: "4", Name: "Juan Ejecutivo", Email: "ejecutivo@crm.com", Password: "ejecutivo123", Role: entity.RoleEjecutivoPrestamos, Department: "Préstamos", Avatar: "💼"},
		{ID: "5", Name: "Ana Legal", Email: "legal@crm.com", Password: "legal123", Role: entity.RoleLegal, Department: "Legal", Avatar: "⚖️"},
		{ID: "6", Name: "Pedro Comercial", Email: "comercial@crm.com", Password: "comercial123", Role: entity.RoleComercial, Department: "Comercial", Avatar: "🏢"},
		{ID: "7", Name: "Sofia Closer", Email: "closer@crm.com", Password: "closer123", Role: entity.RoleCloser, Department: "Closer", Avatar: "🎯"},
		{ID: "8", Name: "Carlos Tasador", Email: "tasador@crm.com", Password: "tasador123", Role: entity.RoleGestorTasacion, Department: "Tasación", Avatar: "📏"},
		{ID: "9", Name: "Ana Inversiones", Email: "inversiones@crm.com", Password: "inversiones123", Role: entity.RoleEjecutivoInversiones, Department: "Inversiones", Avatar: "💰"},
	}
}
