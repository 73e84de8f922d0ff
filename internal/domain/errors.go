package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrLeadNotFound       = errors.New("lead no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrValidation         = errors.New("entrada inválida")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrGateNotOpen        = errors.New("etapa anterior del pipeline incompleta")
	ErrInvestorTaken      = errors.New("el inversionista ya está asignado a otro préstamo")
	ErrLoanAssigned       = errors.New("el préstamo ya tiene un inversionista asignado")
	ErrNotImplemented     = errors.New("función en desarrollo")
)
