package repository

import (
	"context"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/enum"
)

// RegisterRepository covers the three backend resources a cash session spans:
// cajas, cabecera-caja and detalle-caja.
type RegisterRepository interface {
	GetRegister(ctx context.Context, id int64) (*entity.CashRegister, error)
	CreateRegister(ctx context.Context, register *entity.CashRegister) error
	PatchRegisterState(ctx context.Context, id int64, state enum.RegisterState) error

	ListHeaders(ctx context.Context) ([]entity.SessionHeader, error)
	CreateHeader(ctx context.Context, header *entity.SessionHeader) error
	UpdateHeader(ctx context.Context, header *entity.SessionHeader) error

	ListMovements(ctx context.Context) ([]entity.CashMovement, error)
	CreateMovement(ctx context.Context, movement *entity.CashMovement) error
}
