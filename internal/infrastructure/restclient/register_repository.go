package restclient

import (
	"context"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/enum"
	"github.com/tr4cking/admin-api/internal/domain/repository"
)

type registerRepository struct {
	cajas     *Resource
	cabeceras *Resource
	detalles  *Resource
}

// NewRegisterRepository creates a RegisterRepository over cajas,
// cabecera-caja and detalle-caja.
func NewRegisterRepository(factory *Factory) repository.RegisterRepository {
	return &registerRepository{
		cajas:     factory.Resource("cajas"),
		cabeceras: factory.Resource("cabecera-caja"),
		detalles:  factory.Resource("detalle-caja"),
	}
}

func (r *registerRepository) GetRegister(ctx context.Context, id int64) (*entity.CashRegister, error) {
	var register entity.CashRegister
	if err := r.cajas.Get(ctx, id, &register); err != nil {
		return nil, err
	}
	return &register, nil
}

func (r *registerRepository) CreateRegister(ctx context.Context, register *entity.CashRegister) error {
	return r.cajas.Create(ctx, register, register)
}

func (r *registerRepository) PatchRegisterState(ctx context.Context, id int64, state enum.RegisterState) error {
	body := map[string]any{"estado": state}
	return r.cajas.Patch(ctx, id, body, nil)
}

func (r *registerRepository) ListHeaders(ctx context.Context) ([]entity.SessionHeader, error) {
	var headers []entity.SessionHeader
	if err := r.cabeceras.List(ctx, &headers); err != nil {
		return nil, err
	}
	return headers, nil
}

func (r *registerRepository) CreateHeader(ctx context.Context, header *entity.SessionHeader) error {
	return r.cabeceras.Create(ctx, header, header)
}

func (r *registerRepository) UpdateHeader(ctx context.Context, header *entity.SessionHeader) error {
	return r.cabeceras.Update(ctx, header.ID, header, header)
}

func (r *registerRepository) ListMovements(ctx context.Context) ([]entity.CashMovement, error) {
	var movements []entity.CashMovement
	if err := r.detalles.List(ctx, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

func (r *registerRepository) CreateMovement(ctx context.Context, movement *entity.CashMovement) error {
	return r.detalles.Create(ctx, movement, movement)
}
