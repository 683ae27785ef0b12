package usecase

import (
	"context"

	"github.com/tu-usuario/delivery-api/internal/application/dto"
	"github.com/tu-usuario/delivery-api/internal/domain"
	"github.com/tu-usuario/delivery-api/internal/domain/entity"
	"github.com/tu-usuario/delivery-api/internal/domain/repository"
)

// DeliveryTxRunner ejecuta fn con un repositorio atado a una transacción;
// commit solo si fn retorna nil. Lo implementa postgres.TxRunner.
type DeliveryTxRunner interface {
	RunDeliveries(ctx context.Context, fn func(repo repository.DeliveryRepository) error) error
}

// DeliveryUseCase casos de uso de entregas: creación masiva, listado
// filtrado/ordenado, consulta, actualización parcial y borrado.
type DeliveryUseCase struct {
	repo repository.DeliveryRepository
	tx   DeliveryTxRunner
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(repo repository.DeliveryRepository, tx DeliveryTxRunner) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo, tx: tx}
}

// BulkCreate valida TODOS los items antes de insertar cualquiera: si alguno
// falla, el lote completo se rechaza sin tocar el store. La inserción corre en
// una sola transacción, así un conflicto de packageid a mitad de lote no deja
// filas parciales. Retorna los ids generados en orden de entrada.
func (uc *DeliveryUseCase) BulkCreate(ctx context.Context, items []dto.DeliveryInput) ([]int64, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	deliveries := make([]*entity.Delivery, 0, len(items))
	for i := range items {
		d, err := items[i].ToEntity()
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	var ids []int64
	err := uc.tx.RunDeliveries(ctx, func(repo repository.DeliveryRepository) error {
		var err error
		ids, err = repo.CreateBatch(ctx, deliveries)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// List retorna las entregas que cumplen todos los filtros.
func (uc *DeliveryUseCase) List(ctx context.Context, filter repository.DeliveryFilter) ([]dto.DeliveryResponse, error) {
	deliveries, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, dto.NewDeliveryResponse(d))
	}
	return out, nil
}

// GetByID retorna la entrega o domain.ErrDeliveryNotFound.
func (uc *DeliveryUseCase) GetByID(ctx context.Context, id int64) (*dto.DeliveryResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrDeliveryNotFound
	}
	resp := dto.NewDeliveryResponse(d)
	return &resp, nil
}

// Update aplica la actualización parcial. La existencia se verifica antes de
// validar el cuerpo: un id desconocido responde 404 aunque el cuerpo sea inválido.
func (uc *DeliveryUseCase) Update(ctx context.Context, id int64, in dto.UpdateDeliveryRequest) error {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrDeliveryNotFound
	}
	upd, err := in.ToUpdate()
	if err != nil {
		return err
	}
	return uc.repo.Update(ctx, id, upd)
}

// Delete elimina la entrega o retorna domain.ErrDeliveryNotFound.
func (uc *DeliveryUseCase) Delete(ctx context.Context, id int64) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrDeliveryNotFound
	}
	return nil
}
