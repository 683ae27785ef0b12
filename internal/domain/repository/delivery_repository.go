package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/delivery-api/internal/domain/entity"
)

// DeliveryFilter filtros y orden para el listado de entregas.
// Los filtros de texto son substring case-insensitive; vacío = sin filtro.
// OnTime nil = sin filtro. SortBy que no sea una columna conocida se ignora.
type DeliveryFilter struct {
	Status      string
	ClientName  string
	Origin      string
	Destination string
	OnTime      *bool
	SortBy      string
	SortOrder   string // "desc" para descendente; cualquier otro valor = ascendente
}

// DeliveryUpdate actualización parcial: solo los campos con puntero no-nil
// (o SetActualDate true) se escriben. SetActualDate con ActualDeliveryDate nil
// limpia la fecha a NULL.
type DeliveryUpdate struct {
	Status             *string
	SetActualDate      bool
	ActualDeliveryDate *time.Time
	OnTime             *bool
}

// DeliveryRepository define el puerto de persistencia para Delivery (DIP).
type DeliveryRepository interface {
	// CreateBatch inserta las entregas y retorna los ids generados en el mismo
	// orden. Retorna domain.ErrDuplicate si algún packageid ya existe.
	CreateBatch(ctx context.Context, deliveries []*entity.Delivery) ([]int64, error)
	// List retorna las entregas que cumplen todos los filtros (AND).
	List(ctx context.Context, filter DeliveryFilter) ([]*entity.Delivery, error)
	// GetByID (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Delivery, error)
	// Update aplica la actualización parcial sobre una entrega existente.
	Update(ctx context.Context, id int64, upd DeliveryUpdate) error
	// Delete elimina por id; retorna false si no existía.
	Delete(ctx context.Context, id int64) (bool, error)
}
