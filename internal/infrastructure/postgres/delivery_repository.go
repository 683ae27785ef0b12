package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/delivery-api/internal/domain"
	"github.com/tu-usuario/delivery-api/internal/domain/entity"
	"github.com/tu-usuario/delivery-api/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

const deliveryColumns = `id, packageid, client_name, origin, destination, status, expected_delivery_date, actual_delivery_date, on_time`

// sortColumns columnas ordenables. Es la whitelist que protege el ORDER BY:
// un sort_by fuera de esta tabla se ignora en silencio.
var sortColumns = map[string]string{
	"id":                     "id",
	"packageid":              "packageid",
	"client_name":            "client_name",
	"origin":                 "origin",
	"destination":            "destination",
	"status":                 "status",
	"expected_delivery_date": "expected_delivery_date",
	"actual_delivery_date":   "actual_delivery_date",
	"on_time":                "on_time",
}

// DeliveryRepo implementación del puerto DeliveryRepository sobre PostgreSQL
// (usable con pool o tx).
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador de persistencia para entregas.
// Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// CreateBatch inserta las entregas en orden y retorna los ids generados.
// Debe ejecutarse dentro de una transacción (TxRunner) para que el lote sea
// todo-o-nada ante un conflicto de packageid.
func (r *DeliveryRepo) CreateBatch(ctx context.Context, deliveries []*entity.Delivery) ([]int64, error) {
	query := `
		INSERT INTO deliveries (packageid, client_name, origin, destination, status, expected_delivery_date, actual_delivery_date, on_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	ids := make([]int64, 0, len(deliveries))
	for _, d := range deliveries {
		var id int64
		err := r.q.QueryRow(ctx, query,
			d.PackageID, d.ClientName, d.Origin, d.Destination, d.Status,
			d.ExpectedDeliveryDate, d.ActualDeliveryDate, d.OnTime,
		).Scan(&id)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrDuplicate
			}
			return nil, fmt.Errorf("insert delivery: %w", err)
		}
		d.ID = id
		ids = append(ids, id)
	}
	return ids, nil
}

// buildListQuery arma el SELECT con filtros parametrizados y el ORDER BY
// construido únicamente desde la whitelist de columnas.
func buildListQuery(f repository.DeliveryFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + deliveryColumns + ` FROM deliveries`)

	var conds []string
	var args []any
	like := func(col, val string) {
		if val == "" {
			return
		}
		args = append(args, val)
		conds = append(conds, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", col, len(args)))
	}
	like("status", f.Status)
	like("client_name", f.ClientName)
	like("origin", f.Origin)
	like("destination", f.Destination)
	if f.OnTime != nil {
		args = append(args, *f.OnTime)
		conds = append(conds, fmt.Sprintf("on_time = $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	if col, ok := sortColumns[f.SortBy]; ok {
		dir := "ASC"
		if f.SortOrder == "desc" {
			dir = "DESC"
		}
		sb.WriteString(" ORDER BY " + col + " " + dir)
	}
	return sb.String(), args
}

// List retorna las entregas que cumplen todos los filtros (AND).
func (r *DeliveryRepo) List(ctx context.Context, filter repository.DeliveryFilter) ([]*entity.Delivery, error) {
	query, args := buildListQuery(filter)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Delivery
	for rows.Next() {
		var d entity.Delivery
		if err := rows.Scan(&d.ID, &d.PackageID, &d.ClientName, &d.Origin, &d.Destination,
			&d.Status, &d.ExpectedDeliveryDate, &d.ActualDeliveryDate, &d.OnTime); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// GetByID obtiene una entrega por id. (nil, nil) si no existe.
func (r *DeliveryRepo) GetByID(ctx context.Context, id int64) (*entity.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1`
	var d entity.Delivery
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.PackageID, &d.ClientName, &d.Origin, &d.Destination,
		&d.Status, &d.ExpectedDeliveryDate, &d.ActualDeliveryDate, &d.OnTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return &d, nil
}

// Update escribe solo los campos marcados en upd. Sin campos marcados es un no-op.
func (r *DeliveryRepo) Update(ctx context.Context, id int64, upd repository.DeliveryUpdate) error {
	var set []string
	args := []any{id}
	if upd.Status != nil {
		args = append(args, *upd.Status)
		set = append(set, fmt.Sprintf("status = $%d", len(args)))
	}
	if upd.SetActualDate {
		args = append(args, upd.ActualDeliveryDate)
		set = append(set, fmt.Sprintf("actual_delivery_date = $%d", len(args)))
	}
	if upd.OnTime != nil {
		args = append(args, *upd.OnTime)
		set = append(set, fmt.Sprintf("on_time = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}
	query := `UPDATE deliveries SET ` + strings.Join(set, ", ") + ` WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update delivery: %w", err)
	}
	return nil
}

// Delete elimina una entrega por id; retorna false si no existía.
func (r *DeliveryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM deliveries WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete delivery: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
