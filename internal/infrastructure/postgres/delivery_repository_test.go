package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/delivery-api/internal/domain/repository"
)

func TestBuildListQuery_SinFiltros(t *testing.T) {
	query, args := buildListQuery(repository.DeliveryFilter{})

	assert.Equal(t, `SELECT `+deliveryColumns+` FROM deliveries`, query)
	assert.Empty(t, args)
}

func TestBuildListQuery_FiltrosCombinadosConAND(t *testing.T) {
	onTime := true
	query, args := buildListQuery(repository.DeliveryFilter{
		Status: "lat",
		Origin: "NY",
		OnTime: &onTime,
	})

	assert.Contains(t, query, `status ILIKE '%' || $1 || '%'`)
	assert.Contains(t, query, `origin ILIKE '%' || $2 || '%'`)
	assert.Contains(t, query, `on_time = $3`)
	assert.Contains(t, query, " AND ")
	assert.Equal(t, []any{"lat", "NY", true}, args)
}

func TestBuildListQuery_OnTimeFalse(t *testing.T) {
	onTime := false
	query, args := buildListQuery(repository.DeliveryFilter{OnTime: &onTime})

	assert.Contains(t, query, "on_time = $1")
	assert.Equal(t, []any{false}, args)
}

func TestBuildListQuery_OrdenAscendentePorDefecto(t *testing.T) {
	query, _ := buildListQuery(repository.DeliveryFilter{SortBy: "expected_delivery_date"})
	assert.Contains(t, query, "ORDER BY expected_delivery_date ASC")
}

func TestBuildListQuery_OrdenDescendente(t *testing.T) {
	query, _ := buildListQuery(repository.DeliveryFilter{
		SortBy:    "expected_delivery_date",
		SortOrder: "desc",
	})
	assert.Contains(t, query, "ORDER BY expected_delivery_date DESC")
}

func TestBuildListQuery_SortOrderDesconocido_EsAscendente(t *testing.T) {
	query, _ := buildListQuery(repository.DeliveryFilter{
		SortBy:    "status",
		SortOrder: "descending",
	})
	assert.Contains(t, query, "ORDER BY status ASC")
}

func TestBuildListQuery_ColumnaDesconocida_SeIgnora(t *testing.T) {
	// La whitelist protege el ORDER BY: un sort_by arbitrario no llega al SQL.
	query, _ := buildListQuery(repository.DeliveryFilter{
		SortBy:    "packageid; DROP TABLE deliveries",
		SortOrder: "desc",
	})
	assert.NotContains(t, query, "ORDER BY")
	assert.NotContains(t, query, "DROP")
}

func TestBuildListQuery_FiltroYOrden(t *testing.T) {
	query, args := buildListQuery(repository.DeliveryFilter{
		ClientName: "acme",
		SortBy:     "id",
		SortOrder:  "desc",
	})

	assert.Contains(t, query, `client_name ILIKE '%' || $1 || '%'`)
	assert.Contains(t, query, "ORDER BY id DESC")
	assert.Equal(t, []any{"acme"}, args)
}
