package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tu-usuario/delivery-api/internal/domain"
	"github.com/tu-usuario/delivery-api/internal/domain/entity"
	"github.com/tu-usuario/delivery-api/internal/domain/repository"
)

// DateLayout formato de fecha del API (entrada y salida).
const DateLayout = "2006-01-02"

// NullableDate distingue entre clave ausente, null/"" y una fecha "YYYY-MM-DD".
// Set indica que la clave vino en el JSON; Raw es nil cuando el valor fue null.
type NullableDate struct {
	Set bool
	Raw *string
}

// UnmarshalJSON solo se invoca cuando la clave está presente, lo que permite
// diferenciar "no actualizar" de "limpiar la fecha".
func (d *NullableDate) UnmarshalJSON(b []byte) error {
	d.Set = true
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	d.Raw = &s
	return nil
}

// Time parsea el valor como fecha. (nil, nil) para null o string vacío.
func (d NullableDate) Time() (*time.Time, error) {
	if d.Raw == nil || *d.Raw == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *d.Raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeliveryInput un elemento del arreglo de creación masiva. Los campos son
// punteros para poder distinguir clave ausente de valor presente.
type DeliveryInput struct {
	PackageID            *string      `json:"packageid"`
	ClientName           *string      `json:"client_name"`
	Origin               *string      `json:"origin"`
	Destination          *string      `json:"destination"`
	Status               *string      `json:"status"`
	ExpectedDeliveryDate *string      `json:"expected_delivery_date"`
	ActualDeliveryDate   NullableDate `json:"actual_delivery_date"`
	OnTime               *bool        `json:"on_time"`
}

// FirstMissingField retorna el nombre del primer campo ausente o vacío, en el
// orden documentado del API, o "" si el item está completo. actual_delivery_date
// solo exige la clave: null/"" significa "aún no entregado".
func (in *DeliveryInput) FirstMissingField() string {
	checks := []struct {
		name string
		ok   bool
	}{
		{"packageid", in.PackageID != nil && *in.PackageID != ""},
		{"client_name", in.ClientName != nil && *in.ClientName != ""},
		{"origin", in.Origin != nil && *in.Origin != ""},
		{"destination", in.Destination != nil && *in.Destination != ""},
		{"status", in.Status != nil && *in.Status != ""},
		{"expected_delivery_date", in.ExpectedDeliveryDate != nil && *in.ExpectedDeliveryDate != ""},
		{"actual_delivery_date", in.ActualDeliveryDate.Set},
		{"on_time", in.OnTime != nil},
	}
	for _, c := range checks {
		if !c.ok {
			return c.name
		}
	}
	return ""
}

// ToEntity valida el item y lo convierte a entidad de dominio.
// Los errores son *domain.ValidationError (la creación masiva debe rechazar el
// lote completo antes de insertar nada).
func (in *DeliveryInput) ToEntity() (*entity.Delivery, error) {
	if f := in.FirstMissingField(); f != "" {
		return nil, domain.NewMissingFieldError(f)
	}
	expected, err := time.Parse(DateLayout, *in.ExpectedDeliveryDate)
	if err != nil {
		return nil, invalidDateError("expected_delivery_date")
	}
	actual, err := in.ActualDeliveryDate.Time()
	if err != nil {
		return nil, invalidDateError("actual_delivery_date")
	}
	return &entity.Delivery{
		PackageID:            *in.PackageID,
		ClientName:           *in.ClientName,
		Origin:               *in.Origin,
		Destination:          *in.Destination,
		Status:               *in.Status,
		ExpectedDeliveryDate: expected,
		ActualDeliveryDate:   actual,
		OnTime:               *in.OnTime,
	}, nil
}

// UpdateDeliveryRequest actualización parcial: solo status, actual_delivery_date
// y on_time son mutables. La presencia de la clave decide si el campo se
// actualiza; actual_delivery_date con null/"" limpia la fecha.
type UpdateDeliveryRequest struct {
	Status             *string      `json:"status"`
	ActualDeliveryDate NullableDate `json:"actual_delivery_date"`
	OnTime             *bool        `json:"on_time"`
}

// ToUpdate convierte la petición al cambio parcial del repositorio.
func (in *UpdateDeliveryRequest) ToUpdate() (repository.DeliveryUpdate, error) {
	upd := repository.DeliveryUpdate{
		Status: in.Status,
		OnTime: in.OnTime,
	}
	if in.ActualDeliveryDate.Set {
		t, err := in.ActualDeliveryDate.Time()
		if err != nil {
			return repository.DeliveryUpdate{}, invalidDateError("actual_delivery_date")
		}
		upd.SetActualDate = true
		upd.ActualDeliveryDate = t
	}
	return upd, nil
}

// DeliveryResponse salida de una entrega; fechas como "YYYY-MM-DD" y null
// cuando la fecha real no existe.
type DeliveryResponse struct {
	ID                   int64   `json:"id"`
	PackageID            string  `json:"packageid"`
	ClientName           string  `json:"client_name"`
	Origin               string  `json:"origin"`
	Destination          string  `json:"destination"`
	Status               string  `json:"status"`
	ExpectedDeliveryDate string  `json:"expected_delivery_date"`
	ActualDeliveryDate   *string `json:"actual_delivery_date"`
	OnTime               bool    `json:"on_time"`
}

// NewDeliveryResponse mapea la entidad al DTO de salida.
func NewDeliveryResponse(d *entity.Delivery) DeliveryResponse {
	out := DeliveryResponse{
		ID:                   d.ID,
		PackageID:            d.PackageID,
		ClientName:           d.ClientName,
		Origin:               d.Origin,
		Destination:          d.Destination,
		Status:               d.Status,
		ExpectedDeliveryDate: d.ExpectedDeliveryDate.Format(DateLayout),
		OnTime:               d.OnTime,
	}
	if d.ActualDeliveryDate != nil {
		s := d.ActualDeliveryDate.Format(DateLayout)
		out.ActualDeliveryDate = &s
	}
	return out
}

// DeliveryListResponse salida del listado.
type DeliveryListResponse struct {
	Deliveries []DeliveryResponse `json:"deliveries"`
}

// BulkCreateResponse salida de la creación masiva, ids en orden de entrada.
type BulkCreateResponse struct {
	Message string  `json:"message"`
	IDs     []int64 `json:"ids"`
}

func invalidDateError(field string) *domain.ValidationError {
	return &domain.ValidationError{
		Message: fmt.Sprintf("Invalid date for field: %s, expected YYYY-MM-DD", field),
	}
}
