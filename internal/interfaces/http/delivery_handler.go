package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/delivery-api/internal/application/dto"
	"github.com/tu-usuario/delivery-api/internal/application/usecase"
	"github.com/tu-usuario/delivery-api/internal/domain"
	"github.com/tu-usuario/delivery-api/internal/domain/repository"
)

// DeliveryHandler maneja las peticiones HTTP para Delivery (protegido).
type DeliveryHandler struct {
	uc *usecase.DeliveryUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// deliveryID parsea el id de la ruta. El API histórico responde 404 (no 400)
// ante un id no numérico, igual que ante un id inexistente.
func deliveryID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return 0, false
	}
	return int64(id), true
}

func idNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "ID not found"})
}

// BulkCreate godoc
// @Summary      Crear entregas (lote)
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.DeliveryInput  true  "Arreglo de entregas (8 campos requeridos cada una)"
// @Success      200   {object}  dto.BulkCreateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /delivery [post]
func (h *DeliveryHandler) BulkCreate(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.JSON(dto.ErrorResponse{Error: "No data"})
	}
	var items []dto.DeliveryInput
	if err := c.BodyParser(&items); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	}
	if len(items) == 0 {
		return c.JSON(dto.ErrorResponse{Error: "No data"})
	}
	ids, err := h.uc.BulkCreate(c.Context(), items)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: verr.Message})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Duplicate packageid"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.BulkCreateResponse{Message: "Deliveries added successfully!", IDs: ids})
}

// List godoc
// @Summary      Listar entregas con filtros y orden
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "Substring case-insensitive"
// @Param        client_name  query  string  false  "Substring case-insensitive"
// @Param        origin       query  string  false  "Substring case-insensitive"
// @Param        destination  query  string  false  "Substring case-insensitive"
// @Param        on_time      query  string  false  "true/false (exacto)"
// @Param        sort_by      query  string  false  "Columna de orden"
// @Param        sort_order   query  string  false  "asc|desc"  default(asc)
// @Success      200  {object}  dto.DeliveryListResponse
// @Router       /delivery [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	filter := repository.DeliveryFilter{
		Status:      c.Query("status"),
		ClientName:  c.Query("client_name"),
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order", "asc"),
	}
	// on_time presente (y no vacío): "true" case-insensitive es true, cualquier
	// otro valor es false.
	if v := c.Query("on_time"); v != "" {
		b := strings.EqualFold(v, "true")
		filter.OnTime = &b
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.DeliveryListResponse{Deliveries: out})
}

// GetByID godoc
// @Summary      Obtener entrega por id
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la entrega"
// @Success      200  {object}  dto.DeliveryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /delivery/{id} [get]
func (h *DeliveryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := deliveryID(c)
	if !ok {
		return idNotFound(c)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if err == domain.ErrDeliveryNotFound {
			return idNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de una entrega
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la entrega"
// @Param        body  body  dto.UpdateDeliveryRequest  true  "status, actual_delivery_date, on_time (todos opcionales)"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /delivery/{id} [put]
func (h *DeliveryHandler) Update(c *fiber.Ctx) error {
	id, ok := deliveryID(c)
	if !ok {
		return idNotFound(c)
	}
	var in dto.UpdateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		if err == domain.ErrDeliveryNotFound {
			return idNotFound(c)
		}
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: verr.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Delivery updated successfully!"})
}

// Delete godoc
// @Summary      Eliminar entrega
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la entrega"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /delivery/{id} [delete]
func (h *DeliveryHandler) Delete(c *fiber.Ctx) error {
	id, ok := deliveryID(c)
	if !ok {
		return idNotFound(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if err == domain.ErrDeliveryNotFound {
			return idNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Delivery deleted successfully!"})
}
