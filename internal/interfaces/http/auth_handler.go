package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/delivery-api/internal/application/auth"
	"github.com/tu-usuario/delivery-api/internal/application/dto"
	"github.com/tu-usuario/delivery-api/internal/domain"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// firstMissingCredentialField valida username y password en ese orden;
// se consideran vacíos también los valores de solo espacios.
func firstMissingCredentialField(username, password string) string {
	if strings.TrimSpace(username) == "" {
		return "username"
	}
	if strings.TrimSpace(password) == "" {
		return "password"
	}
	return ""
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, password, role opcional"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No data"})
	}
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	}
	if f := firstMissingCredentialField(in.Username, in.Password); f != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: fmt.Sprintf("Missing or empty field: %s", f)})
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if err == domain.ErrUserAlreadyExists {
			// Compatibilidad: el API histórico responde 200 con cuerpo de error
			// en este caso; los clientes existentes dependen de esa forma.
			return c.JSON(dto.ErrorResponse{Error: "User Exist!"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("User %s added with role %s!", user.Username, user.Role),
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No data"})
	}
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	}
	if f := firstMissingCredentialField(in.Username, in.Password); f != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: fmt.Sprintf("Missing or empty field: %s", f)})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "User not found"})
		}
		if err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}
