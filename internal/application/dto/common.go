package dto

// ErrorResponse cuerpo de error HTTP. El API expone una única clave "error"
// con el mensaje; los clientes existentes dependen de esa forma exacta.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo de éxito con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
