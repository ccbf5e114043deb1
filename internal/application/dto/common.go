package dto

// APIResponse envuelve todos los cuerpos de respuesta: {success, message?, data}.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// OK construye una respuesta exitosa sin mensaje.
func OK(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// OKMsg construye una respuesta exitosa con mensaje.
func OKMsg(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// Fail construye una respuesta de error.
func Fail(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}
