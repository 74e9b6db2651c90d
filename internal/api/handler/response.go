package handler

// envelope is the standard success body: {"success": true, "message": ..., "data": ...}.
// Error responses use the same shape via the central error handler.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func ok(message string, data any) envelope {
	return envelope{Success: true, Message: message, Data: data}
}
