package dto

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by the health probe.
type StatusResponse struct {
	Status string `json:"status"`
}
