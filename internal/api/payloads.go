// internal/api/payloads.go
package api

// CreateTaskRequest is the POST /api/tasks body.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest is the PUT /api/tasks/:id body. Pointer fields
// distinguish "absent" from "set to zero value".
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Environment string `json:"environment"`
	Store       string `json:"store"`
	Timestamp   string `json:"timestamp"`
}

type RootResponse struct {
	Message string `json:"message"`
	Health  string `json:"health"`
	Docs    string `json:"docs"`
}
