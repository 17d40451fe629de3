package transport

type TaskCreateRequest struct {
	Description string `json:"description"`
}
