package response

// StatusResp is the {status, message} body used by error responses and the
// history-reset endpoint.
type StatusResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
