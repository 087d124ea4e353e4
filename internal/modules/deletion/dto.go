package deletion

// DeletionInfoResponse wraps the countdown view for the API.
type DeletionInfoResponse struct {
	ID   string       `json:"id"`
	Kind string       `json:"kind"`
	Info DeletionInfo `json:"deletion"`
}
