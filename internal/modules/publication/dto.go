package publication

// PublishRequest targets one destination surface.
type PublishRequest struct {
	Destination string `json:"destination" binding:"required"`
}
