package request

// GenerateBOMRequest names the trigger for a manual BOM generation. Empty
// defaults to MANUAL.
type GenerateBOMRequest struct {
	Trigger string `json:"trigger"`
}
