package dto

// OKResponse is returned by operations that have no other payload
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// NewOKResponse returns {"ok": true}
func NewOKResponse() OKResponse {
	return OKResponse{OK: true}
}
