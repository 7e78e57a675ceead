package model

// Metadata carries the upstream bookkeeping timestamps every entity exposes.
type Metadata struct {
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}
