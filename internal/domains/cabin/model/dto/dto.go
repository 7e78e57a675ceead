package dto

import (
	"encoding/json"
	"strings"

	gModel "cruisedesk/shared/model"
)

const TempIDPrefix = "temp-"

const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"

	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
)

type CreateCabinRequest struct {
	CruiseID    gModel.ID `json:"cruise_id"             validate:"required"`
	Name        string    `json:"name"                  validate:"required,max=100"`
	CabinType   string    `json:"cabin_type"            validate:"required,max=50"`
	Deck        string    `json:"deck,omitempty"        validate:"omitempty,max=20"`
	Capacity    int       `json:"capacity"              validate:"gte=1"`
	Quantity    int       `json:"quantity"              validate:"gte=0"`
	Description string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Image       string    `json:"image,omitempty"       validate:"omitempty,url"`
}

type UpdateCabinRequest struct {
	CruiseID    *gModel.ID `json:"cruise_id,omitempty"   validate:"omitempty"`
	Name        *string    `json:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	CabinType   *string    `json:"cabin_type,omitempty"  validate:"omitempty,min=1,max=50"`
	Deck        *string    `json:"deck,omitempty"        validate:"omitempty,max=20"`
	Capacity    *int       `json:"capacity,omitempty"    validate:"omitempty,gte=1"`
	Quantity    *int       `json:"quantity,omitempty"    validate:"omitempty,gte=0"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Image       *string    `json:"image,omitempty"       validate:"omitempty,url"`
}

// CabinDraft is a cabin as edited in the cruise form. New cabins carry a temp_id, or an id
// starting with "temp-", until the upstream assigns a real one.
type CabinDraft struct {
	ID          gModel.ID `json:"id"`
	TempID      string    `json:"temp_id"`
	Deleted     bool      `json:"_deleted"`
	Name        string    `json:"name"`
	CabinType   string    `json:"cabin_type"`
	Deck        string    `json:"deck"`
	Capacity    int       `json:"capacity"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
}

func (d CabinDraft) IsNew() bool {
	return d.ID.IsZero() || strings.HasPrefix(d.ID.String(), TempIDPrefix)
}

// Key identifies the draft within one sync request. New drafts without any identifier have no key.
func (d CabinDraft) Key() string {
	if !d.IsNew() {
		return d.ID.String()
	}

	if d.TempID != "" {
		return d.TempID
	}

	return d.ID.String()
}

func (d CabinDraft) ToRequest(cruiseID gModel.ID) CreateCabinRequest {
	return CreateCabinRequest{
		CruiseID:    cruiseID,
		Name:        strings.TrimSpace(d.Name),
		CabinType:   strings.TrimSpace(d.CabinType),
		Deck:        strings.TrimSpace(d.Deck),
		Capacity:    d.Capacity,
		Quantity:    d.Quantity,
		Description: d.Description,
		Image:       d.Image,
	}
}

type SyncCabinsRequest struct {
	Cabins  []CabinDraft `json:"cabins"  validate:"omitempty,max=200"`
	Deleted []gModel.ID  `json:"deleted" validate:"omitempty,max=200"`
}

// Operation is one upstream call of a sync plan.
type Operation struct {
	Op     string
	ID     string
	TempID string
	Body   CreateCabinRequest
}

type OperationResult struct {
	Op         string `json:"op"`
	ID         string `json:"id,omitempty"`
	TempID     string `json:"temp_id,omitempty"`
	Status     string `json:"status"`
	StatusCode int    `json:"status_code,omitempty"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
}

type SyncCabinsResponse struct {
	Results []OperationResult `json:"results"`
	Cabins  []json.RawMessage `json:"cabins"`
}
