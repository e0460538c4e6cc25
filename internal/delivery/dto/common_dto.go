package dto

// Identifiable is implemented by request bodies that carry the target id.
type Identifiable interface {
	GetID() int64
}

// IDRequest is embedded by partial-update bodies. The id is checked by the
// usecase rather than the validator so the business rule owns the message.
type IDRequest struct {
	ID int64 `json:"id"`
}

func (r IDRequest) GetID() int64 {
	return r.ID
}

// DeleteLogicalRequest sets the active flag of an entity. Status false
// deactivates, true reactivates.
type DeleteLogicalRequest struct {
	ID     int64 `json:"id"`
	Status *bool `json:"status" validate:"required"`
}

func (r DeleteLogicalRequest) GetID() int64 {
	return r.ID
}

// ListQuery is parsed from ?page=&limit=&status= on list endpoints.
type ListQuery struct {
	Page   int
	Limit  int
	Status *bool
}
