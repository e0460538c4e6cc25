package entity

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// ListFilter narrows FindAll queries.
type ListFilter struct {
	Page   int
	Limit  int
	Status *bool
}

// Normalize clamps page and limit into their valid ranges.
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	return f
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
