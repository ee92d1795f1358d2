package entity

// SortOrder is the direction of a listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PageRequest is a 1-based page request.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.Limit
}

// UserFilter narrows an admin user listing. Empty fields are ignored.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    Role
	SortBy  string
	Order   SortOrder
	PageRequest
}

// StoreFilter narrows a store listing. Search matches name or address.
type StoreFilter struct {
	Search  string
	Name    string
	Email   string
	Address string
	SortBy  string
	Order   SortOrder
	PageRequest
}
