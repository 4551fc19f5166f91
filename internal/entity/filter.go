package entity

type SortBy string

func (s SortBy) String() string {
	return string(s)
}

const (
	SortByName      SortBy = "name"
	SortByCreatedAt SortBy = "created_at"
	SortByStartsAt  SortBy = "starts_at"
	SortByNumber    SortBy = "number"
	SortByFullName  SortBy = "full_name"
	SortByEmail     SortBy = "email"
)

type OrderBy string

func (o OrderBy) String() string {
	return string(o)
}

func (o OrderBy) IsValid() bool {
	switch o {
	case ASC, DESC:
		return true
	default:
		return false
	}
}

const (
	ASC  OrderBy = "asc"
	DESC OrderBy = "desc"
)
