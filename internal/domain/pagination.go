package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageMeta accompanies every paginated response. TotalPages is
// ceil(Total/PageSize); pages beyond the range yield an empty list but keep
// the metadata accurate.
type PageMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NormalizePage clamps page to >=1 and pageSize to [1, MaxPageSize], applying
// DefaultPageSize when pageSize is unset.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func NewPageMeta(page, pageSize int, total int64) PageMeta {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return PageMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
