package dto

type Filter struct {
	Limit int    `query:"limit"`
	Page  int    `query:"page"`
	Q     string `query:"q"`
}

// Offset returns the slice window for the filter, or ok=false when pagination is off.
func (f Filter) Offset(total int) (start, end int, ok bool) {
	if f.Limit <= 0 || f.Page <= 0 {
		return 0, total, false
	}

	start = (f.Page - 1) * f.Limit
	if start > total {
		start = total
	}
	end = start + f.Limit
	if end > total {
		end = total
	}

	return start, end, true
}

type PaginationMetadata struct {
	TotalCount uint64 `json:"total_count"`
	Page       uint64 `json:"page"`
	Limit      int    `json:"limit"`
}

type PaginationResponse struct {
	Metadata PaginationMetadata `json:"_metadata"`
	Records  interface{}        `json:"records"`
}
