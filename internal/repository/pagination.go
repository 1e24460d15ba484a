package repository

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

type PageRequest struct {
	Skip  int
	Limit int
}

type PageResult[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

func normalizePageRequest(req PageRequest) PageRequest {
	if req.Skip < 0 {
		req.Skip = 0
	}
	if req.Limit <= 0 {
		req.Limit = DefaultLimit
	}
	if req.Limit > MaxLimit {
		req.Limit = MaxLimit
	}
	return req
}
