package repository

// Paginated 分页结果
type Paginated[T any] struct {
	Items []T
	Page  int
	Pages int
	Total int64
}

// pageCount 计算总页数 ceil(total / limit)
func pageCount(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
