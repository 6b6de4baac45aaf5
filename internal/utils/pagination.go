package utils

// PageNumbers 返回 1..pages 的页码序列，供模板生成分页链接
func PageNumbers(pages int) []int {
	if pages < 1 {
		return []int{}
	}
	out := make([]int, pages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
