package util

const DateFormat = "2006-01-02"

// 分页
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
