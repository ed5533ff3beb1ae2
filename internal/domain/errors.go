package domain

import "errors"

// 存储层统一错误（handler 按 errors.Is 映射成 HTTP 状态码）
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record id")
)
