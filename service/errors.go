package service

import "errors"

// 领域错误 handler 负责映射状态码
// 用类型化错误区分 "不存在" 和 "不是你的" 不做字符串匹配
var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrNoteForbidden = errors.New("note does not belong to the current user")
)
