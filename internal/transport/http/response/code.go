package response

import "net/http"

// 错误码直接用 HTTP 语义
const (
	CodeBadRequest  = http.StatusBadRequest
	CodeNotFound    = http.StatusNotFound
	CodeConflict    = http.StatusConflict
	CodeServerError = http.StatusInternalServerError
)

// CodeMsgMap 集中管理 code - msg 默认文案
var CodeMsgMap = map[int]string{
	CodeBadRequest:                   "Bad Request",
	CodeNotFound:                     "Not Found",
	CodeConflict:                     "Conflict",
	CodeServerError:                  "Internal Server Error",
	http.StatusRequestEntityTooLarge: "Request Entity Too Large",
	http.StatusTooManyRequests:       "Too Many Requests",
	http.StatusServiceUnavailable:    "Service Unavailable",
	http.StatusGatewayTimeout:        "Gateway Timeout",
}
