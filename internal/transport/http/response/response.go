package response

import "github.com/gin-gonic/gin"

type Body struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Fail 以真实 HTTP 状态码返回错误体并终止后续 handler
func Fail(c *gin.Context, status int, msg string) {
	if msg == "" {
		msg = CodeMsgMap[status]
	}
	c.AbortWithStatusJSON(status, Body{Code: status, Msg: msg})
}
