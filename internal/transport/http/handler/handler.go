package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-order-board/internal/domain"
	"go-order-board/internal/transport/http/response"
)

// pathID 解析 :id，非整数直接 400
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, response.CodeBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}

func recordKey(kind string, id int) string {
	return kind + ":" + strconv.Itoa(id)
}

// failStore 存储层错误统一映射：NotFound→404，Duplicate→409，其余 500
func failStore(c *gin.Context, l *zap.Logger, err error, what string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Fail(c, response.CodeNotFound, what+" not found")
	case errors.Is(err, domain.ErrDuplicate):
		response.Fail(c, response.CodeConflict, what+" id already exists")
	default:
		l.Error("store error", zap.String("entity", what), zap.Error(err))
		response.Fail(c, response.CodeServerError, "")
	}
}
