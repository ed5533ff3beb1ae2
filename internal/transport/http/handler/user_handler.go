package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-order-board/internal/core/cache"
	"go-order-board/internal/domain"
	"go-order-board/internal/transport/http/response"
)

type UserHandler struct {
	users domain.UserStore
	cache *cache.Cache // 可为 nil（默认关闭）
	log   *zap.Logger
}

func NewUserHandler(users domain.UserStore, cc *cache.Cache, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, cache: cc, log: log}
}

func (h *UserHandler) Mount(g *gin.RouterGroup) {
	g.GET("/users", h.list)
	g.POST("/users", h.create)
	g.GET("/user/:id", h.get)
	g.PUT("/user/:id", h.update)
	g.DELETE("/user/:id", h.delete)
}

// 所有字段必填（整体替换语义）；id 建单时必填，更新时取路径参数
type userIn struct {
	ID        *int    `json:"id"`
	FirstName *string `json:"first_name" binding:"required"`
	LastName  *string `json:"last_name" binding:"required"`
	Age       *int    `json:"age" binding:"required"`
	Email     *string `json:"email" binding:"required"`
	Role      *string `json:"role" binding:"required"`
	Phone     *string `json:"phone" binding:"required"`
}

func (in userIn) record(id int) domain.User {
	return domain.User{
		ID:        id,
		FirstName: *in.FirstName,
		LastName:  *in.LastName,
		Age:       *in.Age,
		Email:     *in.Email,
		Role:      *in.Role,
		Phone:     *in.Phone,
	}
}

func (h *UserHandler) list(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		failStore(c, h.log, err, "user")
		return
	}
	docs := make([]map[string]any, 0, len(users))
	for _, u := range users {
		docs = append(docs, u.Doc())
	}
	c.JSON(http.StatusOK, docs)
}

func (h *UserHandler) create(c *gin.Context) {
	var in userIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, response.CodeBadRequest, err.Error())
		return
	}
	if in.ID == nil {
		response.Fail(c, response.CodeBadRequest, "id is required")
		return
	}
	u := in.record(*in.ID)
	if err := h.users.Create(c.Request.Context(), &u); err != nil {
		failStore(c, h.log, err, "user")
		return
	}
	c.String(http.StatusCreated, "User created")
}

func (h *UserHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.fetch(c.Request.Context(), id)
	if err != nil {
		failStore(c, h.log, err, "user")
		return
	}
	c.JSON(http.StatusOK, u.Doc())
}

func (h *UserHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in userIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, response.CodeBadRequest, err.Error())
		return
	}
	u := in.record(id)
	if err := h.users.Update(c.Request.Context(), &u); err != nil {
		failStore(c, h.log, err, "user")
		return
	}
	h.invalidate(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		failStore(c, h.log, err, "user")
		return
	}
	h.invalidate(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) fetch(ctx context.Context, id int) (*domain.User, error) {
	if h.cache == nil {
		return h.users.Get(ctx, id)
	}
	return cache.GetOrLoadJSON(h.cache, ctx, recordKey("user", id), func(ctx context.Context) (*domain.User, error) {
		return h.users.Get(ctx, id)
	})
}

func (h *UserHandler) invalidate(ctx context.Context, id int) {
	if h.cache != nil {
		h.cache.Invalidate(ctx, recordKey("user", id))
	}
}
