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

type OrderHandler struct {
	orders domain.OrderStore
	cache  *cache.Cache
	log    *zap.Logger
}

func NewOrderHandler(orders domain.OrderStore, cc *cache.Cache, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, cache: cc, log: log}
}

func (h *OrderHandler) Mount(g *gin.RouterGroup) {
	g.GET("/orders", h.list)
	g.POST("/orders", h.create)
	g.GET("/order/:id", h.get)
	g.PUT("/order/:id", h.update)
	g.DELETE("/order/:id", h.delete)
}

// customer_id/executor_id 不校验对应记录存在（软外键）
type orderIn struct {
	ID          *int    `json:"id"`
	Name        *string `json:"name" binding:"required"`
	Description *string `json:"description" binding:"required"`
	StartDate   *string `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date" binding:"required"`
	Address     *string `json:"address" binding:"required"`
	Price       *int    `json:"price" binding:"required"`
	CustomerID  *int    `json:"customer_id" binding:"required"`
	ExecutorID  *int    `json:"executor_id" binding:"required"`
}

func (in orderIn) record(id int) domain.Order {
	return domain.Order{
		ID:          id,
		Name:        *in.Name,
		Description: *in.Description,
		StartDate:   *in.StartDate,
		EndDate:     *in.EndDate,
		Address:     *in.Address,
		Price:       *in.Price,
		CustomerID:  *in.CustomerID,
		ExecutorID:  *in.ExecutorID,
	}
}

func (h *OrderHandler) list(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		failStore(c, h.log, err, "order")
		return
	}
	docs := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		docs = append(docs, o.Doc())
	}
	c.JSON(http.StatusOK, docs)
}

func (h *OrderHandler) create(c *gin.Context) {
	var in orderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, response.CodeBadRequest, err.Error())
		return
	}
	if in.ID == nil {
		response.Fail(c, response.CodeBadRequest, "id is required")
		return
	}
	o := in.record(*in.ID)
	if err := h.orders.Create(c.Request.Context(), &o); err != nil {
		failStore(c, h.log, err, "order")
		return
	}
	c.String(http.StatusCreated, "Order created")
}

func (h *OrderHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.fetch(c.Request.Context(), id)
	if err != nil {
		failStore(c, h.log, err, "order")
		return
	}
	c.JSON(http.StatusOK, o.Doc())
}

func (h *OrderHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in orderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, response.CodeBadRequest, err.Error())
		return
	}
	o := in.record(id)
	if err := h.orders.Update(c.Request.Context(), &o); err != nil {
		failStore(c, h.log, err, "order")
		return
	}
	h.invalidate(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	// 不级联：指向该单的 offer 保留（软引用）
	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		failStore(c, h.log, err, "order")
		return
	}
	h.invalidate(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) fetch(ctx context.Context, id int) (*domain.Order, error) {
	if h.cache == nil {
		return h.orders.Get(ctx, id)
	}
	return cache.GetOrLoadJSON(h.cache, ctx, recordKey("order", id), func(ctx context.Context) (*domain.Order, error) {
		return h.orders.Get(ctx, id)
	})
}

func (h *OrderHandler) invalidate(ctx context.Context, id int) {
	if h.cache != nil {
		h.cache.Invalidate(ctx, recordKey("order", id))
	}
}
