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

type OfferHandler struct {
	offers domain.OfferStore
	cache  *cache.Cache
	log    *zap.Logger
}

func NewOfferHandler(offers domain.OfferStore, cc *cache.Cache, log *zap.Logger) *OfferHandler {
	return &OfferHandler{offers: offers, cache: cc, log: log}
}

func (h *OfferHandler) Mount(g *gin.RouterGroup) {
	g.GET("/offers", h.list)
	g.POST("/offers", h.create)
	g.GET("/offer/:id", h.get)
	g.PUT("/offer/:id", h.update)
	g.DELETE("/offer/:id", h.delete)
}

type offerIn struct {
	ID         *int `json:"id"`
	OrderID    *int `json:"order_id" binding:"required"`
	ExecutorID *int `json:"executor_id" binding:"required"`
}

func (in offerIn) record(id int) domain.Offer {
	return domain.Offer{ID: id, OrderID: *in.OrderID, ExecutorID: *in.ExecutorID}
}

func (h *OfferHandler) list(c *gin.Context) {
	offers, err := h.offers.List(c.Request.Context())
	if err != nil {
		failStore(c, h.log, err, "offer")
		return
	}
	docs := make([]map[string]any, 0, len(offers))
	for _, o := range offers {
		docs = append(docs, o.Doc())
	}
	c.JSON(http.StatusOK, docs)
}

func (h *OfferHandler) create(c *gin.Context) {
	var in offerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, response.CodeBadRequest, err.Error())
		return
	}
	if in.ID == nil {
		response.Fail(c, response.CodeBadRequest, "id is required")
		return
	}
	o := in.record(*in.ID)
	if err := h.offers.Create(c.Request.Context(), &o); err != nil {
		failStore(c, h.log, err, "offer")
		return
	}
	c.String(http.StatusCreated, "Offer created")
}

func (h *OfferHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.fetch(c.Request.Context(), id)
	if err != nil {
		failStore(c, h.log, err, "offer")
		return
	}
	c.JSON(http.StatusOK, o.Doc())
}

func (h *OfferHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in offerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, response.CodeBadRequest, err.Error())
		return
	}
	o := in.record(id)
	if err := h.offers.Update(c.Request.Context(), &o); err != nil {
		failStore(c, h.log, err, "offer")
		return
	}
	h.invalidate(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

func (h *OfferHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.offers.Delete(c.Request.Context(), id); err != nil {
		failStore(c, h.log, err, "offer")
		return
	}
	h.invalidate(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

func (h *OfferHandler) fetch(ctx context.Context, id int) (*domain.Offer, error) {
	if h.cache == nil {
		return h.offers.Get(ctx, id)
	}
	return cache.GetOrLoadJSON(h.cache, ctx, recordKey("offer", id), func(ctx context.Context) (*domain.Offer, error) {
		return h.offers.Get(ctx, id)
	})
}

func (h *OfferHandler) invalidate(ctx context.Context, id int) {
	if h.cache != nil {
		h.cache.Invalidate(ctx, recordKey("offer", id))
	}
}
