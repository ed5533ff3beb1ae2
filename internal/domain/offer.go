package domain

import "context"

// Offer executor 对某个 Order 的响应
type Offer struct {
	ID         int `json:"id"`
	OrderID    int `json:"order_id"`
	ExecutorID int `json:"executor_id"`
}

func (o Offer) Doc() map[string]any {
	return map[string]any{
		"id":          o.ID,
		"order_id":    o.OrderID,
		"executor_id": o.ExecutorID,
	}
}

type OfferStore interface {
	Create(ctx context.Context, o *Offer) error
	List(ctx context.Context) ([]Offer, error)
	Get(ctx context.Context, id int) (*Offer, error)
	Update(ctx context.Context, o *Offer) error
	Delete(ctx context.Context, id int) error
}
