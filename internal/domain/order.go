package domain

import "context"

// Order 自由单（customer 发单，executor 接单）。customer_id/executor_id
// 是软外键，不校验对应 User 是否存在。
type Order struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Address     string `json:"address"`
	Price       int    `json:"price"`
	CustomerID  int    `json:"customer_id"`
	ExecutorID  int    `json:"executor_id"`
}

func (o Order) Doc() map[string]any {
	return map[string]any{
		"id":          o.ID,
		"name":        o.Name,
		"description": o.Description,
		"start_date":  o.StartDate,
		"end_date":    o.EndDate,
		"address":     o.Address,
		"price":       o.Price,
		"customer_id": o.CustomerID,
		"executor_id": o.ExecutorID,
	}
}

type OrderStore interface {
	Create(ctx context.Context, o *Order) error
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id int) (*Order, error)
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id int) error
}
