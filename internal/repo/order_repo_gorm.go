package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-order-board/internal/domain"
)

// orderRow customer_id/executor_id 只是普通整型列，
// 不声明外键约束（软引用，删 user 不影响已有单）。
type orderRow struct {
	ID          int `gorm:"primaryKey;autoIncrement:false"`
	Name        string
	Description string
	StartDate   string
	EndDate     string
	Address     string
	Price       int
	CustomerID  int
	ExecutorID  int
}

func (orderRow) TableName() string { return "order" }

func orderToRow(o *domain.Order) orderRow {
	return orderRow{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		StartDate:   o.StartDate,
		EndDate:     o.EndDate,
		Address:     o.Address,
		Price:       o.Price,
		CustomerID:  o.CustomerID,
		ExecutorID:  o.ExecutorID,
	}
}

func (r orderRow) record() domain.Order {
	return domain.Order{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Address:     r.Address,
		Price:       r.Price,
		CustomerID:  r.CustomerID,
		ExecutorID:  r.ExecutorID,
	}
}

type OrderRepo struct{ db *gorm.DB }

func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	row := orderToRow(o)
	return translateCreate(r.db.WithContext(ctx).Create(&row).Error)
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	var rows []orderRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.record())
	}
	return orders, nil
}

func (r *OrderRepo) Get(ctx context.Context, id int) (*domain.Order, error) {
	var row orderRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o := row.record()
	return &o, nil
}

func (r *OrderRepo) Update(ctx context.Context, o *domain.Order) error {
	var row orderRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", o.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	next := orderToRow(o)
	return r.db.WithContext(ctx).Model(&orderRow{}).Where("id = ?", o.ID).
		Select("name", "description", "start_date", "end_date", "address", "price", "customer_id", "executor_id").
		Updates(&next).Error
}

func (r *OrderRepo) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&orderRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
