package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-order-board/internal/domain"
)

type offerRow struct {
	ID         int `gorm:"primaryKey;autoIncrement:false"`
	OrderID    int
	ExecutorID int
}

func (offerRow) TableName() string { return "offer" }

func offerToRow(o *domain.Offer) offerRow {
	return offerRow{ID: o.ID, OrderID: o.OrderID, ExecutorID: o.ExecutorID}
}

func (r offerRow) record() domain.Offer {
	return domain.Offer{ID: r.ID, OrderID: r.OrderID, ExecutorID: r.ExecutorID}
}

type OfferRepo struct{ db *gorm.DB }

func (r *OfferRepo) Create(ctx context.Context, o *domain.Offer) error {
	row := offerToRow(o)
	return translateCreate(r.db.WithContext(ctx).Create(&row).Error)
}

func (r *OfferRepo) List(ctx context.Context) ([]domain.Offer, error) {
	var rows []offerRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	offers := make([]domain.Offer, 0, len(rows))
	for _, row := range rows {
		offers = append(offers, row.record())
	}
	return offers, nil
}

func (r *OfferRepo) Get(ctx context.Context, id int) (*domain.Offer, error) {
	var row offerRow
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

func (r *OfferRepo) Update(ctx context.Context, o *domain.Offer) error {
	var row offerRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", o.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	next := offerToRow(o)
	return r.db.WithContext(ctx).Model(&offerRow{}).Where("id = ?", o.ID).
		Select("order_id", "executor_id").
		Updates(&next).Error
}

func (r *OfferRepo) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&offerRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
