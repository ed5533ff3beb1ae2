package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-order-board/internal/domain"
)

// userRow 是 user 表的行模型。gorm 标签只出现在这里，
// domain.User 保持纯数据结构，转换走显式映射函数。
type userRow struct {
	ID        int `gorm:"primaryKey;autoIncrement:false"`
	FirstName string
	LastName  string
	Age       int
	Email     string
	Role      string
	Phone     string
}

func (userRow) TableName() string { return "user" }

func userToRow(u *domain.User) userRow {
	return userRow{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
	}
}

func (r userRow) record() domain.User {
	return domain.User{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Age:       r.Age,
		Email:     r.Email,
		Role:      r.Role,
		Phone:     r.Phone,
	}
}

type UserRepo struct{ db *gorm.DB }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	row := userToRow(u)
	return translateCreate(r.db.WithContext(ctx).Create(&row).Error)
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.record())
	}
	return users, nil
}

func (r *UserRepo) Get(ctx context.Context, id int) (*domain.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u := row.record()
	return &u, nil
}

// Update 整行替换（PUT 语义）：先确认存在，再覆盖全部可变字段
func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	var row userRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", u.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	next := userToRow(u)
	return r.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", u.ID).
		Select("first_name", "last_name", "age", "email", "role", "phone").
		Updates(&next).Error
}

func (r *UserRepo) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
