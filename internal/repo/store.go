package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"go-order-board/internal/domain"
)

// Store 持久化网关：持有连接，按实体拆三个 repo
type Store struct {
	db *gorm.DB

	Users  *UserRepo
	Orders *OrderRepo
	Offers *OfferRepo
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:     db,
		Users:  &UserRepo{db: db},
		Orders: &OrderRepo{db: db},
		Offers: &OfferRepo{db: db},
	}
}

// Init 清空并重建三张表。只在进程启动时调用，是破坏性的。
func (s *Store) Init(ctx context.Context) error {
	m := s.db.WithContext(ctx).Migrator()
	// 先删引用方，建表顺序相反
	if err := m.DropTable(&offerRow{}, &orderRow{}, &userRow{}); err != nil {
		return err
	}
	return s.db.WithContext(ctx).AutoMigrate(&userRow{}, &orderRow{}, &offerRow{})
}

// isDupKey 不依赖 gorm.ErrDuplicatedKey，避免方言翻译差异
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique failed")
}

func translateCreate(err error) error {
	if err == nil {
		return nil
	}
	if isDupKey(err) {
		return domain.ErrDuplicate
	}
	return err
}
