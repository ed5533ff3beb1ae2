package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"go-order-board/internal/repo"
)

// Load 重建表并灌入固定数据集。每条记录独立提交，
// 中途失败不回滚（启动期行为，继承自数据集的加载约定）。
func Load(ctx context.Context, st *repo.Store, log *zap.Logger) error {
	if err := st.Init(ctx); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	for i := range Users {
		if err := st.Users.Create(ctx, &Users[i]); err != nil {
			return fmt.Errorf("seed user %d: %w", Users[i].ID, err)
		}
	}
	for i := range Orders {
		if err := st.Orders.Create(ctx, &Orders[i]); err != nil {
			return fmt.Errorf("seed order %d: %w", Orders[i].ID, err)
		}
	}
	for i := range Offers {
		if err := st.Offers.Create(ctx, &Offers[i]); err != nil {
			return fmt.Errorf("seed offer %d: %w", Offers[i].ID, err)
		}
	}
	log.Info("seed loaded",
		zap.Int("users", len(Users)),
		zap.Int("orders", len(Orders)),
		zap.Int("offers", len(Offers)),
	)
	return nil
}
