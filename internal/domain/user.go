package domain

import "context"

type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	Role      string `json:"role"` // "customer"/"executor"
	Phone     string `json:"phone"`
}

// Doc 序列化用的 key/value 形式
func (u User) Doc() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"age":        u.Age,
		"email":      u.Email,
		"role":       u.Role,
		"phone":      u.Phone,
	}
}

type UserStore interface {
	Create(ctx context.Context, u *User) error
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int) error
}
