package postgres

import (
	"time"

	"github.com/gdogra/tennisconnect/internal/domain/user"
)

type userTableModel struct {
	ID          string    `db:"id"`
	DisplayName string    `db:"display_name"`
	Email       string    `db:"email"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
}

func (m userTableModel) toDomain() user.User {
	return user.User{
		ID:          m.ID,
		DisplayName: m.DisplayName,
		Email:       m.Email,
		Role:        user.Role(m.Role),
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func userModelFromDomain(u user.User) userTableModel {
	return userTableModel{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt.UTC(),
	}
}
