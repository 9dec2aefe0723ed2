package models

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a hotel employee account with access to the reply console.
type Staff struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
