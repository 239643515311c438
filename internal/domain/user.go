package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Phone     string    `gorm:"uniqueIndex;not null;size:32"`
	FullName  string    `gorm:"not null"`
	Role      string    `gorm:"not null;default:'student'"`
	LastLogin *time.Time
	CreatedAt time.Time
}
