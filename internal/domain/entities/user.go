package entities

import (
	"time"
)

// UserProfile representa o operador de campo dono de uma coleta. Para o
// motor de agregação o usuário é apenas um identificador opaco.
type UserProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey;column:id"`
	Email     string    `json:"email" gorm:"column:email"`
	FirstName string    `json:"first_name" gorm:"column:first_name"`
	LastName  string    `json:"last_name" gorm:"column:last_name"`
	Position  string    `json:"position" gorm:"column:position"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}
