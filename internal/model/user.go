package model

import "time"

type User struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create" json:"id"`
	Username       string    `gorm:"column:username;type:varchar(255);not null" json:"username"`
	Email          string    `gorm:"column:email;type:varchar(255)" json:"email"`
	FirstName      string    `gorm:"column:first_name;type:varchar(255)" json:"first_name"`
	LastName       string    `gorm:"column:last_name;type:varchar(255)" json:"last_name"`
	InitialBalance float64   `gorm:"column:initial_balance;not null;default:0" json:"initial_balance"`
	IsActive       bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	IsActiveChat   bool      `gorm:"column:is_active_chat;not null;default:true" json:"is_active_chat"`
	IsAdmin        bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
