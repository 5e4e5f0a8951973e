package models

import "time"

type User struct {
	UserID       string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	FirstName    string    `json:"first_name" bson:"first_name"`
	LastName     string    `json:"last_name" bson:"last_name"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
}

// UserResponse is the public view of a user. The password hash never
// leaves the users collection.
type UserResponse struct {
	UserID    string    `json:"id" bson:"id"`
	Email     string    `json:"email" bson:"email"`
	FirstName string    `json:"first_name" bson:"first_name"`
	LastName  string    `json:"last_name" bson:"last_name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
}

func (u *User) Response() UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		IsActive:  u.IsActive,
	}
}
