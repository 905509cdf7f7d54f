package model

import "time"

// User represents a storefront account stored in the `users` collection.
// The password hash is persisted under the `password` field and is never
// serialized into API responses.
//
// Fields:
//  ID           – opaque unique identifier (UUID string).
//  Email        – unique email address, matched exactly as stored.
//  PasswordHash – bcrypt hash of the password.
//  FirstName    – given name.
//  LastName     – family name.
//  Phone        – optional phone number (nil when not provided).
//  IsAdmin      – grants access to the /admin routes.
//  CreatedAt    – registration timestamp.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"`
	FirstName    string    `bson:"first_name" json:"first_name"`
	LastName     string    `bson:"last_name" json:"last_name"`
	Phone        *string   `bson:"phone" json:"phone"`
	IsAdmin      bool      `bson:"is_admin" json:"is_admin"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
