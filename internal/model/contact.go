package model

import "time"

// ContactMessage is a message submitted through the public contact form,
// stored in the `contact_messages` collection.  Read is persisted for a
// future inbox feature and currently always stays false.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Read      bool      `bson:"read" json:"read"`
}
