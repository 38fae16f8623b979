package model

import "time"

// AdminAccount is a privileged identity from the admins collection.
// The password is stored as a bcrypt hash and never serialized.
type AdminAccount struct {
	Id           string    `firestore:"-" json:"id"`
	Name         string    `firestore:"name" json:"name"`
	PasswordHash string    `firestore:"passwordHash" json:"-"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
}
