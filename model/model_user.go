package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

const DefaultProfilePicture = "uploads/profile-pictures/download.png"

type User struct {
	ID             bson.ObjectID `json:"_id"            bson:"_id,omitempty"`
	Username       string        `json:"username"       bson:"username"`
	Email          string        `json:"email"          bson:"email"`
	Password       string        `json:"-"              bson:"password"` // bcrypt hash, never serialized
	Gender         string        `json:"gender"         bson:"gender"`
	ProfilePicture string        `json:"profilePicture" bson:"profilePicture"`
}
