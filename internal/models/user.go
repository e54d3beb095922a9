package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleRenter Role = "renter"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

type Address struct {
	Street      string `bson:"street" json:"street"`
	District    string `bson:"district" json:"district"`
	Subdistrict string `bson:"subdistrict" json:"subdistrict"`
	PostalCode  string `bson:"postal_code" json:"postal_code"`
	City        string `bson:"city" json:"city"`
	Province    string `bson:"province" json:"province"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName  string             `bson:"full_name" json:"full_name" validate:"required,max=120"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Password  string             `bson:"password" json:"-"`
	Phone     string             `bson:"phone" json:"phone" validate:"required,max=30"`
	Role      Role               `bson:"role" json:"role" validate:"required,oneof=renter owner admin"`
	Gender    string             `bson:"gender" json:"gender"`
	BirthDate *time.Time         `bson:"birth_date,omitempty" json:"birth_date,omitempty"`
	Address   Address            `bson:"address" json:"address"`
	Verified  bool               `bson:"verified" json:"verified"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// ProfileUpdate carries the editable profile fields; nil fields are left as they are.
type ProfileUpdate struct {
	FullName  *string    `json:"full_name" validate:"omitempty,min=1,max=120"`
	Phone     *string    `json:"phone" validate:"omitempty,min=1,max=30"`
	Gender    *string    `json:"gender" validate:"omitempty,max=20"`
	BirthDate *time.Time `json:"birth_date"`
	Address   *Address   `json:"address"`
}

func (p ProfileUpdate) IsEmpty() bool {
	return p.FullName == nil && p.Phone == nil && p.Gender == nil && p.BirthDate == nil && p.Address == nil
}
