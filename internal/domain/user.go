package domain

// Flag values used by the "isAdmin" and "isRegistered" user fields.
const (
	FlagYes = "Y"
	FlagNo  = "N"
)

// User represents an application user stored in the Users collection.
// The Mongo _id is never read back; userName is the logical key.
type User struct {
	UserName     string `bson:"userName" json:"userName"` // Should be unique
	// Measurements are any stored number; null (an edit that could not be
	// read as a number) stays nil.
	Age          *float64 `bson:"age" json:"age"`
	Height       *float64 `bson:"height" json:"height"`
	Weight       *float64 `bson:"weight" json:"weight"`
	Gender       string   `bson:"gender" json:"gender"`
	IsAdmin      string   `bson:"isAdmin" json:"isAdmin"`           // "Y" or "N"
	IsRegistered string   `bson:"isRegistered" json:"isRegistered"` // "Y" once approved by an admin
	Password     string   `bson:"password" json:"-"`                // Stored as provided, never rendered
}

func (u *User) IsApproved() bool {
	return u.IsRegistered == FlagYes
}

// UserDetails carries the body measurements editable after registration.
// A nil field is stored as null (the value could not be coerced to an integer).
type UserDetails struct {
	Age    *int
	Height *int
	Weight *int
}

// PendingUser is the projection returned when listing users awaiting approval.
type PendingUser struct {
	UserName     string `bson:"userName" json:"userName"`
	IsRegistered string `bson:"isRegistered" json:"isRegistered"`
}
