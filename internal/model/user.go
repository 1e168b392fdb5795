package model

type User struct {
	ID      string `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string `bson:"name" json:"name"`
	IsAdmin bool   `bson:"isAdmin" json:"isAdmin"`
}

// Credential pairs a user display name with the session token the login
// endpoint issued for it.
type Credential struct {
	Name  string
	Token string
}
