package models

import "time"

// User represents the identity summary issued by the auth provider
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName,omitempty"`
}

// Profile is the per-user document kept in the external document store.
// One profile exists per identity, written exactly once at signup.
type Profile struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`
}
