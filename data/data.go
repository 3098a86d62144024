package data

import "time"

// User represents a registered user, providing a valid login.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash []byte `json:"passwordHash"`
	DisplayName  string `json:"displayName"`
}

func (user User) GetDisplayName() string {
	if user.DisplayName != "" {
		return user.DisplayName
	}

	return user.Email
}

// Identity returns the part of the user that is exposed via /api/user.
func (user User) Identity() *Identity {
	return &Identity{
		ID:    user.ID,
		Email: user.Email,
	}
}

// Token is a sign-in token handed out as the session cookie.
type Token struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Identity is the record describing a signed in user.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Session is the authentication state of the current user. A nil User
// means nobody is signed in and serializes as {"user":null}.
type Session struct {
	User *Identity `json:"user"`
}

func SignedOut() Session {
	return Session{}
}

func SignedInAs(identity Identity) Session {
	return Session{User: &identity}
}

func (session Session) SignedIn() bool {
	return session.User != nil
}

// Link is a navigable element with visible text and a destination.
type Link struct {
	Text string
	Href string
}
