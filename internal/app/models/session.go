package models

// User is the profile subset the portal keeps in the session. Role holds the
// raw role string as the backend returned it.
type User struct {
	UserID    int64  `json:"userId,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role,omitempty"`
}

func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

type Session struct {
	Token string
	User  User
}
