package model

// User is an account on the expense API. Password is only ever sent,
// never returned.
type User struct {
	ID       *int   `json:"id,omitempty"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}
