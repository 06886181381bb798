package entity

// User is the public profile shape. The bcrypt hash rides along for the
// credential checks inside the usecase layer and is cleared before a user
// ever reaches a handler response.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Avatar   string `json:"avatar"`
}
