package model

// User represents a staff account (doctors and administrators)
type User struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	SecondSurname string `json:"secondSurname"`
	Phone         string `json:"phone"`
	Movil         string `json:"movil"`
	Email         string `json:"email"`
	Color         string `json:"color"`
	Admin         bool   `json:"admin"`
	PasswordHash  string `json:"-"` // Do not expose password hash in JSON responses
}

// UserRequest carries the payload for creating or updating a user.
// Password is optional on update: when empty the stored hash is preserved.
type UserRequest struct {
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	SecondSurname string `json:"secondSurname"`
	Phone         string `json:"phone"`
	Movil         string `json:"movil"`
	Email         string `json:"email"`
	Color         string `json:"color"`
	Admin         bool   `json:"admin"`
	Password      string `json:"password"`
}

// AuthUser is the sanitized projection returned by login/register
type AuthUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Admin    bool   `json:"admin"`
	Color    string `json:"color"`
}
