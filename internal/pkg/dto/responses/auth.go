package responses

type UserProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Login struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
