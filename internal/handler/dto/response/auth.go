package response

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        SessionUser `json:"user"`
}

type SessionUser struct {
	Name string `json:"name"`
}
