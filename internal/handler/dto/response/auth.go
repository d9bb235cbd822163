package response

import "gleamshop/internal/usecase/queries"

type RegisterResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
