package response_models

type TokenResponse struct {
	Token string `json:"token"`
}

type ExistResponse struct {
	Exist bool `json:"exist"`
}

type ValidResponse struct {
	Valid bool `json:"valid"`
}
