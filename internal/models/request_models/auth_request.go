package request_models

type SignUpRequest struct {
	Identity    string `json:"identity" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName"`
}

type LoginRequest struct {
	Identity string `json:"identity" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthenticateRequest probes whether an identity already has an account, so
// the client knows to show the login or the register step next.
type AuthenticateRequest struct {
	Identity string `json:"identity" binding:"required"`
}

type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}
