package model

// User is an API user, typically the CI orchestrator posting build events
type User struct {
	// ID for this user
	// required: true
	ID int64 `json:"-" meddler:"id,pk"`

	// Login is the username for this user
	// required: true
	Login string `json:"login"  meddler:"login"`

	// Secret is used to sign the user's API tokens
	Secret string `json:"-" meddler:"secret,encrypted"`

	// Admin users can manage other users
	Admin bool `json:"admin" meddler:"admin"`

	// Token is only set when the user is created over the API
	Token string `json:"token,omitempty" meddler:"-"`
}
