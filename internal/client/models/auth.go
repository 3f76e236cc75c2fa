package models

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Tokens is the pair issued by /api/token/.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
