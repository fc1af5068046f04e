package models

type Account struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
