package entity

type User struct {
	Id       string `json:"id,omitempty"`
	UserName string `json:"user_name,omitempty"`
}
