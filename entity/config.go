package entity

type UserConfig struct {
	Host  string `json:"host"`
	Token string `json:"token"`
}

type ProjectConfig struct {
	App string `json:"app,omitempty"`
}
