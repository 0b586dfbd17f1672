package entity

type App struct {
	Id               string         `json:"id,omitempty"`
	Name             string         `json:"name,omitempty"`
	Url              string         `json:"url,omitempty"`
	ActiveDeployment *AppDeployment `json:"active_deployment,omitempty"`
}
