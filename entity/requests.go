package entity

type DeployRequest struct {
	AppName        string
	SourceCodePath string
	Environment    Envs
}

type DeploymentStatusRequest struct {
	AppName      string
	DeploymentId string
}

type ConfigureRequest struct {
	AppName  string
	Database *DatabaseConfig
}
