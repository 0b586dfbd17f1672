package entity

type DeploymentState string

const (
	STATUS_RUNNING   DeploymentState = "RUNNING"
	STATUS_SUCCEEDED DeploymentState = "SUCCEEDED"
	STATUS_FAILED    DeploymentState = "FAILED"
	STATUS_STOPPED   DeploymentState = "STOPPED"
	STATUS_ERROR     DeploymentState = "ERROR"
)

// Terminal reports whether no further state transitions follow.
func (s DeploymentState) Terminal() bool {
	switch s {
	case STATUS_SUCCEEDED, STATUS_FAILED, STATUS_STOPPED, STATUS_ERROR:
		return true
	}
	return false
}

type DeploymentStatus struct {
	State   DeploymentState `json:"state,omitempty"`
	Message string          `json:"message,omitempty"`
}

type AppDeployment struct {
	DeploymentId   string            `json:"deployment_id,omitempty"`
	SourceCodePath string            `json:"source_code_path,omitempty"`
	Environment    Envs              `json:"environment,omitempty"`
	Status         *DeploymentStatus `json:"status,omitempty"`
}
