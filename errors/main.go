package errors

import (
	"errors"
	"fmt"

	"github.com/genieiq/cli/ui"
)

type GenieError error

// Kind sentinels. Every failure coming back from the workspace is classified
// as exactly one of these, so callers can match with errors.Is and the top
// level can format each kind distinctly.
var (
	ErrNotFound       GenieError = errors.New("not found")
	ErrDeployRejected GenieError = errors.New("deploy request rejected")
	ErrTransport      GenieError = errors.New("transport failure")
	ErrTimeout        GenieError = errors.New("timed out")
)

var (
	UserConfigNotFound    GenieError = fmt.Errorf("%s\nRun %s", ui.RedText("Not logged in."), ui.Bold("genie login"))
	WorkspaceHostNotSet   GenieError = fmt.Errorf("%s\nRun %s and enter your workspace URL", ui.RedText("Workspace host not configured."), ui.Bold("genie login"))
	ProjectConfigNotFound GenieError = fmt.Errorf("%s\nRun %s to pick one, or pass %s", ui.RedText("No app linked."), ui.Bold("genie link <app>"), ui.Bold("--app <name>"))
	DatabaseConfigMissing GenieError = fmt.Errorf("%s\nPass --db-host, --db-port, --db-name, --db-user and --db-password, or --env-file", ui.RedText("Incomplete database configuration."))
)

type kindError struct {
	kind GenieError
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// AppNotFound is returned when the workspace has no app with the given name.
func AppNotFound(name string) error {
	return &kindError{
		kind: ErrNotFound,
		msg:  fmt.Sprintf("%s", ui.RedText(fmt.Sprintf("App %q not found in this workspace.", name))),
	}
}

func DeploymentNotFound(id string) error {
	return &kindError{
		kind: ErrNotFound,
		msg:  fmt.Sprintf("%s", ui.RedText(fmt.Sprintf("Deployment %q not found.", id))),
	}
}

// NoActiveDeployment is returned when an app has never been deployed, so
// there is no source path to reuse.
func NoActiveDeployment(name string) error {
	return &kindError{
		kind: ErrDeployRejected,
		msg:  fmt.Sprintf("%s\nDeploy the app once from the workspace UI first.", ui.RedText(fmt.Sprintf("App %q has no active deployment to reuse the source path from.", name))),
	}
}

func DeployRejected(reason string) error {
	msg := "The workspace rejected the deploy request."
	if reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, reason)
	}
	return &kindError{kind: ErrDeployRejected, msg: fmt.Sprintf("%s", ui.RedText(msg))}
}

func Transport(err error) error {
	return &kindError{
		kind: ErrTransport,
		msg:  fmt.Sprintf("%s %v", ui.RedText("Could not reach the workspace:"), err),
	}
}

// DeploymentTimeout is distinct from the platform's own FAILED/STOPPED/ERROR
// states: the deployment may still be in flight.
func DeploymentTimeout(attempts int) error {
	return &kindError{
		kind: ErrTimeout,
		msg:  fmt.Sprintf("%s", ui.YellowText(fmt.Sprintf("Gave up waiting after %d status checks. The deployment may still complete; check genie status.", attempts))),
	}
}
