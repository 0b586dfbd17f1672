package controller

import (
	"context"
	"time"

	"github.com/google/go-github/github"

	"github.com/genieiq/cli/configs"
	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/gateway"
)

// Gateway is the slice of the workspace API the controller depends on.
// Holding an interface instead of the concrete client keeps the deploy and
// polling logic testable with a fake.
type Gateway interface {
	GetApp(ctx context.Context, name string) (*entity.App, error)
	CreateDeployment(ctx context.Context, req *entity.DeployRequest) (*entity.AppDeployment, error)
	GetDeployment(ctx context.Context, req *entity.DeploymentStatusRequest) (*entity.AppDeployment, error)
	GetUser(ctx context.Context) (*entity.User, error)
	OpenInBrowser(url string) error
}

type Controller struct {
	gtwy  Gateway
	cfg   *configs.Configs
	ghc   *github.Client
	sleep func(time.Duration)
}

func New() *Controller {
	return &Controller{
		gtwy:  gateway.New(),
		cfg:   configs.New(),
		ghc:   github.NewClient(nil),
		sleep: time.Sleep,
	}
}
