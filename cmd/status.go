package cmd

import (
	"context"
	"fmt"

	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/ui"
)

func (h *Handler) Status(ctx context.Context, req *entity.CommandRequest) error {
	user, err := h.ctrl.GetUser(ctx)
	if err == nil && user != nil {
		fmt.Printf("Logged in as: %s\n", user.UserName)
	} else {
		fmt.Println("Not logged in. Run genie login")
	}

	appName, err := h.getAppName(req)
	if err != nil {
		return err
	}

	app, err := h.ctrl.GetApp(ctx, appName)
	if err != nil {
		return err
	}

	fmt.Println("App:", ui.Bold(app.Name))
	if app.Url != "" {
		fmt.Println("URL:", app.Url)
	}

	if app.ActiveDeployment == nil {
		fmt.Println("No active deployment")
		return nil
	}

	d := app.ActiveDeployment
	fmt.Println("Active deployment:", d.DeploymentId)
	if d.SourceCodePath != "" {
		fmt.Println("Source path:", d.SourceCodePath)
	}
	if d.Status != nil {
		fmt.Println("State:", string(d.Status.State))
		if d.Status.Message != "" {
			fmt.Println("Message:", d.Status.Message)
		}
	}

	return nil
}
