package cmd

import (
	"context"
	"fmt"

	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/ui"
)

func (h *Handler) Variables(ctx context.Context, req *entity.CommandRequest) error {
	appName, err := h.getAppName(req)
	if err != nil {
		return err
	}

	app, err := h.ctrl.GetApp(ctx, appName)
	if err != nil {
		return err
	}

	if app.ActiveDeployment == nil || len(app.ActiveDeployment.Environment) == 0 {
		fmt.Println("No environment variables set")
		return nil
	}

	fmt.Print(ui.Heading(fmt.Sprintf("%s Environment Variables", app.Name)))
	fmt.Print(ui.KeyValues(app.ActiveDeployment.Environment.Map()))

	return nil
}
