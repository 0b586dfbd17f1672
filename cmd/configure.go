package cmd

import (
	"context"
	"fmt"

	"github.com/genieiq/cli/controller"
	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/ui"
)

func (h *Handler) Configure(ctx context.Context, req *entity.CommandRequest) error {
	appName, err := h.getAppName(req)
	if err != nil {
		return err
	}

	db, err := h.databaseConfig(req)
	if err != nil {
		return err
	}

	fmt.Printf("🚀 Configuring app %s\n", ui.Bold(appName))

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: "Submitting deploy request...",
	})
	app, deployment, err := h.ctrl.ConfigureAndDeploy(ctx, &entity.ConfigureRequest{
		AppName:  appName,
		Database: db,
	})
	if err != nil {
		ui.StopSpinner("")
		return err
	}
	ui.StopSpinner(fmt.Sprintf("📦 Redeploying from %s with new config", ui.GrayText(deployment.SourceCodePath)))

	detach, err := req.Cmd.Flags().GetBool("detach")
	if err != nil {
		return err
	}
	if detach {
		fmt.Printf("⏳ Deployment %s started. Track it with %s\n", deployment.DeploymentId, ui.Bold("genie status"))
		return nil
	}

	interval, err := req.Cmd.Flags().GetDuration("interval")
	if err != nil {
		return err
	}
	maxAttempts, err := req.Cmd.Flags().GetInt("max-attempts")
	if err != nil {
		return err
	}

	fmt.Println("⏳ Deployment started, waiting for completion...")
	status, err := h.ctrl.WaitForDeployment(ctx, &entity.DeploymentStatusRequest{
		AppName:      app.Name,
		DeploymentId: deployment.DeploymentId,
	}, interval, maxAttempts, func(s *entity.DeploymentStatus) {
		fmt.Printf("   Status: %s\n", s.State)
	})
	if err != nil {
		return err
	}

	switch status.State {
	case entity.STATUS_SUCCEEDED:
		fmt.Printf("✅ %s The app is now connected to the database.\n", ui.GreenText("Success!"))
		if app.Url != "" {
			fmt.Printf("👉 Go to: %s\n", ui.Bold(app.Url))
		}
	case entity.STATUS_FAILED:
		fmt.Printf("❌ %s\n", ui.RedText("Deployment failed."))
		if status.Message != "" {
			fmt.Println(status.Message)
		}
	default:
		fmt.Printf("❌ Deployment ended with state: %s\n", ui.RedText(string(status.State)))
		if status.Message != "" {
			fmt.Println(status.Message)
		}
	}

	return nil
}

// databaseConfig reads the db connection parameters from --env-file when
// given, from the db flags otherwise. A missing password is prompted for on
// a terminal.
func (h *Handler) databaseConfig(req *entity.CommandRequest) (*entity.DatabaseConfig, error) {
	envFile, err := req.Cmd.Flags().GetString("env-file")
	if err != nil {
		return nil, err
	}
	if envFile != "" {
		return controller.LoadDatabaseConfig(envFile)
	}

	flags := req.Cmd.Flags()
	db := &entity.DatabaseConfig{}
	if db.Host, err = flags.GetString("db-host"); err != nil {
		return nil, err
	}
	if db.Port, err = flags.GetString("db-port"); err != nil {
		return nil, err
	}
	if db.Database, err = flags.GetString("db-name"); err != nil {
		return nil, err
	}
	if db.User, err = flags.GetString("db-user"); err != nil {
		return nil, err
	}
	if db.Password, err = flags.GetString("db-password"); err != nil {
		return nil, err
	}

	if db.Password == "" && ui.Interactive() {
		if db.Password, err = ui.PromptPassword("Database password"); err != nil {
			return nil, err
		}
	}

	// Completeness is checked by the controller before any remote call
	return db, nil
}
