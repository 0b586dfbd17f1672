package cmd

import (
	"github.com/genieiq/cli/configs"
	"github.com/genieiq/cli/controller"
	"github.com/genieiq/cli/entity"
)

type Handler struct {
	ctrl *controller.Controller
	cfg  *configs.Configs
}

func New() *Handler {
	return &Handler{
		ctrl: controller.New(),
		cfg:  configs.New(),
	}
}

// getAppName resolves the target app from the --app flag, falling back to
// the linked app in the project config.
func (h *Handler) getAppName(req *entity.CommandRequest) (string, error) {
	name, err := req.Cmd.Flags().GetString("app")
	if err == nil && name != "" {
		return name, nil
	}
	return h.ctrl.GetLinkedApp()
}
