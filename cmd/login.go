package cmd

import (
	"context"
	"fmt"

	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/ui"
)

func (h *Handler) Login(ctx context.Context, req *entity.CommandRequest) error {
	host, err := req.Cmd.Flags().GetString("host")
	if err != nil {
		return err
	}
	token, err := req.Cmd.Flags().GetString("token")
	if err != nil {
		return err
	}

	if host == "" {
		if host, err = ui.PromptWorkspaceHost(); err != nil {
			return err
		}
	}
	if token == "" {
		if token, err = ui.PromptPassword("API token"); err != nil {
			return err
		}
	}

	user, err := h.ctrl.Login(ctx, host, token)
	if err != nil {
		return err
	}

	fmt.Printf("\n🎉 Logged in as %s\n", ui.Bold(user.UserName))
	return nil
}
