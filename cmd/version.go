package cmd

import (
	"context"
	"fmt"

	"github.com/genieiq/cli/constants"
	"github.com/genieiq/cli/entity"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Printf("genie version %s\n", constants.Version)
	if constants.Version == "source" {
		return nil
	}

	// Best effort; a failed check never fails the command
	latest, err := h.ctrl.GetLatestVersion(ctx)
	if err != nil {
		return nil
	}
	if latest != "" && latest != constants.Version {
		fmt.Println("A newer version of the genie CLI is available, please update to:", latest)
	}
	return nil
}
