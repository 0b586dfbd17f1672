package cmd

import (
	"context"
	"fmt"

	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/ui"
)

func (h *Handler) Unlink(ctx context.Context, req *entity.CommandRequest) error {
	if err := h.ctrl.UnlinkApp(); err != nil {
		return err
	}
	fmt.Printf("🔓 %s\n", ui.YellowText("App unlinked"))
	return nil
}
