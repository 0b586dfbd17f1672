package cmd

import (
	"context"
	"fmt"

	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/ui"
)

func (h *Handler) Link(ctx context.Context, req *entity.CommandRequest) error {
	var name string
	var err error

	if len(req.Args) > 0 {
		name = req.Args[0]
	} else {
		if name, err = ui.PromptText("App name"); err != nil {
			return err
		}
	}

	app, err := h.ctrl.LinkApp(ctx, name)
	if err != nil {
		return err
	}

	fmt.Printf("🔗 Linked to app %s\n", ui.MagentaText(app.Name))
	return nil
}
