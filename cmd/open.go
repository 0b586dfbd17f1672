package cmd

import (
	"context"

	"github.com/genieiq/cli/entity"
)

// Open opens the app URL in the browser, or a docs shortcut when one is
// given as an argument.
func (h *Handler) Open(ctx context.Context, req *entity.CommandRequest) error {
	if len(req.Args) > 0 {
		return h.ctrl.OpenDocs(req.Args[0])
	}

	appName, err := h.getAppName(req)
	if err != nil {
		return err
	}
	return h.ctrl.OpenApp(ctx, appName)
}
