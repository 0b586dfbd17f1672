package cmd

import (
	"context"
	"fmt"

	"github.com/genieiq/cli/ui"
)

func (h *Handler) Panic(ctx context.Context, msg string, stack string, cmdName string, args []string) error {
	fmt.Printf("🚨 %s\n", ui.RedText(fmt.Sprintf("Something went wrong running %q", cmdName)))
	fmt.Println(msg)
	fmt.Print(ui.PrefixLines(stack, "   "))
	return nil
}
