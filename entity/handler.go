package entity

import "context"

type HandlerFunction func(context.Context, *CommandRequest) error

type PanicFunction func(ctx context.Context, msg string, stack string, cmd string, args []string) error
