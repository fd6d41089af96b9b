package cli

import (
	"github.com/julianstephens/lifeos/internal/tools"
)

type McpCmd struct{}

func (c *McpCmd) Run(ctx *Context) error {
	return tools.Serve(tools.Deps{
		Config:    ctx.Config,
		Calendar:  ctx.Calendar,
		Memory:    ctx.Memory,
		Scheduler: ctx.Scheduler,
		UserID:    ctx.UserID,
	})
}
