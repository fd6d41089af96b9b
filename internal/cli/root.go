package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifeos/internal/calendar"
	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/memory"
	"github.com/julianstephens/lifeos/internal/scheduler"
	"github.com/julianstephens/lifeos/internal/utils"
)

type Context struct {
	Config     *config.Config
	ConfigPath string
	Calendar   calendar.Client
	Memory     memory.Store
	Scheduler  *scheduler.Scheduler
	UserID     string
}

// parseDateArg accepts "today" or YYYY-MM-DD in the configured timezone.
func parseDateArg(ctx *Context, s string) (time.Time, error) {
	loc := ctx.Scheduler.Location()
	if s == "" || s == "today" {
		return utils.Midnight(time.Now().In(loc)), nil
	}
	t, err := utils.ParseDate(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date, use YYYY-MM-DD or 'today': %w", err)
	}
	return t, nil
}
