package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/utils"
)

type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if _, err := os.Stat(ctx.ConfigPath); err == nil && !c.Force {
		return fmt.Errorf("%s already exists, use --force to overwrite", ctx.ConfigPath)
	}

	name := "me"
	timezone := "Local"
	workStart, workEnd := "09:00", "17:00"
	bedtime, wake := "23:00", "06:30"
	hasWork := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Value(&name),
			huh.NewInput().
				Title("Timezone (IANA name, or 'Local')").
				Value(&timezone).
				Validate(func(s string) error {
					_, err := utils.LoadLocation(s)
					return err
				}),
			huh.NewConfirm().
				Title("Do you have regular work hours?").
				Value(&hasWork),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Work starts (HH:MM)").
				Value(&workStart).
				Validate(clockValidator),
			huh.NewInput().
				Title("Work ends (HH:MM)").
				Value(&workEnd).
				Validate(clockValidator),
		).WithHideFunc(func() bool { return !hasWork }),
		huh.NewGroup(
			huh.NewInput().
				Title("Target bedtime (HH:MM)").
				Value(&bedtime).
				Validate(clockValidator),
			huh.NewInput().
				Title("Target wake time (HH:MM)").
				Value(&wake).
				Validate(clockValidator),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	cfg := &config.Config{
		Meta: config.Meta{User: name, Timezone: timezone},
		Template: config.Template{
			Sleep: config.SleepTemplate{TargetBedtime: bedtime, TargetWake: wake},
		},
		Activities: []config.Activity{
			{
				ID:        "example",
				Name:      "Example activity",
				Category:  config.CategoryOther,
				Frequency: config.FrequencySpec{Min: 1, Max: 1, Raw: "1"},
				Duration:  config.DurationSpec{Min: 30, Max: 30, Raw: "30"},
				Note:      "Replace this with something you actually want to do.",
			},
		},
	}
	if hasWork {
		cfg.Template.Work = config.WorkTemplate{
			Days:  []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
			Start: workStart,
			End:   workEnd,
		}
	}

	if err := os.MkdirAll(filepath.Dir(ctx.ConfigPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := config.Save(cfg, ctx.ConfigPath); err != nil {
		return err
	}
	fmt.Println(okStyle.Render("Wrote " + ctx.ConfigPath))
	fmt.Println(dimStyle.Render("Edit it to describe your activities, then run 'lifeos propose'."))
	return nil
}

func clockValidator(s string) error {
	if !utils.ValidClock(s) {
		return fmt.Errorf("use HH:MM, e.g. 09:30")
	}
	return nil
}
