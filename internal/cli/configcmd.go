package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/lifeos/internal/config"
)

type ConfigValidateCmd struct{}

func (c *ConfigValidateCmd) Run(ctx *Context) error {
	// Re-parse from disk so this command reports on the file, not the
	// already-validated snapshot in memory.
	if _, err := config.Load(ctx.ConfigPath); err != nil {
		return err
	}
	fmt.Println(okStyle.Render("✓ " + ctx.ConfigPath + " is valid"))
	return nil
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(ctx.ConfigPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	// Round-trip to show the effective configuration with defaults applied.
	cfg, err := config.Parse(data)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render("Effective configuration (" + ctx.ConfigPath + ")"))
	fmt.Println()
	fmt.Print(string(out))
	return nil
}
