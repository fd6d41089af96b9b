package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/lifeos/internal/models"
)

type MemoryAddCmd struct {
	Content string `arg:"" help:"The note to remember."`
	Kind    string `help:"preference, fact, feedback, or context." default:"context"`
}

func (c *MemoryAddCmd) Run(ctx *Context) error {
	kind := models.MemoryKind(c.Kind)
	if !models.ValidMemoryKinds[kind] {
		return fmt.Errorf("unknown kind %q, use preference, fact, feedback, or context", c.Kind)
	}
	m, err := ctx.Memory.Add(context.Background(), ctx.UserID, c.Content, kind)
	if err != nil {
		return err
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("Remembered (%s): %s", m.Kind, m.Content)))
	return nil
}

type MemorySearchCmd struct {
	Query string `arg:"" help:"Substring to search for."`
	Limit int    `help:"Maximum results." default:"10"`
}

func (c *MemorySearchCmd) Run(ctx *Context) error {
	memories, err := ctx.Memory.Search(context.Background(), ctx.UserID, c.Query, c.Limit)
	if err != nil {
		return err
	}
	if len(memories) == 0 {
		fmt.Println("  No memories match", c.Query)
		return nil
	}
	printMemories(memories)
	return nil
}

type MemoryListCmd struct{}

func (c *MemoryListCmd) Run(ctx *Context) error {
	memories, err := ctx.Memory.All(context.Background(), ctx.UserID)
	if err != nil {
		return err
	}
	if len(memories) == 0 {
		fmt.Println("  No memories stored")
		return nil
	}
	printMemories(memories)
	return nil
}

func printMemories(memories []models.Memory) {
	for _, m := range memories {
		kind := fmt.Sprintf("%-12s", "["+string(m.Kind)+"]")
		fmt.Printf("%s %s %s\n",
			dimStyle.Render(m.CreatedAt.Format("2006-01-02")),
			warnStyle.Render(kind),
			m.Content)
	}
}
