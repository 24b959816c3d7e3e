package tools

import (
	"context"
	"fmt"
	"time"
)

// CurrentTimeTool reports the process clock's current date and time
type CurrentTimeTool struct {
	BaseTool
	now func() time.Time
}

// NewCurrentTimeTool creates a current date and time tool
func NewCurrentTimeTool() *CurrentTimeTool {
	return &CurrentTimeTool{
		BaseTool: NewBaseTool(
			"get_current_datetime",
			"Get the current date and time information.",
		),
		now: time.Now,
	}
}

// Execute returns the current timestamp as formatted text
func (t *CurrentTimeTool) Execute(ctx context.Context, arguments string) (string, error) {
	return fmt.Sprintf("Current date and time: %s", t.now().Format("2006-01-02 15:04:05")), nil
}
