package cli

import (
	"fmt"
	"os"
)

// PathCmd prints the resolved data file location so users can check which
// folder their data syncs from.
type PathCmd struct{}

func (c *PathCmd) Run(ctx *Context) error {
	path := ctx.Store.GetDataPath()
	fmt.Println(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("(file does not exist yet, it will be created on first use)")
	}
	return nil
}
