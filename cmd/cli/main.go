package main

import (
	_ "github.com/crucial707/taskdeck/cmd/cli/auth"
	"github.com/crucial707/taskdeck/cmd/cli/root"
	_ "github.com/crucial707/taskdeck/cmd/cli/tasks"
)

func main() {
	root.Execute()
}
