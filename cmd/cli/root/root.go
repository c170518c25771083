package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "Taskdeck CLI",
	Long:  "Command line interface for the Taskdeck task management API",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// GetRoot returns the root command so subpackages can register themselves.
func GetRoot() *cobra.Command {
	return rootCmd
}
