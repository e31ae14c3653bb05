// @title           E-Moped Business Plan API
// @version         1.0.0
// @description     Serves the active e-moped business plan and stores product images for it.

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "server",
		Short:         "E-Moped business plan backend",
		Long:          `Serves the business plan and image API. Without a subcommand it starts the HTTP server.`,
		RunE:         runServe,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedCommand(),
	)

	return root
}
