package cli

import (
	"log"

	"github.com/factorymaster/mission-control/backend/config"
	"github.com/factorymaster/mission-control/backend/gateway"
	"github.com/factorymaster/mission-control/backend/models"
	"github.com/factorymaster/mission-control/backend/progress"
	"github.com/factorymaster/mission-control/backend/resources"

	"github.com/spf13/cobra"
)

// App holds everything CLI commands operate on.
type App struct {
	Cfg       *config.Config
	Logger    *log.Logger
	Catalog   models.Catalog
	Progress  *progress.Store
	Resources *resources.Store
	Gateway   *gateway.Gateway
}

// NewRootCmd creates the top-level "mission" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mission",
		Short:         "100 day training plan tracker and AI assistant gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newStatusCmd(app),
		newUpcomingCmd(app),
		newToggleCmd(app),
		newCatalogCmd(app),
	)

	return root
}
