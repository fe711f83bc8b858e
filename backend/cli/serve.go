package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/factorymaster/mission-control/backend/routes"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = app.Cfg.ServerPort
			}
			if !app.Gateway.Configured() {
				app.Logger.Println("GEMINI_API_KEY is not set; AI endpoints will answer with \"API Key not configured\"")
			}

			server := routes.NewApp(routes.Deps{
				Catalog:   app.Catalog,
				Progress:  app.Progress,
				Resources: app.Resources,
				Gateway:   app.Gateway,
				Logger:    app.Logger,
			})

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigChan
				app.Logger.Println("Shutting down...")
				if err := server.Shutdown(); err != nil {
					app.Logger.Printf("shutdown: %v", err)
				}
			}()

			if err := server.Listen(":" + port); err != nil {
				return fmt.Errorf("listening on %s: %w", port, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (default SERVER_PORT)")
	return cmd
}
