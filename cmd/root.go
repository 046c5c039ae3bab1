/*
 * Copyright (C) 2024 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mdp/qrterminal/v3"
	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	agentCmd "github.com/nuts-foundation/nuts-demo-credentials/agent/cmd"
	"github.com/nuts-foundation/nuts-demo-credentials/app"
	appCmd "github.com/nuts-foundation/nuts-demo-credentials/app/cmd"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/nuts-foundation/nuts-demo-credentials/events"
	eventsCmd "github.com/nuts-foundation/nuts-demo-credentials/events/cmd"
	"github.com/nuts-foundation/nuts-demo-credentials/flow"
	httpEngine "github.com/nuts-foundation/nuts-demo-credentials/http"
	httpCmd "github.com/nuts-foundation/nuts-demo-credentials/http/cmd"
	"github.com/nuts-foundation/nuts-demo-credentials/storage"
	storageCmd "github.com/nuts-foundation/nuts-demo-credentials/storage/cmd"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var stdOutWriter io.Writer = os.Stdout

func createRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Demo application that signs up, logs in and issues credentials to users through a cloud agent.",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
		SilenceUsage: true,
	}
}

func createPrintConfigCommand(system *core.System) *cobra.Command {
	command := &cobra.Command{
		Use:   "config",
		Short: "Prints the current config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := system.Load(cmd.Flags()); err != nil {
				return err
			}
			cmd.Println("Current system config")
			cmd.Println(system.Config.PrintConfig())
			return nil
		},
	}
	command.Flags().AddFlagSet(serverFlagSet())
	return command
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of the application",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(core.BuildInfo())
		},
	}
}

func createServerCommand(ctx context.Context, system *core.System) *cobra.Command {
	command := &cobra.Command{
		Use:   "server",
		Short: "Starts the demo application",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := system.Load(cmd.Flags()); err != nil {
				return err
			}
			return startServer(ctx, system)
		},
	}
	command.Flags().AddFlagSet(serverFlagSet())
	return command
}

func createInvitationCommand(system *core.System) *cobra.Command {
	var flowType string
	command := &cobra.Command{
		Use:   "invitation",
		Short: "Creates a single-use invitation of the application's agent, and prints it as QR code to scan with a wallet",
		Long: "Creates a single-use invitation of the application's agent, and prints it as QR code to scan with a wallet. " +
			"The printed nonce starts the flow that picks up the wallet's connection.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := system.Load(cmd.Flags()); err != nil {
				return err
			}
			switch flow.Kind(flowType) {
			case "", flow.KindSignup, flow.KindLogin, flow.KindIssuance:
			default:
				return fmt.Errorf("invalid invitation type: %s", flowType)
			}
			agents, err := findEngine[*agent.Module](system)
			if err != nil {
				return err
			}
			if err := agents.Configure(*system.Config); err != nil {
				return err
			}
			nonce := uuid.NewString()
			properties := agent.Properties{agent.PropertyNonce: nonce}
			if flowType != "" {
				properties[agent.PropertyType] = flowType
			}
			invitation, err := agents.Agent().CreateInvitation(cmd.Context(), agent.InvitationRequest{
				DirectRoute:    true,
				ManualAccept:   true,
				MaxAcceptances: 1,
				Properties:     properties,
			})
			if err != nil {
				return fmt.Errorf("unable to create invitation: %w", err)
			}
			url := invitation.URL
			if invitation.ShortURL != "" {
				url = invitation.ShortURL
			}
			cmd.Printf("Nonce: %s\n", nonce)
			cmd.Printf("URL: %s\n", invitation.URL)
			printQrCode(cmd.OutOrStdout(), url)
			return nil
		},
	}
	command.Flags().AddFlagSet(serverFlagSet())
	command.Flags().StringVar(&flowType, "type", "", "Kind of flow the invitation is for (signup, login or issuance).")
	return command
}

func printQrCode(writer io.Writer, content string) {
	qrterminal.GenerateWithConfig(content, qrterminal.Config{
		HalfBlocks: false,
		BlackChar:  qrterminal.WHITE,
		WhiteChar:  qrterminal.BLACK,
		Level:      qrterminal.M,
		Writer:     writer,
		QuietZone:  1,
	})
}

func startServer(ctx context.Context, system *core.System) error {
	logrus.Info("Starting server with config:")
	logrus.Info(system.Config.PrintConfig())

	// check config on all engines
	if err := system.Configure(); err != nil {
		return err
	}

	// register HTTP routes
	httpServer, err := findEngine[*httpEngine.Engine](system)
	if err != nil {
		return err
	}
	for _, router := range system.Routers {
		router.Routes(httpServer.Router())
	}

	// start engines
	if err := system.Start(); err != nil {
		return err
	}

	// wait until instructed to shut down
	<-ctx.Done()
	logrus.Info("Shutting down...")
	if err := system.Shutdown(); err != nil {
		logrus.Errorf("Error shutting down system: %v", err)
		return err
	}
	logrus.Info("Shutdown complete. Goodbye!")
	return nil
}

func findEngine[T core.Engine](system *core.System) (T, error) {
	var result T
	var found bool
	system.VisitEngines(func(engine core.Engine) {
		if e, ok := engine.(T); ok && !found {
			result = e
			found = true
		}
	})
	if !found {
		return result, errors.New("engine not registered")
	}
	return result, nil
}

// CreateCommand creates the command with all subcommands to run the system.
func CreateCommand(ctx context.Context, system *core.System) *cobra.Command {
	command := createRootCommand()
	command.SetOut(stdOutWriter)
	command.AddCommand(createServerCommand(ctx, system))
	command.AddCommand(createPrintConfigCommand(system))
	command.AddCommand(createInvitationCommand(system))
	command.AddCommand(createVersionCommand())
	return command
}

// CreateSystem creates the system and registers all default engines.
// The shutdownCallback is called when the HTTP server stops unexpectedly.
func CreateSystem(shutdownCallback context.CancelFunc) *core.System {
	system := core.NewSystem()

	// Create instances
	statusEngine := core.NewStatusEngine(system)
	metricsEngine := core.NewMetricsEngine()
	storageInstance := storage.New()
	agentInstance := agent.New()
	eventsInstance := events.New()
	appInstance := app.New(storageInstance, agentInstance, eventsInstance)
	httpServerInstance := httpEngine.New(shutdownCallback)

	// Register HTTP routes
	system.RegisterRoutes(statusEngine.(core.Routable))
	system.RegisterRoutes(metricsEngine.(core.Routable))
	system.RegisterRoutes(appInstance)

	// Register engines
	// without dependencies
	system.RegisterEngine(statusEngine)
	system.RegisterEngine(metricsEngine)
	system.RegisterEngine(storageInstance)
	system.RegisterEngine(agentInstance)
	system.RegisterEngine(eventsInstance)
	// with dependencies
	system.RegisterEngine(appInstance)
	// HTTP engine MUST be registered last, because when started it dispatches HTTP calls to the registered routes.
	system.RegisterEngine(httpServerInstance)
	return system
}

// Execute runs the root command. The server runs until the context is cancelled.
func Execute(ctx context.Context, system *core.System) error {
	command := CreateCommand(ctx, system)
	command.SetOut(stdOutWriter)
	return command.ExecuteContext(ctx)
}

// serverFlagSet returns the flags of the server and all engines.
func serverFlagSet() *pflag.FlagSet {
	flagSet := core.FlagSet()
	flagSet.AddFlagSet(storageCmd.FlagSet())
	flagSet.AddFlagSet(agentCmd.FlagSet())
	flagSet.AddFlagSet(eventsCmd.FlagSet())
	flagSet.AddFlagSet(appCmd.FlagSet())
	flagSet.AddFlagSet(httpCmd.FlagSet())
	return flagSet
}
