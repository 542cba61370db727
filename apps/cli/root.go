package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trezcool/checkmygrade/apps"
	echoapi "github.com/trezcool/checkmygrade/apps/api/echo"
	"github.com/trezcool/checkmygrade/core"
	logsvc "github.com/trezcool/checkmygrade/services/logger"
)

// Execute runs the checkmygrade command line.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "checkmygrade",
		Short:         "Flat-file academic records of students, grades, courses and professors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the table files (overrides the dataDir setting)")

	newApp := func(prefix string) (*apps.App, error) {
		conf := core.NewConfig()
		if dataDir != "" {
			conf.DataDir = dataDir
		}
		logger := logsvc.NewRollbarLogger(
			log.New(os.Stdout, prefix, log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
			conf,
		)
		return apps.New(conf, logger)
	}

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Log in and run the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp("MENU : ")
			if err != nil {
				return err
			}
			in := newLinerPrompter()
			defer in.Close()
			return NewSession(app, in, cmd.OutOrStdout()).Run()
		},
	}
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp("API : ")
			if err != nil {
				return err
			}
			return serve(app)
		},
	}

	root.AddCommand(menuCmd, serveCmd)
	root.RunE = menuCmd.RunE
	return root
}

func serve(app *apps.App) error {
	logger := app.Logger
	logger.Info(fmt.Sprintf("Application initializing : version %q", app.Conf.Build))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(echoapi.Options{App: app})

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return errors.Wrap(err, "server error")

	case sig := <-shutdown:
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), app.Conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			return errors.Wrap(err, "could not stop server gracefully")
		}
	}
	return nil
}
