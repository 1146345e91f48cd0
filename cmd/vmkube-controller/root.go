package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillcoder/vmkube-controller/internal/app"
	"github.com/skillcoder/vmkube-controller/internal/config"
	"github.com/skillcoder/vmkube-controller/internal/crd"
	"github.com/skillcoder/vmkube-controller/internal/infra/appstate"
	"github.com/skillcoder/vmkube-controller/internal/infra/logging"
	"github.com/skillcoder/vmkube-controller/internal/infra/metrics"
	"github.com/skillcoder/vmkube-controller/internal/infra/pinger"
)

func newRootCmd(signals <-chan os.Signal, appStart time.Time) *cobra.Command {
	root := &cobra.Command{
		Use:   "vmkube-controller",
		Short: "Reconcile Pokemon and VirtualMachine resources",
		Long: `vmkube-controller watches Pokemon (pokemon.rs/v1) and VirtualMachine
(codesandbox.io/v1alpha1) resources and converges the cluster towards them.
Configuration is read from VMKUBE_* environment variables.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), signals, appStart)
		},
	}

	root.SetVersionTemplate(`{{printf "vmkube-controller version %s\n" .Version}}`)
	root.AddCommand(newCRDCmd())

	return root
}

func newCRDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crd",
		Short: "Print the CustomResourceDefinitions as YAML",
		Long: `Print the Pokemon and VirtualMachine CustomResourceDefinitions.

Install them with:

  ` + app.CRDInstallHint,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := crd.Render(crd.All()...)
			if err != nil {
				return fmt.Errorf("render crds: %w", err)
			}

			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return fmt.Errorf("write crds: %w", err)
			}

			return nil
		},
	}
}

func run(ctx context.Context, signals <-chan os.Signal, appStart time.Time) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel)
	logger.InfoContext(ctx, "vmkube-controller starting", "version", version)

	registry := metrics.NewRegistry()
	telemetry := metrics.New(registry)

	pingers := pinger.New(logger, cfg.PingerInterval, telemetry)
	appState := appstate.New(logger, appStart, cfg.TerminationFile, signals, pingers)

	application, err := app.New(logger, cfg, appState, telemetry, registry)
	if err != nil {
		return fmt.Errorf("new application: %w", err)
	}

	err = application.Run(ctx)
	if err != nil {
		return fmt.Errorf("run application: %w", err)
	}

	logger.InfoContext(ctx, "bye")

	return nil
}
