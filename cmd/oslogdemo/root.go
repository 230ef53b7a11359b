package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/formatter"
	"github.com/philipp01105/unifiedlog/handler"
	"github.com/philipp01105/unifiedlog/logger"
	"github.com/philipp01105/unifiedlog/oslog"
	"github.com/philipp01105/unifiedlog/provider"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "oslogdemo",
		Short:         "Write sample messages to the unified logging system",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, cmd.Flags())
			if err != nil {
				return err
			}
			native, err := oslog.Open()
			if errors.Is(err, oslog.ErrUnsupported) {
				return fmt.Errorf("oslogdemo needs macOS or iOS built with cgo: %w", err)
			}
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), native, cfg)
		},
	}
	registerFlags(cmd.Flags())
	return cmd
}

func runDemo(out io.Writer, native oslog.Native, cfg *config) error {
	opts := []provider.Option{
		provider.WithSubsystem(cfg.Subsystem),
		provider.WithLevel(cfg.level()),
	}
	if cfg.Echo {
		echo := handler.NewConsoleHandler(handler.ConsoleConfig{
			Writer:    out,
			Formatter: echoFormatter(cfg.Format),
		})
		defer echo.Close()
		opts = append(opts, provider.WithEcho(echo))
	}

	p := provider.New(native, opts...)
	defer p.Close()

	dest, err := p.GetOrCreate(cfg.Category)
	if err != nil {
		return err
	}
	log, err := p.CreateLogger(cfg.Category)
	if err != nil {
		return err
	}
	defer log.Close()

	for _, level := range core.Levels() {
		fmt.Fprintf(out, "Logging %s as %s\n", level, oslog.TypeFor(level))
		fmt.Fprintf(out, "%s is enabled: %t\n", level, dest.Enabled(level))
		log.Log(level, "sample message", logger.String("level", level.String()))
	}

	dest.LogTrace("LogTrace")
	dest.LogDebug("LogDebug")
	dest.LogInformation("LogInformation")
	dest.LogWarning("LogWarning")
	dest.LogError("LogError")
	dest.LogCritical("LogCritical")
	dest.LogNone("LogNone")
	return nil
}

func echoFormatter(format string) formatter.Formatter {
	cfg := formatter.Config{IncludeCategory: true}
	if format == "json" {
		return formatter.NewJSONFormatter(cfg)
	}
	return formatter.NewTextFormatter(cfg)
}
