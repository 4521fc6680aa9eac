// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"jdkprobe/internal/config"
	"jdkprobe/internal/jdkhome"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. Every command handler
	// receives the App and writes only through its streams.
	App struct {
		Config    config.Provider
		LookupEnv jdkhome.LookupEnvFunc
		stdout    io.Writer
		stderr    io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config    config.Provider
		LookupEnv jdkhome.LookupEnvFunc
		Stdout    io.Writer
		Stderr    io.Writer
	}

	// globalFlags holds the persistent flags shared by every command.
	globalFlags struct {
		configPath string
		platform   string
		sysroot    string
		verbose    bool
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:    deps.Config,
		LookupEnv: deps.LookupEnv,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.LookupEnv == nil {
		app.LookupEnv = os.LookupEnv
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// newLogger returns the stderr logger. Debug output is only shown in
// verbose mode.
func (a *App) newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(a.stderr, log.Options{Prefix: "jdkprobe"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
