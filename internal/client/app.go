package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-movie-client/internal/logger"
	"github.com/MKhiriev/go-movie-client/internal/service"
	"github.com/MKhiriev/go-movie-client/models"
	"github.com/urfave/cli/v3"
)

const appName = "movie-client"

var ErrNoServices = errors.New("client services are not configured")

// App holds the dependencies of every command action.
type App struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	stdout    io.Writer
	stderr    io.Writer
}

// AppOpts contains the dependencies for [NewApp]. Stdout and Stderr default
// to the process streams.
type AppOpts struct {
	Services  *service.ClientServices
	BuildInfo models.AppBuildInfo
	Logger    *logger.Logger
	Stdout    io.Writer
	Stderr    io.Writer
}

func NewApp(opts AppOpts) (*App, error) {
	if opts.Services == nil {
		return nil, ErrNoServices
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	return &App{
		services:  opts.Services,
		buildInfo: opts.BuildInfo,
		logger:    opts.Logger,
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
	}, nil
}

// Run executes args and prints any failure on stderr. Operation failures
// print only the generic message; usage errors print their own text.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{appName}
	}

	err := a.command().Run(ctx, args)
	if err != nil {
		a.logger.Debug().Err(err).Strs("args", args[1:]).Msg("command failed")
		fmt.Fprintln(a.stderr, err)
	}
	return err
}

func (a *App) command() *cli.Command {
	return &cli.Command{
		Name:      appName,
		Usage:     "Browse the movie catalog and manage your account",
		Version:   a.buildInfo.BuildVersion(),
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Commands:  a.register(),
	}
}

func (a *App) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*App) *cli.Command){
		registerCommand, loginCommand, logoutCommand, sessionCommand,
		moviesCommand, userCommand, favoritesCommand, versionCommand,
	} {
		commands = append(commands, fn(a))
	}

	return commands
}

func (a *App) writeJSON(data any) error {
	output, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return localFailure("write output", fmt.Errorf("failed to marshal JSON: %w", err))
	}
	return a.write(output)
}

// writeRaw indents a response body as received from the API.
func (a *App) writeRaw(raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return localFailure("write output", fmt.Errorf("failed to indent JSON: %w", err))
	}
	return a.write(buf.Bytes())
}

func (a *App) write(output []byte) error {
	if _, err := a.stdout.Write(append(output, '\n')); err != nil {
		return localFailure("write output", fmt.Errorf("failed to write output: %w", err))
	}
	return nil
}

// localFailure keeps command-level failures behind the same generic message
// as service failures.
func localFailure(op string, err error) error {
	return &service.OperationError{Op: op, Kind: service.KindLocal, Err: err}
}
