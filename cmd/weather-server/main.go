package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	logging "github.com/mutablelogic/go-mcp-weather/pkg/logging"
	server "github.com/mutablelogic/go-mcp-weather/pkg/mcp/server"
	store "github.com/mutablelogic/go-mcp-weather/pkg/store"
	version "github.com/mutablelogic/go-mcp-weather/pkg/version"
	weatherapi "github.com/mutablelogic/go-mcp-weather/pkg/weatherapi"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CLI struct {
	Debug    bool             `name:"debug" help:"Enable debug logging"`
	LogLevel string           `name:"log-level" env:"WEATHER_LOG_LEVEL" help:"Log level (debug, info, warn, error)" default:"info"`
	Data     string           `name:"data" env:"WEATHER_DATA" type:"existingfile" help:"YAML file of cities, instead of the built-in table" optional:"" xor:"source"`
	Live     string           `name:"weatherapi-key" env:"WEATHER_API_KEY" help:"Fetch current conditions from WeatherAPI, instead of the built-in table" optional:"" xor:"source"`
	Cities   []string         `name:"city" help:"Cities fetched from WeatherAPI" default:"New York,London,Tokyo,Paris"`
	Name     string           `name:"name" help:"Server name announced to clients" default:"${name}"`
	Version  kong.VersionFlag `name:"version" help:"Print version and exit"`
}

///////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(server.DefaultName),
		kong.Description("Weather MCP server on stdin and stdout"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"name":    server.DefaultName,
			"version": version.Read(server.DefaultName).String(),
		},
	)

	// Cancel on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd.FatalIfErrorf(cli.Run(ctx))
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cli *CLI) Run(ctx context.Context) error {
	level := cli.LogLevel
	if cli.Debug {
		level = "debug"
	}
	logger, err := logging.New(level, cli.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Cities
	cities := store.Default()
	switch {
	case cli.Data != "":
		if cities, err = store.ReadFile(cli.Data); err != nil {
			return fmt.Errorf("%s: %w", cli.Data, err)
		}
		logger.Debug("loaded cities", zap.String("path", cli.Data), zap.Strings("keys", cities.Keys()))
	case cli.Live != "":
		live, err := weatherapi.New(cli.Live)
		if err != nil {
			return err
		}
		if cities, err = live.Store(ctx, cli.Cities...); err != nil {
			return err
		}
		logger.Debug("fetched cities", zap.Strings("keys", cities.Keys()))
	}

	srv, err := server.New(cities, server.WithName(cli.Name), server.WithLogger(logger))
	if err != nil {
		return err
	}

	// Stdout is the transport from here on
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
		logger.Error("server failed", zap.Error(err))
		return err
	}
	return nil
}
