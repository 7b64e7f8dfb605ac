package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	config "github.com/mutablelogic/go-mcp-weather/pkg/config"
	logging "github.com/mutablelogic/go-mcp-weather/pkg/logging"
	mcpclient "github.com/mutablelogic/go-mcp-weather/pkg/mcp/client"
	version "github.com/mutablelogic/go-mcp-weather/pkg/version"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Config  string `name:"config" short:"c" env:"WEATHER_CONFIG" type:"path" help:"YAML configuration file" optional:""`
	Debug   bool   `name:"debug" help:"Enable debug logging, also in the server"`
	Verbose bool   `name:"verbose" help:"Trace requests to the LLM provider"`
	Server  string `name:"server" env:"WEATHER_SERVER" help:"Command which starts the weather server" optional:""`

	// Overrides for the configuration file
	config.Env `embed:""`

	// Private
	ctx context.Context
	log *zap.Logger
	cfg config.Config
}

type CLI struct {
	Globals

	// Commands
	Demo      DemoCommand      `cmd:"" default:"1" help:"Walk through the resources, tools and prompts of the server"`
	Resources ResourcesCommand `cmd:"" help:"List weather resources"`
	Read      ReadCommand      `cmd:"" help:"Read a weather resource"`
	Tools     ToolsCommand     `cmd:"" help:"List tools"`
	Call      CallCommand      `cmd:"" help:"Call a tool"`
	Prompts   PromptsCommand   `cmd:"" help:"List prompts"`
	Prompt    PromptCommand    `cmd:"" help:"Render a prompt"`
	Ping      PingCommand      `cmd:"" help:"Check the server responds"`
	Chat      ChatCommand      `cmd:"" help:"Ask about the weather in natural language"`
	Version   VersionCommand   `cmd:"" help:"Print version information"`
}

///////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(mcpclient.DefaultName),
		kong.Description("Weather MCP client"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Cancel on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Logger
	level := "warn"
	if cli.Debug {
		level = "debug"
	}
	logger, err := logging.New(level, true)
	cmd.FatalIfErrorf(err)
	defer logger.Sync()
	cli.Globals.log = logger

	// Configuration, with the environment and flags applied over the file
	cfg, err := config.Load(cli.Config)
	cmd.FatalIfErrorf(err)
	cfg.Apply(cli.Env)
	if cli.Server != "" {
		cfg.Server = config.Server{Command: cli.Server}
	}
	cli.Globals.cfg = cfg

	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// connect spawns the server and returns a connected client, which the
// caller closes
func (g *Globals) connect() (*mcpclient.Client, error) {
	c, err := mcpclient.New(mcpclient.WithLogger(g.log))
	if err != nil {
		return nil, err
	}
	args := g.cfg.Server.Args
	if g.Debug {
		args = append(append([]string{}, args...), "--debug")
	}
	if err := c.ConnectCommand(g.ctx, g.cfg.Server.Command, args...); err != nil {
		return nil, err
	}
	return c, nil
}

// clientOpts returns the options for the HTTP providers
func (g *Globals) clientOpts() []client.ClientOpt {
	var opts []client.ClientOpt
	if g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, true))
	}
	return opts
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

type VersionCommand struct{}

func (cmd *VersionCommand) Run(g *Globals) error {
	return writeJSON(os.Stdout, version.Read(mcpclient.DefaultName))
}
