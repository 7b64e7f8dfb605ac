package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	mcpclient "github.com/mutablelogic/go-mcp-weather/pkg/mcp/client"
	server "github.com/mutablelogic/go-mcp-weather/pkg/mcp/server"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type DemoCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	rule    = strings.Repeat("=", 60)
	divider = strings.Repeat("-", 60)
)

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *DemoCommand) Run(g *Globals) error {
	c, err := g.connect()
	if err != nil {
		return err
	}
	defer c.Close()
	return demo(g.ctx, c, os.Stdout)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// demo exercises every resource, tool and prompt operation in turn
func demo(ctx context.Context, c *mcpclient.Client, w io.Writer) error {
	fmt.Fprintf(w, "\n%s\nWEATHER MCP CLIENT DEMONSTRATION\n%s\n", rule, rule)

	// Resources
	section(w, "1. LISTING RESOURCES:")
	resources, err := c.ListResources(ctx)
	if err != nil {
		return err
	}
	for _, r := range resources {
		fmt.Fprintf(w, "\nName: %s\nURI: %s\nDescription: %s\n", r.Name, r.URI, r.Description)
	}

	section(w, "2. READING A RESOURCE (New York):")
	data, err := c.ReadResource(ctx, server.ResourceURI("new_york"))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, data)

	// Tools
	section(w, "3. LISTING TOOLS:")
	tools, err := c.ListTools(ctx)
	if err != nil {
		return err
	}
	for _, t := range tools {
		fmt.Fprintf(w, "\nTool: %s\nDescription: %s\n", t.Name, t.Description)
	}

	for i, call := range []struct {
		name string
		args map[string]any
	}{
		{server.ToolCurrentWeather, map[string]any{"city": "london"}},
		{server.ToolCompareWeather, map[string]any{"city1": "new_york", "city2": "tokyo"}},
		{server.ToolTemperatureSummary, map[string]any{}},
	} {
		section(w, fmt.Sprintf("%d. CALLING TOOL: %s", i+4, call.name))
		text, err := c.CallTool(ctx, call.name, call.args)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, text)
	}

	// Prompts
	section(w, "7. LISTING PROMPTS:")
	prompts, err := c.ListPrompts(ctx)
	if err != nil {
		return err
	}
	for _, p := range prompts {
		fmt.Fprintf(w, "\nPrompt: %s\nDescription: %s\nArguments:\n", p.Name, p.Description)
		for _, arg := range p.Arguments {
			fmt.Fprintf(w, "  - %s: %s (required: %v)\n", arg.Name, arg.Description, arg.Required)
		}
	}

	section(w, "8. GETTING PROMPT: "+server.PromptWeatherReport)
	prompt, err := c.GetPrompt(ctx, server.PromptWeatherReport, map[string]string{"city": "paris"})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Description: %s\n", prompt.Description)
	for _, message := range prompt.Messages {
		fmt.Fprintf(w, "\nRole: %s\nContent: %s\n", message.Role, message.Text)
	}

	fmt.Fprintf(w, "\n%s\nDEMONSTRATION COMPLETE\n%s\n\n", rule, rule)
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n\n%s\n%s\n", title, divider)
}
