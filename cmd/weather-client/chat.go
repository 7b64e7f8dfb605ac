package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	agent "github.com/mutablelogic/go-mcp-weather/pkg/agent"
	opt "github.com/mutablelogic/go-mcp-weather/pkg/opt"
	schema "github.com/mutablelogic/go-mcp-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCommand struct {
	Temperature *float64 `name:"temperature" help:"Sampling temperature, between 0 and 1" optional:""`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ChatCommand) Run(g *Globals) error {
	// Misconfiguration is fatal
	cfg := g.cfg
	if err := cfg.Validate(); err != nil {
		return err
	}
	backend, err := agent.NewBackend(g.ctx, cfg, g.clientOpts()...)
	if err != nil {
		return err
	}

	// Generation options
	var generate []opt.Opt
	if cfg.MaxTokens > 0 {
		generate = append(generate, opt.WithMaxTokens(cfg.MaxTokens))
	}
	if cmd.Temperature != nil {
		generate = append(generate, opt.WithTemperature(*cmd.Temperature))
	}

	// Connect to the server
	c, err := g.connect()
	if err != nil {
		return err
	}
	defer c.Close()

	a, err := agent.New(backend, c, agent.WithLogger(g.log), agent.WithGenerateOpts(generate...))
	if err != nil {
		return err
	}
	tools, err := a.LoadTools(g.ctx)
	if err != nil {
		return err
	}
	resources, err := c.ListResources(g.ctx)
	if err != nil {
		return err
	}

	fmt.Println("✓ Connected to weather MCP server")
	fmt.Printf("✓ Loaded %d tools and %d resources\n", len(tools), len(resources))
	fmt.Printf("✓ Using %s (%s)\n\n", strings.ToUpper(backend.Name()), backend.Model())
	fmt.Printf("%s\nWEATHER MCP CLIENT - LLM POWERED (%s)\n%s\n", rule, strings.ToUpper(backend.Name()), rule)
	fmt.Print("\nAsk me anything about the weather in natural language!\nType 'quit' to exit\n\n")

	return chat(g.ctx, a, os.Stdin, os.Stdout, render)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// chat reads questions from in until quit, end of input or cancellation,
// and writes each answer to out through format
func chat(ctx context.Context, a *agent.Agent, in io.Reader, out io.Writer, format func(string) string) error {
	conversation := schema.NewConversation(agent.SystemPrompt)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Read lines in the background so cancellation is not blocked on input
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(out, "You: ")
		var query string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\n\nGoodbye!")
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out, "\n\nGoodbye!")
				return nil
			}
			query = strings.TrimSpace(line)
		}

		switch strings.ToLower(query) {
		case "":
			continue
		case "quit", "exit", "q":
			fmt.Fprintln(out, "\nGoodbye!")
			return nil
		}

		fmt.Fprint(out, "\nThinking...\n\n")
		answer := a.Query(ctx, &conversation, query)
		fmt.Fprintf(out, "Assistant: %s\n\n", format(answer))
	}
}
