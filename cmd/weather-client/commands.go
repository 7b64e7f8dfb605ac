package main

import (
	"fmt"
	"os"
	"slices"

	// Packages
	mcpclient "github.com/mutablelogic/go-mcp-weather/pkg/mcp/client"
	table "github.com/mutablelogic/go-mcp-weather/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ResourcesCommand struct{}

type ReadCommand struct {
	URI string `arg:"" help:"Resource URI, such as weather://london"`
}

type ToolsCommand struct{}

type CallCommand struct {
	Name string   `arg:"" help:"Tool name"`
	Args []string `arg:"" help:"Tool arguments as key=value pairs" optional:""`
}

type PromptsCommand struct{}

type PromptCommand struct {
	Name string   `arg:"" help:"Prompt name"`
	Args []string `arg:"" help:"Prompt arguments as key=value pairs" optional:""`
}

type PingCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ResourcesCommand) Run(g *Globals) error {
	c, err := g.connect()
	if err != nil {
		return err
	}
	defer c.Close()

	resources, err := c.ListResources(g.ctx)
	if err != nil {
		return err
	}
	return table.Write(os.Stdout, resourceTable(resources))
}

func (cmd *ReadCommand) Run(g *Globals) error {
	c, err := g.connect()
	if err != nil {
		return err
	}
	defer c.Close()

	text, err := c.ReadResource(g.ctx, cmd.URI)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func (cmd *ToolsCommand) Run(g *Globals) error {
	c, err := g.connect()
	if err != nil {
		return err
	}
	defer c.Close()

	tools, err := c.ListTools(g.ctx)
	if err != nil {
		return err
	}
	rows := table.Rows{Columns: []string{"Tool", "Description", "Arguments"}}
	for _, tool := range tools {
		rows.Cells = append(rows.Cells, []any{table.Bold{Value: tool.Name}, tool.Description, toolArguments(tool.InputSchema)})
	}
	return table.Write(os.Stdout, rows)
}

func (cmd *CallCommand) Run(g *Globals) error {
	args, err := parseArgs(cmd.Args)
	if err != nil {
		return err
	}

	c, err := g.connect()
	if err != nil {
		return err
	}
	defer c.Close()

	text, err := c.CallTool(g.ctx, cmd.Name, toolArgs(args))
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func (cmd *PromptsCommand) Run(g *Globals) error {
	c, err := g.connect()
	if err != nil {
		return err
	}
	defer c.Close()

	prompts, err := c.ListPrompts(g.ctx)
	if err != nil {
		return err
	}
	return table.Write(os.Stdout, promptTable(prompts))
}

func (cmd *PromptCommand) Run(g *Globals) error {
	args, err := parseArgs(cmd.Args)
	if err != nil {
		return err
	}

	c, err := g.connect()
	if err != nil {
		return err
	}
	defer c.Close()

	prompt, err := c.GetPrompt(g.ctx, cmd.Name, args)
	if err != nil {
		return err
	}
	fmt.Println("Description:", prompt.Description)
	for _, message := range prompt.Messages {
		fmt.Printf("\n[%s]\n%s\n", message.Role, render(message.Text))
	}
	return nil
}

func (cmd *PingCommand) Run(g *Globals) error {
	c, err := g.connect()
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Ping(g.ctx); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func resourceTable(resources []mcpclient.Resource) table.Rows {
	rows := table.Rows{Columns: []string{"URI", "Name", "Description"}}
	for _, r := range resources {
		rows.Cells = append(rows.Cells, []any{table.Bold{Value: r.URI}, r.Name, r.Description})
	}
	return rows
}

func promptTable(prompts []mcpclient.Prompt) table.Rows {
	rows := table.Rows{Columns: []string{"Prompt", "Description", "Arguments"}}
	for _, p := range prompts {
		args := make([]string, 0, len(p.Arguments))
		for _, arg := range p.Arguments {
			if arg.Required {
				args = append(args, arg.Name)
			} else {
				args = append(args, arg.Name+"?")
			}
		}
		rows.Cells = append(rows.Cells, []any{table.Bold{Value: p.Name}, p.Description, args})
	}
	return rows
}

// toolArguments returns the property names of an input schema, with
// optional properties marked
func toolArguments(schema map[string]any) []string {
	properties, _ := schema["properties"].(map[string]any)
	required := make(map[string]bool)
	if list, ok := schema["required"].([]any); ok {
		for _, name := range list {
			if s, ok := name.(string); ok {
				required[s] = true
			}
		}
	}
	result := make([]string, 0, len(properties))
	for name := range properties {
		if required[name] {
			result = append(result, name)
		} else {
			result = append(result, name+"?")
		}
	}
	slices.Sort(result)
	return result
}
