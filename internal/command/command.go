package command

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/pricofy/poeditor/internal/config"
	"github.com/pricofy/poeditor/internal/domain"
	"github.com/pricofy/poeditor/pkg/poeditor"
)

// message is a result printed as plain text rather than encoded.
type message string

// env is what an operation gets to work with.
type env struct {
	cfg    *config.Config
	client *poeditor.Client
	set    map[string]bool
}

// opCommand is a leaf command that calls the API once it has parsed its
// flags and built a client.
type opCommand struct {
	*Meta

	name     string
	synopsis string
	usage    string
	required []string

	// flags registers the command's own flags.
	flags func(f *flag.FlagSet)
	run   func(ctx context.Context, e *env) (interface{}, error)
}

func (c *opCommand) Synopsis() string {
	return c.synopsis
}

func (c *opCommand) Help() string {
	return fmt.Sprintf("Usage: poeditor %s [options]\n\n  %s", c.name, c.usage) +
		flagsHelp(c.flagSet())
}

func (c *opCommand) flagSet() *flag.FlagSet {
	f := c.Meta.flagSet(c.name)
	if c.flags != nil {
		c.flags(f)
	}
	return f
}

func (c *opCommand) Run(args []string) int {
	f := c.flagSet()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return cli.RunResultHelp
	}
	if f.NArg() > 0 {
		c.UI.Error(fmt.Sprintf("unexpected arguments: %s", strings.Join(f.Args(), " ")))
		return cli.RunResultHelp
	}

	set := setFlags(f)
	for _, name := range c.required {
		if !set[name] {
			c.UI.Error(fmt.Sprintf("-%s is required", name))
			return cli.RunResultHelp
		}
	}
	if c.flagFormat != FormatJSON && c.flagFormat != FormatYAML {
		c.UI.Error(fmt.Sprintf("-format must be %s or %s", FormatJSON, FormatYAML))
		return 1
	}

	cfg, err := c.loadConfig()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}
	client, err := c.client(cfg)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := c.run(ctx, &env{cfg: cfg, client: client, set: set})
	if err != nil {
		// Bulk actions report the batches that did succeed.
		if resp, ok := result.(*domain.Response); ok && resp != nil {
			if outErr := c.output(resp); outErr != nil {
				c.Log.Warn("failed to print partial result", "error", outErr)
			}
		}
		return c.fail(err)
	}

	if msg, ok := result.(message); ok {
		c.UI.Info(string(msg))
		return 0
	}
	if err := c.output(result); err != nil {
		return c.fail(err)
	}
	return 0
}

// groupCommand only prints the help of its subcommands.
type groupCommand struct {
	synopsis string
	help     string
}

func (c *groupCommand) Synopsis() string { return c.synopsis }

func (c *groupCommand) Help() string { return c.help }

func (c *groupCommand) Run([]string) int { return cli.RunResultHelp }

// optionalBool returns the value of a bool flag when it was given.
func optionalBool(set map[string]bool, name string, v bool) *poeditor.Bool {
	if !set[name] {
		return nil
	}
	return poeditor.BoolPtr(v)
}

// list splits a comma separated flag value.
func list(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
