package tools

import "context"

// Config class for tools
type Config struct {
	// title the default title of the tool, used as the tool name
	title string
	// description the default description of the tool
	description string
	startHook   func(ctx context.Context, tool string, input string)
	endHook     func(ctx context.Context, tool string, input string, output string)
	errorHook   func(ctx context.Context, tool string, input string, err error)
}

func (c *Config) SetTitle(v string) {
	c.title = v
}

func (c Config) Title() string {
	return c.title
}

func (c *Config) SetDescription(v string) {
	c.description = v
}

func (c Config) Description() string {
	return c.description
}

func (c *Config) SetStartHook(fn func(context.Context, string, string)) {
	c.startHook = fn
}

func (c *Config) SetEndHook(fn func(context.Context, string, string, string)) {
	c.endHook = fn
}

func (c *Config) SetErrorHook(fn func(context.Context, string, string, error)) {
	c.errorHook = fn
}

// Spec builds a ToolSpec named after the title, running the configured hooks around invoke
func (c Config) Spec(invoke InvokeFunc) ToolSpec {
	return ToolSpec{
		Name:        c.title,
		Description: c.description,
		Invoke: func(ctx context.Context, input string) (string, error) {
			if fn := c.startHook; fn != nil {
				fn(ctx, c.title, input)
			}
			output, err := invoke(ctx, input)
			if err != nil {
				if fn := c.errorHook; fn != nil {
					fn(ctx, c.title, input, err)
				}
				return "", err
			}
			if fn := c.endHook; fn != nil {
				fn(ctx, c.title, input, output)
			}
			return output, nil
		},
	}
}
