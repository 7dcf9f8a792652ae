package tui

// OutputFormat controls how the chosen value is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits the bare wire value.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures optional prefixes the renderer applies to messages. Keep
// minimal to avoid coupling renderer logic to ANSI specifics.
type Theme struct {
	RequiredSuffix string
	InfoPrefix     string
	ErrorPrefix    string
}

func defaultTheme() Theme {
	return Theme{
		RequiredSuffix: " *",
		ErrorPrefix:    "! ",
	}
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithPageSize limits how many entries are visible at once.
func WithPageSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.pageSize = size
		}
	}
}

// WithTheme applies optional message prefixes. Empty fields keep defaults.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		if theme.RequiredSuffix != "" {
			r.theme.RequiredSuffix = theme.RequiredSuffix
		}
		if theme.InfoPrefix != "" {
			r.theme.InfoPrefix = theme.InfoPrefix
		}
		if theme.ErrorPrefix != "" {
			r.theme.ErrorPrefix = theme.ErrorPrefix
		}
	}
}
