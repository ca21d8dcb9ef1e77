package completion

type Provider = string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderBedrock   Provider = "bedrock"
	ProviderGemini    Provider = "gemini"
	ProviderCohere    Provider = "cohere"
)

// Options holds the settings shared by completion providers
type Options struct {
	// provider specifies the completion service
	provider Provider
	// model specifies the model to use
	model string
}

// Option is a function type for configuring Options
type Option func(*Options)

func WithProvider(provider Provider) Option {
	return func(o *Options) {
		o.provider = provider
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.model = model
	}
}

func (o Options) Provider() Provider {
	return o.provider
}

func (o Options) Model() string {
	return o.model
}
