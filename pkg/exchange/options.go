package exchange

// Option is a functional option for currency normalization.
type Option func(*Options)

// Options holds the tunable parameters of currency normalization.
type Options struct {
	// QuoteCurrency selects which quote object to pass through from
	// feeds that key market metrics by currency code.
	QuoteCurrency string
}

// WithQuoteCurrency returns an option selecting the quote currency code
// whose market metrics are passed through (default "USD").
func WithQuoteCurrency(code string) Option {
	return func(o *Options) {
		o.QuoteCurrency = code
	}
}

// ApplyOptions resolves the option list against the defaults.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{QuoteCurrency: "USD"}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
