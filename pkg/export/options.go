package export

import "time"

const (
	DefaultFrom   = "newsletter@porr.pl"
	DefaultTo     = "recipient@example.com"
	DefaultMailer = "PORR Newsletter Generator"
)

type options struct {
	date     time.Time
	from     string
	to       string
	mailer   string
	boundary string
}

// Option configures a container.
type Option func(*options)

// WithFrom sets the From address.
func WithFrom(addr string) Option {
	return func(o *options) { o.from = addr }
}

// WithTo sets the To address.
func WithTo(addr string) Option {
	return func(o *options) { o.to = addr }
}

// WithDate sets the Date header. Defaults to the current time.
func WithDate(t time.Time) Option {
	return func(o *options) { o.date = t }
}

// WithMailer sets the X-Mailer header and the MHT sender name.
func WithMailer(name string) Option {
	return func(o *options) { o.mailer = name }
}

// WithBoundary sets the multipart boundary. Defaults to a random one.
func WithBoundary(b string) Option {
	return func(o *options) { o.boundary = b }
}

func newOptions(opts []Option) options {
	o := options{
		from:   DefaultFrom,
		to:     DefaultTo,
		mailer: DefaultMailer,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.date.IsZero() {
		o.date = time.Now()
	}
	return o
}
