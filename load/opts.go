package load

import "log/slog"

type loadOpts struct {
	encoding   string
	permissive bool
	logger     *slog.Logger
}

type Option func(*loadOpts)

// WithEncoding names the encoding of the file, for example "latin1" or
// "utf-16le". The empty name means detect.
func WithEncoding(name string) Option {
	return func(o *loadOpts) { o.encoding = name }
}

func WithPermissive(v bool) Option {
	return func(o *loadOpts) { o.permissive = v }
}

// WithLogger sets where warnings are logged. By default they are not.
func WithLogger(l *slog.Logger) Option {
	return func(o *loadOpts) { o.logger = l }
}
