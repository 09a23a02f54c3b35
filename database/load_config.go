package database

import (
	"log/slog"

	"github.com/arloliu/mii/compress"
	"github.com/arloliu/mii/format"
	"github.com/arloliu/mii/metrics"
	"github.com/arloliu/mii/internal/options"
	"github.com/arloliu/mii/record"
)

// LoadConfig holds the settings of one Load or Decode call.
type LoadConfig struct {
	logger      *slog.Logger
	compression format.CompressionType
	recorder    *metrics.Recorder
	parserOpts  []record.ParserOption
	lenientSize bool
}

// LoadOption configures a load.
type LoadOption = options.Option[*LoadConfig]

func newLoadConfig(opts []LoadOption) (*LoadConfig, error) {
	cfg := &LoadConfig{
		logger: slog.New(slog.DiscardHandler),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithLogger sets the logger that receives per-slot diagnostics.
// Record-level problems are logged at debug level, the load summary at info.
func WithLogger(logger *slog.Logger) LoadOption {
	return options.NoError(func(c *LoadConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithCompression declares the compression of the file passed to Load.
// Without it, the compression is inferred from the file extension.
// Decode always treats its input as uncompressed.
func WithCompression(ct format.CompressionType) LoadOption {
	return options.New(func(c *LoadConfig) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		c.compression = ct

		return nil
	})
}

// WithMetrics records load and slot counters on rec, e.g.
// metrics.New(prometheus.NewRegistry()).
func WithMetrics(rec *metrics.Recorder) LoadOption {
	return options.NoError(func(c *LoadConfig) {
		c.recorder = rec
	})
}

// WithParserOptions passes options to the record parser, e.g.
// record.WithStrictText().
func WithParserOptions(opts ...record.ParserOption) LoadOption {
	return options.NoError(func(c *LoadConfig) {
		c.parserOpts = append(c.parserOpts, opts...)
	})
}

// WithLenientSize accepts a file of any size that holds the header and the
// whole slot table, instead of requiring the exact size of the console file.
// Use it for dumps whose trailing sections differ from the documented size.
func WithLenientSize() LoadOption {
	return options.NoError(func(c *LoadConfig) {
		c.lenientSize = true
	})
}
