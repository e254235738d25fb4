package batch

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

type envAttrs struct {
	Echo   bool   `env:"BATCH_ECHO"`
	Fatal  bool   `env:"BATCH_FATAL" envDefault:"true"`
	Prefix string `env:"BATCH_PREFIX"`
	Retry  int    `env:"BATCH_RETRY" envDefault:"1"`
}

// NewFromEnv creates an Object whose defaults are seeded from the
// BATCH_ECHO, BATCH_FATAL, BATCH_PREFIX, and BATCH_RETRY environment
// variables. Explicit override pairs still take precedence. A malformed
// environment value is returned as an error.
func NewFromEnv(pairs ...any) (*Object, error) {
	return NewFromEnvWithLogger(logrus.StandardLogger(), pairs...)
}

// NewFromEnvWithLogger is NewFromEnv with an explicit logger.
func NewFromEnvWithLogger(log logrus.FieldLogger, pairs ...any) (*Object, error) {
	var ea envAttrs
	if err := env.Parse(&ea); err != nil {
		return nil, fmt.Errorf("batch: environment defaults: %w", err)
	}

	o := NewWithLogger(log, AttrEcho, ea.Echo, AttrFatal, ea.Fatal, AttrRetry, ea.Retry)
	if ea.Prefix != "" {
		o.Set(AttrPrefix, ea.Prefix)
	}
	o.apply(pairs)
	return o, nil
}
