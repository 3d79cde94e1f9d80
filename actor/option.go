/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	"runtime"

	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/kolloch/actors/internal/metric"
	"github.com/kolloch/actors/log"
)

// Option is the interface that applies a configuration option
// to a Dispatcher or a DedicatedSpawner.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(config *config)
}

// enforce compilation error
var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*config)

// Apply applies the option
func (f OptionFunc) Apply(c *config) {
	f(c)
}

// config holds the runtime settings shared by the spawners
type config struct {
	workers       int
	batchSize     int
	logger        log.Logger
	meterProvider otelmetric.MeterProvider
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		workers:   runtime.NumCPU(),
		batchSize: DefaultBatchSize,
		logger:    log.DiscardLogger,
	}

	for _, opt := range opts {
		opt.Apply(cfg)
	}
	return cfg
}

// cellMetric creates the instruments shared by the cells of a spawner
func (c *config) cellMetric() (*metric.CellMetric, error) {
	provider := metric.New(metric.WithMeterProvider(c.meterProvider))
	return metric.NewCellMetric(provider.Meter())
}

// WithWorkers sets the number of worker goroutines of a Dispatcher.
// Values lower than one are ignored.
func WithWorkers(workers int) Option {
	return OptionFunc(func(c *config) {
		if workers > 0 {
			c.workers = workers
		}
	})
}

// WithBatchSize sets the maximum number of messages a pooled actor processes
// before yielding its worker. Values lower than one are ignored.
func WithBatchSize(batchSize int) Option {
	return OptionFunc(func(c *config) {
		if batchSize > 0 {
			c.batchSize = batchSize
		}
	})
}

// WithLogger sets the logger used by the cells for their trace events
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithMeterProvider sets the OpenTelemetry meter provider.
// When not set the global meter provider is used.
func WithMeterProvider(provider otelmetric.MeterProvider) Option {
	return OptionFunc(func(c *config) {
		c.meterProvider = provider
	})
}
