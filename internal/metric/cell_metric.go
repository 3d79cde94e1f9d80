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

package metric

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	strategyKey = attribute.Key("actors.strategy")
	reasonKey   = attribute.Key("actors.reason")
)

// CellMetric groups the OpenTelemetry instruments recorded by actor cells.
//
// Instruments:
//   - actors.messages.processed (Int64Counter)
//   - actors.jobs.submitted     (Int64Counter)
//   - actors.send.failures      (Int64Counter)
//   - actors.panics             (Int64Counter)
//
// Every measurement carries the execution strategy of the cell.
type CellMetric struct {
	processed metric.Int64Counter
	submitted metric.Int64Counter
	failures  metric.Int64Counter
	panics    metric.Int64Counter
}

// NewCellMetric creates the cell instruments using the provided Meter.
// It returns an error if any instrument cannot be created so telemetry
// initialization failures are surfaced early.
func NewCellMetric(meter metric.Meter) (*CellMetric, error) {
	var instruments CellMetric
	var err error

	if instruments.processed, err = meter.Int64Counter(
		"actors.messages.processed",
		metric.WithDescription("Total number of messages processed by actors"),
	); err != nil {
		return nil, err
	}

	if instruments.submitted, err = meter.Int64Counter(
		"actors.jobs.submitted",
		metric.WithDescription("Total number of processing jobs submitted to a worker pool"),
	); err != nil {
		return nil, err
	}

	if instruments.failures, err = meter.Int64Counter(
		"actors.send.failures",
		metric.WithDescription("Total number of messages that could not be delivered"),
	); err != nil {
		return nil, err
	}

	if instruments.panics, err = meter.Int64Counter(
		"actors.panics",
		metric.WithDescription("Total number of actors poisoned by a panic"),
	); err != nil {
		return nil, err
	}

	return &instruments, nil
}

// Processed records one processed message
func (x *CellMetric) Processed(ctx context.Context, strategy string) {
	x.processed.Add(ctx, 1, metric.WithAttributes(strategyKey.String(strategy)))
}

// Submitted records one job handed to the worker pool
func (x *CellMetric) Submitted(ctx context.Context, strategy string) {
	x.submitted.Add(ctx, 1, metric.WithAttributes(strategyKey.String(strategy)))
}

// SendFailed records one undelivered message and the reason it was rejected
func (x *CellMetric) SendFailed(ctx context.Context, strategy, reason string) {
	x.failures.Add(ctx, 1, metric.WithAttributes(strategyKey.String(strategy), reasonKey.String(reason)))
}

// Panicked records one actor poisoned by a panic
func (x *CellMetric) Panicked(ctx context.Context, strategy string) {
	x.panics.Add(ctx, 1, metric.WithAttributes(strategyKey.String(strategy)))
}
