// Package metrics defines interfaces and event types for observing the
// prediction pipeline. Sinks like PromSink and InfluxSink record training
// runs, forecast queries and risk classifications and can be combined with
// NewMultiSink.
package metrics
