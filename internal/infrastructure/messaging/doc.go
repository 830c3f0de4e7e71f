// Package messaging publishes notify events to RabbitMQ, or to the log when
// no broker is configured.
package messaging
