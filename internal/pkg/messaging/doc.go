// Package messaging consumes events from a message broker behind a
// broker-agnostic API.
//
// Inbound adapters depend on Consumer and Message only, so the broker (NATS
// or Kafka) is picked by configuration without touching handler code.
package messaging
