/*
Package rabbitmq provides RabbitMQ-backed capability implementations.
It maps publishes to AMQP on a topic exchange, includes an auto-reconnect
publisher, and probes liveness off the same connection.
*/
package rabbitmq
