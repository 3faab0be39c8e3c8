package messaging

import (
	"fmt"
	"net"
	"net/url"

	"clinic-portal/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ dials the broker. An empty host means events are not
// published, and a nil connection is returned without error.
func NewRabbitMQ(driverConfig *config.DriverConfig) (*amqp091.Connection, error) {
	if driverConfig.RabbitMQ.Host == "" {
		return nil, nil
	}

	connectionURL := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(driverConfig.RabbitMQ.Username, driverConfig.RabbitMQ.Password),
		Host:   net.JoinHostPort(driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port),
		Path:   "/",
	}
	conn, err := amqp091.Dial(connectionURL.String())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	return conn, nil
}
