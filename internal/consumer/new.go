package consumer

import (
	"errors"
)

var (
	errNoLogger   = errors.New("consumer: logger is required")
	errNoBrokers  = errors.New("consumer: kafka brokers are required")
	errNoTopic    = errors.New("consumer: kafka topic is required")
	errNoGroupID  = errors.New("consumer: kafka group id is required")
	errNoPostgres = errors.New("consumer: postgres db is required")
)

// New builds the consumer server. The analytics consumer needs Postgres and
// a topic/group pair; nothing else is dialled here.
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:             cfg.Logger,
		kafkaConfig:   cfg.KafkaConfig,
		postgresDB:    cfg.PostgresDB,
		consumerGroup: cfg.ConsumerGroup,
		discord:       cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

func (srv *ConsumerServer) validate() error {
	switch {
	case srv.l == nil:
		return errNoLogger
	case len(srv.kafkaConfig.Brokers) == 0:
		return errNoBrokers
	case srv.kafkaConfig.Topic == "":
		return errNoTopic
	case srv.kafkaConfig.GroupID == "":
		return errNoGroupID
	case srv.postgresDB == nil:
		return errNoPostgres
	}
	return nil
}
