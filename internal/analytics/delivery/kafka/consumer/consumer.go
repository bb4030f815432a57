package consumer

import (
	"context"

	kafkaDelivery "pharma-search-srv/internal/analytics/delivery/kafka"
)

// ConsumeSearchPerformed starts consuming search events in the background
func (c *consumer) ConsumeSearchPerformed(ctx context.Context) error {
	groupID := c.kafkaConfig.GroupID
	if groupID == "" {
		groupID = kafkaDelivery.GroupIDSearchPerformed
	}
	topic := c.kafkaConfig.Topic
	if topic == "" {
		topic = kafkaDelivery.TopicSearchPerformed
	}

	group := c.searchPerformedGroup
	if group == nil {
		created, err := c.createConsumerGroup(groupID)
		if err != nil {
			return err
		}
		group = created
		c.searchPerformedGroup = group
	}

	handler := &searchPerformedHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{topic}, handler); err != nil {
					c.l.Errorf(ctx, "analytics.delivery.kafka.consumer.ConsumeSearchPerformed: consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "analytics.delivery.kafka.consumer.ConsumeSearchPerformed: consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s as %s", topic, groupID)
	return nil
}
