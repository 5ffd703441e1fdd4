package checkers

import (
	"context"
	"time"
)

// Pinger is satisfied by the data-provider client.
type Pinger interface {
	Ping(ctx context.Context) error
}

type NotionChecker struct {
	client Pinger
}

func NewNotionChecker(client Pinger) *NotionChecker {
	return &NotionChecker{client: client}
}

func (c *NotionChecker) Name() string { return "notion" }

func (c *NotionChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.client.Ping(ctx)
}
