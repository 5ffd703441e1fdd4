package chat

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/akiyanavi/concierge/pkg/listing"
	"github.com/akiyanavi/concierge/pkg/llm"
	"github.com/akiyanavi/concierge/pkg/prompt"
)

// CatalogSource — порт получения актуального каталога. Каталог запрашивается
// заново на каждый ход диалога, никакого кэша.
type CatalogSource interface {
	Fetch(ctx context.Context) ([]listing.Property, error)
}

// UseCase — сценарий одного хода диалога.
type UseCase interface {
	Reply(ctx context.Context, history []Message, intent prompt.Intent) (string, error)
}

type service struct {
	catalog CatalogSource
	model   llm.ChatModel
	log     *zap.Logger
}

func NewService(catalog CatalogSource, model llm.ChatModel, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{catalog: catalog, model: model, log: log}
}

// Reply fetches the catalog, compiles the system prompt and forwards the
// history to the model. Strictly sequential; the second call embeds the
// result of the first. Any failure propagates to the caller as-is.
func (s *service) Reply(ctx context.Context, history []Message, intent prompt.Intent) (string, error) {
	if err := ValidateHistory(history); err != nil {
		return "", err
	}

	started := time.Now()
	records, err := s.catalog.Fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch catalog: %w", err)
	}

	catalogText := prompt.Catalog(records)
	system := prompt.System(catalogText, intent)

	msgs := make([]llm.Message, 0, len(history))
	for _, m := range history {
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Content})
	}

	answer, err := s.model.Complete(ctx, system, msgs)
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}

	s.log.Info("chat turn completed",
		zap.Int("records", len(records)),
		zap.Int("history", len(history)),
		zap.String("intent", intent.String()),
		zap.Duration("took", time.Since(started)),
	)
	return answer, nil
}
