package listing

import (
	"context"

	"github.com/akiyanavi/concierge/pkg/notion"
)

// Querier is the slice of the provider client this package needs.
type Querier interface {
	Query(ctx context.Context) ([]notion.Page, error)
}

// Source запрашивает каталог у провайдера и нормализует его. Ошибка запроса
// поднимается наверх без повторов.
type Source struct {
	q Querier
}

func NewSource(q Querier) *Source { return &Source{q: q} }

func (s *Source) Fetch(ctx context.Context) ([]Property, error) {
	pages, err := s.q.Query(ctx)
	if err != nil {
		return nil, err
	}
	return Normalize(pages), nil
}
