package scan

import (
	"context"
	"fmt"
	"strings"

	"swiftship/internal/entities"
)

type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

// ProcessScan применяет одно событие сканирования к журналу посылки.
// Статусы, для которых нет обработчика, наверх не поднимаем.
func (s *Service) ProcessScan(ctx context.Context, scanEvent entities.ParcelScan) (*entities.TrackingEvent, error) {
	if strings.TrimSpace(scanEvent.TrackingID) == "" {
		return nil, ErrEmptyTrackingID
	}

	executeFn, err := s.statusFactory.GetHandler(scanEvent.Status)
	if err != nil {
		return nil, fmt.Errorf("resolve scan handler: %w", err)
	}

	event, err := executeFn(ctx, scanEvent)
	if err != nil {
		return nil, err
	}

	return event, nil
}
