//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_location_test
package driver_location

import (
	"context"

	"github.com/Ralet11/pandaApp/internal/entities"
	"github.com/Ralet11/pandaApp/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessDriverLocation(ctx context.Context, event entities.LocationEvent) error
}
