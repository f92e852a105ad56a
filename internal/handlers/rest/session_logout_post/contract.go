//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_logout_post_test
package session_logout_post

import (
	"context"

	"github.com/Ralet11/pandaApp/pkg/logger"
)

type Service interface {
	Logout(ctx context.Context)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
