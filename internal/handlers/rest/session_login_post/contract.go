//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_login_post_test
package session_login_post

import (
	"context"

	"github.com/Ralet11/pandaApp/pkg/logger"
)

type Service interface {
	Login(ctx context.Context, userID, token string) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
