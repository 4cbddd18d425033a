package auth

import (
	"swiftship/internal/pkg/token"
	"swiftship/pkg/logger"
)

type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
