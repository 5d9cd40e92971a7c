package middleware

import (
	"catalog-service/config"
	"catalog-service/pkg/log"
)

type Middleware struct {
	l       log.Logger
	auth    config.AuthConfig
	limiter *clientLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	m := Middleware{
		l:    l,
		auth: cfg.Auth,
	}
	if cfg.RateLimit.Enabled {
		m.limiter = newClientLimiter(cfg.RateLimit)
	}
	return m
}
