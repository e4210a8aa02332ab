package common

import (
	"github.com/futig/contract-workbench/internal/config"
	pkgHTTP "github.com/futig/contract-workbench/pkg/http"
	"go.uber.org/zap"
)

const userAgentPrefix = "contract-workbench/"

// NewBaseConnector builds the outbound JSON client for an upstream service.
// service names the upstream in the User-Agent and in the logger.
func NewBaseConnector(cfg config.HTTPClientConfig, service string, logger *zap.Logger) *pkgHTTP.Connector {
	return pkgHTTP.NewConnector(
		&pkgHTTP.ConnectorConfig{
			Logger:  logger.With(zap.String("upstream", service)),
			BaseURL: cfg.Url,
		},
		pkgHTTP.WithTimeouts(cfg.ConnTimeout, cfg.RequestTimeout, cfg.ResponseHeaderTimeout),
		pkgHTTP.WithKeepAlive(cfg.KeepAlive, cfg.IdleConnTimeout),
		pkgHTTP.WithAuthToken(cfg.Token),
		pkgHTTP.WithUserAgent(userAgentPrefix+service),
		pkgHTTP.WithRequestLogging(),
	)
}
