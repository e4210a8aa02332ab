package querybuilder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/futig/contract-workbench/internal/config"
	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/integration/common"
	"github.com/futig/contract-workbench/internal/pkg/metrics"
	pkghttp "github.com/futig/contract-workbench/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const serviceName = "query-builder"

// Connector talks to the remote query builder service that phrases structured
// queries in natural language.
type Connector struct {
	config    config.QueryBuilderConnectorConfig
	connector *pkghttp.Connector
	cache     *cache.Cache
	logger    *zap.Logger
}

func NewConnector(
	cfg config.QueryBuilderConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return newConnector(cfg, common.NewBaseConnector(cfg.HTTPClientConfig, serviceName, logger), logger)
}

func newConnector(cfg config.QueryBuilderConnectorConfig, conn *pkghttp.Connector, logger *zap.Logger) *Connector {
	c := &Connector{
		config:    cfg,
		connector: conn,
		logger:    logger,
	}
	if cfg.CacheTTL > 0 {
		c.cache = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}
	return c
}

// Describe fetches the natural language sentence and expectations for a query
func (c *Connector) Describe(ctx context.Context, q *entity.StructuredQuery) (*entity.QueryDescription, error) {
	key, err := fingerprint(q)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			metrics.DescribeRequests.WithLabelValues("cached").Inc()
			return cached.(*entity.QueryDescription), nil
		}
	}

	ctxzap.Debug(ctx, "describing query via query builder service")

	var resp entity.QueryDescription
	opts := append(c.config.Retry.ToRetryOptions(),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			ctxzap.Warn(ctx, "retrying describe request", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	err = retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.DescribeEndpoint, &entity.DescribeQueryRequest{Query: q}, &resp)
	}, opts...)
	if err != nil {
		metrics.DescribeRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("describe query: %w", err)
	}

	metrics.DescribeRequests.WithLabelValues("ok").Inc()

	if c.cache != nil {
		c.cache.Set(key, &resp, cache.DefaultExpiration)
	}

	return &resp, nil
}

// ToNaturalLanguage returns the service's sentence, or "" when the service is unavailable
func (c *Connector) ToNaturalLanguage(ctx context.Context, q *entity.StructuredQuery) string {
	desc, err := c.Describe(ctx, q)
	if err != nil {
		ctxzap.Error(ctx, "failed to describe query", zap.Error(err))
		return ""
	}
	return desc.NaturalLanguage
}

// GenerateExpectations returns the service's expectations, or none when the service is unavailable
func (c *Connector) GenerateExpectations(ctx context.Context, q *entity.StructuredQuery) []string {
	desc, err := c.Describe(ctx, q)
	if err != nil {
		ctxzap.Error(ctx, "failed to generate expectations", zap.Error(err))
		return []string{}
	}
	if desc.Expectations == nil {
		return []string{}
	}
	return desc.Expectations
}

func fingerprint(q *entity.StructuredQuery) (string, error) {
	raw, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("marshal query: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
