package orderid

import (
	"github.com/sureshift/backend/internal/config"
	"go.uber.org/fx"
)

// Module provides the order id generator for fx graphs.
var Module = fx.Provide(newGenerator)

func newGenerator(cfg *config.Config) *Generator {
	return New(cfg.OrderIDPrefix)
}
