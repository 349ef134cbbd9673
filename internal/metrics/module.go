package metrics

import "go.uber.org/fx"

// Module provides the metrics registry to the fx graph.
var Module = fx.Provide(NewRegistry)
