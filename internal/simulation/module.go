package simulation

import "go.uber.org/fx"

// Module provides the randomness source used by the simulation engine.
var Module = fx.Provide(NewRand)
