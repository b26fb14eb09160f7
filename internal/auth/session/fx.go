package session

import "go.uber.org/fx"

// Module wires the company session cookie manager.
var Module = fx.Module("session.cookie",
	fx.Provide(NewManager),
)
