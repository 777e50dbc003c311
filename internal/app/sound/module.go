package sound

import (
	"go.uber.org/fx"
)

// Module provides the cue player; resolvers are built per menu from the live configuration
var Module = fx.Options(
	fx.Provide(NewPlayer),
)
