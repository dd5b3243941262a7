package registry

import (
	"github.com/zeusync/gnr/internal/core/schema/types"
	"github.com/zeusync/gnr/internal/core/schema/types/legacy"
)

// NewDefault builds a codec over every type this module declares.
func NewDefault(opts ...Option) (*Codec, error) {
	return New(types.Registered(), legacy.Registered(), opts...)
}
