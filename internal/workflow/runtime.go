package workflow

import (
	"log/slog"

	"github.com/JaimeStill/sustainassess/internal/narrative"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Infrastructure and Domain systems.
type Runtime struct {
	Composer *narrative.Composer
	Logger   *slog.Logger
}
