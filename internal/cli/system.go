package cli

import (
	"log/slog"

	"github.com/aretw0/lsys"
	"github.com/aretw0/lsys/internal/logging"
	"github.com/aretw0/lsys/pkg/domain"
	"github.com/spf13/cobra"
)

// NewLogger builds the logger selected by --log-level.
func NewLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString(FlagLogLevel)
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}

// NewSystem resolves configuration and logging from cmd's flags and builds a System.
// Extra options are applied after the flag-derived ones.
func NewSystem(cmd *cobra.Command, extra ...lsys.Option) (*lsys.System, domain.Config, error) {
	cfg, err := ResolveConfig(cmd)
	if err != nil {
		return nil, domain.Config{}, err
	}
	logger, err := NewLogger(cmd)
	if err != nil {
		return nil, domain.Config{}, err
	}
	maxSymbols, _ := cmd.Flags().GetInt(FlagMaxSymbols)

	opts := append([]lsys.Option{
		lsys.WithLogger(logger),
		lsys.WithMaxSymbols(maxSymbols),
	}, extra...)
	return lsys.New(cfg, opts...), cfg, nil
}
