package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"svw.info/dlx/internal/dlx"
)

// strategyValue binds a dlx.Strategy to a command line flag.
type strategyValue struct {
	s *dlx.Strategy
}

var _ pflag.Value = (*strategyValue)(nil)

func strategyFlag(fs *pflag.FlagSet, s *dlx.Strategy) {
	*s = dlx.StrategyMinSize
	fs.Var(&strategyValue{s: s}, "strategy", "column selection: first|minsize")
}

func (v *strategyValue) String() string { return v.s.String() }
func (v *strategyValue) Type() string   { return "strategy" }

func (v *strategyValue) Set(raw string) error {
	switch raw {
	case "first":
		*v.s = dlx.StrategyFirst
	case "minsize":
		*v.s = dlx.StrategyMinSize
	default:
		return errors.Errorf("unknown strategy %q (want first or minsize)", raw)
	}
	return nil
}
