package calculator

import (
	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
)

// fmtInsufficientArgs builds the InsufficientArgs diagnostic (the
// "stack.size() >= |num_args()|; otherwise fails with InsufficientArgs").
func fmtInsufficientArgs(want, got int) error {
	return cerr.Newf(cerr.InsufficientArgs, "need %d argument(s), have %d", want, got)
}
