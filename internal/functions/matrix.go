// matrixBuilder implements the "Nmatrix" stack-building word
// ("1 2 3 4 2matrix" -> [[1 2][3 4]]): a numeric prefix captured by regex
// gives the side length, and that many squared values come off the stack
// (oldest first) into an N x N row-major Matrix. The regex-triggered form
// only has room for one captured number, so square is the only shape this
// word can build directly (rectangular matrices still parse as
// [[..][..]] literals).
package functions

import (
	"strconv"

	"github.com/vmauery/smrtclcltr-sub000/internal/calculator"
	"github.com/vmauery/smrtclcltr-sub000/internal/container"
	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
)

var matrixBuilder = &fn{
	name:  "matrix",
	regex: `^([0-9]+)matrix\b`,
	argsN: -1,
	respN: 1,
	usage: registry.UsageNone,
	help:  "pop n*n values, push the n x n matrix they form in row-major order",
	reop: func(c *calculator.Calculator, captures []string) error {
		if len(captures) < 2 {
			return cerr.New(cerr.InvalidArgument, "matrix requires a side length")
		}
		n, err := strconv.Atoi(captures[1])
		if err != nil || n <= 0 {
			return cerr.Newf(cerr.InvalidArgument, "invalid matrix side length %q", captures[1])
		}
		return wrapOp(c, func(c *calculator.Calculator) error {
			entries, err := popEntries(c, n*n)
			if err != nil {
				return err
			}
			vals := make([]numeric.Atom, len(entries))
			for i, e := range entries {
				vals[i] = e.Value
			}
			m, err := container.NewMatrix(n, n, vals)
			if err != nil {
				return cerr.Newf(cerr.InvalidArgument, "%s", err)
			}
			c.Push(m)
			return nil
		})
	},
}
