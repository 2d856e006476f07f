// Package matrix: shared wrapping helper for kernel errors.
package matrix

import "github.com/cockroachdb/errors"

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}
