package fs

import (
	"errors"
	"os"

	"github.com/fwojciec/docsplit"
)

// ReadDocument returns the contents of the source document at path.
// A missing file is reported as ENOTFOUND.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", docsplit.Errorf(docsplit.ENOTFOUND, "input file %s not found", path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
