package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff"
)

// OpenWithRetry opens a dataset file, retrying with exponential
// backoff while e.g. a data volume is still being mounted
func OpenWithRetry(path string, maxElapsed time.Duration) (*os.File, error) {
	var (
		file         *os.File
		retryBackoff = backoff.NewExponentialBackOff()
	)
	retryBackoff.MaxElapsedTime = maxElapsed

	err := backoff.Retry(func() error {
		f, openErr := os.Open(path)
		if openErr != nil {
			fmt.Printf("[%s] - Unable to open %s, retrying : %v\n", time.Now(), path, openErr)
			return openErr
		}
		file = f
		return nil
	}, retryBackoff)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return file, nil
}
