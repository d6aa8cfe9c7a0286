package cleanup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanUpRunsInReverseOrder(t *testing.T) {
	var order []string
	Register(&Job{Name: "pool", F: func() error {
		order = append(order, "pool")
		return nil
	}})
	Register(&Job{Name: "sentry", F: func() error {
		order = append(order, "sentry")
		return errors.New("flush failed")
	}})
	CleanUp()
	assert.Equal(t, []string{"sentry", "pool"}, order)

	// jobs are forgotten after run
	CleanUp()
	assert.Equal(t, []string{"sentry", "pool"}, order)
}
