package gcp

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestLocation(t *testing.T) {
	assert.Equal(t, "gs://legal-docs/uploads/abc/lease.pdf", Location("legal-docs", "uploads/abc/lease.pdf"))
}

func TestIsPreconditionFailed(t *testing.T) {
	precondition := &googleapi.Error{Code: http.StatusPreconditionFailed}

	assert.True(t, isPreconditionFailed(precondition))
	assert.True(t, isPreconditionFailed(fmt.Errorf("close: %w", precondition)))
	assert.False(t, isPreconditionFailed(&googleapi.Error{Code: http.StatusForbidden}))
	assert.False(t, isPreconditionFailed(errors.New("network down")))
}
