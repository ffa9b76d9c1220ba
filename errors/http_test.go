package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{ErrMissingCredential, http.StatusUnauthorized},
		{ErrUnknownIdentity, http.StatusUnauthorized},
		{ErrNotificationNotOwned, http.StatusForbidden},
		{fmt.Errorf("lookup: %w", ErrNotificationNotFound), http.StatusNotFound},
		{ErrUserAlreadyExists, http.StatusBadRequest},
		{fmt.Errorf("%w: disk full", ErrPersistence), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, MapToHTTPStatus(tt.err), "error: %v", tt.err)
	}
}
