package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurdesk/brokerage-backend/internal/domain"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(newTestCatalog(t))

	tests := []struct {
		name      string
		module    string
		wantCanon string
		wantErr   bool
	}{
		{name: "exact", module: "City", wantCanon: "City"},
		{name: "lowercase", module: "city", wantCanon: "City"},
		{name: "uppercase", module: "CITY", wantCanon: "City"},
		{name: "table name", module: "payment_modes", wantCanon: "PaymentMode"},
		{name: "surrounding whitespace", module: "  Courier \t", wantCanon: "Courier"},
		{name: "misspelled", module: "Cityy", wantErr: true},
		{name: "empty", module: "", wantErr: true},
		{name: "whitespace only", module: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := r.Resolve(tt.module)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domain.ErrUnknownEntity), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCanon, e.CanonicalName)
		})
	}
}
