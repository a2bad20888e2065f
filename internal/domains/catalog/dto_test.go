package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEntryRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateEntryRequest
		wantErr bool
	}{
		{"valid", CreateEntryRequest{Title: "Letrero Pizza", Price: 45000}, false},
		{"missing title", CreateEntryRequest{Price: 100}, true},
		{"title too long", CreateEntryRequest{Title: strings.Repeat("x", 201)}, true},
		{"negative price", CreateEntryRequest{Title: "Letrero", Price: -1}, true},
		{"zero price ok", CreateEntryRequest{Title: "Letrero"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateEntryRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateEntryRequest
		wantErr bool
	}{
		{"empty patch is valid", UpdateEntryRequest{}, false},
		{"title patch", UpdateEntryRequest{Title: strPtr("Nuevo")}, false},
		{"empty title rejected", UpdateEntryRequest{Title: strPtr("")}, true},
		{"title too long", UpdateEntryRequest{Title: strPtr(strings.Repeat("x", 201))}, true},
		{"negative price rejected", UpdateEntryRequest{Price: floatPtr(-5)}, true},
		{"zero price ok", UpdateEntryRequest{Price: floatPtr(0)}, false},
		{"nil price skips the rule", UpdateEntryRequest{Description: strPtr("d")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateEntryRequest_IsEmpty(t *testing.T) {
	assert.True(t, UpdateEntryRequest{}.IsEmpty())
	assert.False(t, UpdateEntryRequest{Title: strPtr("x")}.IsEmpty())
	assert.False(t, UpdateEntryRequest{Images: []string{}}.IsEmpty())
}

func TestReorderRequest_Validate(t *testing.T) {
	require.Error(t, ReorderRequest{}.Validate())
	assert.NoError(t, ReorderRequest{Orders: []EntryOrder{{ID: "a", OrderIndex: 1}}}.Validate())
}
