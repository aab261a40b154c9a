package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateToken(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"Valid UUID", "a3bb189e-8bf9-3888-9912-ace4e6543002", false},
		{"Uppercase rejected", "A3BB189E-8BF9-3888-9912-ACE4E6543002", true},
		{"Too short", "a3bb189e-8bf9-3888-9912", true},
		{"No hyphens", "a3bb189e8bf938889912ace4e6543002", true},
		{"Empty", "", true},
		{"SQL injection shape", "' OR '1'='1", true},
		{"Trailing garbage", "a3bb189e-8bf9-3888-9912-ace4e6543002x", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateToken(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAction(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateAction("approve"))
	assert.NoError(t, ValidateAction("reject"))
	assert.Error(t, ValidateAction("Approve"))
	assert.Error(t, ValidateAction("delete"))
	assert.Error(t, ValidateAction(""))
}

func TestValidateItemType(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateItemType("club"))
	assert.NoError(t, ValidateItemType("shop"))
	assert.Error(t, ValidateItemType("society"))
	assert.Error(t, ValidateItemType(""))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateEmail("faculty@institute.edu"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail(strings.Repeat("a", 250)+"@x.edu"))
}

func TestValidateCoordinates(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateCoordinates(12.9716, 77.5946))
	assert.NoError(t, ValidateCoordinates(-90, 180))
	assert.NoError(t, ValidateCoordinates(90, -180))
	assert.Error(t, ValidateCoordinates(90.1, 0))
	assert.Error(t, ValidateCoordinates(0, -180.1))
}
