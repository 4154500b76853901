package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activationBody struct {
	Barcode       string `json:"barcode" validate:"required,barcode"`
	CustomerName  string `json:"customerName" validate:"required,min=2,max=100"`
	CustomerPhone string `json:"customerPhone" validate:"required,phone"`
	DealerCode    string `json:"dealerCode" validate:"omitempty,dealercode"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		body       activationBody
		wantFields map[string]string
	}{
		{
			name: "valid with dealer",
			body: activationBody{Barcode: "12n5l0000001", CustomerName: "Nguyen An", CustomerPhone: "0912345678", DealerCode: "dl001"},
		},
		{
			name: "valid without dealer",
			body: activationBody{Barcode: "12345678", CustomerName: "An", CustomerPhone: "0312345678"},
		},
		{
			name: "every field wrong",
			body: activationBody{Barcode: "AB-1", CustomerName: "A", CustomerPhone: "0112345678", DealerCode: "D1"},
			wantFields: map[string]string{
				"barcode":       "barcode",
				"customerName":  "min=2",
				"customerPhone": "phone",
				"dealerCode":    "dealercode",
			},
		},
		{
			name:       "missing required",
			body:       activationBody{},
			wantFields: map[string]string{"barcode": "required", "customerName": "required", "customerPhone": "required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.body)
			if tt.wantFields == nil {
				assert.NoError(t, err)

				return
			}

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantFields, vErr.Fields)
		})
	}
}

func TestValidator_Role(t *testing.T) {
	type body struct {
		Role string `json:"role" validate:"required,role"`
	}
	v := New()

	assert.NoError(t, v.Validate(&body{Role: "STAFF"}))

	var vErr *ValidationError
	require.ErrorAs(t, v.Validate(&body{Role: "ROOT"}), &vErr)
	assert.Equal(t, "role", vErr.Fields["role"])
}
