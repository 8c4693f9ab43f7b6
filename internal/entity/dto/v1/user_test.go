package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidateRFID(t *testing.T) {
	t.Parallel()

	validate := validator.New()
	err := validate.RegisterValidation("rfid", ValidateRFID)
	assert.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain tag", input: "RFID001", wantErr: false},
		{name: "hex tag", input: "ABC123DEF456", wantErr: false},
		{name: "hyphen and underscore", input: "SLOT_A-1", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "path traversal", input: "../admin", wantErr: true},
		{name: "slash", input: "RFID/001", wantErr: true},
		{name: "space", input: "RFID 001", wantErr: true},
		{name: "query", input: "RFID001?x=1", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := validate.Var(tc.input, "rfid")
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
