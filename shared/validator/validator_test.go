package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"cruisedesk/shared/failure"
	"cruisedesk/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type LoginTestStruct struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type CabinTestStruct struct {
	CabinNumber string `json:"cabin_number" validate:"required,max=20"`
	CabinType   string `json:"cabin_type"   validate:"oneof=inside oceanview balcony suite"`
	Capacity    int    `json:"capacity"     validate:"gte=1,lte=8"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        CabinTestStruct
		expectError string
	}{
		{
			name: "valid cabin",
			data: CabinTestStruct{CabinNumber: "A101", CabinType: "balcony", Capacity: 2},
		},
		{
			name:        "missing number",
			data:        CabinTestStruct{CabinType: "suite", Capacity: 2},
			expectError: "cabin_number is required",
		},
		{
			name:        "unknown type",
			data:        CabinTestStruct{CabinNumber: "A101", CabinType: "hammock", Capacity: 2},
			expectError: "cabin_type must be one of inside oceanview balcony suite",
		},
		{
			name:        "over capacity",
			data:        CabinTestStruct{CabinNumber: "A101", CabinType: "inside", Capacity: 12},
			expectError: "capacity must be less than or equal to 8",
		},
		{
			name:        "number too long",
			data:        CabinTestStruct{CabinNumber: strings.Repeat("9", 21), CabinType: "inside", Capacity: 1},
			expectError: "cabin_number must be less than or equal to 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.expectError, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("agent@cruise.test", "email"))
	assert.Error(t, validator.ValidateVar("agent", "email"))
	assert.NoError(t, validator.ValidateVar("confirmed", "oneof=pending confirmed cancelled"))
	assert.Error(t, validator.ValidateVar("", "required"))
}

func TestValidate(t *testing.T) {
	var data LoginTestStruct

	require.NoError(t, validator.Validate(strings.NewReader(`{"email":"agent@cruise.test","password":"secret1"}`), &data))
	assert.Equal(t, "agent@cruise.test", data.Email)

	err := validator.Validate(strings.NewReader(`{"email":"agent@cruise.test","password":"abc"}`), &LoginTestStruct{})
	require.Error(t, err)
	assert.Equal(t, "password must be greater than or equal to 6", err.Error())

	err = validator.Validate(strings.NewReader(`{"email":`), &LoginTestStruct{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

type PricedTestStruct struct {
	Amount    decimal.Decimal  `json:"amount"     validate:"decimal_gte=0"`
	Refund    *decimal.Decimal `json:"refund"     validate:"omitempty,decimal_gte=0,decimal_lte=100"`
	StartDate string           `json:"start_date" validate:"required,timestamp"`
}

func TestValidateStruct_CustomTags(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	tooLarge := decimal.NewFromInt(150)
	half := decimal.NewFromFloat(50.5)

	tests := []struct {
		name        string
		data        PricedTestStruct
		expectError string
	}{
		{
			name: "valid values",
			data: PricedTestStruct{Amount: decimal.NewFromInt(120), Refund: &half, StartDate: "2025-03-01"},
		},
		{
			name: "rfc3339 date",
			data: PricedTestStruct{Amount: decimal.Zero, StartDate: "2025-03-01T10:00:00Z"},
		},
		{
			name:        "negative amount",
			data:        PricedTestStruct{Amount: negative, StartDate: "2025-03-01"},
			expectError: "amount must be greater than or equal to 0",
		},
		{
			name:        "refund over one hundred",
			data:        PricedTestStruct{Amount: decimal.Zero, Refund: &tooLarge, StartDate: "2025-03-01"},
			expectError: "refund must be less than or equal to 100",
		},
		{
			name:        "unparseable date",
			data:        PricedTestStruct{Amount: decimal.Zero, StartDate: "next tuesday"},
			expectError: "start_date must be a valid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.expectError, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

type UploadTestStruct struct {
	File multipart.FileHeader `json:"file" validate:"mimetypes=image/png image/jpeg,maxfilesize=1"`
}

func TestValidateStruct_FileTags(t *testing.T) {
	header := func(contentType string, size int64) multipart.FileHeader {
		return multipart.FileHeader{
			Filename: "cabin.png",
			Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
			Size:     size,
		}
	}

	assert.NoError(t, validator.ValidateStruct(&UploadTestStruct{File: header("image/png", 1024)}))
	assert.Error(t, validator.ValidateStruct(&UploadTestStruct{File: header("application/pdf", 1024)}))
	assert.Error(t, validator.ValidateStruct(&UploadTestStruct{File: header("image/png", 2<<20)}))
}
