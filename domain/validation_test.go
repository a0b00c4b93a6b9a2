package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuinorg/objects4go/domain"
	"github.com/fuinorg/objects4go/errors"
	"github.com/fuinorg/objects4go/validation"
)

type order struct {
	ID      string `json:"id" validate:"required,uuidstr"`
	Total   string `json:"total" validate:"required,currencyamount"`
	Contact string `json:"contact" validate:"omitempty,emailaddress"`
}

func TestRegisterValidations(t *testing.T) {
	engine := validation.NewEngine()
	require.NoError(t, domain.RegisterValidations(engine))

	valid := order{ID: domain.NewUUIDStr().String(), Total: "1234.56 EUR", Contact: "shop@example.com"}
	assert.NoError(t, engine.Struct(valid))

	err := engine.Struct(order{ID: "nope", Total: "12 EURO", Contact: "x"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Len(t, appErr.Details, 3)
}

func TestTextTypes(t *testing.T) {
	amount, err := validation.ValueOf[domain.CurrencyAmount]("1234.56 EUR")
	require.NoError(t, err)
	assert.Equal(t, "1234.56 EUR", amount.String())

	assert.True(t, validation.IsValid[domain.EmailAddress]("a@b.io"))
	assert.False(t, validation.IsValid[domain.UUIDStr]("1234"))
}
