package value_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/dhlexpress/pkg/express/value"
)

func TestNewLabelTemplate_Boundary(t *testing.T) {
	tmpl, err := value.NewLabelTemplate(strings.Repeat("A", 20))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("A", 20), tmpl.String())

	_, err = value.NewLabelTemplate(strings.Repeat("A", 21))
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrFieldTooLong))

	var verr *value.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "LabelTemplate", verr.Field)
	assert.Equal(t, value.FieldTooLong, verr.Kind)
	assert.Equal(t, 20, verr.MaxLength)
}

func TestBounded_MaxLengths(t *testing.T) {
	tests := []struct {
		name  string
		max   int
		build func(string) error
	}{
		{"StreetNumber", 15, func(s string) error { _, err := value.NewStreetNumber(s); return err }},
		{"Text", 50, func(s string) error { _, err := value.NewText(s); return err }},
		{"LabelTemplate", 20, func(s string) error { _, err := value.NewLabelTemplate(s); return err }},
		{"PickupLocation", 40, func(s string) error { _, err := value.NewPickupLocation(s); return err }},
		{"PersonName", 45, func(s string) error { _, err := value.NewPersonName(s); return err }},
		{"CompanyName", 60, func(s string) error { _, err := value.NewCompanyName(s); return err }},
		{"Account", 12, func(s string) error { _, err := value.NewAccount(s); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.build(""))
			assert.NoError(t, tt.build(strings.Repeat("x", tt.max)))
			assert.ErrorIs(t, tt.build(strings.Repeat("x", tt.max+1)), value.ErrFieldTooLong)
		})
	}
}

func TestBounded_CountsCharactersNotBytes(t *testing.T) {
	// 15 characters, 30 bytes
	s := strings.Repeat("ä", 15)

	num, err := value.NewStreetNumber(s)
	require.NoError(t, err)
	assert.Equal(t, s, num.String())

	_, err = value.NewStreetNumber(s + "ä")
	assert.ErrorIs(t, err, value.ErrFieldTooLong)
}

func TestBounded_StoresInputUnchanged(t *testing.T) {
	text, err := value.NewText("  Hauptstraße 1 ")
	require.NoError(t, err)
	assert.Equal(t, "  Hauptstraße 1 ", text.String())
}

func TestBounded_LengthOnlyFieldsAcceptAnyCharacters(t *testing.T) {
	_, err := value.NewStreetNumber("12-b/3 #")
	assert.NoError(t, err)

	_, err = value.NewPickupLocation("Reception, 2nd floor (ask for Mia)")
	assert.NoError(t, err)
}

func TestBounded_FieldMetadata(t *testing.T) {
	loc, err := value.NewPickupLocation("front desk")
	require.NoError(t, err)

	assert.Equal(t, "PickupLocation", loc.FieldName())
	assert.Equal(t, 40, loc.MaxLength())
}

func TestNewCountryCode_Charset(t *testing.T) {
	cc, err := value.NewCountryCode("DE")
	require.NoError(t, err)
	assert.Equal(t, "DE", cc.String())

	_, err = value.NewCountryCode("D3")
	require.Error(t, err)
	assert.ErrorIs(t, err, value.ErrInvalidCharacters)

	var verr *value.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "CountryCode", verr.Field)
	assert.Equal(t, "D3", verr.Value)

	_, err = value.NewCountryCode("DEU")
	assert.ErrorIs(t, err, value.ErrFieldTooLong)
}

func TestNewCurrencyCode(t *testing.T) {
	for _, code := range []string{"USD", "EUR", "CAD"} {
		c, err := value.NewCurrencyCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, c.String())
	}

	_, err := value.NewCurrencyCode("US$")
	assert.ErrorIs(t, err, value.ErrInvalidCharacters)
}

func TestEnumeratedCodes(t *testing.T) {
	t.Run("drop off type", func(t *testing.T) {
		d, err := value.NewDropOffType(value.DropOffRegularPickup)
		require.NoError(t, err)
		assert.Equal(t, "REGULAR_PICKUP", d.String())

		_, err = value.NewDropOffType("DROP_BOX")
		assert.ErrorIs(t, err, value.ErrUnknownCode)
	})

	t.Run("unit of measurement", func(t *testing.T) {
		_, err := value.NewUnitOfMeasurement(value.UnitSU)
		assert.NoError(t, err)

		_, err = value.NewUnitOfMeasurement("si")
		assert.ErrorIs(t, err, value.ErrUnknownCode)
	})

	t.Run("label type", func(t *testing.T) {
		for _, code := range []string{value.LabelPDF, value.LabelZPL, value.LabelEPL, value.LabelLP2} {
			_, err := value.NewLabelType(code)
			assert.NoError(t, err, code)
		}

		_, err := value.NewLabelType("PNG")
		require.Error(t, err)

		var verr *value.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, value.UnknownCode, verr.Kind)
		assert.Contains(t, verr.Allowed, "ZPL")
		assert.Contains(t, err.Error(), "PNG")
	})

	t.Run("too long code is reported as too long", func(t *testing.T) {
		_, err := value.NewLabelType("PDFX")
		assert.ErrorIs(t, err, value.ErrFieldTooLong)
	})

	t.Run("delete reason", func(t *testing.T) {
		_, err := value.NewDeleteReason("006")
		assert.NoError(t, err)

		_, err = value.NewDeleteReason("009")
		assert.ErrorIs(t, err, value.ErrUnknownCode)
	})
}

func TestServiceType_LengthOnly(t *testing.T) {
	st, err := value.NewServiceType("P")
	require.NoError(t, err)
	assert.Equal(t, "P", st.String())

	_, err = value.NewServiceType("PPPPPPP")
	assert.ErrorIs(t, err, value.ErrFieldTooLong)
}

func TestValidationError_Messages(t *testing.T) {
	_, err := value.NewStreetNumber(strings.Repeat("1", 16))
	assert.EqualError(t, err, "StreetNumber: field too long: 16 characters exceed the limit of 15")

	_, err = value.NewCountryCode("1")
	assert.EqualError(t, err, `CountryCode: invalid characters in "1"`)

	_, err = value.NewYesNo("X")
	assert.EqualError(t, err, `UseOwnShipmentIdentificationNumber: unknown code "X", allowed: Y, N`)
}
