package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Manufacturer:  "Caterpillar",
		ModelName:     "320D",
		Category:      "Excavator",
		SerialNumber:  "CAT-320-001",
		Condition:     "Used",
		LocationCity:  "Pune",
		LocationState: "MH",
		LocationZip:   "411001",
		Description:   "20-ton excavator, single owner.",
		SellerName:    "Ravi Kumar",
		SellerEmail:   "ravi@example.com",
	}
}

func TestDraftValidate(t *testing.T) {
	t.Run("valid draft passes", func(t *testing.T) {
		assert.NoError(t, validDraft().Validate())
	})

	t.Run("missing required fields reported by name", func(t *testing.T) {
		draft := validDraft()
		draft.Manufacturer = ""
		draft.SellerEmail = "   "

		err := draft.Validate()
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.ElementsMatch(t, []string{"manufacturer", "sellerEmail"}, verr.Missing)
		assert.Empty(t, verr.Invalid)
	})

	t.Run("malformed numeric fields reported", func(t *testing.T) {
		draft := validDraft()
		draft.Year = "two thousand"
		draft.AskingPrice = "12,50,000"

		err := draft.Validate()
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.ElementsMatch(t, []string{"year", "askingPrice"}, verr.Invalid)
	})

	t.Run("empty numeric fields are fine", func(t *testing.T) {
		draft := validDraft()
		draft.Year = ""
		draft.OperatingHours = ""
		draft.AskingPrice = ""
		draft.DailyRate = ""
		assert.NoError(t, draft.Validate())
	})
}

func TestMediaBundleValidate(t *testing.T) {
	image := MediaFile{Filename: "front.jpg"}

	t.Run("at least one image required", func(t *testing.T) {
		err := MediaBundle{}.Validate()
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Missing, "images")
	})

	t.Run("single image passes", func(t *testing.T) {
		assert.NoError(t, MediaBundle{Images: []MediaFile{image}}.Validate())
	})

	t.Run("too many images rejected", func(t *testing.T) {
		bundle := MediaBundle{Images: make([]MediaFile, MaxImages+1)}
		err := bundle.Validate()
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.NotEmpty(t, verr.Invalid)
	})
}

func TestParseOptionalInt(t *testing.T) {
	n, err := ParseOptionalInt("2015")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 2015, *n)

	n, err = ParseOptionalInt("")
	require.NoError(t, err)
	assert.Nil(t, n)

	n, err = ParseOptionalInt("  ")
	require.NoError(t, err)
	assert.Nil(t, n)

	_, err = ParseOptionalInt("abc")
	assert.Error(t, err)
}

func TestParseOptionalFloat(t *testing.T) {
	f, err := ParseOptionalFloat("2500.50")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, 2500.50, *f)

	f, err = ParseOptionalFloat("")
	require.NoError(t, err)
	assert.Nil(t, f)

	_, err = ParseOptionalFloat("1,000")
	assert.Error(t, err)
}
