package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslation(t *testing.T) {
	require.NoError(t, Init("uz"))

	ctx := context.Background()
	assert.Equal(t, "Tuman topilmadi", T(ctx, "district.not_found"))

	en := WithLocale(ctx, "en")
	assert.Equal(t, "District not found", T(en, "district.not_found"))

	// Unknown IDs pass through so errors are never swallowed.
	assert.Equal(t, "no.such.message", T(ctx, "no.such.message"))
}

func TestMatchAcceptLanguage(t *testing.T) {
	require.NoError(t, Init("uz"))

	assert.Equal(t, "uz", Match(""))
	assert.Equal(t, "uz", Match("uz-UZ,uz;q=0.9"))
	assert.Equal(t, "en", Match("en-US,en;q=0.9"))
	assert.Equal(t, "uz", Match("not a header"))
}
