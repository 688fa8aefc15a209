package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

func TestDefaultCatalog_AllLanguagesHaveAllKeys(t *testing.T) {
	en := Default.messages[domain.LanguageEN]
	require.NotEmpty(t, en)

	for _, lang := range domain.Languages {
		msgs, ok := Default.messages[lang]
		require.True(t, ok, "missing language %s", lang)
		for key := range en {
			assert.NotEmpty(t, msgs[key], "%s: missing %s", lang, key)
		}
	}
}

func TestCatalog_T(t *testing.T) {
	assert.Equal(t, "Camper not found", Default.T(domain.LanguageEN, CamperNotFound))
	assert.Equal(t, "Buchung nicht gefunden", Default.T(domain.LanguageDE, BookingNotFound))
	assert.Equal(t, "Minimum booking length is 3 days", Default.T(domain.LanguageEN, TooShort, 3))
	assert.Equal(t, "Camper not found", Default.T(domain.Language("it"), CamperNotFound))
	assert.Equal(t, "no_such_key", Default.T(domain.LanguageEN, Key("no_such_key")))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load([]byte("it:\n  a: b\n"))
	assert.Error(t, err)

	_, err = Load([]byte("de:\n  a: b\n"))
	assert.Error(t, err)

	_, err = Load([]byte(":::"))
	assert.Error(t, err)
}

func TestNegotiate(t *testing.T) {
	assert.Equal(t, domain.LanguageDE, Negotiate("de-DE,de;q=0.9,en;q=0.8", domain.LanguageEN))
	assert.Equal(t, domain.LanguageFR, Negotiate("it-IT, fr;q=0.5", domain.LanguageEN))
	assert.Equal(t, domain.LanguageNL, Negotiate("", domain.LanguageNL))
	assert.Equal(t, domain.LanguageEN, Negotiate("*", domain.Language("xx")))
}

func TestLanguageContext(t *testing.T) {
	assert.Equal(t, domain.LanguageEN, FromContext(context.Background()))

	ctx := WithLanguage(context.Background(), domain.LanguageES)
	assert.Equal(t, domain.LanguageES, FromContext(ctx))

	_, ok := Match("it, ru")
	assert.False(t, ok)
}
