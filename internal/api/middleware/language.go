package middleware

import (
	"net/http"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
)

// Language выбирает язык ответов: Accept-Language, иначе язык страницы бронирования из настроек
func Language(settings SettingsProvider, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, ok := i18n.Match(r.Header.Get("Accept-Language"))
			if !ok {
				lang = fallbackLanguage(r, settings, logger)
			}

			w.Header().Set("Content-Language", string(lang))
			next.ServeHTTP(w, r.WithContext(i18n.WithLanguage(r.Context(), lang)))
		})
	}
}

func fallbackLanguage(r *http.Request, settings SettingsProvider, logger Logger) domain.Language {
	s, err := settings.Current(r.Context())
	if err != nil {
		logger.Warn("Language - Failed to load settings: %v", err)
		return domain.LanguageEN
	}
	if !s.BookingPageLanguage.Valid() {
		return domain.LanguageEN
	}
	return s.BookingPageLanguage
}
