// Package i18n статическая таблица строк для сообщений об ошибках API.
package i18n

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

//go:embed messages.yaml
var messagesYAML []byte

// Key идентификатор сообщения
type Key string

const (
	InvalidRequest      Key = "invalid_request"
	InvalidID           Key = "invalid_id"
	InvalidDate         Key = "invalid_date"
	InvalidDateRange    Key = "invalid_date_range"
	PastDate            Key = "past_date"
	TooShort            Key = "too_short"
	TooLong             Key = "too_long"
	ValidationFailed    Key = "validation_failed"
	CamperNotFound      Key = "camper_not_found"
	AttributeNotFound   Key = "attribute_not_found"
	BookingNotFound     Key = "booking_not_found"
	DatesUnavailable    Key = "dates_unavailable"
	CamperInUse         Key = "camper_in_use"
	FlowNotFound        Key = "flow_not_found"
	FlowConflict        Key = "flow_conflict"
	StepNotReached      Key = "step_not_reached"
	FlowCompleted       Key = "flow_completed"
	CamperNotAvailable  Key = "camper_not_available"
	FileRequired        Key = "file_required"
	FileTooLarge        Key = "file_too_large"
	UnsupportedFileType Key = "unsupported_file_type"
	TooManyRequests     Key = "too_many_requests"
	InternalError       Key = "internal_error"
)

// Catalog сообщения по языкам
type Catalog struct {
	messages map[domain.Language]map[Key]string
}

// Default каталог из встроенного messages.yaml
var Default = MustLoad(messagesYAML)

// Load разбирает YAML вида {lang: {key: text}}
func Load(data []byte) (*Catalog, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("i18n: parse messages: %w", err)
	}

	c := &Catalog{messages: make(map[domain.Language]map[Key]string, len(raw))}
	for lang, entries := range raw {
		l := domain.Language(lang)
		if !l.Valid() {
			return nil, fmt.Errorf("i18n: unsupported language %q", lang)
		}
		m := make(map[Key]string, len(entries))
		for k, v := range entries {
			m[Key(k)] = v
		}
		c.messages[l] = m
	}

	if _, ok := c.messages[domain.LanguageEN]; !ok {
		return nil, fmt.Errorf("i18n: english messages are required")
	}
	return c, nil
}

func MustLoad(data []byte) *Catalog {
	c, err := Load(data)
	if err != nil {
		panic(err)
	}
	return c
}

// T сообщение на языке lang; при отсутствии перевода используется английский, затем сам ключ
func (c *Catalog) T(lang domain.Language, key Key, args ...interface{}) string {
	msg, ok := c.messages[lang][key]
	if !ok {
		msg, ok = c.messages[domain.LanguageEN][key]
	}
	if !ok {
		msg = string(key)
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Negotiate выбирает язык из заголовка Accept-Language, иначе fallback
func Negotiate(acceptLanguage string, fallback domain.Language) domain.Language {
	if l, ok := Match(acceptLanguage); ok {
		return l
	}
	if fallback.Valid() {
		return fallback
	}
	return domain.LanguageEN
}

// Match первый поддерживаемый язык из Accept-Language
func Match(acceptLanguage string) (domain.Language, bool) {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if len(tag) < 2 {
			continue
		}
		l := domain.Language(strings.ToLower(tag[:2]))
		if l.Valid() {
			return l, true
		}
	}
	return "", false
}

type ctxKey struct{}

// WithLanguage сохраняет язык ответа в контексте запроса
func WithLanguage(ctx context.Context, lang domain.Language) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

// FromContext язык ответа; английский, если не задан
func FromContext(ctx context.Context) domain.Language {
	if lang, ok := ctx.Value(ctxKey{}).(domain.Language); ok && lang.Valid() {
		return lang
	}
	return domain.LanguageEN
}
