package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
)

const maxBodySize = 1 << 20

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RespondJSON пишет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError пишет {"detail": message}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Detail: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError 500 с сообщением на языке запроса
func RespondInternalError(w http.ResponseWriter, r *http.Request) {
	RespondError(w, http.StatusInternalServerError, Msg(r, i18n.InternalError))
}

// RespondNoContent 204 без тела
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Msg сообщение на языке запроса (выставляется middleware.Language)
func Msg(r *http.Request, key i18n.Key, args ...interface{}) string {
	return i18n.Default.T(i18n.FromContext(r.Context()), key, args...)
}

// DecodeJSON разбирает тело запроса (не больше 1 MiB)
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if decoder.More() {
		return errors.New("decode body: unexpected data after JSON object")
	}
	return nil
}

// PathID положительный int64 из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return id, nil
}

// QueryBool булев query параметр; пустое значение даёт false
func QueryBool(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

// QueryInt целый query параметр; пустое значение даёт def
func QueryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

// Detail текст ошибки валидации без префикса sentinel ошибки
func Detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// RangeMessage сообщение для ошибок проверки диапазона дат
func RangeMessage(r *http.Request, err error) (string, bool) {
	var lengthErr *domain.LengthError
	switch {
	case errors.As(err, &lengthErr) && lengthErr.TooShort:
		return Msg(r, i18n.TooShort, lengthErr.Limit), true
	case errors.As(err, &lengthErr):
		return Msg(r, i18n.TooLong, lengthErr.Limit), true
	case errors.Is(err, domain.ErrPastDate):
		return Msg(r, i18n.PastDate), true
	case errors.Is(err, domain.ErrInvalidRange):
		return Msg(r, i18n.InvalidDateRange), true
	}
	return "", false
}
