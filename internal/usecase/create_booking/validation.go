package create_booking

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

const maxPhoneLength = 50

// validateRequest валидирует и нормализует данные клиента
func validateRequest(req *Request) error {
	if req.CamperID <= 0 {
		return fmt.Errorf("%w: camper_id must be positive", ErrInvalidInput)
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer_name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer_name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	addr, err := mail.ParseAddress(req.CustomerEmail)
	if err != nil || addr.Address != req.CustomerEmail {
		return fmt.Errorf("%w: customer_email is not a valid address", ErrInvalidInput)
	}

	req.CustomerPhone = trimOptional(req.CustomerPhone)
	if req.CustomerPhone != nil && len(*req.CustomerPhone) > maxPhoneLength {
		return fmt.Errorf("%w: customer_phone is too long", ErrInvalidInput)
	}

	req.CustomerMessage = trimOptional(req.CustomerMessage)
	if req.CustomerMessage != nil && len(*req.CustomerMessage) > domain.MaxCustomerMessageLen {
		return fmt.Errorf("%w: customer_message is longer than %d characters", ErrInvalidInput, domain.MaxCustomerMessageLen)
	}

	ids, err := normalizeAttributeIDs(req.AttributeIDs)
	if err != nil {
		return err
	}
	req.AttributeIDs = ids

	return nil
}

// normalizeAttributeIDs убирает дубликаты с сохранением порядка
func normalizeAttributeIDs(ids []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: attribute id must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result, nil
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}
