package flow

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound сессия не найдена или истекла
	ErrNotFound = errors.New("flow: not found")

	// ErrConflict состояние изменено параллельным запросом
	ErrConflict = errors.New("flow: concurrent modification")

	// ErrCompleted бронирование уже создано, сессию нельзя менять
	ErrCompleted = errors.New("flow: already completed")

	// ErrCamperNotOffered кемпер отсутствует в результатах доступности или занят
	ErrCamperNotOffered = errors.New("flow: camper is not available for the selected dates")

	// ErrStepNotReached предыдущий шаг не пройден
	ErrStepNotReached = errors.New("flow: step not reached")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("flow: internal error")
)

// StepError шаг недоступен; Back шаг, к которому нужно вернуться
type StepError struct {
	Step Step
	Back Step
}

func (e *StepError) Error() string {
	return fmt.Sprintf("flow: step %s requires %s first", e.Step, e.Back)
}

func (e *StepError) Unwrap() error {
	return ErrStepNotReached
}
