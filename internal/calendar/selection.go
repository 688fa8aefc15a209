package calendar

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidSelection = errors.New("calendar: invalid selection")

// Kind состояние выбора
type Kind int

const (
	KindEmpty Kind = iota
	KindAnchorOnly
	KindRangeComplete
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindAnchorOnly:
		return "anchor_only"
	case KindRangeComplete:
		return "range_complete"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "", "empty":
		return KindEmpty, nil
	case "anchor_only":
		return KindAnchorOnly, nil
	case "range_complete":
		return KindRangeComplete, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidSelection, s)
}

// Range закрытый диапазон дат, Start <= End
type Range struct {
	Start Date `json:"start_date"`
	End   Date `json:"end_date"`
}

// NewRange упорядочивает даты
func NewRange(a, b Date) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Days число дней включительно
func (r Range) Days() int {
	return r.Start.DaysUntil(r.End) + 1
}

func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Overlaps пересечение закрытых диапазонов
func (r Range) Overlaps(o Range) bool {
	return !r.Start.After(o.End) && !o.Start.After(r.End)
}

func (r Range) Dates() []Date {
	out := make([]Date, 0, r.Days())
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

// Selection выбор пользователя: пусто, только якорь или полный диапазон.
// Нулевое значение - пустой выбор. Поля скрыты, чтобы anchor <= end всегда выполнялось.
type Selection struct {
	kind   Kind
	anchor Date
	end    Date
}

func Empty() Selection {
	return Selection{}
}

func AnchorAt(d Date) Selection {
	return Selection{kind: KindAnchorOnly, anchor: d}
}

// RangeOf полный диапазон; порядок аргументов не важен
func RangeOf(a, b Date) Selection {
	r := NewRange(a, b)
	return Selection{kind: KindRangeComplete, anchor: r.Start, end: r.End}
}

func (s Selection) Kind() Kind { return s.kind }

func (s Selection) IsEmpty() bool { return s.kind == KindEmpty }

// IsCommitted оба конца выбраны
func (s Selection) IsCommitted() bool { return s.kind == KindRangeComplete }

// Anchor начало выбора
func (s Selection) Anchor() (Date, bool) {
	return s.anchor, s.kind != KindEmpty
}

// End конец выбора, есть только у полного диапазона
func (s Selection) End() (Date, bool) {
	return s.end, s.kind == KindRangeComplete
}

// Range зафиксированный диапазон
func (s Selection) Range() (Range, bool) {
	if s.kind != KindRangeComplete {
		return Range{}, false
	}
	return Range{Start: s.anchor, End: s.end}, true
}

// Dates выделяемые даты: [anchor] для якоря, все дни диапазона для полного выбора
func (s Selection) Dates() []Date {
	switch s.kind {
	case KindAnchorOnly:
		return []Date{s.anchor}
	case KindRangeComplete:
		return Range{Start: s.anchor, End: s.end}.Dates()
	default:
		return nil
	}
}

func (s Selection) Len() int {
	switch s.kind {
	case KindAnchorOnly:
		return 1
	case KindRangeComplete:
		return Range{Start: s.anchor, End: s.end}.Days()
	default:
		return 0
	}
}

func (s Selection) Contains(d Date) bool {
	switch s.kind {
	case KindAnchorOnly:
		return d == s.anchor
	case KindRangeComplete:
		return Range{Start: s.anchor, End: s.end}.Contains(d)
	default:
		return false
	}
}

// Reselect поведение при клике по третьей дате, когда диапазон уже выбран
type Reselect int

const (
	// ReselectRestart начинает новый выбор с кликнутой даты
	ReselectRestart Reselect = iota
	// ReselectIgnore оставляет диапазон без изменений
	ReselectIgnore
)

// Click переход состояния по клику на дату d
func (s Selection) Click(d Date, reselect Reselect) Selection {
	switch s.kind {
	case KindEmpty:
		return AnchorAt(d)

	case KindAnchorOnly:
		if d == s.anchor {
			return Empty()
		}
		return RangeOf(s.anchor, d)

	case KindRangeComplete:
		if d == s.anchor || d == s.end {
			return AnchorAt(s.anchor)
		}
		if reselect == ReselectIgnore {
			return s
		}
		return AnchorAt(d)
	}
	return s
}

type selectionJSON struct {
	Kind   string `json:"kind"`
	Anchor *Date  `json:"anchor,omitempty"`
	End    *Date  `json:"end,omitempty"`
}

func (s Selection) MarshalJSON() ([]byte, error) {
	out := selectionJSON{Kind: s.kind.String()}
	if s.kind != KindEmpty {
		a := s.anchor
		out.Anchor = &a
	}
	if s.kind == KindRangeComplete {
		e := s.end
		out.End = &e
	}
	return json.Marshal(out)
}

func (s *Selection) UnmarshalJSON(b []byte) error {
	var in selectionJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	kind, err := parseKind(in.Kind)
	if err != nil {
		return err
	}

	switch kind {
	case KindEmpty:
		if in.Anchor != nil || in.End != nil {
			return fmt.Errorf("%w: empty selection with dates", ErrInvalidSelection)
		}
		*s = Empty()
	case KindAnchorOnly:
		if in.Anchor == nil || in.End != nil {
			return fmt.Errorf("%w: anchor_only needs exactly an anchor", ErrInvalidSelection)
		}
		*s = AnchorAt(*in.Anchor)
	case KindRangeComplete:
		if in.Anchor == nil || in.End == nil {
			return fmt.Errorf("%w: range_complete needs anchor and end", ErrInvalidSelection)
		}
		if in.End.Before(*in.Anchor) {
			return fmt.Errorf("%w: end before anchor", ErrInvalidSelection)
		}
		*s = RangeOf(*in.Anchor, *in.End)
	}
	return nil
}
