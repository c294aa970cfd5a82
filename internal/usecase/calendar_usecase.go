package usecase

import (
	"context"
	"errors"
	"strings"

	"taller_mecanico/internal/domain/billing"
	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"
)

var (
	ErrInvalidEventDate  = errors.New("invalid event date, expected YYYY-MM-DD or DD/MM/YYYY")
	ErrInvalidEventMonth = errors.New("year and month are required, month between 1 and 12")
)

// ICalendarUseCase keeps one free-text note per day.
type ICalendarUseCase interface {
	ListMonth(ctx context.Context, year, month int) ([]entities.CalendarEvent, error)
	// Upsert stores the note of a day; blank text removes it. The returned
	// bool is false when the note was removed.
	Upsert(ctx context.Context, date, text string) (entities.CalendarEvent, bool, error)
}

type CalendarUseCase struct {
	repo interfaces.ICalendarRepository
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(repo interfaces.ICalendarRepository) *CalendarUseCase {
	return &CalendarUseCase{repo: repo}
}

func (u *CalendarUseCase) ListMonth(ctx context.Context, year, month int) ([]entities.CalendarEvent, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, ErrInvalidEventMonth
	}
	events, err := u.repo.ListMonth(ctx, year, month)
	if err != nil {
		return nil, storageFailure("[calendar][usecase]", err, nil)
	}
	return events, nil
}

func (u *CalendarUseCase) Upsert(ctx context.Context, date, text string) (entities.CalendarEvent, bool, error) {
	day, err := billing.NormalizeDate(date)
	if err != nil {
		return entities.CalendarEvent{}, false, ErrInvalidEventDate
	}

	text = strings.TrimSpace(text)
	if text == "" {
		if err := u.repo.Delete(ctx, day); err != nil {
			return entities.CalendarEvent{}, false, storageFailure("[calendar][usecase]", err, nil)
		}
		return entities.CalendarEvent{Date: day}, false, nil
	}

	e := entities.CalendarEvent{Date: day, Text: text}
	if err := u.repo.Upsert(ctx, e); err != nil {
		return entities.CalendarEvent{}, false, storageFailure("[calendar][usecase]", err, nil)
	}
	return e, true, nil
}
