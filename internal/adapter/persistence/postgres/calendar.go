package postgres

import (
	"context"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CalendarRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.ICalendarRepository = (*CalendarRepository)(nil)

func NewCalendarRepository(pool *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{pool: pool}
}

func (r *CalendarRepository) ListMonth(ctx context.Context, year, month int) ([]entities.CalendarEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(date, 'YYYY-MM-DD'), text FROM calendar_events
		WHERE date >= make_date($1, $2, 1) AND date < make_date($1, $2, 1) + interval '1 month'
		ORDER BY date
	`, year, month)
	if err != nil {
		return nil, translate("list calendar events", err)
	}
	defer rows.Close()

	out := []entities.CalendarEvent{}
	for rows.Next() {
		var e entities.CalendarEvent
		if err := rows.Scan(&e.Date, &e.Text); err != nil {
			return nil, translate("scan calendar event", err)
		}
		out = append(out, e)
	}
	return out, translate("list calendar events", rows.Err())
}

func (r *CalendarRepository) Upsert(ctx context.Context, e entities.CalendarEvent) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO calendar_events (date, text) VALUES ($1::date, $2)
		ON CONFLICT (date) DO UPDATE SET text = EXCLUDED.text
	`, e.Date, e.Text)
	return translate("upsert calendar event", err)
}

func (r *CalendarRepository) Delete(ctx context.Context, date string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM calendar_events WHERE date = $1::date`, date)
	return translate("delete calendar event", err)
}
