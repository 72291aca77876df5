package reminder

import (
	"context"
	"errors"
	"fmt"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/db"
	"strings"

	"github.com/jackc/pgx/v4"
)

const reminderColumns = "id, email, name, month, day, lead_days, created_at"

type PgxReminderRepository struct {
	db db.DBTX
}

func NewPgxReminderRepository(db db.DBTX) *PgxReminderRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxReminderRepository{db: db}
}

func (r *PgxReminderRepository) Create(
	ctx context.Context,
	input reminder.CreateInput,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO reminder (email, name, month, day, lead_days, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+reminderColumns,
		string(input.Email),
		input.Name,
		input.Month,
		input.Day,
		int(input.LeadDays),
		input.CreatedAt,
	)
	return decodeReminder(row)
}

func (r *PgxReminderRepository) GetByID(
	ctx context.Context,
	id reminder.ID,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+reminderColumns+` FROM reminder WHERE id = $1`,
		int64(id),
	)
	rem, err = decodeReminder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, err
}

func (r *PgxReminderRepository) Read(
	ctx context.Context,
	options reminder.ReadOptions,
) (reminders []reminder.Reminder, err error) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)

	if options.EmailEquals.IsPresent {
		args = append(args, string(options.EmailEquals.Value))
		conditions = append(conditions, fmt.Sprintf("email = $%d", len(args)))
	}
	if options.OccurrenceEquals.IsPresent {
		args = append(args, options.OccurrenceEquals.Value.Month)
		conditions = append(conditions, fmt.Sprintf("month = $%d", len(args)))
		args = append(args, options.OccurrenceEquals.Value.Day)
		conditions = append(conditions, fmt.Sprintf("day = $%d", len(args)))
	}
	if options.LeadDaysEquals.IsPresent {
		args = append(args, int(options.LeadDaysEquals.Value))
		conditions = append(conditions, fmt.Sprintf("lead_days = $%d", len(args)))
	}

	query := `SELECT ` + reminderColumns + ` FROM reminder`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	switch options.OrderBy {
	case reminder.OrderByIDDesc:
		query += " ORDER BY id DESC"
	default:
		query += " ORDER BY id ASC"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders = make([]reminder.Reminder, 0)
	for rows.Next() {
		rem, err := decodeReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func (r *PgxReminderRepository) Update(
	ctx context.Context,
	input reminder.UpdateInput,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE reminder SET
			name = CASE WHEN $2::bool THEN $3::text ELSE name END,
			month = CASE WHEN $4::bool THEN $5::int ELSE month END,
			day = CASE WHEN $4::bool THEN $6::int ELSE day END,
			lead_days = CASE WHEN $7::bool THEN $8::int ELSE lead_days END
		 WHERE id = $1
		 RETURNING `+reminderColumns,
		int64(input.ID),
		input.DoNameUpdate,
		input.Name,
		input.DoOccurrenceUpdate,
		input.Month,
		input.Day,
		input.DoLeadDaysUpdate,
		int(input.LeadDays),
	)
	rem, err = decodeReminder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, err
}

func (r *PgxReminderRepository) Delete(ctx context.Context, id reminder.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reminder WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return reminder.ErrReminderDoesNotExist
	}
	return nil
}

func decodeReminder(row pgx.Row) (rem reminder.Reminder, err error) {
	var id int64
	var email string
	var leadDays int
	err = row.Scan(&id, &email, &rem.Name, &rem.Month, &rem.Day, &leadDays, &rem.CreatedAt)
	if err != nil {
		return rem, err
	}
	rem.ID = reminder.ID(id)
	rem.Email = c.Email(email)
	rem.LeadDays = reminder.LeadDays(leadDays)
	return rem, nil
}
