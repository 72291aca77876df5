package reminder

import (
	"context"
	"database/sql"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/reminder"
	"reemind/internal/db"
)

type PgxLogRepository struct {
	db db.DBTX
}

func NewPgxLogRepository(db db.DBTX) *PgxLogRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxLogRepository{db: db}
}

func (r *PgxLogRepository) Create(
	ctx context.Context,
	input reminder.CreateLogInput,
) (log reminder.NotificationLog, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO notification_log (reminder_id, sent_at, success, error, lead_days)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, reminder_id, sent_at, success, error, lead_days`,
		int64(input.ReminderID),
		input.SentAt,
		input.Success,
		sql.NullString{String: input.Error.Value, Valid: input.Error.IsPresent},
		int(input.LeadDays),
	)

	var reminderID int64
	var errorColumn sql.NullString
	var leadDays int
	err = row.Scan(&log.ID, &reminderID, &log.SentAt, &log.Success, &errorColumn, &leadDays)
	if err != nil {
		return log, err
	}
	log.ReminderID = reminder.ID(reminderID)
	log.Error = c.NewOptional(errorColumn.String, errorColumn.Valid)
	log.LeadDays = reminder.LeadDays(leadDays)
	return log, nil
}
