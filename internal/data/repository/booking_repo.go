package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	// Slot queries
	CountActiveBySlot(ctx context.Context, courseID uuid.UUID, date time.Time) (int, error)
	FindActiveByUserAndSlot(ctx context.Context, courseID, userID uuid.UUID, date time.Time) (*entity.Booking, error)

	// CreateConfirmed inserts a CONFIRMED booking inside a single transaction,
	// re-checking slot capacity and duplicate bookings under a course row
	// lock. Returns ErrDuplicateBooking when an active booking for the same
	// (course, user, date) already exists.
	CreateConfirmed(ctx context.Context, booking *entity.Booking, capacity int) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, course_id, user_id, date, status, payment_status,
       stripe_payment_intent_id, amount, currency, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.CourseID,
		&booking.UserID,
		&booking.Date,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.StripePaymentIntentID,
		&booking.Amount,
		&booking.Currency,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", bookingID.String(), entity.ErrBookingNotFound)
	}

	return nil
}

func (r *bookingRepository) CountActiveBySlot(ctx context.Context, courseID uuid.UUID, date time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE course_id = $1 AND date = $2 AND status IN ('PENDING', 'CONFIRMED')
	`

	var count int
	err := r.db.QueryRow(ctx, query, courseID, date).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count active bookings for slot",
			zap.Error(err),
			zap.String("course_id", courseID.String()),
			zap.Time("date", date),
		)
		return 0, fmt.Errorf("count active bookings for course %s: %w", courseID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindActiveByUserAndSlot(ctx context.Context, courseID, userID uuid.UUID, date time.Time) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE course_id = $1 AND user_id = $2 AND date = $3
		  AND status IN ('PENDING', 'CONFIRMED')
		LIMIT 1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, courseID, userID, date))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find active booking for user and slot",
			zap.Error(err),
			zap.String("course_id", courseID.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find active booking for user %s: %w", userID.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) CreateConfirmed(ctx context.Context, booking *entity.Booking, capacity int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin confirm transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the course row so two confirmations for the last open slot
	// cannot both pass the capacity re-check.
	var courseID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM courses WHERE id = $1 FOR UPDATE`, booking.CourseID).Scan(&courseID)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("course %s: %w", booking.CourseID.String(), entity.ErrCourseNotFound)
	}
	if err != nil {
		return fmt.Errorf("lock course %s: %w", booking.CourseID.String(), err)
	}

	// A concurrent delivery of the same event may have created this booking
	// while we waited on the lock. Re-check under the lock so only one
	// confirmation per (course, user, date) can commit.
	dup, err := scanBooking(tx.QueryRow(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE course_id = $1 AND user_id = $2 AND date = $3
		  AND status IN ('PENDING', 'CONFIRMED')
		LIMIT 1
	`, booking.CourseID, booking.UserID, booking.Date))
	if err != nil && err != pgx.ErrNoRows {
		return fmt.Errorf("check duplicate booking: %w", err)
	}
	if err == nil {
		r.log.Warn("Active booking already exists for slot",
			zap.String("existing_booking_id", dup.ID.String()),
			zap.String("course_id", booking.CourseID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("booking %s: %w", dup.ID.String(), entity.ErrDuplicateBooking)
	}

	var confirmed int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE course_id = $1 AND date = $2 AND status = 'CONFIRMED'
	`, booking.CourseID, booking.Date).Scan(&confirmed)
	if err != nil {
		return fmt.Errorf("recount confirmed bookings: %w", err)
	}

	if confirmed >= capacity {
		r.log.Warn("Capacity exceeded at confirmation time",
			zap.String("course_id", booking.CourseID.String()),
			zap.Time("date", booking.Date),
			zap.Int("confirmed", confirmed),
			zap.Int("capacity", capacity),
		)
		return fmt.Errorf("course %s at %s: %w",
			booking.CourseID.String(), booking.Date.Format(time.RFC3339), entity.ErrSlotFull)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, course_id, user_id, date, status, payment_status,
		                      stripe_payment_intent_id, amount, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		booking.ID,
		booking.CourseID,
		booking.UserID,
		booking.Date,
		booking.Status,
		booking.PaymentStatus,
		booking.StripePaymentIntentID,
		booking.Amount,
		booking.Currency,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("booking for course %s: %w", booking.CourseID.String(), entity.ErrDuplicateBooking)
		}
		r.log.Error("Failed to insert confirmed booking",
			zap.Error(err),
			zap.String("course_id", booking.CourseID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("insert confirmed booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit confirm transaction: %w", err)
	}

	return nil
}
