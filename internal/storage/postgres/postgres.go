package postgres

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"taratrip/internal/config"
	"taratrip/internal/models"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS bookings (
			id           SERIAL PRIMARY KEY,
			user_id      TEXT NOT NULL,
			hotel_name   TEXT NOT NULL,
			start_date   DATE NOT NULL,
			end_date     DATE NOT NULL,
			guests       INTEGER NOT NULL DEFAULT 1,
			nights       INTEGER NOT NULL DEFAULT 0,
			total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			booking_date TIMESTAMP NOT NULL DEFAULT NOW(),
			status       TEXT NOT NULL DEFAULT 'confirmed',
			image_url    TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings (user_id)`

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create bookings table: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// CreateBooking inserts a reservation row. The booking date is set by the
// database at insertion time and the status always starts as confirmed.
func (s *Storage) CreateBooking(b models.NewBooking) error {
	query := `
		INSERT INTO bookings
		(user_id, hotel_name, start_date, end_date, guests, nights, total_amount, booking_date, status, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), 'confirmed', $8)`

	_, err := s.DB.Exec(query, b.UserID, b.Hotel, b.StartDate, b.EndDate, b.Guests, b.Nights, b.TotalAmount, b.Image)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// ListBookings returns every booking of a user, newest first, with the
// nightly rate derived from the stored total.
func (s *Storage) ListBookings(userID string) ([]models.Booking, error) {
	query := `
		SELECT id, user_id, hotel_name, start_date, end_date, guests, nights, total_amount, booking_date, status, image_url
		FROM bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var (
			b           models.Booking
			startDate   time.Time
			endDate     time.Time
			bookingDate time.Time
			totalAmount float64
		)

		err = rows.Scan(
			&b.ID,
			&b.UserID,
			&b.Hotel,
			&startDate,
			&endDate,
			&b.Guests,
			&b.Nights,
			&totalAmount,
			&bookingDate,
			&b.Status,
			&b.Image,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		b.StartDate = startDate.Format("2006-01-02")
		b.EndDate = endDate.Format("2006-01-02")
		b.BookingDate = bookingDate.Format("2006-01-02 15:04:05")
		b.PricePerNight = PricePerNight(totalAmount, b.Nights)
		if b.Status == "" {
			b.Status = "confirmed"
		}

		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// PricePerNight is the displayed nightly rate: total divided by nights,
// rounded to 2 decimals, or the total itself when nights is zero.
func PricePerNight(totalAmount float64, nights int) float64 {
	if nights > 0 {
		return math.Round(totalAmount/float64(nights)*100) / 100
	}

	return totalAmount
}

// UpdateStay replaces the date range, guest count and night count of a
// booking. Updating an id that does not exist is a silent no-op. A non-empty
// userID additionally scopes the update to that owner.
func (s *Storage) UpdateStay(id int, userID, startDate, endDate string, guests, nights int) error {
	query := `
		UPDATE bookings
		SET start_date = $1, end_date = $2, guests = $3, nights = $4
		WHERE id = $5`
	args := []any{startDate, endDate, guests, nights, id}

	if userID != "" {
		query += ` AND user_id = $6`
		args = append(args, userID)
	}

	if _, err := s.DB.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	return nil
}

// UpdateGuests replaces the guest count only, leaving dates and nights
// untouched. Same no-op and owner-scoping behavior as UpdateStay.
func (s *Storage) UpdateGuests(id int, userID string, guests int) error {
	query := `
		UPDATE bookings
		SET guests = $1
		WHERE id = $2`
	args := []any{guests, id}

	if userID != "" {
		query += ` AND user_id = $3`
		args = append(args, userID)
	}

	if _, err := s.DB.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	return nil
}

// DeleteBooking removes a booking by id; deleting a nonexistent id is a
// silent no-op. A non-empty userID scopes the delete to that owner.
func (s *Storage) DeleteBooking(id int, userID string) error {
	query := `DELETE FROM bookings WHERE id = $1`
	args := []any{id}

	if userID != "" {
		query += ` AND user_id = $2`
		args = append(args, userID)
	}

	if _, err := s.DB.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}
