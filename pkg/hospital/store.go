package hospital

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Doctor represents one row of the doctors table
type Doctor struct {
	ID             int
	Name           string
	Specialization string
	AvailableDays  string
}

// Appointment represents one appointment row joined with its doctor
type Appointment struct {
	Token       int
	PatientName string
	DoctorName  string
	Date        string // YYYY-MM-DD
	Time        string // e.g. "09:00 AM"
	Status      string
}

// Store provides access to the hospital's doctors and appointments tables.
// The schema is created once at setup time; request-time access is read-only.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Store{db: db}, nil
}

// Setup drops and recreates the doctors and appointments tables
func (s *Store) Setup(ctx context.Context) error {
	statements := []string{
		`DROP TABLE IF EXISTS appointments`,
		`DROP TABLE IF EXISTS doctors`,
		`CREATE TABLE doctors (
			doctor_id INTEGER PRIMARY KEY,
			doctor_name TEXT NOT NULL,
			specialization TEXT NOT NULL,
			available_days TEXT NOT NULL
		)`,
		`CREATE TABLE appointments (
			appointment_id INTEGER PRIMARY KEY AUTOINCREMENT,
			doctor_id INTEGER NOT NULL,
			patient_name TEXT NOT NULL,
			token_number INTEGER NOT NULL,
			appointment_date DATE NOT NULL,
			appointment_time TEXT NOT NULL,
			status TEXT DEFAULT 'Scheduled',
			FOREIGN KEY (doctor_id) REFERENCES doctors(doctor_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// AddDoctor inserts a doctor row
func (s *Store) AddDoctor(ctx context.Context, d Doctor) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO doctors (doctor_id, doctor_name, specialization, available_days)
		VALUES (?, ?, ?, ?)
	`, d.ID, d.Name, d.Specialization, d.AvailableDays)
	if err != nil {
		return fmt.Errorf("failed to insert doctor: %w", err)
	}
	return nil
}

// AddAppointment inserts an appointment row for the given doctor
func (s *Store) AddAppointment(ctx context.Context, doctorID int, a Appointment) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO appointments (doctor_id, patient_name, token_number, appointment_date, appointment_time, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, doctorID, a.PatientName, a.Token, a.Date, a.Time, a.Status)
	if err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

// Doctors returns the full doctor roster ordered by id
func (s *Store) Doctors(ctx context.Context) ([]Doctor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT doctor_id, doctor_name, specialization, available_days
		FROM doctors
		ORDER BY doctor_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	var doctors []Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialization, &d.AvailableDays); err != nil {
			return nil, fmt.Errorf("failed to scan doctor row: %w", err)
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

// DoctorAppointments returns appointments whose doctor name contains the
// given fragment, optionally restricted to one date (YYYY-MM-DD). Rows are
// ordered by date ascending, then token number ascending. The name match is
// parameterized; user text never reaches the SQL string.
func (s *Store) DoctorAppointments(ctx context.Context, doctorName, date string) ([]Appointment, error) {
	query := `
		SELECT a.token_number, a.patient_name, d.doctor_name, a.appointment_date, a.appointment_time, a.status
		FROM appointments a
		JOIN doctors d ON d.doctor_id = a.doctor_id
		WHERE d.doctor_name LIKE '%' || ? || '%'
	`
	args := []any{doctorName}

	if date != "" {
		query += ` AND a.appointment_date = ?`
		args = append(args, date)
	}
	query += ` ORDER BY a.appointment_date ASC, a.token_number ASC`

	return s.queryAppointments(ctx, query, args...)
}

// AppointmentsOn returns every appointment on the given date (YYYY-MM-DD),
// ordered by token number
func (s *Store) AppointmentsOn(ctx context.Context, date string) ([]Appointment, error) {
	return s.queryAppointments(ctx, `
		SELECT a.token_number, a.patient_name, d.doctor_name, a.appointment_date, a.appointment_time, a.status
		FROM appointments a
		JOIN doctors d ON d.doctor_id = a.doctor_id
		WHERE a.appointment_date = ?
		ORDER BY a.token_number ASC
	`, date)
}

func (s *Store) queryAppointments(ctx context.Context, query string, args ...any) ([]Appointment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	var appointments []Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.Token, &a.PatientName, &a.DoctorName, &a.Date, &a.Time, &a.Status); err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Today returns the current date in the format the appointments table uses
func Today() string {
	return time.Now().Format("2006-01-02")
}
