package hospital

import (
	"context"
	"time"
)

// Seed populates the database with the sample roster and appointment book
// used for demos and development. Dates are relative to today so the
// "today's appointments" tool always has data to show.
func (s *Store) Seed(ctx context.Context) error {
	doctors := []Doctor{
		{ID: 1, Name: "Dr. Harshin", Specialization: "General Medicine", AvailableDays: "Monday to Friday"},
		{ID: 2, Name: "Dr. Priya Sharma", Specialization: "Pediatrics", AvailableDays: "Monday, Wednesday, Friday"},
	}
	for _, d := range doctors {
		if err := s.AddDoctor(ctx, d); err != nil {
			return err
		}
	}

	today := time.Now()
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format("2006-01-02")
	}

	type seedRow struct {
		doctorID int
		a        Appointment
	}
	rows := []seedRow{
		{1, Appointment{PatientName: "Rajesh Kumar", Token: 1, Date: day(0), Time: "09:00 AM", Status: "Scheduled"}},
		{1, Appointment{PatientName: "Priya Singh", Token: 2, Date: day(0), Time: "09:30 AM", Status: "Scheduled"}},
		{1, Appointment{PatientName: "Amit Patel", Token: 3, Date: day(0), Time: "10:00 AM", Status: "Completed"}},
		{1, Appointment{PatientName: "Sneha Reddy", Token: 4, Date: day(0), Time: "10:30 AM", Status: "Scheduled"}},
		{1, Appointment{PatientName: "Vikram Mehta", Token: 5, Date: day(0), Time: "11:00 AM", Status: "Scheduled"}},
		{1, Appointment{PatientName: "Anjali Gupta", Token: 6, Date: day(1), Time: "09:00 AM", Status: "Scheduled"}},
		{1, Appointment{PatientName: "Rahul Verma", Token: 7, Date: day(1), Time: "09:30 AM", Status: "Scheduled"}},
		{2, Appointment{PatientName: "Baby Aisha", Token: 1, Date: day(0), Time: "10:00 AM", Status: "Scheduled"}},
		{2, Appointment{PatientName: "Baby Rohan", Token: 2, Date: day(0), Time: "10:30 AM", Status: "Scheduled"}},
		{2, Appointment{PatientName: "Baby Kavya", Token: 3, Date: day(0), Time: "11:00 AM", Status: "Completed"}},
		{2, Appointment{PatientName: "Baby Arjun", Token: 4, Date: day(0), Time: "11:30 AM", Status: "Scheduled"}},
		{2, Appointment{PatientName: "Baby Diya", Token: 5, Date: day(2), Time: "10:00 AM", Status: "Scheduled"}},
	}

	for _, row := range rows {
		if err := s.AddAppointment(ctx, row.doctorID, row.a); err != nil {
			return err
		}
	}
	return nil
}
