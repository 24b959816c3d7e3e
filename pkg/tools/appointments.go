package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/harshinharshi/medical-chatbot/pkg/core"
	"github.com/harshinharshi/medical-chatbot/pkg/hospital"
)

// DoctorAppointmentsTool looks up the appointment book for one doctor
type DoctorAppointmentsTool struct {
	BaseTool
	store *hospital.Store
}

// NewDoctorAppointmentsTool creates a doctor appointment lookup tool
func NewDoctorAppointmentsTool(store *hospital.Store) *DoctorAppointmentsTool {
	return &DoctorAppointmentsTool{
		BaseTool: NewBaseTool(
			"get_doctor_appointments",
			"Query appointments and token numbers for a specific doctor. "+
				"Matches partial doctor names and defaults to today's date when no date is given.",
		),
		store: store,
	}
}

// Parameters returns the parameters that the tool accepts
func (t *DoctorAppointmentsTool) Parameters() map[string]core.ParameterDefinition {
	return map[string]core.ParameterDefinition{
		"doctor_name": {
			Type:        "string",
			Description: "Full or partial name of the doctor, e.g. 'Harshin'",
			Required:    true,
		},
		"date": {
			Type:        "string",
			Description: "Appointment date in YYYY-MM-DD format; defaults to today",
			Required:    false,
		},
	}
}

// Execute returns the doctor's appointments as a formatted listing
func (t *DoctorAppointmentsTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		DoctorName string `json:"doctor_name"`
		Date       string `json:"date"`
	}
	if err := decodeArguments(arguments, &args); err != nil {
		return "", err
	}
	if strings.TrimSpace(args.DoctorName) == "" {
		return "Please provide the doctor's name to look up appointments.", nil
	}

	date := args.Date
	if date == "" {
		date = hospital.Today()
	}

	appointments, err := t.store.DoctorAppointments(ctx, args.DoctorName, date)
	if err != nil {
		return "", err
	}
	if len(appointments) == 0 {
		return fmt.Sprintf("No appointments found for doctor '%s' on %s.", args.DoctorName, date), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Appointments for '%s' on %s:\n", args.DoctorName, date)
	writeAppointments(&b, appointments, false)
	return b.String(), nil
}

// TodaysAppointmentsTool lists every appointment scheduled for today
type TodaysAppointmentsTool struct {
	BaseTool
	store *hospital.Store
}

// NewTodaysAppointmentsTool creates a today's-appointments tool
func NewTodaysAppointmentsTool(store *hospital.Store) *TodaysAppointmentsTool {
	return &TodaysAppointmentsTool{
		BaseTool: NewBaseTool(
			"get_todays_appointments",
			"View all appointments scheduled for today across all doctors.",
		),
		store: store,
	}
}

// Execute returns today's appointments as a formatted listing
func (t *TodaysAppointmentsTool) Execute(ctx context.Context, arguments string) (string, error) {
	today := hospital.Today()

	appointments, err := t.store.AppointmentsOn(ctx, today)
	if err != nil {
		return "", err
	}
	if len(appointments) == 0 {
		return fmt.Sprintf("There are no appointments scheduled for today (%s).", today), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Today's appointments (%s):\n", today)
	writeAppointments(&b, appointments, true)
	return b.String(), nil
}

// AvailableDoctorsTool lists the hospital's doctor roster
type AvailableDoctorsTool struct {
	BaseTool
	store *hospital.Store
}

// NewAvailableDoctorsTool creates a doctor roster tool
func NewAvailableDoctorsTool(store *hospital.Store) *AvailableDoctorsTool {
	return &AvailableDoctorsTool{
		BaseTool: NewBaseTool(
			"get_available_doctors",
			"List all doctors at the hospital with their specialization and available days.",
		),
		store: store,
	}
}

// Execute returns the doctor roster as text
func (t *AvailableDoctorsTool) Execute(ctx context.Context, arguments string) (string, error) {
	doctors, err := t.store.Doctors(ctx)
	if err != nil {
		return "", err
	}
	if len(doctors) == 0 {
		return "No doctors are currently registered at the hospital.", nil
	}

	var b strings.Builder
	b.WriteString("Available doctors at Community Health Center Harichandanpur:\n")
	for _, d := range doctors {
		fmt.Fprintf(&b, "- %s (%s), available: %s\n", d.Name, d.Specialization, d.AvailableDays)
	}
	return b.String(), nil
}

// writeAppointments renders rows as "Token N: patient at time [status]",
// adding the doctor name when the listing spans doctors.
func writeAppointments(b *strings.Builder, appointments []hospital.Appointment, withDoctor bool) {
	for _, a := range appointments {
		if withDoctor {
			fmt.Fprintf(b, "Token %d: %s with %s at %s [%s]\n", a.Token, a.PatientName, a.DoctorName, a.Time, a.Status)
		} else {
			fmt.Fprintf(b, "Token %d: %s at %s [%s]\n", a.Token, a.PatientName, a.Time, a.Status)
		}
	}
}
