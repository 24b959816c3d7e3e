package tools

import (
	"github.com/harshinharshi/medical-chatbot/pkg/core"
	"github.com/harshinharshi/medical-chatbot/pkg/hospital"
	"github.com/harshinharshi/medical-chatbot/pkg/policy"
)

// DefaultToolSet returns the assistant's full tool inventory in the order it
// is presented to the model.
func DefaultToolSet(index *policy.Index, store *hospital.Store) []core.Tool {
	return []core.Tool{
		NewPolicySearchTool(index),
		NewCurrentTimeTool(),
		NewOwnerInfoTool(),
		NewDoctorAppointmentsTool(store),
		NewTodaysAppointmentsTool(store),
		NewAvailableDoctorsTool(store),
	}
}
