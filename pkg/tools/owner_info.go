package tools

import "context"

const ownerInfo = `Hospital Owner Information:
Name: Dr. Harshin
Position: Owner and Medical Director
Hospital: Community Health Center Harichandanpur
Location: Keonjhar, Odisha, India

Dr. Harshin is the owner and medical director of Community Health Center Harichandanpur,
overseeing all medical operations, policy implementation, and ensuring quality healthcare
delivery at the facility. Under his leadership, the hospital maintains comprehensive
policies for patient care, safety, and quality management.`

// OwnerInfoTool returns static information about the hospital's owner
type OwnerInfoTool struct {
	BaseTool
}

// NewOwnerInfoTool creates an owner information tool
func NewOwnerInfoTool() *OwnerInfoTool {
	return &OwnerInfoTool{
		BaseTool: NewBaseTool(
			"get_owner_info",
			"Get information about the hospital owner Dr. Harshin and hospital leadership details.",
		),
	}
}

// Execute returns the owner information text
func (t *OwnerInfoTool) Execute(ctx context.Context, arguments string) (string, error) {
	return ownerInfo, nil
}
