package policy

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// fallbackContent is served when the policy PDF cannot be read, so the
// assistant can still answer the most common visitor questions.
const fallbackContent = `HOSPITAL WIDE POLICIES - Community Health Center Harichandanpur, Keonjhar, Odisha

VISITOR'S POLICY:
Objective: To make sure that our patients get the rest they need and other patients are not disturbed.

Policy:
1. Visitors must be age of 12 years or above
2. Siblings will be allowed to visit the maternity units as long as they do not exhibit symptoms of cold or other respiratory infection
3. Request to visit in compassionate care situation may be approved by the nursing sister

Visiting Hours:
General Visiting Hours:
- Before and after the round of doctor
- Please limit your stay to 15-20 minutes
- Maximum no. of visitors in the rooms are 02 at a time
- Children under the age of 12 are not permitted in wards nor may they wait in the waiting area
- A care giver may interrupt your visit during patients care routine
- If you are unfit please postpone your visit

For complete hospital policies, please ensure the policy PDF is available.`

// LoadPDF extracts the plain text of the policy document at path.
func LoadPDF(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("policy PDF not found at %s: %w", path, err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open policy PDF: %w", err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from policy PDF: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read policy PDF text: %w", err)
	}
	return buf.String(), nil
}

// LoadContent returns the policy text from the PDF at path, falling back to
// the embedded excerpt when the document is missing or unreadable.
func LoadContent(path string) (content string, fromFallback bool) {
	text, err := LoadPDF(path)
	if err != nil || text == "" {
		return fallbackContent, true
	}
	return text, false
}
