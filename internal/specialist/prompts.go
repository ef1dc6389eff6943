package specialist

import (
	"fmt"

	"github.com/ShayCichocki/consilium/pkg/models"
)

// cardiologistPrompt is the prompt template for the cardiac review.
const cardiologistPrompt = `Act as a cardiologist. You will receive a medical report of a patient.

Task: Review the patient's cardiac workup, including ECG, blood tests, Holter monitor results, and echocardiogram.

Focus: Determine if there are any subtle signs of cardiac issues that could explain the patient's symptoms. Rule out any underlying heart conditions, such as arrhythmias or structural abnormalities.

Output: Provide a concise summary of your findings and recommended next steps.

Medical Report:
%s`

// psychologistPrompt is the prompt template for the psychological assessment.
const psychologistPrompt = `Act as a psychologist. You will receive a patient's report.

Task: Review the patient's report and provide a psychological assessment.

Focus: Identify any potential mental health issues, such as anxiety, depression, or trauma, that may be affecting the patient's well-being.

Output: Provide a concise summary of your findings and recommended next steps.

Patient's Report:
%s`

// pulmonologistPrompt is the prompt template for the pulmonary assessment.
const pulmonologistPrompt = `Act like a pulmonologist. You will receive a patient's report.

Task: Review the patient's report and provide a pulmonary assessment.

Focus: Identify any potential respiratory issues, such as asthma, COPD, or lung infections, that may be affecting the patient's breathing.

Output: Provide a concise summary of your findings and recommended next steps.

Patient's Report:
%s`

// Prompt renders the role-specific prompt for the given report text.
// The role set is closed; an unknown role is a programming error surfaced
// as an error rather than a panic.
func Prompt(role models.Role, report string) (string, error) {
	switch role {
	case models.RoleCardiologist:
		return fmt.Sprintf(cardiologistPrompt, report), nil
	case models.RolePsychologist:
		return fmt.Sprintf(psychologistPrompt, report), nil
	case models.RolePulmonologist:
		return fmt.Sprintf(pulmonologistPrompt, report), nil
	default:
		return "", fmt.Errorf("no prompt template for role %q", role)
	}
}
