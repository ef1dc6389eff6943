package synthesis

// synthesisPrompt is the prompt template for the multidisciplinary synthesis
// call. It embeds the three specialist texts and the exact response schema.
const synthesisPrompt = `Act like a multidisciplinary team of healthcare professionals.
You will receive reports from a Cardiologist, Psychologist, and Pulmonologist.

Task: Review the specialist reports, analyze them, and come up with a list of 3 possible health issues for the patient.
For each issue, provide a clear rationale based on the provided reports. Exactly one issue must be marked as the primary diagnosis.

Cardiologist Report:
%s

Psychologist Report:
%s

Pulmonologist Report:
%s

Return ONLY a JSON object with this exact structure (no other fields, no other text):
{
  "analysis": [
    {
      "diagnosis": "Name of the possible health diagnosis",
      "rationale": "Why this is a possible diagnosis, citing the specialist reports",
      "is_primary": true
    }
  ]
}

Rules:
- The "analysis" array must contain exactly 3 entries.
- Exactly one entry must have "is_primary": true; the other two must have "is_primary": false.
- Every entry must include all three fields and no others.`
