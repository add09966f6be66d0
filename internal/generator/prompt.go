package generator

const problemPrompt = `Generate one SAT-style algebra problem.

Return ONLY valid JSON in this format:

{
  "question": "...",
  "choices": {
    "A": "...",
    "B": "...",
    "C": "...",
    "D": "..."
  },
  "correct_answer": "A",
  "explanation": "step-by-step explanation"
}

No markdown. No backticks. Only JSON.
Difficulty: Medium.
`
