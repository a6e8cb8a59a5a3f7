package ai

import "fmt"

const systemPrompt = "You write factual multiple-choice trivia questions. " +
	"Respond with a JSON array only, no commentary."

// buildPrompt renders the generation instruction for a category/difficulty
// pair. The simplified variant is used on retry attempts, where a shorter
// instruction tends to keep small models on format.
func buildPrompt(category, difficulty string, count int, simplified bool) string {
	if simplified {
		return fmt.Sprintf(`Generate %d multiple-choice %s questions about %s.
[
  {
    "question": "Question text",
    "options": ["Correct answer", "Wrong answer 1", "Wrong answer 2", "Wrong answer 3"],
    "correct_answer": "Correct answer",
    "category": "%s",
    "difficulty": "%s"
  }
]
`, count, difficulty, category, category, difficulty)
	}

	switch category {
	case "Geography":
		return fmt.Sprintf(`Generate %d factual multiple-choice %s geography questions.
Each question should be about countries, capitals, landmarks, rivers, mountains, or other geographical features.
Format as a JSON array with each question having the following structure:
[
  {
    "question": "What is the capital of France?",
    "options": ["Paris", "London", "Berlin", "Madrid"],
    "correct_answer": "Paris",
    "category": "Geography",
    "difficulty": "%s"
  }
]
`, count, difficulty, difficulty)
	case "History":
		return fmt.Sprintf(`Generate %d factual multiple-choice %s history questions.
Each question should be about historical events, figures, periods, or discoveries.
Format as a JSON array with each question having the following structure:
[
  {
    "question": "Who was the first President of the United States?",
    "options": ["George Washington", "Thomas Jefferson", "Abraham Lincoln", "John Adams"],
    "correct_answer": "George Washington",
    "category": "History",
    "difficulty": "%s"
  }
]
`, count, difficulty, difficulty)
	case "Science":
		return fmt.Sprintf(`Generate %d factual multiple-choice %s science questions.
Each question should be about physics, chemistry, biology, astronomy, or other scientific fields.
Format as a JSON array with each question having the following structure:
[
  {
    "question": "What is the chemical symbol for gold?",
    "options": ["Au", "Ag", "Fe", "Cu"],
    "correct_answer": "Au",
    "category": "Science",
    "difficulty": "%s"
  }
]
`, count, difficulty, difficulty)
	default:
		return fmt.Sprintf(`Generate %d factual multiple-choice %s questions about %s.
Format as a JSON array with each question having the following structure:
[
  {
    "question": "Question text about %s?",
    "options": ["Correct answer", "Wrong answer 1", "Wrong answer 2", "Wrong answer 3"],
    "correct_answer": "Correct answer",
    "category": "%s",
    "difficulty": "%s"
  }
]
`, count, difficulty, category, category, category, difficulty)
	}
}
