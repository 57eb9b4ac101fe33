package session

// QuizOption is one answer to a quiz question. Budget and duration answers
// carry Value; destination answers carry Region.
type QuizOption struct {
	Label  string
	Value  int
	Region string
}

// QuizQuestion is a single-choice question.
type QuizQuestion struct {
	Prompt  string
	Options []QuizOption
}

// The three questions, asked in order.
var quizQuestions = []QuizQuestion{
	{
		Prompt: "What's your preferred travel budget?",
		Options: []QuizOption{
			{Label: "Budget Friendly", Value: 10000},
			{Label: "Moderate", Value: 30000},
			{Label: "Luxury", Value: 70000},
		},
	},
	{
		Prompt: "How long is your escape?",
		Options: []QuizOption{
			{Label: "Quick Trip (1-2 days)", Value: 2},
			{Label: "Weekend (3-4 days)", Value: 4},
			{Label: "Long Break (5+ days)", Value: 7},
		},
	},
	{
		Prompt: "What vibe are you looking for?",
		Options: []QuizOption{
			{Label: "City Lights & Culture", Region: "Chennai"},
			{Label: "Tea Estates & Hills", Region: "Coimbatore"},
			{Label: "History & Nature", Region: "Krishnagiri"},
		},
	},
}

const (
	quizBudget = iota
	quizDays
	quizRegion
)

// QuizQuestions returns the quiz in order.
func QuizQuestions() []QuizQuestion {
	out := make([]QuizQuestion, len(quizQuestions))
	for i, q := range quizQuestions {
		out[i] = QuizQuestion{Prompt: q.Prompt, Options: append([]QuizOption(nil), q.Options...)}
	}
	return out
}

// QuizAnswers accumulates the choices made so far.
type QuizAnswers struct {
	Budget int
	Days   int
	Region string
}

// Quiz is the progress through the questions. Step equals the number of
// questions answered; it reaches len(QuizQuestions()) when done.
type Quiz struct {
	Step    int
	Answers QuizAnswers
}

// Done reports whether every question has been answered.
func (q Quiz) Done() bool { return q.Step >= len(quizQuestions) }

// Current returns the question awaiting an answer. ok is false once the
// quiz is done.
func (q Quiz) Current() (QuizQuestion, bool) {
	if q.Done() || q.Step < 0 {
		return QuizQuestion{}, false
	}
	cur := quizQuestions[q.Step]
	return QuizQuestion{Prompt: cur.Prompt, Options: append([]QuizOption(nil), cur.Options...)}, true
}
