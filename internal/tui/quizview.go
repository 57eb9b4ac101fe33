package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/tnguide/internal/session"
)

func (m *AppModel) handleQuizKey(msg tea.KeyMsg) {
	quiz := m.Session.Snapshot().Quiz
	q, ok := quiz.Current()
	switch {
	case key.Matches(msg, m.Keys.Back):
		m.navigate(session.ScreenHome)
	case !ok:
		if key.Matches(msg, m.Keys.Enter) {
			m.navigate(session.ScreenPlaces)
		}
	case key.Matches(msg, m.Keys.Up):
		m.QuizCursor = max(0, m.QuizCursor-1)
	case key.Matches(msg, m.Keys.Down):
		m.QuizCursor = min(len(q.Options)-1, m.QuizCursor+1)
	case key.Matches(msg, m.Keys.Enter):
		done, err := m.Session.AnswerQuiz(m.QuizCursor)
		if err != nil {
			m.log.Warn().Err(err).Int("option", m.QuizCursor).Msg("quiz answer rejected")
			if !errors.Is(err, session.ErrInvalidAnswer) {
				m.Session.Alert("Could not plan that trip")
			}
			return
		}
		m.QuizCursor = 0
		if done {
			answers := m.Session.Snapshot().Quiz.Answers
			m.Cursor = 0
			m.Session.Inform(fmt.Sprintf("Trip planned: %s for %d days", answers.Region, answers.Days))
		}
	}
}

func (m AppModel) renderQuiz() string {
	st := m.Styles
	quiz := m.Session.Snapshot().Quiz
	questions := session.QuizQuestions()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(st.Title.Render("  Plan your trip"))
	b.WriteString("\n\n")

	q, ok := quiz.Current()
	if !ok {
		a := quiz.Answers
		b.WriteString(st.Good.Render("  All set!"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  %s %s\n", st.DetailLabel.Render("Destination"), st.DetailValue.Render(a.Region)))
		b.WriteString(fmt.Sprintf("  %s %s\n", st.DetailLabel.Render("Days       "), st.DetailValue.Render(fmt.Sprintf("%d", a.Days))))
		b.WriteString(fmt.Sprintf("  %s %s\n", st.DetailLabel.Render("Budget     "), st.DetailValue.Render(rupees(a.Budget))))
		b.WriteString("\n")
		b.WriteString(st.Dim.Render("  enter to browse places, 4 for the cost breakdown"))
		return b.String()
	}

	b.WriteString(st.Subtitle.Render(fmt.Sprintf("  Question %d of %d", quiz.Step+1, len(questions))))
	b.WriteString("\n")
	b.WriteString(progressBar(quiz.Step, len(questions), st))
	b.WriteString("\n\n")
	b.WriteString("  " + st.DetailTitle.Render(q.Prompt))
	b.WriteString("\n\n")
	for i, opt := range q.Options {
		if i == m.QuizCursor {
			b.WriteString("  " + st.Indicator.Render(selectionIndicator) + " " + st.RowSelected.Render(opt.Label))
		} else {
			b.WriteString("    " + st.RowNormal.Render(opt.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// progressBar renders one segment per question, filled when answered.
func progressBar(done, total int, st Styles) string {
	var b strings.Builder
	b.WriteString("  ")
	for i := range total {
		if i < done {
			b.WriteString(st.TabActive.Render("━━━━"))
		} else {
			b.WriteString(st.Dim.Render("━━━━"))
		}
		if i < total-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
