// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/market-pulse/internal/app"
	"github.com/MKhiriev/market-pulse/models"
)

// signInModel holds the sign-in form. errMsg is shown inline under the form,
// notice above it (e.g. after an expired session).
type signInModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	notice     string
	plans      []models.Plan
}

func newSignInModel() signInModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return signInModel{inputs: []textinput.Model{email, password}}
}

func (m signInModel) focusNext() signInModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m signInModel) focusPrev() signInModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m appModel) updateSignIn(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab), keyMsg.Type == tea.KeyDown:
			m.signIn = m.signIn.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab), keyMsg.Type == tea.KeyUp:
			m.signIn = m.signIn.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.signIn.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.signIn.inputs[0].Value())
			password := m.signIn.inputs[1].Value()
			if email == "" || password == "" {
				m.signIn.errMsg = msgCredentials
				return m, nil
			}
			m.signIn.errMsg = ""
			m.signIn.submitting = true
			return m, m.cmdSignIn(email, password)
		}
	}

	var cmd tea.Cmd
	m.signIn.inputs[m.signIn.focus], cmd = m.signIn.inputs[m.signIn.focus].Update(msg)
	return m, cmd
}

func (m appModel) viewSignIn() string {
	th := m.theme
	var b strings.Builder

	if m.signIn.notice != "" {
		b.WriteString(th.accent.Render(m.signIn.notice))
		b.WriteString("\n\n")
	}

	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.signIn.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.signIn.inputs[1].View())
	b.WriteString("]\n")

	if m.signIn.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.signIn.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(th.errText.Render(m.signIn.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(th.muted.Render(app.MsgSignUpPlaceholder))
	b.WriteString("\n")

	if len(m.signIn.plans) > 0 {
		b.WriteString("\nPlans\n")
		for _, p := range m.signIn.plans {
			line := fmt.Sprintf("  %-8s %-10s %s", p.Name, p.Price, p.Blurb)
			if p.Badge != "" {
				line += " " + th.accent.Render("["+p.Badge+"]")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return renderPage(th, "SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: sign in │ esc: quit")
}
