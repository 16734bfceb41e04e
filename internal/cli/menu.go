// Package cli runs the interactive text menu in front of the assistant's
// flows.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spec-kit/support-assistant/internal/domain"
	"github.com/spec-kit/support-assistant/internal/service"
	"github.com/spec-kit/support-assistant/internal/validation"
)

type option struct {
	key    string
	label  string
	intent service.Intent
}

var options = []option{
	{key: "1", label: "Ask a question", intent: service.IntentFAQ},
	{key: "2", label: "Check order status", intent: service.IntentOrderStatus},
	{key: "3", label: "Create a support ticket", intent: service.IntentTicket},
	{key: "4", label: "Reset my password", intent: service.IntentPasswordReset},
	{key: "5", label: "Speak to a human agent", intent: service.IntentEscalation},
	{key: "6", label: "Leave feedback", intent: service.IntentFeedback},
}

var exitWords = map[string]bool{"0": true, "q": true, "quit": true, "exit": true, "bye": true}

// Menu reads choices and answers line by line and prints each flow's
// response. Typing free text instead of a number routes by keyword.
type Menu struct {
	router *service.Router
	in     *bufio.Scanner
	out    io.Writer
	styles styles
}

// NewMenu builds a menu over router.
func NewMenu(router *service.Router, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		router: router,
		in:     bufio.NewScanner(in),
		out:    out,
		styles: newStyles(out),
	}
}

// Run loops until the user exits, input ends or ctx is canceled.
func (m *Menu) Run(ctx context.Context) error {
	m.println(m.styles.title.Render("Welcome to TechShop Support!"))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printMenu()
		line, ok := m.ask("Choose an option or type your question")
		if !ok {
			return m.in.Err()
		}
		if line == "" {
			continue
		}
		if exitWords[strings.ToLower(line)] {
			m.println("Thank you for contacting TechShop. Goodbye!")
			return nil
		}

		intent, text := m.resolve(line)
		resp, ok := m.runFlow(ctx, intent, text)
		if !ok {
			return m.in.Err()
		}
		m.render(resp)
	}
}

func (m *Menu) resolve(line string) (service.Intent, string) {
	for _, opt := range options {
		if opt.key == line {
			return opt.intent, ""
		}
	}
	return service.DetectIntent(line), line
}

// runFlow collects the inputs intent needs and dispatches it. ok is false
// when input ended mid-flow.
func (m *Menu) runFlow(ctx context.Context, intent service.Intent, text string) (domain.Response, bool) {
	req := service.Request{Text: text}
	switch intent {
	case service.IntentFAQ:
		if req.Text == "" {
			q, ok := m.askRequired("What would you like to know?")
			if !ok {
				return domain.Response{}, false
			}
			req.Text = q
		}

	case service.IntentOrderStatus:
		if !strings.Contains(strings.ToUpper(req.Text), "ORD-") {
			id, ok := m.askRequired("Enter your order ID (e.g. ORD-12345)")
			if !ok {
				return domain.Response{}, false
			}
			req.Text = id
		}

	case service.IntentTicket:
		var ok bool
		if req.Subject, ok = m.askRequired("Subject"); !ok {
			return domain.Response{}, false
		}
		if req.Description, ok = m.askRequired("Describe the issue"); !ok {
			return domain.Response{}, false
		}
		if req.CustomerName, ok = m.ask("Your name (optional)"); !ok {
			return domain.Response{}, false
		}
		if req.CustomerEmail, ok = m.ask("Your email (optional)"); !ok {
			return domain.Response{}, false
		}

	case service.IntentEscalation:
		var ok bool
		if req.CustomerName, ok = m.askRequired("Your name"); !ok {
			return domain.Response{}, false
		}
		if req.Phone, ok = m.askRequired("Phone number for the call-back"); !ok {
			return domain.Response{}, false
		}
		reason, ok := m.ask("Reason (optional)")
		if !ok {
			return domain.Response{}, false
		}
		req.Reason = optional(reason)

	case service.IntentFeedback:
		var ok bool
		if req.CustomerName, ok = m.askRequired("Your name"); !ok {
			return domain.Response{}, false
		}
		if req.Rating, ok = m.askRating(); !ok {
			return domain.Response{}, false
		}
		comments, ok := m.ask("Comments (optional)")
		if !ok {
			return domain.Response{}, false
		}
		req.Comments = optional(comments)

	case service.IntentPasswordReset:
		m.render(m.router.Dispatch(ctx, intent, req))
		pw, ok := m.ask("New password (leave blank to cancel)")
		if !ok {
			return domain.Response{}, false
		}
		if pw == "" {
			return domain.Response{Status: domain.ResponseInfo, Text: "Password reset cancelled."}, true
		}
		req.NewPassword = pw
	}
	return m.router.Dispatch(ctx, intent, req), true
}

// askRating accepts a blank line as "no rating" and re-prompts until the
// input is a whole number from 1 to 5.
func (m *Menu) askRating() (*int, bool) {
	for {
		raw, ok := m.ask("Rating from 1 to 5 (optional)")
		if !ok {
			return nil, false
		}
		if raw == "" {
			return nil, true
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			m.println(m.styles.failure.Render("Please enter a whole number."))
			continue
		}
		if !validation.ValidateRating(n) {
			m.println(m.styles.failure.Render("Rating must be between 1 and 5."))
			continue
		}
		return &n, true
	}
}

func (m *Menu) askRequired(prompt string) (string, bool) {
	for {
		v, ok := m.ask(prompt)
		if !ok || v != "" {
			return v, ok
		}
		m.println(m.styles.failure.Render("This field is required."))
	}
}

func (m *Menu) ask(prompt string) (string, bool) {
	fmt.Fprint(m.out, m.styles.prompt.Render(prompt+": "))
	if !m.in.Scan() {
		m.println("")
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) printMenu() {
	m.println("")
	for _, opt := range options {
		m.println(fmt.Sprintf("  %s. %s", opt.key, opt.label))
	}
	m.println(m.styles.muted.Render("  0. Exit"))
}

func (m *Menu) render(resp domain.Response) {
	m.println("")
	m.println(m.styles.forStatus(resp.Status).Render(resp.Text))
	for _, link := range resp.Links {
		m.println("🔗 " + m.styles.link.Render(link))
	}
	if len(resp.Suggestions) > 0 {
		m.println(m.styles.suggestion.Render("💡 You can also: " + strings.Join(resp.Suggestions, " | ")))
	}
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
