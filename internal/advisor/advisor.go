// Package advisor answers personal finance questions with a language model.
package advisor

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotConfigured = errors.New("the financial advisor is not configured")
	ErrEmptyQuestion = errors.New("the question must not be empty")
	ErrNoAnswer      = errors.New("the model returned no answer")
)

// Advisor answers a single question.
type Advisor interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Suggestion is a prepared question offered to the user.
type Suggestion struct {
	Text    string `json:"text" example:"Budget Planning"`
	Message string `json:"message" example:"Help me create a monthly budget plan"`
	Icon    string `json:"icon" example:"DollarSign"`
}

const Welcome = "Hello! I am your AI Financial Advisor. I'm here to help you with budgeting, " +
	"saving strategies, investment advice, expense management, and all things related to " +
	"personal finance. What financial topic would you like to discuss today?"

var suggestions = []Suggestion{
	{"Budget Planning", "Help me create a monthly budget plan", "DollarSign"},
	{"Investment Tips", "What are some good investment strategies for beginners?", "TrendingUp"},
	{"Expense Analysis", "How can I track and analyze my monthly expenses?", "PieChart"},
	{"Savings Goals", "Help me set up a savings plan for my financial goals", "Calculator"},
	{"Emergency Fund", "How much should I save for an emergency fund?", "Target"},
	{"Debt Management", "What's the best strategy to pay off my debts?", "CreditCard"},
}

// Suggestions returns the quick questions shown next to the chat.
func Suggestions() []Suggestion {
	out := make([]Suggestion, len(suggestions))
	copy(out, suggestions)
	return out
}

// SystemPrompt restricts the model to personal finance.
const SystemPrompt = `You are a specialized AI Financial Advisor and personal finance expert. You can ONLY discuss topics related to:

FINANCIAL TOPICS YOU CAN HELP WITH:
- Personal finance and budgeting
- Expense management and tracking
- Saving strategies and techniques
- Investment basics and portfolio management
- Financial planning and goal setting
- Money management tips and best practices
- Debt management and credit improvement
- Emergency fund planning
- Retirement planning
- Tax planning strategies
- Insurance and risk management
- Banking and financial products
- Financial habits and behavior

IMPORTANT RULES:
- If someone asks about topics outside of finance/money, politely redirect them back to financial topics
- Always provide practical, actionable advice
- Be encouraging and supportive
- Keep responses helpful but concise
- Focus on education and empowerment
- Avoid giving specific investment recommendations for individual stocks
- Always suggest consulting with a certified financial planner for complex situations

Please provide helpful, accurate financial advice while being encouraging and supportive. If the question is not finance-related, politely redirect to financial topics and offer to help with money management instead.`

// Generation settings shared by all providers.
const (
	Temperature     float32 = 0.7
	TopK            int32   = 40
	TopP            float32 = 0.95
	MaxOutputTokens int32   = 1024
)

// question trims q and rejects blank questions.
func question(q string) (string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", ErrEmptyQuestion
	}
	return q, nil
}

// Disabled is the advisor used when no provider is configured.
type Disabled struct{}

func (Disabled) Ask(_ context.Context, q string) (string, error) {
	if _, err := question(q); err != nil {
		return "", err
	}
	return "", ErrNotConfigured
}
