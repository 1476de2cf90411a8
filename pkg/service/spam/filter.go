// Package spam screens self-reported incidents through an LLM before they
// enter the moderation queue.
package spam

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gollem"
)

const maxAttempts = 3

const systemPrompt = `You are a spam/junk content detector for an AI incident reporting system.

Your task is to analyze submitted reports and determine if they are spam, junk, or legitimate incident reports.

Consider content as SPAM/JUNK if it contains:
- Promotional content, advertisements, or marketing material
- Irrelevant content not related to AI incidents, accidents, or safety issues
- Nonsensical or gibberish text
- Duplicate or test submissions
- Content that appears to be automated or bot-generated spam
- Personal attacks, harassment, or inappropriate content
- Content clearly unrelated to artificial intelligence incidents

Consider content as LEGITIMATE if it describes:
- Real or potential AI-related incidents, accidents, or safety issues
- Technical problems with AI systems
- Concerns about AI safety or ethics
- Reports of AI system malfunctions or unexpected behavior
- Even if poorly written, as long as it appears to be a genuine attempt to report an AI-related issue

Analyze the following content and respond with ONLY "SPAM" or "LEGITIMATE" - no other text or explanation.`

// Filter classifies report submissions via an LLM client. Classification
// failures never block a submission: any error or ambiguous answer is
// treated as legitimate.
type Filter struct {
	llmClient gollem.LLMClient
}

// New creates a spam filter backed by the given LLM client
func New(llmClient gollem.LLMClient) *Filter {
	return &Filter{
		llmClient: llmClient,
	}
}

// IsSpam reports whether the submitted content looks like spam or junk.
// Synthetic manual-entry URLs carry no signal and are excluded from the
// prompt.
func (f *Filter) IsSpam(ctx context.Context, title, description, url string) (bool, error) {
	logger := ctxlog.From(ctx)

	content := fmt.Sprintf("Title: %s\n\nDescription: %s", title, description)
	if u := strings.TrimSpace(url); u != "" && !strings.HasPrefix(u, "https://manual-entry-") {
		content += fmt.Sprintf("\n\nURL: %s", u)
	}

	prompt := fmt.Sprintf("%s\n\nContent to analyze:\n%s\n\nIs this content spam/junk or a legitimate AI incident report?",
		systemPrompt, content)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		verdict, err := f.classify(ctx, prompt)
		if err != nil {
			lastErr = err
			logger.Warn("Spam classification attempt failed",
				"attempt", attempt,
				"error", err,
			)
			continue
		}

		switch verdict {
		case "SPAM":
			return true, nil
		case "LEGITIMATE":
			return false, nil
		default:
			logger.Warn("Unclear spam filter response, defaulting to legitimate",
				"response", verdict,
			)
			return false, nil
		}
	}

	logger.Error("All spam filter attempts failed, defaulting to legitimate",
		"error", lastErr,
	)
	return false, nil
}

func (f *Filter) classify(ctx context.Context, prompt string) (string, error) {
	session, err := f.llmClient.NewSession(ctx)
	if err != nil {
		return "", err
	}

	response, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(response.Texts) == 0 {
		return "", nil
	}

	return strings.ToUpper(strings.TrimSpace(response.Texts[0])), nil
}
