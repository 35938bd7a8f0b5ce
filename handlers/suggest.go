package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/pkg/metrics"
)

// SuggestionRequest carries whatever the visitor has typed into the
// contact form so far. Every field is optional.
type SuggestionRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r SuggestionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.EmailFormat),
	)
}

type SuggestionResponse struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// BuildSuggestion composes a reply draft from the partial form. It is a
// pure function of its input: no store access, no clock, no randomness.
func BuildSuggestion(req SuggestionRequest) SuggestionResponse {
	subject := req.Subject
	if subject == "" {
		subject = "Let's connect"
	}
	introName := req.Name
	if introName == "" {
		introName = "there"
	}

	if utf8.RuneCountInString(req.Message) > 120 {
		subject = "Re: Your detailed message—thank you!"
	} else if req.Subject != "" && containsAnyFold(req.Subject, "hire", "project", "collab") {
		subject = "Excited to collaborate—here's a quick note"
	}

	bodyHint := ""
	if req.Message != "" {
		bodyHint = "\n\nI read your note about \"" + truncate(req.Message, 80) + "\"—let's explore it further."
	}

	message := "Hi " + introName + ",\n\n" +
		"Thanks for reaching out. I'm thrilled you stopped by my portfolio. " +
		"Share a bit more about your goals, timeline, and any references you love—" +
		"I'll propose a clear next step. " + bodyHint + "\n\n" +
		"Best,\nMr. [Full Name]"

	return SuggestionResponse{Subject: subject, Message: message}
}

// containsAnyFold reports whether s contains any keyword, case-insensitively.
func containsAnyFold(s string, keywords ...string) bool {
	lower := strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Suggest drafts a reply subject and body for the contact form. The
// endpoint never touches the store, so it works in disconnected mode.
func (h *PortfolioHandler) Suggest(c *gin.Context) {
	var req SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		unprocessable(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		unprocessable(c, err)
		return
	}
	metrics.SuggestionsGenerated.Inc()
	c.JSON(http.StatusOK, BuildSuggestion(req))
}
