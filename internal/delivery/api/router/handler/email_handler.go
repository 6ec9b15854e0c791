package handler

import (
	"net/http"

	"portfolio/internal/delivery/api/response"
	"portfolio/internal/domain/entity"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EmailHandler serves the contact forms and the front-end error reports.
type EmailHandler struct {
	uc usecase.EmailUsecase
}

// NewEmailHandler is the constructor for EmailHandler, injected by Fx.
func NewEmailHandler(uc usecase.EmailUsecase) *EmailHandler {
	return &EmailHandler{uc: uc}
}

type submitEmailRequest struct {
	Type         string `json:"email_type" validate:"required,oneof=greetings opinion work error_report proposal review"`
	Name         string `json:"name" validate:"required,max=120"`
	Email        string `json:"email" validate:"required,email"`
	TimeZone     string `json:"tz" validate:"omitempty,timezone"`
	Message      string `json:"message" validate:"required_if=Type error_report,max=5000"`
	ArticleTitle string `json:"article_title" validate:"required_if=Type review"`
	ArticleLink  string `json:"article_link" validate:"omitempty,url"`
	ArticleImage string `json:"article_image" validate:"omitempty,url"`
}

type frontErrorRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Summary string `json:"summary" validate:"required"`
}

// SubmitEmail stores a contact form message and sends the replies.
// The response is 202 when the mail worker will send them, 201 when they were sent inline.
func (h *EmailHandler) SubmitEmail(c echo.Context) error {
	var req submitEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid email input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SubmitEmail(c.Request().Context(), &usecase.SubmitEmailInput{
		Type:         entity.EmailType(req.Type),
		Name:         req.Name,
		Email:        req.Email,
		TimeZone:     req.TimeZone,
		Message:      req.Message,
		ArticleTitle: req.ArticleTitle,
		ArticleLink:  req.ArticleLink,
		ArticleImage: req.ArticleImage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusCreated
	if output.Status == entity.EmailStatusQueued {
		status = http.StatusAccepted
	}

	return response.Success(c, status, output)
}

// LogFrontError records an error reported by the web front-end.
func (h *EmailHandler) LogFrontError(c echo.Context) error {
	var req frontErrorRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid error report")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	h.uc.LogFrontError(c.Request().Context(), &usecase.FrontErrorInput{
		Title:   req.Title,
		Summary: req.Summary,
	})

	return response.Success(c, http.StatusCreated, map[string]string{"status": "logged"})
}
