// Package web serves the registration form and the employees dashboard.
package web

import (
	"net/http"
	"time"

	"go-ems/internal/dashboard"
	"go-ems/internal/form"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	actionReset = "reset"
	fieldStatus = "message"
)

type fieldView struct {
	Name  string
	Label string
	Input string
	Value string
	Error string
}

type formPage struct {
	Fields      []fieldView
	Departments []string
	Today       string
	Message     string
}

var fieldLabels = map[form.Field]string{
	form.FieldName:  "Employee Name",
	form.FieldID:    "Employee Id",
	form.FieldEmail: "Email",
	form.FieldPhone: "Phone",
	form.FieldDept:  "Department",
	form.FieldDate:  "Date of Joining",
	form.FieldRole:  "Employee Role",
}

func inputType(f form.Field) string {
	switch f {
	case form.FieldDept:
		return "select"
	case form.FieldDate:
		return "date"
	}
	return "text"
}

type ValidateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type ValidateResponse struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type Handler struct {
	creator form.Creator
	loader  *dashboard.Loader
	now     func() time.Time
	logger  *zap.Logger
}

func NewHandler(creator form.Creator, loader *dashboard.Loader, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("web.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("web.handler")
	}
	return &Handler{creator: creator, loader: loader, now: time.Now, logger: l}
}

func (h *Handler) newController(opts ...form.Option) *form.Controller {
	opts = append([]form.Option{form.WithClock(h.now), form.WithLogger(h.logger)}, opts...)
	return form.NewController(h.creator, opts...)
}

func (h *Handler) render(c *gin.Context, ctrl *form.Controller) {
	values := ctrl.Values()
	errs := ctrl.Errors()

	page := formPage{
		Departments: form.Departments,
		Today:       h.now().Format(form.DateOfJoiningFmt),
		Message:     ctrl.Message(),
	}
	for _, f := range form.Fields {
		page.Fields = append(page.Fields, fieldView{
			Name:  string(f),
			Label: fieldLabels[f],
			Input: inputType(f),
			Value: values.Get(f),
			Error: errs[f],
		})
	}
	c.HTML(http.StatusOK, "form.html", page)
}

func (h *Handler) ShowForm(c *gin.Context) {
	h.render(c, h.newController())
}

// SubmitForm replays the posted inputs into a controller, then either resets
// or submits it. The status line survives a reset through a hidden input.
func (h *Handler) SubmitForm(c *gin.Context) {
	ctrl := h.newController(form.WithMessage(c.PostForm(fieldStatus)))
	for _, f := range form.Fields {
		if v, ok := c.GetPostForm(string(f)); ok {
			ctrl.SetField(f, v)
		}
	}

	if c.PostForm("action") == actionReset {
		ctrl.Reset()
		h.render(c, ctrl)
		return
	}

	if ctrl.Submit(c.Request.Context()) {
		h.logger.Info("employee submitted from form")
	}
	h.render(c, ctrl)
}

// Validate checks a single input as the user edits it.
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field is required"})
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{
		Field: req.Field,
		Error: form.ValidateField(form.Field(req.Field), req.Value),
	})
}

func (h *Handler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", h.loader.Load(c.Request.Context()))
}
