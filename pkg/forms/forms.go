// Package forms defines the HTML forms consumed by the request handlers
// and validates them with go-playground/validator.
//
// A form that fails validation is re-rendered with per-field messages;
// validation never produces an error value, only an Errors map.
package forms

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Errors maps a form field name to a human-readable message.
type Errors map[string]string

// RegisterForm is the account registration form. All fields are required.
type RegisterForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Username  string `validate:"required,max=20"`
	Password  string `validate:"required"`
}

// LoginForm is the credential form for /login.
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// FeedbackForm is the shared add/update feedback form.
type FeedbackForm struct {
	Title   string `validate:"required,max=100"`
	Content string `validate:"required"`
}

// DecodeRegister populates a RegisterForm from POST data.
func DecodeRegister(r *http.Request) RegisterForm {
	return RegisterForm{
		FirstName: strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:  strings.TrimSpace(r.PostFormValue("last_name")),
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		Username:  strings.TrimSpace(r.PostFormValue("username")),
		Password:  r.PostFormValue("password"),
	}
}

// DecodeLogin populates a LoginForm from POST data.
func DecodeLogin(r *http.Request) LoginForm {
	return LoginForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
}

// DecodeFeedback populates a FeedbackForm from POST data.
func DecodeFeedback(r *http.Request) FeedbackForm {
	return FeedbackForm{
		Title:   strings.TrimSpace(r.PostFormValue("title")),
		Content: r.PostFormValue("content"),
	}
}

func (f RegisterForm) Validate() Errors { return check(f) }
func (f LoginForm) Validate() Errors    { return check(f) }
func (f FeedbackForm) Validate() Errors { return check(f) }

func check(form any) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"form": "invalid input"}
	}

	errs := make(Errors, len(ve))
	for _, fe := range ve {
		errs[fieldName(fe.Field())] = fieldError(fe)
	}
	return errs
}

// fieldName converts a struct field name to its form input name.
func fieldName(field string) string {
	switch field {
	case "FirstName":
		return "first_name"
	case "LastName":
		return "last_name"
	default:
		return strings.ToLower(field)
	}
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ReplaceAll(fieldName(fe.Field()), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
