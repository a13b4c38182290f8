package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/forms-platform/pkg/fault"
	"github.com/linskybing/forms-platform/pkg/response"
)

func init() {
	// Report json field names in validation messages.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	}
}

// bindErrorMessage turns a binding failure into a message fit for the
// frontend.
func bindErrorMessage(err error) string {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		msgs := make([]string, 0, len(verr))
		for _, fe := range verr {
			lbl := fieldLabel(fe.Namespace())

			var msg string
			switch fe.Tag() {
			case "required":
				msg = fmt.Sprintf("%s is required", lbl)
			case "min":
				msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
			case "max":
				msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
			case "email":
				msg = fmt.Sprintf("%s must be a valid email address", lbl)
			default:
				msg = fmt.Sprintf("%s is invalid", lbl)
			}
			msgs = append(msgs, msg)
		}
		return strings.Join(msgs, "; ")
	}

	if fault.Is(err, fault.KindValidation) {
		return fault.MessageOf(err, "Invalid input")
	}
	return "Invalid input"
}

// fieldLabel drops the struct name from a validator namespace, e.g.
// "FormInput.questions[0].id" becomes "questions[0].id".
func fieldLabel(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return strings.ReplaceAll(ns[i+1:], "_", " ")
	}
	return ns
}

func abortBind(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{
		Error: bindErrorMessage(err),
		Kind:  fault.KindValidation.String(),
	})
}

// statusOf maps a fault kind to an HTTP status. Store failures are the
// client's problem on writes and the server's on reads.
func statusOf(err error, write bool) int {
	switch fault.KindOf(err) {
	case fault.KindValidation, fault.KindConflict:
		return http.StatusBadRequest
	case fault.KindNotFound:
		return http.StatusNotFound
	case fault.KindPersistence:
		if write {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error, write bool) {
	_ = c.Error(err)
	c.JSON(statusOf(err, write), response.ErrorResponse{
		Error: fault.MessageOf(err, "Internal server error"),
		Kind:  fault.KindOf(err).String(),
	})
}
