package notes

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/codecraf8/notesapi/pkg/models"
	"github.com/codecraf8/notesapi/pkg/rest"
)

// payload is the entity body accepted by POST and PUT. Pointer fields
// distinguish absent keys from zero values, so presence validation does not
// reject a legitimate priority of 0.
type payload struct {
	Title       *string `json:"title" validate:"required"`
	Description *string `json:"description" validate:"required"`
	CreatedAt   *string `json:"created_at" validate:"required"`
	CreatedBy   *string `json:"created_by" validate:"required"`
	Priority    *int    `json:"priority" validate:"required"`
}

func (p *payload) note() *models.Note {
	return &models.Note{
		Title:       *p.Title,
		Description: *p.Description,
		CreatedAt:   *p.CreatedAt,
		CreatedBy:   *p.CreatedBy,
		Priority:    *p.Priority,
	}
}

var validate = newValidator()

// newValidator reports field names by their json tag so validation errors
// speak the wire vocabulary.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodePayload reads and validates the request body. Malformed JSON and
// missing required fields both answer 400.
func decodePayload(req *rest.Request) (*payload, error) {
	var p payload
	if err := req.Decode(&p); err != nil {
		return nil, err
	}
	if err := validate.Struct(&p); err != nil {
		var missing []string
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				missing = append(missing, fe.Field())
			}
		}
		if len(missing) == 0 {
			return nil, rest.BadRequest("invalid request payload")
		}
		return nil, rest.BadRequest(fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}
	return &p, nil
}
