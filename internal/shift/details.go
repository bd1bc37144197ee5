package shift

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/cashdrawer/internal/drawer"
)

// Details are the identifying fields entered before a shift starts.
type Details struct {
	OrganizationName string `label:"organization name" validate:"max=120"`
	DrawerNumber     string `label:"drawer number" validate:"required,max=32"`
	CashierName      string `label:"cashier name" validate:"required,max=80"`
}

// normalize trims and NFC-normalizes every field.
func (d Details) normalize() Details {
	return Details{
		OrganizationName: clean(d.OrganizationName),
		DrawerNumber:     clean(d.DrawerNumber),
		CashierName:      clean(d.CashierName),
	}
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	return v
}

// validateDetails converts validator failures into a *drawer.ValidationError.
func validateDetails(v *validator.Validate, d Details) error {
	err := v.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &drawer.ValidationError{}
	for _, fe := range verrs {
		rule := fe.Tag()
		if rule == "max" {
			rule = "longer than " + fe.Param() + " characters"
		}
		out.Fields = append(out.Fields, drawer.FieldError{Field: fe.Field(), Rule: rule})
	}
	return out
}
