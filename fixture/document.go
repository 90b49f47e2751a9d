package fixture

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Document is a fixture file: a model, operation scripts and checks of
// term values. Names are qualified ("NS.Name") and may use declared
// aliases.
type Document struct {
	Aliases map[string]string `yaml:"aliases" validate:"dive,keys,required,endkeys,required"`
	// Canonical declares the odata canonical functions in the model.
	Canonical   bool             `yaml:"canonical"`
	Types       []TypeDecl       `yaml:"types" validate:"dive"`
	Enums       []EnumDecl       `yaml:"enums" validate:"dive"`
	Terms       []TermDecl       `yaml:"terms" validate:"dive"`
	Operations  []OperationDecl  `yaml:"operations" validate:"dive"`
	Instances   []InstanceDecl   `yaml:"instances" validate:"dive"`
	Annotations []AnnotationDecl `yaml:"annotations" validate:"dive"`
	Checks      []Check          `yaml:"checks" validate:"dive"`
}

type TypeDecl struct {
	Name       string         `yaml:"name" validate:"required,qualified"`
	Base       string         `yaml:"base" validate:"omitempty,qualified"`
	Abstract   bool           `yaml:"abstract"`
	Open       bool           `yaml:"open"`
	Properties []PropertyDecl `yaml:"properties" validate:"dive"`
}

type PropertyDecl struct {
	Name     string `yaml:"name" validate:"required"`
	Type     string `yaml:"type" validate:"required"`
	Nullable *bool  `yaml:"nullable"`
}

type EnumDecl struct {
	Name       string           `yaml:"name" validate:"required,qualified"`
	Underlying string           `yaml:"underlying"`
	Flags      bool             `yaml:"flags"`
	Members    []EnumMemberDecl `yaml:"members" validate:"dive"`
}

type EnumMemberDecl struct {
	Name  string `yaml:"name" validate:"required"`
	Value int64  `yaml:"value"`
}

type TermDecl struct {
	Name      string   `yaml:"name" validate:"required,qualified"`
	Type      string   `yaml:"type" validate:"required"`
	AppliesTo []string `yaml:"appliesTo"`
}

type OperationDecl struct {
	Name    string      `yaml:"name" validate:"required,qualified"`
	Returns string      `yaml:"returns"`
	Params  []ParamDecl `yaml:"params" validate:"dive"`
	// Script is an expr-lang implementation; parameters are in scope by
	// name.
	Script string `yaml:"script"`
}

type ParamDecl struct {
	Name string `yaml:"name" validate:"required"`
	Type string `yaml:"type"`
}

type InstanceDecl struct {
	Name  string `yaml:"name" validate:"required,qualified"`
	Type  string `yaml:"type" validate:"required,qualified"`
	Value any    `yaml:"value"`
}

type AnnotationDecl struct {
	Target    string `yaml:"target" validate:"required"`
	Term      string `yaml:"term" validate:"required,qualified"`
	Qualifier string `yaml:"qualifier"`
	Expr      any    `yaml:"expr"`
}

// Check evaluates a term on a target. It passes when the result equals
// Expect, when Absent is set and nothing applies, or when Error is set and
// evaluation fails with a message containing it.
type Check struct {
	Name      string  `yaml:"name"`
	Target    string  `yaml:"target" validate:"required"`
	Term      string  `yaml:"term" validate:"required"`
	Qualifier *string `yaml:"qualifier"`
	Expect    any     `yaml:"expect"`
	Absent    bool    `yaml:"absent" validate:"excluded_with=Error"`
	Error     string  `yaml:"error"`
}

func (c *Check) String() string {
	if c.Name != "" {
		return c.Name
	}
	q := ""
	if c.Qualifier != nil {
		q = "#" + *c.Qualifier
	}
	return c.Target + " " + c.Term + q
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("qualified", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		i := strings.LastIndexByte(s, '.')
		return i > 0 && i < len(s)-1
	})
	return v
}

// Validate reports every invalid field of d.
func (d *Document) Validate() error {
	err := validate.Struct(d)
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}
	errs := make([]error, 0, len(valErrs))
	for _, ve := range valErrs {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalid, ve.Namespace(), formatValidationError(ve)))
	}
	return errors.Join(errs...)
}

func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "qualified":
		return fmt.Sprintf("%q is not a qualified name", ve.Value())
	case "excluded_with":
		return fmt.Sprintf("cannot be combined with %s", ve.Param())
	default:
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
