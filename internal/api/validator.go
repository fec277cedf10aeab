package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/nhalm/canonlog"
)

var validate *validator.Validate

var (
	integerRegex = regexp.MustCompile(`^[-+]?(0|[1-9][0-9]*)$`)
	numberRegex  = regexp.MustCompile(`^[-+]?([0-9]*\.)?[0-9]+$`)
)

func init() {
	validate = validator.New()

	custom := map[string]validator.Func{
		"integer":    isInteger,
		"number":     isNumber,
		"positive":   isPositive,
		"strictbool": isStrictBool,
	}
	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
}

func isInteger(fl validator.FieldLevel) bool {
	return integerRegex.MatchString(fl.Field().String())
}

// isNumber accepts plain decimals, including a bare fractional part like ".5".
func isNumber(fl validator.FieldLevel) bool {
	return numberRegex.MatchString(fl.Field().String())
}

func isPositive(fl validator.FieldLevel) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
	return err == nil && f > 0
}

func isStrictBool(fl validator.FieldLevel) bool {
	_, ok := parseBool(fl.Field().String())
	return ok
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

// ValidationResult lists violations in rule declaration order.
type ValidationResult []Violation

// Input is the parsed request data rules are evaluated against.
type Input struct {
	Params map[string]string
	Body   map[string]any
}

func (in Input) lookup(field string, loc Location) (any, bool) {
	if loc == LocationParams {
		v, ok := in.Params[field]
		return v, ok
	}
	v, ok := in.Body[field]
	return v, ok
}

func (in Input) Param(name string) string {
	return in.Params[name]
}

func (in Input) String(field string) string {
	return textOf(in.Body[field])
}

func (in Input) Float(field string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(in.String(field)), 64)
	return f
}

// Bool reports the field as a boolean and whether it held one.
func (in Input) Bool(field string) (bool, bool) {
	return parseBool(in.String(field))
}

// textOf renders a decoded JSON value the way rules see it: missing and
// null are empty, numbers are rendered in plain decimal form.
func textOf(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return val.String()
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

// Validate runs every rule against in.
func Validate(rules RuleSet, in Input) ValidationResult {
	result := ValidationResult{}
	for _, rule := range rules {
		raw, present := in.lookup(rule.Field, rule.Location)
		if err := validate.Var(textOf(raw), rule.Tag); err == nil {
			continue
		}

		violation := Violation{
			Type:     "field",
			Msg:      rule.Message,
			Path:     rule.Field,
			Location: rule.Location,
		}
		if present {
			violation.Value = raw
		}
		result = append(result, violation)
	}
	return result
}

var errBodyNotObject = errors.New("request body must be a JSON object")

func parseInput(r *http.Request, rules RuleSet) (Input, error) {
	in := Input{
		Params: map[string]string{},
		Body:   map[string]any{},
	}

	for _, rule := range rules {
		if rule.Location == LocationParams {
			in.Params[rule.Field] = chi.URLParam(r, rule.Field)
		}
	}

	if !rules.reads(LocationBody) || r.Body == nil {
		return in, nil
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return in, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return in, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var body any
	if err := dec.Decode(&body); err != nil {
		return in, fmt.Errorf("decode body: %w", err)
	}
	obj, ok := body.(map[string]any)
	if !ok {
		return in, errBodyNotObject
	}
	in.Body = obj

	return in, nil
}

type inputKey struct{}

// ValidateInput parses and validates the request against rules. On failure it
// writes the 400 violations list and the wrapped handler does not run.
func ValidateInput(rules RuleSet) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			in, err := parseInput(r, rules)
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				RequestTooLarge(w, r, err, "request body too large")
				return
			}
			if err != nil {
				canonlog.AddRequestError(r.Context(), err)
				ValidationFailed(w, r, ValidationResult{{
					Type:     "field",
					Msg:      "invalid request body",
					Location: LocationBody,
				}})
				return
			}

			if result := Validate(rules, in); len(result) > 0 {
				ValidationFailed(w, r, result)
				return
			}

			ctx := context.WithValue(r.Context(), inputKey{}, in)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func inputFromContext(ctx context.Context) Input {
	in, _ := ctx.Value(inputKey{}).(Input)
	return in
}
