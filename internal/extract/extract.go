// Package extract turns model output that should be JSON into typed values.
//
// Model replies are asked to contain only JSON but often arrive wrapped in
// markdown fences or surrounded by prose. Extract degrades through a fixed
// chain of attempts and, when nothing parses, hands back the caller's
// fallback value. It never returns an error.
package extract

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kaptinlin/jsonrepair"
	"github.com/sirupsen/logrus"
)

// Outcome names the tier that produced an extracted value.
type Outcome string

const (
	OutcomeDirect    Outcome = "direct"
	OutcomeRecovered Outcome = "recovered"
	OutcomeRepaired  Outcome = "repaired"
	OutcomeFallback  Outcome = "fallback"
)

var (
	taggedFence = regexp.MustCompile("```json\\s*")
	bareFence   = regexp.MustCompile("```\\s*")

	errNullDocument = errors.New("document is null")
)

// Extractor holds the logger and the optional hardening tiers.
// The zero configuration (New(logger)) matches the plain three-tier chain.
type Extractor struct {
	logger   logrus.FieldLogger
	repair   bool
	validate *validator.Validate
}

type Option func(*Extractor)

// WithRepair adds a jsonrepair pass over the fence-stripped text after the
// bracket recovery fails and before the fallback is used.
func WithRepair() Option {
	return func(e *Extractor) {
		e.repair = true
	}
}

// WithValidation rejects parsed values whose `validate` struct tags fail.
// A rejected value counts as a failed tier.
func WithValidation() Option {
	return func(e *Extractor) {
		e.validate = validator.New()
	}
}

func New(logger logrus.FieldLogger, opts ...Option) *Extractor {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	e := &Extractor{logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Normalize strips markdown code fences (bare or json-tagged) wherever they
// appear and trims surrounding whitespace.
func Normalize(text string) string {
	text = taggedFence.ReplaceAllString(text, "")
	text = bareFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Extract parses text into a T. It tries the fence-stripped text as a whole,
// then the span between the first opening bracket and the last matching
// closing bracket of the raw text, and finally returns fallback untouched.
func Extract[T any](e *Extractor, text string, fallback T) (T, Outcome) {
	if e == nil {
		e = New(nil)
	}
	if text == "" {
		return fallback, OutcomeFallback
	}

	cleaned := Normalize(text)
	v, err := decode[T](e, cleaned)
	if err == nil {
		return v, OutcomeDirect
	}
	e.logger.WithError(err).Warn("Direct JSON parse failed, attempting extraction")

	if span, ok := bracketSpan(text); ok {
		v, err := decode[T](e, span)
		if err == nil {
			return v, OutcomeRecovered
		}
		e.logger.WithError(err).Error("Failed to extract JSON")
	}

	if e.repair {
		repaired, err := jsonrepair.JSONRepair(cleaned)
		if err == nil {
			v, err = decode[T](e, repaired)
		}
		if err == nil {
			return v, OutcomeRepaired
		}
		e.logger.WithError(err).Error("Failed to repair JSON")
	}

	e.logger.WithField("length", len(text)).Error("No usable JSON in response, using fallback")
	return fallback, OutcomeFallback
}

// bracketSpan returns text from the first '{' or '[' (whichever comes first)
// through the last matching '}' or ']'.
func bracketSpan(text string) (string, bool) {
	obj := strings.IndexByte(text, '{')
	arr := strings.IndexByte(text, '[')

	open, closer := byte('['), byte(']')
	if obj > -1 && (arr == -1 || obj < arr) {
		open, closer = '{', '}'
	}

	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, closer)
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

func decode[T any](e *Extractor, s string) (T, error) {
	var v T
	if strings.TrimSpace(s) == "null" {
		return v, errNullDocument
	}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return v, err
	}
	if e.validate != nil {
		if err := e.check(reflect.ValueOf(v)); err != nil {
			return v, err
		}
	}
	return v, nil
}

func (e *Extractor) check(rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return e.check(rv.Elem())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := e.check(rv.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Struct:
		return e.validate.Struct(rv.Interface())
	}
	return nil
}
