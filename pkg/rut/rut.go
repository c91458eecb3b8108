package rut

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinBodyLength is the minimum number of digits a RUT body must have.
const MinBodyLength = 7

// Code identifies the outcome of a validation. Codes double as translation keys.
type Code string

const (
	CodeOK                Code = "rut.valid"
	CodeRequired          Code = "rut.required"
	CodeInvalidFormat     Code = "rut.invalid_format"
	CodeTooShort          Code = "rut.too_short"
	CodeInvalidCheckDigit Code = "rut.invalid_check_digit"
)

var messages = map[Code]string{
	CodeOK:                "RUT válido",
	CodeRequired:          "RUT requerido",
	CodeInvalidFormat:     "Formato de RUT inválido",
	CodeTooShort:          "RUT demasiado corto",
	CodeInvalidCheckDigit: "Dígito verificador incorrecto",
}

// Message returns the default Spanish message for the code.
func (c Code) Message() string {
	return messages[c]
}

// Result describes the outcome of Validate.
type Result struct {
	Valid   bool
	Message string
	Code    Code
}

func result(code Code) Result {
	return Result{Valid: code == CodeOK, Message: code.Message(), Code: code}
}

// Normalize strips every character except digits and k/K, upper-casing K.
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == 'k' || c == 'K':
			b.WriteByte('K')
		}
	}
	return b.String()
}

// Split returns the normalized body and check character of input.
// Both are empty when the normalized input is shorter than two characters.
func Split(input string) (body, dv string) {
	n := Normalize(input)
	if len(n) < 2 {
		return "", ""
	}
	return n[:len(n)-1], n[len(n)-1:]
}

// CheckDigit computes the Module-11 check character for a numeric body.
func CheckDigit(body string) (byte, error) {
	if body == "" {
		return 0, ErrInvalidBody
	}

	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: unexpected character %q", ErrInvalidBody, c)
		}
		sum += int(c-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	switch check := 11 - sum%11; check {
	case 11:
		return '0', nil
	case 10:
		return 'K', nil
	default:
		return byte('0' + check), nil
	}
}

// Validate checks input against the Module-11 checksum.
// Failures are reported through the returned Result, never as errors.
func Validate(input string) Result {
	if strings.TrimSpace(input) == "" {
		return result(CodeRequired)
	}

	n := Normalize(input)
	if len(n) < 2 {
		return result(CodeInvalidFormat)
	}

	body, dv := n[:len(n)-1], n[len(n)-1]
	if len(body) < MinBodyLength {
		return result(CodeTooShort)
	}

	expected, err := CheckDigit(body)
	if err != nil {
		// K is only allowed in the check position
		return result(CodeInvalidFormat)
	}
	if expected != dv {
		return result(CodeInvalidCheckDigit)
	}

	return result(CodeOK)
}

// IsValid reports whether input is a valid RUT.
func IsValid(input string) bool {
	return Validate(input).Valid
}

// Format renders input as NN.NNN.NNN-C without validating it.
// Inputs that normalize to fewer than two characters are returned normalized.
func Format(input string) string {
	n := Normalize(input)
	if len(n) < 2 {
		return n
	}
	return groupThousands(n[:len(n)-1]) + "-" + n[len(n)-1:]
}

func groupThousands(body string) string {
	if len(body) <= 3 {
		return body
	}

	var b strings.Builder
	b.Grow(len(body) + len(body)/3)
	lead := len(body) % 3
	if lead > 0 {
		b.WriteString(body[:lead])
	}
	for i := lead; i < len(body); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(body[i : i+3])
	}
	return b.String()
}

// RUT is a parsed, valid identifier.
type RUT struct {
	Body int
	DV   byte
}

// Parse validates input and returns its structured form.
func Parse(input string) (RUT, error) {
	res := Validate(input)
	if !res.Valid {
		return RUT{}, fmt.Errorf("%w: %s", ErrInvalidRUT, res.Message)
	}

	body, dv := Split(input)
	n, err := strconv.Atoi(body)
	if err != nil {
		return RUT{}, errors.Join(ErrInvalidRUT, err)
	}
	return RUT{Body: n, DV: dv[0]}, nil
}

// FromBody builds a RUT for body with its computed check digit.
// Negative bodies are treated as zero.
func FromBody(body int) RUT {
	if body < 0 {
		body = 0
	}
	dv, _ := CheckDigit(strconv.Itoa(body))
	return RUT{Body: body, DV: dv}
}

// String returns the canonical dotted form.
func (r RUT) String() string {
	return groupThousands(strconv.Itoa(r.Body)) + "-" + string(r.DV)
}

// Compact returns the body and check character separated by a hyphen only.
func (r RUT) Compact() string {
	return strconv.Itoa(r.Body) + "-" + string(r.DV)
}

// IsZero reports whether r is the zero value.
func (r RUT) IsZero() bool {
	return r.Body == 0 && r.DV == 0
}
