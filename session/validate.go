//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package session

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var reIPv4 = regexp.MustCompile(
	`^(([01]?\d\d?|2[0-4]\d|25[0-5])\.){3}([01]?\d\d?|2[0-4]\d|25[0-5])$`)

// Validation errors.
var (
	ErrAddress       = errors.New("invalid IPv4 address")
	ErrPort          = errors.New("port must be in range 1025-65535")
	ErrBitWidth      = errors.New("bit width must be 8, 16, 32, or 64")
	ErrSecurityParam = errors.New(
		"security parameter must be 80, 112, 128, 192, or 256")
)

// Field identifies a session parameter.
type Field int

// Session parameter fields in prompt order.
const (
	FieldAddress Field = iota
	FieldPort
	FieldBitWidth
	FieldSecurityParam
)

var fieldNames = map[Field]string{
	FieldAddress:       "addr",
	FieldPort:          "port",
	FieldBitWidth:      "bitlen",
	FieldSecurityParam: "secparam",
}

func (f Field) String() string {
	name, ok := fieldNames[f]
	if ok {
		return name
	}
	return "{Field " + strconv.Itoa(int(f)) + "}"
}

// Raw holds the unvalidated session parameter strings as entered by
// the operator.
type Raw struct {
	Address       string
	Port          string
	BitWidth      string
	SecurityParam string
}

// Result is the result of the session parameter validation. It is
// either Valid or Invalid.
type Result interface {
	isResult()
}

// Valid is a successful validation result.
type Valid struct {
	Config Config
}

// Invalid is a failed validation result. Field is the first invalid
// field in prompt order.
type Invalid struct {
	Field Field
	Err   error
}

func (Valid) isResult()   {}
func (Invalid) isResult() {}

func (i Invalid) Error() string {
	return i.Field.String() + ": " + i.Err.Error()
}

// Validate validates the raw session parameters. Empty fields take
// their default values.
func Validate(raw Raw) Result {
	config := Default()
	var err error

	config.address, err = ValidateAddress(raw.Address)
	if err != nil {
		return Invalid{Field: FieldAddress, Err: err}
	}
	config.port, err = ValidatePort(raw.Port)
	if err != nil {
		return Invalid{Field: FieldPort, Err: err}
	}
	config.bitWidth, err = ValidateBitWidth(raw.BitWidth)
	if err != nil {
		return Invalid{Field: FieldBitWidth, Err: err}
	}
	config.securityParam, err = ValidateSecurityParam(raw.SecurityParam)
	if err != nil {
		return Invalid{Field: FieldSecurityParam, Err: err}
	}
	return Valid{Config: config}
}

// ValidateAddress validates the IPv4 address. An empty address
// selects DefaultAddress.
func ValidateAddress(val string) (string, error) {
	if isEmpty(val) {
		return DefaultAddress, nil
	}
	if !reIPv4.MatchString(val) {
		return "", errors.Wrapf(ErrAddress, "'%s'", val)
	}
	return val, nil
}

// ValidatePort validates the TCP port. An empty port selects
// DefaultPort.
func ValidatePort(val string) (int, error) {
	if isEmpty(val) {
		return DefaultPort, nil
	}
	port, err := parseInt(val, ErrPort)
	if err != nil {
		return 0, err
	}
	if port <= 1024 || port > 65535 {
		return 0, errors.Wrapf(ErrPort, "%d", port)
	}
	return port, nil
}

// ValidateBitWidth validates the input bit width. An empty value
// selects DefaultBitWidth.
func ValidateBitWidth(val string) (int, error) {
	if isEmpty(val) {
		return DefaultBitWidth, nil
	}
	bits, err := parseInt(val, ErrBitWidth)
	if err != nil {
		return 0, err
	}
	for _, w := range BitWidths {
		if w == bits {
			return bits, nil
		}
	}
	return 0, errors.Wrapf(ErrBitWidth, "%d", bits)
}

// ValidateSecurityParam validates the security parameter. An empty
// value selects DefaultSecurityParam.
func ValidateSecurityParam(val string) (int, error) {
	if isEmpty(val) {
		return DefaultSecurityParam, nil
	}
	bits, err := parseInt(val, ErrSecurityParam)
	if err != nil {
		return 0, err
	}
	if _, ok := TierOf(bits); !ok {
		return 0, errors.Wrapf(ErrSecurityParam, "%d", bits)
	}
	return bits, nil
}

func isEmpty(val string) bool {
	return len(strings.TrimSpace(val)) == 0
}

func parseInt(val string, kind error) (int, error) {
	v, err := strconv.Atoi(val)
	if err != nil {
		return 0, errors.Wrapf(kind, "'%s'", val)
	}
	return v, nil
}
