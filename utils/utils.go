// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/ava-labs/avalanchego/utils/perms"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

// NativeDecimals is the number of decimal places of the native value unit.
const NativeDecimals = 9

var ErrInvalidAmount = errors.New("invalid amount")

func ToID(bytes []byte) ids.ID {
	return ids.ID(hashing.ComputeHash256Array(bytes))
}

func InitSubDirectory(rootPath string, name string) (string, error) {
	p := path.Join(rootPath, name)
	return p, os.MkdirAll(p, perms.ReadWriteExecute)
}

func ErrBytes(err error) []byte {
	return []byte(err.Error())
}

// Outputs to stdout.
//
// e.g.,
//
//	Out("{{green}}{{bold}}hi there %q{{/}}", "aa")
//	Out("{{magenta}}{{bold}}hi therea{{/}} {{cyan}}{{underline}}b{{/}}")
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(formatter.ColorableStdOut, s)
}

// FormatBalance renders [bal] base units as a decimal amount.
func FormatBalance(bal uint64) string {
	whole := bal / pow10(NativeDecimals)
	frac := bal % pow10(NativeDecimals)
	return fmt.Sprintf("%d.%0*d", whole, NativeDecimals, frac)
}

// ParseBalance converts a decimal amount into base units without going
// through floating point.
func ParseBalance(bal string) (uint64, error) {
	bal = strings.TrimSpace(bal)
	whole, frac, _ := strings.Cut(bal, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, bal)
	}
	if len(frac) > NativeDecimals {
		return 0, fmt.Errorf("%w: more than %d decimals", ErrInvalidAmount, NativeDecimals)
	}
	var w uint64
	if whole != "" {
		var err error
		w, err = strconv.ParseUint(whole, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
		}
	}
	var f uint64
	if frac != "" {
		var err error
		f, err = strconv.ParseUint(frac+strings.Repeat("0", NativeDecimals-len(frac)), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
		}
	}
	if w > (^uint64(0)-f)/pow10(NativeDecimals) {
		return 0, fmt.Errorf("%w: overflow", ErrInvalidAmount)
	}
	return w*pow10(NativeDecimals) + f, nil
}

func pow10(n int) uint64 {
	v := uint64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// SaveBytes writes [b] to [filename].
func SaveBytes(filename string, b []byte) error {
	return os.WriteFile(filename, b, perms.ReadWrite)
}

// LoadBytes reads [filename] and checks it holds exactly [expectedSize]
// bytes. A negative size skips the check.
func LoadBytes(filename string, expectedSize int) ([]byte, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if expectedSize != -1 && len(bytes) != expectedSize {
		return nil, fmt.Errorf("expected %d bytes but got %d", expectedSize, len(bytes))
	}
	return bytes, nil
}
