// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/recfmt/recfmtgo/internal/record"
)

// Stringify converts a field value to its display form for cell-oriented
// output. nil renders as the optional emptyValue (default "").
func Stringify(value any, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil {
		return emptyValue[0]
	}

	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		// JSON numbers arrive as float64; keep integers unadorned.
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return record.FormatTime(v)
	default:
		jsonBytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(jsonBytes)
	}
}

// scalarString converts a value to string form only when it is a scalar.
// Composite values (slices, maps, nested records) report ok=false.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool, int, int64, float64:
		return Stringify(v), true
	case time.Time:
		return record.FormatTime(v), true
	default:
		return "", false
	}
}
