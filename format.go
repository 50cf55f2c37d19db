package jadn

// FormatValidateFunc inspects an already-decoded abstract value and reports
// whether it satisfies a named format.
type FormatValidateFunc func(value interface{}) bool

// formatValidators is the (BaseType, format name) -> validator table,
// equivalent to format_validate.py's FORMAT_VALIDATE_FUNCTIONS merged with
// the JSON-Schema-delegated names format_validate.py adds via
// format_validators(), adapted here onto the Is* functions in formats.go
// instead of delegating to a second schema library.
func formatValidators() map[BaseType]map[string]FormatValidateFunc {
	return map[BaseType]map[string]FormatValidateFunc{
		String: {
			"email":                  isEmailValue,
			"hostname":               isHostnameValue,
			"date-time":              isDateTimeValue,
			"date":                   isDateValue,
			"time":                   isTimeValue,
			"duration":               isDurationValue,
			"uri":                    isURIValue,
			"uri-reference":          isURIReferenceValue,
			"uuid":                   isUUIDValue,
			"json-pointer":           isJSONPointerValue,
			"relative-json-pointer":  isRelativeJSONPointerValue,
			"regex":                  isRegexValue,
		},
		Binary: {
			"eui":        isEUIValue,
			"ipv4-addr":  isIPv4AddrValue,
			"ipv6-addr":  isIPv6AddrValue,
		},
		Array: {
			"ipv4-net": isIPv4NetValue,
			"ipv6-net": isIPv6NetValue,
		},
		Integer: {
			"i8":  isFixedWidthInt(8),
			"i16": isFixedWidthInt(16),
			"i32": isFixedWidthInt(32),
			"i64": isFixedWidthInt(64),
		},
	}
}

// getFormatValidateFunction looks up the validator for (baseType, format),
// falling back to an always-pass function when none is registered — an
// absent validator is not a Checker-time error (that's already enforced by
// ValidFormats), just a no-op at codec time, per format_validate.py's
// get_format_validate_function fallback behavior.
func getFormatValidateFunction(table map[BaseType]map[string]FormatValidateFunc, baseType BaseType, format string) FormatValidateFunc {
	if format == "" {
		return formatPass
	}
	if byName, ok := table[baseType]; ok {
		if fn, ok := byName[format]; ok {
			return fn
		}
	}
	return formatPass
}

func formatPass(interface{}) bool { return true }
