// Credit to https://github.com/santhosh-tekuri/jsonschema for the string
// format validators below.
package jadn

import (
	"errors"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	errIPv6AddressNotEnclosed = errors.New("jadn: IPv6 address in a URI must be enclosed in brackets")
	errInvalidIPv6Address     = errors.New("jadn: invalid IPv6 address")
)

// --- String-kind format validators (operate on the decoded string value) ---

func isDateTimeValue(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	if len(s) < 20 {
		return false
	}
	if s[10] != 'T' && s[10] != 't' {
		return false
	}
	return isDateValue(s[:10]) && isTimeValue(s[11:])
}

func isDateValue(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isTimeValue(v interface{}) bool {
	str, ok := v.(string)
	if !ok {
		return false
	}
	if len(str) < 9 || str[2] != ':' || str[5] != ':' {
		return false
	}
	isInRange := func(str string, min, max int) (int, bool) {
		n, err := strconv.Atoi(str)
		if err != nil || n < min || n > max {
			return 0, false
		}
		return n, true
	}
	var h, m, s int
	var ok2 bool
	if h, ok2 = isInRange(str[0:2], 0, 23); !ok2 {
		return false
	}
	if m, ok2 = isInRange(str[3:5], 0, 59); !ok2 {
		return false
	}
	if s, ok2 = isInRange(str[6:8], 0, 60); !ok2 {
		return false
	}
	str = str[8:]
	if len(str) == 0 {
		return false
	}
	if str[0] == '.' {
		str = str[1:]
		var numDigits int
		for str != "" && str[0] >= '0' && str[0] <= '9' {
			numDigits++
			str = str[1:]
		}
		if numDigits == 0 {
			return false
		}
	}
	if len(str) == 0 {
		return false
	}
	if str[0] == 'z' || str[0] == 'Z' {
		if len(str) != 1 {
			return false
		}
	} else {
		if len(str) != 6 || str[3] != ':' {
			return false
		}
		var sign int
		switch str[0] {
		case '+':
			sign = -1
		case '-':
			sign = +1
		default:
			return false
		}
		var zh, zm int
		if zh, ok2 = isInRange(str[1:3], 0, 23); !ok2 {
			return false
		}
		if zm, ok2 = isInRange(str[4:6], 0, 59); !ok2 {
			return false
		}
		hm := (h*60 + m) + sign*(zh*60+zm)
		if hm < 0 {
			hm += 24 * 60
		}
		h, m = hm/60, hm%60
	}
	if s == 60 && (h != 23 || m != 59) {
		return false
	}
	return true
}

func isDurationValue(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	if len(s) == 0 || s[0] != 'P' {
		return false
	}
	s = s[1:]
	parseUnits := func() (units string, ok bool) {
		for len(s) > 0 && s[0] != 'T' {
			digits := false
			for len(s) != 0 && s[0] >= '0' && s[0] <= '9' {
				digits = true
				s = s[1:]
			}
			if !digits || len(s) == 0 {
				return units, false
			}
			units += s[:1]
			s = s[1:]
		}
		return units, true
	}
	units, ok := parseUnits()
	if !ok {
		return false
	}
	if units == "W" {
		return len(s) == 0
	}
	if len(units) > 0 {
		if !strings.Contains("YMD", units) {
			return false
		}
		if len(s) == 0 {
			return true
		}
	}
	if len(s) == 0 || s[0] != 'T' {
		return false
	}
	s = s[1:]
	units, ok = parseUnits()
	return ok && len(s) == 0 && len(units) > 0 && strings.Contains("HMS", units)
}

func isHostnameValue(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimSuffix(s, ".")
	if len(s) > 253 || len(s) == 0 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if labelLen := len(label); labelLen < 1 || labelLen > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, c := range label {
			if valid := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || (c == '-'); !valid {
				return false
			}
		}
	}
	return true
}

func isEmailValue(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	if len(s) > 254 {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at == -1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if len(local) > 64 {
		return false
	}
	if len(domain) >= 2 && domain[0] == '[' && domain[len(domain)-1] == ']' {
		ip := domain[1 : len(domain)-1]
		if strings.HasPrefix(ip, "IPv6:") {
			return isDottedIPv6(strings.TrimPrefix(ip, "IPv6:"))
		}
		return isDottedIPv4(ip)
	}
	if !isHostnameValue(domain) {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

func isDottedIPv4(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, group := range groups {
		n, err := strconv.Atoi(group)
		if err != nil || n < 0 || n > 255 {
			return false
		}
		if n != 0 && group[0] == '0' {
			return false
		}
	}
	return true
}

func isDottedIPv6(s string) bool {
	if !strings.Contains(s, ":") {
		return false
	}
	return net.ParseIP(s) != nil
}

func urlParse(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	hostname := u.Hostname()
	if strings.IndexByte(hostname, ':') != -1 {
		if strings.IndexByte(u.Host, '[') == -1 || strings.IndexByte(u.Host, ']') == -1 {
			return nil, errIPv6AddressNotEnclosed
		}
		if !isDottedIPv6(hostname) {
			return nil, errInvalidIPv6Address
		}
	}
	return u, nil
}

func isURIValue(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	u, err := urlParse(s)
	return err == nil && u.IsAbs()
}

func isURIReferenceValue(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := urlParse(s)
	return err == nil && !strings.Contains(s, `\`)
}

func isJSONPointerValue(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	if s != "" && !strings.HasPrefix(s, "/") {
		return false
	}
	for _, item := range strings.Split(s, "/") {
		for i := 0; i < len(item); i++ {
			if item[i] == '~' {
				if i == len(item)-1 {
					return false
				}
				switch item[i+1] {
				case '0', '1':
				default:
					return false
				}
			}
		}
	}
	return true
}

func isRelativeJSONPointerValue(v interface{}) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}
	switch {
	case s[0] == '0':
		s = s[1:]
	case s[0] >= '0' && s[0] <= '9':
		for s != "" && s[0] >= '0' && s[0] <= '9' {
			s = s[1:]
		}
	default:
		return false
	}
	return s == "#" || isJSONPointerValue(s)
}

func isUUIDValue(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	parseHex := func(n int) bool {
		for n > 0 {
			if len(s) == 0 {
				return false
			}
			hex := (s[0] >= '0' && s[0] <= '9') || (s[0] >= 'a' && s[0] <= 'f') || (s[0] >= 'A' && s[0] <= 'F')
			if !hex {
				return false
			}
			s = s[1:]
			n--
		}
		return true
	}
	groups := []int{8, 4, 4, 4, 12}
	for i, numDigits := range groups {
		if !parseHex(numDigits) {
			return false
		}
		if i == len(groups)-1 {
			break
		}
		if len(s) == 0 || s[0] != '-' {
			return false
		}
		s = s[1:]
	}
	return len(s) == 0
}

func isRegexValue(v interface{}) bool {
	pattern, ok := v.(string)
	if !ok {
		return false
	}
	_, err := regexp.Compile(pattern)
	return err == nil
}

// --- Binary-kind format validators (operate on decoded []byte) ---
// Grounded on format_validate.py's b_mac_addr/b_ipv4_addr/b_ipv6_addr,
// which check fixed byte lengths rather than parsing a wire string: these
// validate the abstract value after format_decode has already produced
// bytes, rather than the wire string directly.

func isEUIValue(v interface{}) bool {
	b, ok := v.([]byte)
	if !ok {
		return false
	}
	return len(b) == 6 || len(b) == 8
}

func isIPv4AddrValue(v interface{}) bool {
	b, ok := v.([]byte)
	return ok && len(b) == 4
}

func isIPv6AddrValue(v interface{}) bool {
	b, ok := v.([]byte)
	return ok && len(b) == 16
}

// --- Array-kind format validators: (bytes, prefix-length) pairs ---

func isIPv4NetValue(v interface{}) bool {
	pair, ok := v.([]interface{})
	if !ok || len(pair) != 2 {
		return false
	}
	b, ok := pair[0].([]byte)
	if !ok || len(b) != 4 {
		return false
	}
	prefix, ok := toInt(pair[1])
	return ok && prefix >= 0 && prefix <= 32
}

func isIPv6NetValue(v interface{}) bool {
	pair, ok := v.([]interface{})
	if !ok || len(pair) != 2 {
		return false
	}
	b, ok := pair[0].([]byte)
	if !ok || len(b) != 16 {
		return false
	}
	prefix, ok := toInt(pair[1])
	return ok && prefix >= 0 && prefix <= 128
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// --- Integer-kind format validators: fixed-width signed range checks ---

func isFixedWidthInt(bits int) FormatValidateFunc {
	max := int64(1)<<(uint(bits)-1) - 1
	min := -(int64(1) << (uint(bits) - 1))
	return func(v interface{}) bool {
		n, ok := toInt64(v)
		if !ok {
			return false
		}
		return n >= min && n <= max
	}
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
