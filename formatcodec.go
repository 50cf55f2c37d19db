package jadn

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// FormatEncodeFunc converts a decoded abstract value into the wire string
// for a value carrying this format, e.g. bytes -> "192.168.1.1" for
// ipv4-addr. Grounded on
// format_serialize_json.py's b2s_* family.
type FormatEncodeFunc func(value interface{}) (string, error)

// FormatDecodeFunc is the inverse of FormatEncodeFunc, grounded on
// format_serialize_json.py's s2b_*/s2a_* family.
type FormatDecodeFunc func(wire string) (interface{}, error)

type formatCodec struct {
	encode FormatEncodeFunc
	decode FormatDecodeFunc
}

// formatCodecs is the (BaseType, format name) -> (encode, decode) table,
// equivalent to format_serialize_json.py's FORMAT_SERIALIZE_FUNCTIONS. The
// codec consults its Binary entries in both verbose_str modes; its Array
// entries are not consulted by the codec.
func formatCodecs() map[BaseType]map[string]formatCodec {
	return map[BaseType]map[string]formatCodec{
		Binary: {
			"x":         {encodeHex, decodeHex},
			"eui":       {encodeEUI, decodeEUI},
			"ipv4-addr": {encodeIPv4Addr, decodeIPv4Addr},
			"ipv6-addr": {encodeIPv6Addr, decodeIPv6Addr},
		},
		Array: {
			"ipv4-net": {encodeIPv4Net, decodeIPv4Net},
			"ipv6-net": {encodeIPv6Net, decodeIPv6Net},
		},
	}
}

func getFormatEncodeFunction(table map[BaseType]map[string]formatCodec, baseType BaseType, format string) FormatEncodeFunc {
	if format != "" {
		if byName, ok := table[baseType]; ok {
			if fc, ok := byName[format]; ok {
				return fc.encode
			}
		}
	}
	switch baseType {
	case Binary:
		return encodeBase64URL
	default:
		return nil
	}
}

func getFormatDecodeFunction(table map[BaseType]map[string]formatCodec, baseType BaseType, format string) FormatDecodeFunc {
	if format != "" {
		if byName, ok := table[baseType]; ok {
			if fc, ok := byName[format]; ok {
				return fc.decode
			}
		}
	}
	switch baseType {
	case Binary:
		return decodeBase64URL
	default:
		return nil
	}
}

// encodeBase64URL/decodeBase64URL are the default Binary wire representation
// (no format given), equivalent to format_serialize_json.py's b2s_base64url
// / s2b_base64url.
func encodeBase64URL(value interface{}) (string, error) {
	b, ok := value.([]byte)
	if !ok {
		return "", fmt.Errorf("jadn: expected []byte, got %T", value)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func decodeBase64URL(wire string) (interface{}, error) {
	return base64.RawURLEncoding.DecodeString(wire)
}

func encodeHex(value interface{}) (string, error) {
	b, ok := value.([]byte)
	if !ok {
		return "", fmt.Errorf("jadn: expected []byte, got %T", value)
	}
	return hex.EncodeToString(b), nil
}

func decodeHex(wire string) (interface{}, error) {
	return hex.DecodeString(wire)
}

// encodeEUI/decodeEUI render an EUI-48/EUI-64 as colon-separated hex octets
// (e.g. "01:23:45:67:89:ab"), per the format's definition in definitions.py.
// The original Python format_serialize_json.py reuses b2s_hex/s2b_hex for
// "eui" unmodified, producing an unseparated hex string instead — a gap
// this implementation fixes rather than reproduces.
func encodeEUI(value interface{}) (string, error) {
	b, ok := value.([]byte)
	if !ok {
		return "", fmt.Errorf("jadn: expected []byte, got %T", value)
	}
	if len(b) != 6 && len(b) != 8 {
		return "", fmt.Errorf("jadn: eui must be 6 or 8 bytes, got %d", len(b))
	}
	octets := make([]string, len(b))
	for i, o := range b {
		octets[i] = hex.EncodeToString([]byte{o})
	}
	return strings.Join(octets, ":"), nil
}

func decodeEUI(wire string) (interface{}, error) {
	parts := strings.Split(wire, ":")
	if len(parts) != 6 && len(parts) != 8 {
		return nil, fmt.Errorf("jadn: eui must have 6 or 8 colon-separated octets, got %d", len(parts))
	}
	b := make([]byte, len(parts))
	for i, p := range parts {
		o, err := hex.DecodeString(p)
		if err != nil || len(o) != 1 {
			return nil, fmt.Errorf("jadn: invalid eui octet %q", p)
		}
		b[i] = o[0]
	}
	return b, nil
}

func encodeIPv4Addr(value interface{}) (string, error) {
	b, ok := value.([]byte)
	if !ok || len(b) != 4 {
		return "", fmt.Errorf("jadn: ipv4-addr must be 4 bytes")
	}
	return net.IP(b).String(), nil
}

func decodeIPv4Addr(wire string) (interface{}, error) {
	ip := net.ParseIP(wire)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("jadn: invalid ipv4-addr %q", wire)
	}
	return []byte(ip.To4()), nil
}

func encodeIPv6Addr(value interface{}) (string, error) {
	b, ok := value.([]byte)
	if !ok || len(b) != 16 {
		return "", fmt.Errorf("jadn: ipv6-addr must be 16 bytes")
	}
	return net.IP(b).String(), nil
}

func decodeIPv6Addr(wire string) (interface{}, error) {
	ip := net.ParseIP(wire)
	if ip == nil || ip.To4() != nil {
		return nil, fmt.Errorf("jadn: invalid ipv6-addr %q", wire)
	}
	return []byte(ip.To16()), nil
}

// encodeIPv4Net/decodeIPv4Net convert the abstract (bytes, prefix-length)
// tuple to/from CIDR notation, equivalent to format_serialize_json.py's
// a2s_ipv4_net/s2a_ipv4_net.
func encodeIPv4Net(value interface{}) (string, error) {
	pair, ok := value.([]interface{})
	if !ok || len(pair) != 2 {
		return "", fmt.Errorf("jadn: ipv4-net must be a (bytes, prefix) pair")
	}
	b, ok := pair[0].([]byte)
	if !ok || len(b) != 4 {
		return "", fmt.Errorf("jadn: ipv4-net address must be 4 bytes")
	}
	prefix, ok := toInt(pair[1])
	if !ok {
		return "", fmt.Errorf("jadn: ipv4-net prefix length must be an integer")
	}
	return fmt.Sprintf("%s/%d", net.IP(b).String(), prefix), nil
}

func decodeIPv4Net(wire string) (interface{}, error) {
	addr, prefix, err := splitCIDR(wire)
	if err != nil {
		return nil, err
	}
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("jadn: invalid ipv4-net %q", wire)
	}
	return []interface{}{[]byte(ip.To4()), prefix}, nil
}

func encodeIPv6Net(value interface{}) (string, error) {
	pair, ok := value.([]interface{})
	if !ok || len(pair) != 2 {
		return "", fmt.Errorf("jadn: ipv6-net must be a (bytes, prefix) pair")
	}
	b, ok := pair[0].([]byte)
	if !ok || len(b) != 16 {
		return "", fmt.Errorf("jadn: ipv6-net address must be 16 bytes")
	}
	prefix, ok := toInt(pair[1])
	if !ok {
		return "", fmt.Errorf("jadn: ipv6-net prefix length must be an integer")
	}
	return fmt.Sprintf("%s/%d", net.IP(b).String(), prefix), nil
}

func decodeIPv6Net(wire string) (interface{}, error) {
	addr, prefix, err := splitCIDR(wire)
	if err != nil {
		return nil, err
	}
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() != nil {
		return nil, fmt.Errorf("jadn: invalid ipv6-net %q", wire)
	}
	return []interface{}{[]byte(ip.To16()), prefix}, nil
}

func splitCIDR(wire string) (addr string, prefix int, err error) {
	slash := strings.IndexByte(wire, '/')
	if slash == -1 {
		return "", 0, fmt.Errorf("jadn: %q is not in CIDR notation", wire)
	}
	prefix, err = strconv.Atoi(wire[slash+1:])
	if err != nil {
		return "", 0, fmt.Errorf("jadn: invalid prefix length in %q", wire)
	}
	return wire[:slash], prefix, nil
}
