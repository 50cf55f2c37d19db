package jadn

import (
	"fmt"
	"regexp"
)

// encodeType and decodeType dispatch on BaseType, grouping checks by JADN's
// twelve base types the way a keyword-dispatch validator groups checks by
// JSON instance kind. Every branch produces at most one combined
// *ValidationError instead of a result tree.

func (c *Codec) encodeType(entry *symbolEntry, value interface{}, p path) (interface{}, *ValidationError) {
	td := entry.def
	switch td.BaseType {
	case Binary:
		return c.encodeBinary(td, entry.typeOpts, value, p)
	case Boolean:
		return c.encodeBoolean(td, value, p)
	case Integer:
		return c.encodeInteger(td, entry.typeOpts, value, p)
	case Number:
		return c.encodeNumber(td, entry.typeOpts, value, p)
	case Null:
		return c.encodeNull(td, value, p)
	case String:
		return c.encodeString(td, entry.typeOpts, value, p)
	case Enumerated:
		return c.encodeEnumerated(entry, value, p)
	case Choice:
		return c.encodeChoice(entry, value, p)
	case Array, Record, Map:
		return c.encodeFielded(entry, value, p)
	case ArrayOf:
		return c.encodeArrayOf(entry, value, p)
	case MapOf:
		return c.encodeMapOf(entry, value, p)
	}
	return nil, errStructural(td.TypeName, string(td.BaseType), "unknown base type")
}

func (c *Codec) decodeType(entry *symbolEntry, wire interface{}, p path) (interface{}, *ValidationError) {
	td := entry.def
	switch td.BaseType {
	case Binary:
		return c.decodeBinary(td, entry.typeOpts, wire, p)
	case Boolean:
		return c.decodeBoolean(td, wire, p)
	case Integer:
		return c.decodeInteger(td, entry.typeOpts, wire, p)
	case Number:
		return c.decodeNumber(td, entry.typeOpts, wire, p)
	case Null:
		return c.decodeNull(td, wire, p)
	case String:
		return c.decodeString(td, entry.typeOpts, wire, p)
	case Enumerated:
		return c.decodeEnumerated(entry, wire, p)
	case Choice:
		return c.decodeChoice(entry, wire, p)
	case Array, Record, Map:
		return c.decodeFielded(entry, wire, p)
	case ArrayOf:
		return c.decodeArrayOf(entry, wire, p)
	case MapOf:
		return c.decodeMapOf(entry, wire, p)
	}
	return nil, errStructural(td.TypeName, string(td.BaseType), "unknown base type")
}

// --- Binary ---

func (c *Codec) encodeBinary(td *TypeDef, opts map[string]interface{}, value interface{}, p path) (interface{}, *ValidationError) {
	b, ok := value.([]byte)
	if !ok {
		return nil, errStructural(td.TypeName, string(Binary), "expected a byte sequence, got {kind}", map[string]any{"kind": kindOf(value)}).WithPath(p.String())
	}
	if err := c.checkBinaryBounds(td, opts, b, p); err != nil {
		return nil, err
	}
	format, _ := opts["format"].(string)
	if !getFormatValidateFunction(c.formatValidate, Binary, format)(b) {
		return nil, errPattern(td.TypeName, string(Binary), "value does not satisfy format {format}", map[string]any{"format": format}).WithPath(p.String())
	}
	encode := getFormatEncodeFunction(c.formatCodec, Binary, format)
	wire, err := encode(b)
	if err != nil {
		return nil, errPattern(td.TypeName, string(Binary), err.Error()).WithPath(p.String())
	}
	return wire, nil
}

func (c *Codec) decodeBinary(td *TypeDef, opts map[string]interface{}, wire interface{}, p path) (interface{}, *ValidationError) {
	s, ok := wire.(string)
	if !ok {
		return nil, errStructural(td.TypeName, string(Binary), "expected a string, got {kind}", map[string]any{"kind": kindOf(wire)}).WithPath(p.String())
	}
	format, _ := opts["format"].(string)
	decode := getFormatDecodeFunction(c.formatCodec, Binary, format)
	b, err := decode(s)
	if err != nil {
		return nil, errPattern(td.TypeName, string(Binary), err.Error()).WithPath(p.String())
	}
	value := b.([]byte)
	if err := c.checkBinaryBounds(td, opts, value, p); err != nil {
		return nil, err
	}
	if !getFormatValidateFunction(c.formatValidate, Binary, format)(value) {
		return nil, errPattern(td.TypeName, string(Binary), "value does not satisfy format {format}", map[string]any{"format": format}).WithPath(p.String())
	}
	return value, nil
}

func (c *Codec) checkBinaryBounds(td *TypeDef, opts map[string]interface{}, b []byte, p path) *ValidationError {
	minv, maxv := boundsOf(opts, 0, c.config.MaxBinary)
	if len(b) < minv || len(b) > maxv {
		return errRange(td.TypeName, string(Binary), "length {n} not within [{min},{max}]", map[string]any{"n": len(b), "min": minv, "max": maxv}).WithPath(p.String())
	}
	return nil
}

// boundsOf reads minv/maxv type options. maxv==0 means "use the codec's
// configured default" for every base type except Integer, where it is a
// literal, meaningful bound (see checkIntegerBounds).
func boundsOf(opts map[string]interface{}, defaultMin, defaultMax int) (min, max int) {
	min = defaultMin
	if v, ok := opts["minv"]; ok {
		min = v.(int)
	}
	max = defaultMax
	if v, ok := opts["maxv"]; ok {
		max = v.(int)
		if max == 0 {
			max = defaultMax
		}
	}
	return min, max
}

// --- Boolean ---

func (c *Codec) encodeBoolean(td *TypeDef, value interface{}, p path) (interface{}, *ValidationError) {
	b, ok := value.(bool)
	if !ok {
		return nil, errStructural(td.TypeName, string(Boolean), "expected a boolean, got {kind}", map[string]any{"kind": kindOf(value)}).WithPath(p.String())
	}
	return b, nil
}

func (c *Codec) decodeBoolean(td *TypeDef, wire interface{}, p path) (interface{}, *ValidationError) {
	b, ok := wire.(bool)
	if !ok {
		return nil, errStructural(td.TypeName, string(Boolean), "expected a boolean, got {kind}", map[string]any{"kind": kindOf(wire)}).WithPath(p.String())
	}
	return b, nil
}

// --- Integer ---

func (c *Codec) encodeInteger(td *TypeDef, opts map[string]interface{}, value interface{}, p path) (interface{}, *ValidationError) {
	n, ok := toInt64(value)
	if !ok {
		return nil, errStructural(td.TypeName, string(Integer), "expected an integer, got {kind}", map[string]any{"kind": kindOf(value)}).WithPath(p.String())
	}
	if err := c.checkIntegerBounds(td, opts, n, p); err != nil {
		return nil, err
	}
	return n, nil
}

func (c *Codec) decodeInteger(td *TypeDef, opts map[string]interface{}, wire interface{}, p path) (interface{}, *ValidationError) {
	n, ok := toInt64(wire)
	if !ok {
		return nil, errStructural(td.TypeName, string(Integer), "expected an integer, got {kind}", map[string]any{"kind": kindOf(wire)}).WithPath(p.String())
	}
	if err := c.checkIntegerBounds(td, opts, n, p); err != nil {
		return nil, err
	}
	return n, nil
}

func (c *Codec) checkIntegerBounds(td *TypeDef, opts map[string]interface{}, n int64, p path) *ValidationError {
	hasMin, hasMax := false, false
	var minv, maxv int64
	if v, ok := opts["minv"]; ok {
		minv, hasMin = int64(v.(int)), true
	}
	if v, ok := opts["maxv"]; ok {
		// Integer's maxv==0 is literal, unlike every other base type's
		// length-bound maxv.
		maxv, hasMax = int64(v.(int)), true
	}
	if hasMin && n < minv {
		return errRange(td.TypeName, string(Integer), "value {n} below minimum {min}", map[string]any{"n": n, "min": minv}).WithPath(p.String())
	}
	if hasMax && n > maxv {
		return errRange(td.TypeName, string(Integer), "value {n} above maximum {max}", map[string]any{"n": n, "max": maxv}).WithPath(p.String())
	}
	format, _ := opts["format"].(string)
	if !getFormatValidateFunction(c.formatValidate, Integer, format)(n) {
		return errPattern(td.TypeName, string(Integer), "value does not satisfy format {format}", map[string]any{"format": format}).WithPath(p.String())
	}
	return nil
}

// --- Number ---

func (c *Codec) encodeNumber(td *TypeDef, opts map[string]interface{}, value interface{}, p path) (interface{}, *ValidationError) {
	f, ok := toFloat64(value)
	if !ok {
		return nil, errStructural(td.TypeName, string(Number), "expected a number, got {kind}", map[string]any{"kind": kindOf(value)}).WithPath(p.String())
	}
	if err := c.checkNumberBounds(td, opts, f, p); err != nil {
		return nil, err
	}
	return f, nil
}

func (c *Codec) decodeNumber(td *TypeDef, opts map[string]interface{}, wire interface{}, p path) (interface{}, *ValidationError) {
	f, ok := toFloat64(wire)
	if !ok {
		return nil, errStructural(td.TypeName, string(Number), "expected a number, got {kind}", map[string]any{"kind": kindOf(wire)}).WithPath(p.String())
	}
	if err := c.checkNumberBounds(td, opts, f, p); err != nil {
		return nil, err
	}
	return f, nil
}

func (c *Codec) checkNumberBounds(td *TypeDef, opts map[string]interface{}, f float64, p path) *ValidationError {
	minf, hasMin := opts["minf"].(float64)
	maxf, hasMax := opts["maxf"].(float64)
	if !inRange(f, minf, maxf, hasMin, hasMax) {
		return errRange(td.TypeName, string(Number), "value {n} not within [{min},{max}]", map[string]any{"n": f, "min": minf, "max": maxf}).WithPath(p.String())
	}
	format, _ := opts["format"].(string)
	if !getFormatValidateFunction(c.formatValidate, Number, format)(f) {
		return errPattern(td.TypeName, string(Number), "value does not satisfy format {format}", map[string]any{"format": format}).WithPath(p.String())
	}
	return nil
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// --- Null ---

func (c *Codec) encodeNull(td *TypeDef, value interface{}, p path) (interface{}, *ValidationError) {
	if value != nil {
		return nil, errStructural(td.TypeName, string(Null), "expected null").WithPath(p.String())
	}
	return nil, nil
}

func (c *Codec) decodeNull(td *TypeDef, wire interface{}, p path) (interface{}, *ValidationError) {
	if wire != nil {
		return nil, errStructural(td.TypeName, string(Null), "expected null").WithPath(p.String())
	}
	return nil, nil
}

// --- String ---

func (c *Codec) encodeString(td *TypeDef, opts map[string]interface{}, value interface{}, p path) (interface{}, *ValidationError) {
	s, ok := value.(string)
	if !ok {
		return nil, errStructural(td.TypeName, string(String), "expected a string, got {kind}", map[string]any{"kind": kindOf(value)}).WithPath(p.String())
	}
	if err := c.checkString(td, opts, s, p); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *Codec) decodeString(td *TypeDef, opts map[string]interface{}, wire interface{}, p path) (interface{}, *ValidationError) {
	s, ok := wire.(string)
	if !ok {
		return nil, errStructural(td.TypeName, string(String), "expected a string, got {kind}", map[string]any{"kind": kindOf(wire)}).WithPath(p.String())
	}
	if err := c.checkString(td, opts, s, p); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *Codec) checkString(td *TypeDef, opts map[string]interface{}, s string, p path) *ValidationError {
	minv, maxv := boundsOf(opts, 0, c.config.MaxString)
	if len(s) < minv || len(s) > maxv {
		return errRange(td.TypeName, string(String), "length {n} not within [{min},{max}]", map[string]any{"n": len(s), "min": minv, "max": maxv}).WithPath(p.String())
	}
	if pat, ok := opts["pattern"].(string); ok {
		re, err := regexp.Compile(pat)
		if err != nil || !re.MatchString(s) {
			return errPattern(td.TypeName, string(String), "value does not match pattern {pattern}", map[string]any{"pattern": pat}).WithPath(p.String())
		}
	}
	format, _ := opts["format"].(string)
	if !getFormatValidateFunction(c.formatValidate, String, format)(s) {
		return errPattern(td.TypeName, string(String), "value does not satisfy format {format}", map[string]any{"format": format}).WithPath(p.String())
	}
	return nil
}

// --- Enumerated ---

// encodeEnumerated writes the chosen item as its name (verbose_str) or its
// integer id, per codec/__init__.py's verbose_str toggle.
func (c *Codec) encodeEnumerated(entry *symbolEntry, value interface{}, p path) (interface{}, *ValidationError) {
	td := entry.def
	name, id, err := c.resolveEnumItem(entry, value, p)
	if err != nil {
		return nil, err
	}
	_ = td
	if c.verboseStr {
		return name, nil
	}
	return id, nil
}

func (c *Codec) decodeEnumerated(entry *symbolEntry, wire interface{}, p path) (interface{}, *ValidationError) {
	return c.decodeEnumItem(entry, wire, p)
}

func (c *Codec) resolveEnumItem(entry *symbolEntry, value interface{}, p path) (name string, id int, verr *ValidationError) {
	td := entry.def
	switch v := value.(type) {
	case string:
		itemID, ok := entry.eMap[v]
		if !ok {
			return "", 0, errMembership(td.TypeName, string(Enumerated), "{name} is not a defined item", map[string]any{"name": v}).WithPath(p.String())
		}
		return v, itemID, nil
	default:
		n, ok := toInt64(v)
		if !ok {
			return "", 0, errStructural(td.TypeName, string(Enumerated), "expected an item name or id").WithPath(p.String())
		}
		itemName, ok := entry.dMap[int(n)]
		if !ok {
			return "", 0, errMembership(td.TypeName, string(Enumerated), "id {id} is not a defined item", map[string]any{"id": n}).WithPath(p.String())
		}
		return itemName, int(n), nil
	}
}

func (c *Codec) decodeEnumItem(entry *symbolEntry, wire interface{}, p path) (interface{}, *ValidationError) {
	td := entry.def
	if c.verboseStr {
		s, ok := wire.(string)
		if !ok {
			return nil, errStructural(td.TypeName, string(Enumerated), "expected an item name").WithPath(p.String())
		}
		if _, ok := entry.eMap[s]; !ok {
			return nil, errMembership(td.TypeName, string(Enumerated), "{name} is not a defined item", map[string]any{"name": s}).WithPath(p.String())
		}
		return s, nil
	}
	n, ok := toInt64(wire)
	if !ok {
		return nil, errStructural(td.TypeName, string(Enumerated), "expected an item id").WithPath(p.String())
	}
	itemName, ok := entry.dMap[int(n)]
	if !ok {
		return nil, errMembership(td.TypeName, string(Enumerated), "id {id} is not a defined item", map[string]any{"id": n}).WithPath(p.String())
	}
	return itemName, nil
}

// --- Choice ---

func (c *Codec) encodeChoice(entry *symbolEntry, value interface{}, p path) (interface{}, *ValidationError) {
	td := entry.def
	obj, ok := value.(map[string]interface{})
	if !ok || len(obj) != 1 {
		return nil, errCardinality(td.TypeName, string(Choice), "expected exactly one selected field").WithPath(p.String())
	}
	var fieldName string
	var fieldValue interface{}
	for k, v := range obj {
		fieldName, fieldValue = k, v
	}
	fe, verr := c.fieldByName(entry, fieldName, p)
	if verr != nil {
		return nil, verr
	}
	fieldEntry, verr := c.resolveFieldEntry(fe)
	if verr != nil {
		return nil, verr
	}
	encoded, verr := c.encodeType(fieldEntry, fieldValue, p.push(fieldName))
	if verr != nil {
		return nil, verr
	}
	key := fieldName
	if !c.verboseStr {
		key = fmt.Sprintf("%d", fe.def.FieldID)
	}
	return map[string]interface{}{key: encoded}, nil
}

func (c *Codec) decodeChoice(entry *symbolEntry, wire interface{}, p path) (interface{}, *ValidationError) {
	td := entry.def
	obj, ok := wire.(map[string]interface{})
	if !ok || len(obj) != 1 {
		return nil, errCardinality(td.TypeName, string(Choice), "expected exactly one selected field").WithPath(p.String())
	}
	var key string
	var wireValue interface{}
	for k, v := range obj {
		key, wireValue = k, v
	}
	fe, verr := c.fieldByNameOrID(entry, key, p)
	if verr != nil {
		return nil, verr
	}
	fieldEntry, verr := c.resolveFieldEntry(fe)
	if verr != nil {
		return nil, verr
	}
	decoded, verr := c.decodeType(fieldEntry, wireValue, p.push(fe.def.FieldName))
	if verr != nil {
		return nil, verr
	}
	return map[string]interface{}{fe.def.FieldName: decoded}, nil
}

// --- Array / Record / Map (fielded container types) ---

// encodeFielded writes a fielded container's API value (always a map
// keyed by field name) to its wire form: a field-name-keyed JSON object
// when verbose_rec is set, otherwise a positional array ordered by
// FieldID, per codec/__init__.py's REC_MODE toggle. In the positional
// form, an absent optional field writes a null placeholder so later
// present fields keep their position; only a trailing run of such
// placeholders is trimmed.
func (c *Codec) encodeFielded(entry *symbolEntry, value interface{}, p path) (interface{}, *ValidationError) {
	td := entry.def
	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil, errStructural(td.TypeName, string(td.BaseType), "expected a field map, got {kind}", map[string]any{"kind": kindOf(value)}).WithPath(p.String())
	}
	if verr := checkRequiredFields(td.TypeName, td.BaseType, td.Fields, obj); verr != nil {
		return nil, verr
	}

	if c.verboseRec {
		out := make(map[string]interface{}, len(obj))
		for _, fe := range entry.fields {
			v, present := obj[fe.def.FieldName]
			if !present {
				continue
			}
			encoded, verr := c.encodeFieldValue(entry, fe, obj, v, p)
			if verr != nil {
				return nil, verr
			}
			out[fe.def.FieldName] = encoded
		}
		return out, nil
	}

	out := make([]interface{}, 0, len(entry.fields))
	for _, fe := range entry.fields {
		v, present := obj[fe.def.FieldName]
		if !present {
			out = append(out, nil)
			continue
		}
		encoded, verr := c.encodeFieldValue(entry, fe, obj, v, p)
		if verr != nil {
			return nil, verr
		}
		out = append(out, encoded)
	}
	for len(out) > 0 && out[len(out)-1] == nil {
		out = out[:len(out)-1]
	}
	return out, nil
}

// encodeFieldValue encodes one present field's API value. A field carrying
// a tagid option does not encode through its own declared FieldType (a
// Choice) directly: its sibling tag field (entry.fields[fe.tagidIndex])
// names the chosen branch, and v is that branch's bare payload rather than
// a single-key selector map.
func (c *Codec) encodeFieldValue(entry *symbolEntry, fe fieldEntry, obj map[string]interface{}, v interface{}, p path) (interface{}, *ValidationError) {
	if fe.tagidIndex < 0 {
		fieldEntry, verr := c.resolveFieldEntry(fe)
		if verr != nil {
			return nil, verr
		}
		return c.encodeType(fieldEntry, v, p.push(fe.def.FieldName))
	}
	tagFE := entry.fields[fe.tagidIndex]
	tagValue, present := obj[tagFE.def.FieldName]
	if !present {
		return nil, errStructural(entry.def.TypeName, string(entry.def.BaseType), "{field} has no value to discriminate {name}", map[string]any{"field": tagFE.def.FieldName, "name": fe.def.FieldName}).WithPath(p.String())
	}
	branchFe, verr := c.resolveTagBranch(entry, fe, tagFE, tagValue, p)
	if verr != nil {
		return nil, verr
	}
	payloadEntry, verr := c.resolveFieldEntry(branchFe)
	if verr != nil {
		return nil, verr
	}
	return c.encodeType(payloadEntry, v, p.push(fe.def.FieldName))
}

func (c *Codec) decodeFielded(entry *symbolEntry, wire interface{}, p path) (interface{}, *ValidationError) {
	td := entry.def
	out := make(map[string]interface{}, len(entry.fields))

	if asObj, ok := wire.(map[string]interface{}); ok {
		for _, fe := range entry.fields {
			wv, present := asObj[fe.def.FieldName]
			if !present || wv == nil {
				continue
			}
			decoded, verr := c.decodeFieldValue(entry, fe, wv, func(tagFE fieldEntry) (interface{}, bool) {
				v, ok := asObj[tagFE.def.FieldName]
				return v, ok && v != nil
			}, p)
			if verr != nil {
				return nil, verr
			}
			out[fe.def.FieldName] = decoded
		}
	} else if asArr, ok := wire.([]interface{}); ok {
		if len(asArr) > len(entry.fields) {
			return nil, errCardinality(td.TypeName, string(td.BaseType), "array has {n} elements, at most {max} defined", map[string]any{"n": len(asArr), "max": len(entry.fields)}).WithPath(p.String())
		}
		for i, wv := range asArr {
			if wv == nil {
				continue
			}
			fe := entry.fields[i]
			decoded, verr := c.decodeFieldValue(entry, fe, wv, func(tagFE fieldEntry) (interface{}, bool) {
				for j, other := range entry.fields {
					if other.def.FieldID == tagFE.def.FieldID && j < len(asArr) {
						return asArr[j], asArr[j] != nil
					}
				}
				return nil, false
			}, p)
			if verr != nil {
				return nil, verr
			}
			out[fe.def.FieldName] = decoded
		}
	} else {
		return nil, errStructural(td.TypeName, string(td.BaseType), "expected an array or an object, got {kind}", map[string]any{"kind": kindOf(wire)}).WithPath(p.String())
	}

	if verr := checkRequiredFields(td.TypeName, td.BaseType, td.Fields, out); verr != nil {
		return nil, verr
	}
	return out, nil
}

// decodeFieldValue decodes one present field's wire value wv, resolving a
// tagid field's payload through its sibling tag field the same way
// encodeFieldValue does on the way out. lookupTag fetches the raw wire
// value of a given sibling field regardless of whether wire arrived as an
// object or a positional array.
func (c *Codec) decodeFieldValue(entry *symbolEntry, fe fieldEntry, wv interface{}, lookupTag func(fieldEntry) (interface{}, bool), p path) (interface{}, *ValidationError) {
	if fe.tagidIndex < 0 {
		fieldEntry, verr := c.resolveFieldEntry(fe)
		if verr != nil {
			return nil, verr
		}
		return c.decodeType(fieldEntry, wv, p.push(fe.def.FieldName))
	}
	tagFE := entry.fields[fe.tagidIndex]
	tagValue, present := lookupTag(tagFE)
	if !present {
		return nil, errStructural(entry.def.TypeName, string(entry.def.BaseType), "{field} has no value to discriminate {name}", map[string]any{"field": tagFE.def.FieldName, "name": fe.def.FieldName}).WithPath(p.String())
	}
	branchFe, verr := c.resolveTagBranch(entry, fe, tagFE, tagValue, p)
	if verr != nil {
		return nil, verr
	}
	payloadEntry, verr := c.resolveFieldEntry(branchFe)
	if verr != nil {
		return nil, verr
	}
	return c.decodeType(payloadEntry, wv, p.push(fe.def.FieldName))
}

// resolveTagBranch resolves fe's selected Choice branch from tagValue, the
// sibling tag field's raw value. tagValue may be the tag's API form (an
// item name) or its wire form (an item name under verbose_str, an item id
// otherwise); resolveEnumItem accepts either, so it is used unchanged.
func (c *Codec) resolveTagBranch(entry *symbolEntry, fe fieldEntry, tagFE fieldEntry, tagValue interface{}, p path) (fieldEntry, *ValidationError) {
	tagTypeEntry, verr := c.resolveFieldEntry(tagFE)
	if verr != nil {
		return fieldEntry{}, verr
	}
	name, _, verr := c.resolveEnumItem(tagTypeEntry, tagValue, p)
	if verr != nil {
		return fieldEntry{}, verr
	}
	choiceEntry, ok := c.symbols[fe.def.FieldType]
	if !ok {
		return fieldEntry{}, errStructural(entry.def.TypeName, string(entry.def.BaseType), "tagid field type {type} is not a defined Choice type", map[string]any{"type": fe.def.FieldType}).WithPath(p.String())
	}
	return c.fieldByName(choiceEntry, name, p)
}

func (c *Codec) fieldByName(entry *symbolEntry, name string, p path) (fieldEntry, *ValidationError) {
	for _, fe := range entry.fields {
		if fe.def.FieldName == name {
			return fe, nil
		}
	}
	return fieldEntry{}, errMembership(entry.def.TypeName, string(entry.def.BaseType), "{name} is not a defined field", map[string]any{"name": name}).WithPath(p.String())
}

func (c *Codec) fieldByNameOrID(entry *symbolEntry, key string, p path) (fieldEntry, *ValidationError) {
	if fe, verr := c.fieldByName(entry, key, p); verr == nil {
		return fe, nil
	}
	var id int
	if _, err := fmt.Sscanf(key, "%d", &id); err == nil {
		for _, fe := range entry.fields {
			if fe.def.FieldID == id {
				return fe, nil
			}
		}
	}
	return fieldEntry{}, errMembership(entry.def.TypeName, string(entry.def.BaseType), "{name} is not a defined field", map[string]any{"name": key}).WithPath(p.String())
}

// resolveFieldEntry returns the symbolEntry a field's declared FieldType
// encodes/decodes through: either a named type already in the schema, or a
// synthesized entry for one of the twelve core base types referenced
// directly, since a FieldType may name a base type and not only a
// user-defined TypeName.
func (c *Codec) resolveFieldEntry(fe fieldEntry) (*symbolEntry, *ValidationError) {
	if sym, ok := c.symbols[fe.def.FieldType]; ok {
		return sym, nil
	}
	bt := BaseType(fe.def.FieldType)
	if !CoreTypes[bt] {
		return nil, errStructural(fe.def.FieldName, fe.def.FieldType, "field type {type} is not defined in this schema", map[string]any{"type": fe.def.FieldType})
	}
	return &symbolEntry{
		def:      &TypeDef{TypeName: fe.def.FieldName, BaseType: bt},
		typeOpts: fe.typeOpts,
	}, nil
}

// --- ArrayOf ---

func (c *Codec) encodeArrayOf(entry *symbolEntry, value interface{}, p path) (interface{}, *ValidationError) {
	td := entry.def
	items, ok := value.([]interface{})
	if !ok {
		return nil, errStructural(td.TypeName, string(ArrayOf), "expected a list, got {kind}", map[string]any{"kind": kindOf(value)}).WithPath(p.String())
	}
	vtypeEntry, verr := c.vtypeEntry(entry, p)
	if verr != nil {
		return nil, verr
	}
	if verr := c.checkElementBounds(td, entry.typeOpts, len(items), p); verr != nil {
		return nil, verr
	}
	out := make([]interface{}, len(items))
	for i, item := range items {
		encoded, verr := c.encodeType(vtypeEntry, item, p.push(fmt.Sprintf("%d", i)))
		if verr != nil {
			return nil, verr
		}
		out[i] = encoded
	}
	if unique, _ := entry.typeOpts["unique"].(bool); unique {
		if verr := checkUnique(td, out, p); verr != nil {
			return nil, verr
		}
	}
	return out, nil
}

func (c *Codec) decodeArrayOf(entry *symbolEntry, wire interface{}, p path) (interface{}, *ValidationError) {
	td := entry.def
	items, ok := wire.([]interface{})
	if !ok {
		return nil, errStructural(td.TypeName, string(ArrayOf), "expected a list, got {kind}", map[string]any{"kind": kindOf(wire)}).WithPath(p.String())
	}
	vtypeEntry, verr := c.vtypeEntry(entry, p)
	if verr != nil {
		return nil, verr
	}
	if verr := c.checkElementBounds(td, entry.typeOpts, len(items), p); verr != nil {
		return nil, verr
	}
	out := make([]interface{}, len(items))
	for i, item := range items {
		decoded, verr := c.decodeType(vtypeEntry, item, p.push(fmt.Sprintf("%d", i)))
		if verr != nil {
			return nil, verr
		}
		out[i] = decoded
	}
	if unique, _ := entry.typeOpts["unique"].(bool); unique {
		if verr := checkUnique(td, items, p); verr != nil {
			return nil, verr
		}
	}
	return out, nil
}

func (c *Codec) checkElementBounds(td *TypeDef, opts map[string]interface{}, n int, p path) *ValidationError {
	minv, maxv := boundsOf(opts, 0, c.config.MaxElements)
	if n < minv || n > maxv {
		return errRange(td.TypeName, string(td.BaseType), "element count {n} not within [{min},{max}]", map[string]any{"n": n, "min": minv, "max": maxv}).WithPath(p.String())
	}
	return nil
}

func checkUnique(td *TypeDef, items []interface{}, p path) *ValidationError {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		key := fmt.Sprintf("%v", item)
		if seen[key] {
			return errUniqueness(td.TypeName, string(td.BaseType), "duplicate element {value}", map[string]any{"value": key}).WithPath(p.String())
		}
		seen[key] = true
	}
	return nil
}

func (c *Codec) vtypeEntry(entry *symbolEntry, p path) (*symbolEntry, *ValidationError) {
	vtype, ok := entry.typeOpts["vtype"].(string)
	if !ok {
		return nil, errStructural(entry.def.TypeName, string(entry.def.BaseType), "missing vtype option").WithPath(p.String())
	}
	return c.resolveFieldEntry(fieldEntry{def: FieldDef{FieldName: entry.def.TypeName, FieldType: vtype}})
}

// --- MapOf ---

func (c *Codec) encodeMapOf(entry *symbolEntry, value interface{}, p path) (interface{}, *ValidationError) {
	td := entry.def
	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil, errStructural(td.TypeName, string(MapOf), "expected a map, got {kind}", map[string]any{"kind": kindOf(value)}).WithPath(p.String())
	}
	ktypeEntry, verr := c.ktypeEntry(entry, p)
	if verr != nil {
		return nil, verr
	}
	vtypeEntry, verr := c.vtypeEntry(entry, p)
	if verr != nil {
		return nil, verr
	}
	if verr := c.checkElementBounds(td, entry.typeOpts, len(obj), p); verr != nil {
		return nil, verr
	}
	out := make(map[string]interface{}, len(obj))
	for k, v := range obj {
		if _, verr := c.encodeType(ktypeEntry, keyAsAPIValue(ktypeEntry.def.BaseType, k), p.push(k)); verr != nil {
			return nil, verr
		}
		encoded, verr := c.encodeType(vtypeEntry, v, p.push(k))
		if verr != nil {
			return nil, verr
		}
		out[k] = encoded
	}
	return out, nil
}

func (c *Codec) decodeMapOf(entry *symbolEntry, wire interface{}, p path) (interface{}, *ValidationError) {
	td := entry.def
	obj, ok := wire.(map[string]interface{})
	if !ok {
		return nil, errStructural(td.TypeName, string(MapOf), "expected a map, got {kind}", map[string]any{"kind": kindOf(wire)}).WithPath(p.String())
	}
	ktypeEntry, verr := c.ktypeEntry(entry, p)
	if verr != nil {
		return nil, verr
	}
	vtypeEntry, verr := c.vtypeEntry(entry, p)
	if verr != nil {
		return nil, verr
	}
	if verr := c.checkElementBounds(td, entry.typeOpts, len(obj), p); verr != nil {
		return nil, verr
	}
	out := make(map[string]interface{}, len(obj))
	for k, v := range obj {
		if _, verr := c.decodeType(ktypeEntry, keyAsAPIValue(ktypeEntry.def.BaseType, k), p.push(k)); verr != nil {
			return nil, verr
		}
		decoded, verr := c.decodeType(vtypeEntry, v, p.push(k))
		if verr != nil {
			return nil, verr
		}
		out[k] = decoded
	}
	return out, nil
}

func (c *Codec) ktypeEntry(entry *symbolEntry, p path) (*symbolEntry, *ValidationError) {
	ktype, ok := entry.typeOpts["ktype"].(string)
	if !ok {
		return nil, errStructural(entry.def.TypeName, string(entry.def.BaseType), "missing ktype option").WithPath(p.String())
	}
	return c.resolveFieldEntry(fieldEntry{def: FieldDef{FieldName: entry.def.TypeName, FieldType: ktype}})
}

// keyAsAPIValue converts a JSON object's always-string key back to the
// abstract value its ktype expects, since MapOf keys serialize as JSON
// object keys (strings) regardless of ktype, per codec/codec.py's
// _decode_map_of key handling.
func keyAsAPIValue(bt BaseType, key string) interface{} {
	switch bt {
	case Integer:
		var n int64
		fmt.Sscanf(key, "%d", &n)
		return n
	default:
		return key
	}
}
