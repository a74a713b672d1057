package gazelle

import "strconv"

// Params maps query parameter names to values. Absent parameters are simply
// never added; the setters below skip zero values so callers can pass
// optional fields without emitting empty strings.
type Params map[string]string

// Set adds a string parameter, omitting empty values.
func (p Params) Set(key, value string) {
	if value != "" {
		p[key] = value
	}
}

// SetInt adds an int parameter, omitting zero.
func (p Params) SetInt(key string, value int) {
	if value != 0 {
		p[key] = strconv.Itoa(value)
	}
}

// SetIntPtr adds an int parameter where zero is meaningful; nil omits.
func (p Params) SetIntPtr(key string, value *int) {
	if value != nil {
		p[key] = strconv.Itoa(*value)
	}
}

// SetBool adds a tri-state flag encoded as 1/0; nil omits.
func (p Params) SetBool(key string, value *bool) {
	if value == nil {
		return
	}
	if *value {
		p[key] = "1"
	} else {
		p[key] = "0"
	}
}

// Bool and Int build pointers for tri-state option fields.
func Bool(v bool) *bool { return &v }

func Int(v int) *int { return &v }
