package tableview

import (
	"fmt"
	"reflect"
	"strconv"
)

// reflectIdentity extracts a stable identity from a record without a
// caller-supplied accessor: an exported ID struct field or an "id" map key.
// The second return is false when neither exists.
func reflectIdentity(record any) (string, bool) {
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		f := v.FieldByName("ID")
		if f.IsValid() && f.CanInterface() {
			return fmt.Sprint(f.Interface()), true
		}
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			mv := v.MapIndex(reflect.ValueOf("id"))
			if mv.IsValid() {
				return fmt.Sprint(mv.Interface()), true
			}
		}
	}
	return "", false
}

// positionalIdentity is the degraded-mode fallback when a record carries no
// usable identity at all. It is only stable within one collection snapshot.
func positionalIdentity(index int) string {
	return "#" + strconv.Itoa(index)
}
