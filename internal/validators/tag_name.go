package validators

import (
	"reflect"
	"strings"
)

// jsonFieldName reports fields under their JSON names so that validation
// messages match the wire format.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
