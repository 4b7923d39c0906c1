package entity

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schemas builds the JSON Schema document for Config, covering every
// kind-specific block. Nothing in the module calls it, and New does not
// validate a Config against it.
func Schemas() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.ReflectFromType(reflect.TypeOf(Config{}))
	schema.Version = jsonschema.Version
	schema.Title = "Entity Configuration"
	schema.Description = "Designer-authored construction-time shape of one simulated entity."
	return schema
}
