// internal/catalog/schemas.go
package catalog

import "github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/validation"

// FormSpec describes the create/update form of one catalog resource: the
// schema the input is validated against, the fields whose string input is
// parsed to numbers first, and the user-facing labels used in range
// messages.
type FormSpec struct {
	Schema        validation.JSONSchema
	NumericFields []string
	Labels        map[string]string
}

func floatPtr(v float64) *float64 { return &v }

// itemSchema builds the common name+description schema shared by the plain
// catalog resources.
func itemSchema(extra map[string]validation.Property, required ...string) validation.JSONSchema {
	props := map[string]validation.Property{
		"name":        {Type: "string"},
		"description": {Type: "string"},
	}
	for k, v := range extra {
		props[k] = v
	}
	return validation.JSONSchema{
		Type:                 "object",
		Properties:           props,
		Required:             append([]string{"name"}, required...),
		AdditionalProperties: true,
	}
}

// FormSpecFor returns the form rules for a resource by name. Unknown
// resources get the plain name+description form.
func FormSpecFor(resource string) FormSpec {
	switch resource {
	case "commissions":
		return FormSpec{
			Schema: itemSchema(map[string]validation.Property{
				"rate": {Type: "number", Minimum: floatPtr(0), Maximum: floatPtr(100)},
			}, "rate"),
			NumericFields: []string{"rate"},
			Labels:        map[string]string{"rate": "Rate"},
		}
	case "services":
		return FormSpec{
			Schema: itemSchema(map[string]validation.Property{
				"price": {Type: "number", Minimum: floatPtr(0)},
			}, "price"),
			NumericFields: []string{"price"},
			Labels:        map[string]string{"price": "Price"},
		}
	case "categories":
		return FormSpec{
			Schema: itemSchema(map[string]validation.Property{
				"industryId": {Type: "string"},
			}, "industryId"),
		}
	default:
		return FormSpec{Schema: itemSchema(nil)}
	}
}
