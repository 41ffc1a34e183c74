package utils

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// dailyPlanSchema is the contract for the plan document the model returns.
// The prompt's embedded output example is validated against this same
// schema in tests, so prompt and parser cannot drift apart.
const dailyPlanSchema = `{
  "type": "object",
  "required": ["scheduleId", "dailyPlans"],
  "properties": {
    "scheduleId": {"type": "string"},
    "dailyPlans": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["dayNumber", "items"],
        "properties": {
          "dayNumber": {"type": "integer", "minimum": 1},
          "items": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["contentId", "title", "latitude", "longitude", "category"],
              "properties": {
                "contentId": {"type": "string"},
                "title": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "category": {
                  "type": "string",
                  "enum": ["ACCOMMODATION", "RESTAURANT", "TOURIST_SPOT", "LEISURE", "HEALING"]
                }
              }
            }
          }
        }
      }
    }
  }
}`

var dailyPlanSchemaLoader = gojsonschema.NewStringLoader(dailyPlanSchema)

// ValidateDailyPlanJSON checks a plan document returned by the model
// against the daily-plan schema before anything downstream trusts it.
func ValidateDailyPlanJSON(doc string) error {
	result, err := gojsonschema.Validate(dailyPlanSchemaLoader, gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedAIResponse, err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("%w: %s", ErrMalformedAIResponse, strings.Join(problems, "; "))
	}
	return nil
}
