package config

// manifestSchema is the JSON Schema a peggen.yaml manifest must satisfy,
// compiled once per process and validated against with
// github.com/santhosh-tekuri/jsonschema/v5, the same library and draft
// (2020-12) core/types/validation.go uses for parameter-schema checks.
const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["grammars"],
  "properties": {
    "grammars": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["path"],
        "properties": {
          "path": {"type": "string", "minLength": 1},
          "startRule": {"type": "string", "minLength": 1}
        }
      }
    },
    "minVersion": {
      "type": "string",
      "pattern": "^v?[0-9]+\\.[0-9]+\\.[0-9]+$"
    }
  }
}`
