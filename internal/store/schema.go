package store

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// fileSchemaJSON describes every task file shape Load accepts. Values may be
// a reminder string, null, or the legacy object written by older versions.
const fileSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "propertyNames": { "pattern": "\\S" },
  "additionalProperties": {
    "oneOf": [
      { "type": ["string", "null"] },
      {
        "type": "object",
        "properties": {
          "task_text": { "type": "string" },
          "reminder_time": { "type": ["string", "null"] }
        }
      }
    ]
  }
}`

var fileSchema = jsonschema.MustCompileString("tasks.schema.json", fileSchemaJSON)
