package api

import "strategy-api/internal/common/validation"

var suggestionRequestSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["siteContextId", "trendSignals"],
	"properties": {
		"siteContextId": {
			"type": "integer",
			"minimum": 1
		},
		"trendSignals": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"topic": {"type": "string"},
					"searchVolume": {"type": "integer"},
					"growthRate": {"type": "number"},
					"competition": {"type": "number"},
					"relevancy": {"type": "number"}
				}
			}
		},
		"blueprintIds": {
			"type": "array",
			"items": {"type": "integer"}
		}
	}
}`)

var detectionRequestSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["events"],
	"properties": {
		"events": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"analyticsLogId": {"type": "integer"},
					"userAgent": {"type": "string"}
				}
			}
		}
	}
}`)
