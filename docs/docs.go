// Package docs registers the Swagger document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Returns a fixed banner confirming the backend is up.",
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Liveness banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.statusResp"}}
                }
            }
        },
        "/api/v1/chat": {
            "post": {
                "description": "Classifies the message, acts on the calendar and returns a reply.\nThe data field is the classifier output; send it back as context on the next turn.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Chat with the booking assistant",
                "parameters": [
                    {"description": "Chat message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.chatReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Language model or calendar unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/schedule.ics": {
            "get": {
                "description": "Returns the upcoming events of the configured calendar as an .ics feed.",
                "produces": ["text/calendar"],
                "tags": ["Assistant"],
                "summary": "Export upcoming events as iCalendar",
                "parameters": [
                    {"type": "integer", "description": "Days ahead (1-14, default 3)", "name": "days", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "iCalendar feed", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Calendar unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API can reach its collaborators",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "A collaborator is unreachable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.chatReq": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "context": {"type": "object", "additionalProperties": true},
                "message": {"type": "string", "maxLength": 2000}
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "data": {"type": "object", "additionalProperties": true},
                "intent": {"type": "string"},
                "reply": {"type": "string"}
            }
        },
        "http.statusResp": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Booking Assistant API",
	Description:      "Conversational meeting booking on top of Google Calendar.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
