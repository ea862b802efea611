// Package docs registers the OpenAPI description served under /swagger/.
// Keep it in sync with the godoc annotations on the controllers (swag init -g cmd/api/main.go).
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
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Welcome message",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "200 when the database answers a ping, 503 otherwise.",
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "description": "Create a user with a unique, case-sensitive username. The password is stored salted and hashed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Registration data", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.User"}},
                    "400": {"description": "validation error or username already exists", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Verify credentials and start a session. The session token is set as an HttpOnly cookie named \"session\".",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        },
        "/logout": {
            "post": {
                "description": "End the current session. Succeeds when no session exists.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        },
        "/whoami": {
            "get": {
                "security": [{"SessionCookie": []}],
                "description": "Return the username and admin flag of the logged-in user.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.WhoAmIResponse"}},
                    "401": {"description": "Not logged in", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        },
        "/events": {
            "get": {
                "description": "All events in creation order.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            },
            "post": {
                "description": "name, location and date are required; date must be YYYY-MM-DD.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create an event",
                "parameters": [
                    {"description": "Event data", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Event"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        },
        "/events/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event by ID",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Event"}},
                    "400": {"description": "invalid event id", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "404": {"description": "event not found", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            },
            "put": {
                "description": "Partial update; supplied fields are validated like on create.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Update an event",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Event"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            },
            "delete": {
                "description": "Deletes the event and all of its attendees.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Delete an event",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        },
        "/events/{id}/attendees": {
            "get": {
                "description": "Unknown events yield an empty list.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List an event's attendees",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/controllers.EventAttendee"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        },
        "/attendees": {
            "get": {
                "description": "All attendees, or only those of event_id when given.",
                "produces": ["application/json"],
                "tags": ["attendees"],
                "summary": "List attendees",
                "parameters": [
                    {"type": "integer", "description": "Filter by event ID", "name": "event_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Attendee"}}},
                    "400": {"description": "event_id must be an integer", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            },
            "post": {
                "description": "event_id must reference an existing event. A confirmation email is sent best-effort.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["attendees"],
                "summary": "Add an attendee to an event",
                "parameters": [
                    {"description": "Attendee data", "name": "attendee", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateAttendeeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Attendee"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        },
        "/attendees/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["attendees"],
                "summary": "Get an attendee by ID",
                "parameters": [
                    {"type": "integer", "description": "Attendee ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Attendee"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["attendees"],
                "summary": "Update an attendee",
                "parameters": [
                    {"type": "integer", "description": "Attendee ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "attendee", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateAttendeeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Attendee"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["attendees"],
                "summary": "Remove an attendee",
                "parameters": [
                    {"type": "integer", "description": "Attendee ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.CreateAttendeeRequest": {
            "type": "object",
            "required": ["email", "event_id", "name"],
            "properties": {
                "email": {"type": "string", "example": "a@x.com"},
                "event_id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Ana"}
            }
        },
        "controllers.CreateEventRequest": {
            "type": "object",
            "required": ["date", "location", "name"],
            "properties": {
                "date": {"type": "string", "example": "2025-03-01"},
                "location": {"type": "string", "example": "HQ"},
                "name": {"type": "string", "example": "Launch"}
            }
        },
        "controllers.EventAttendee": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "a@x.com"},
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Ana"}
            }
        },
        "controllers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"}
            }
        },
        "controllers.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "example": "correct-horse"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "controllers.LoginResponse": {
            "type": "object",
            "properties": {
                "is_admin": {"type": "boolean", "example": false},
                "message": {"type": "string", "example": "Login successful"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "controllers.RegisterRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "is_admin": {"type": "boolean", "example": false},
                "password": {"type": "string", "example": "correct-horse"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "controllers.UpdateAttendeeRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "a@x.com"},
                "event_id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Ana"}
            }
        },
        "controllers.UpdateEventRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2025-03-01"},
                "location": {"type": "string", "example": "HQ"},
                "name": {"type": "string", "example": "Launch"}
            }
        },
        "controllers.WhoAmIResponse": {
            "type": "object",
            "properties": {
                "is_admin": {"type": "boolean", "example": false},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "domain.Attendee": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "event_id": {"type": "integer"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2025-03-01"},
                "id": {"type": "integer"},
                "location": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "is_admin": {"type": "boolean"},
                "username": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "not_found"},
                "error": {"type": "string", "example": "event not found"}
            }
        },
        "helpers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Event deleted"}
            }
        }
    },
    "securityDefinitions": {
        "SessionCookie": {
            "type": "apiKey",
            "name": "session",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Event Manager API",
	Description:      "CRUD API for events and their attendees, with cookie-based sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
