// Package docs registers the OpenAPI description served under /swagger.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/smartcloth.StatusResponse"}}
                }
            }
        },
        "/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register an operator",
                "parameters": [
                    {"description": "Credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}}
                }
            }
        },
        "/auth/sign-in": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue an access token",
                "parameters": [
                    {"description": "Credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}}
                }
            }
        },
        "/api/v1/device/buttons": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["device"],
                "summary": "Press a device button",
                "parameters": [
                    {"description": "Button", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ButtonRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/smartcloth.StatusResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}}
                }
            }
        },
        "/api/v1/device/scale": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["device"],
                "summary": "Set the gross load on the scale",
                "parameters": [
                    {"description": "Load in grams", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ScaleRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/smartcloth.StatusResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}}
                }
            }
        },
        "/api/v1/device/state": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["device"],
                "summary": "Current device state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DeviceState"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}}
                }
            }
        },
        "/api/v1/device/display": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["device"],
                "summary": "Screen currently shown",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}}
                }
            }
        },
        "/api/v1/engine/rules": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["engine"],
                "summary": "List transition rules",
                "parameters": [
                    {"type": "string", "example": "WEIGHED", "description": "State name", "name": "from", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}}
                }
            }
        },
        "/api/v1/engine/debug": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["text/plain"],
                "tags": ["engine"],
                "summary": "Engine debug dump",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/engine/snapshot": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["engine"],
                "summary": "Full engine snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}}
                }
            }
        },
        "/api/v1/meals": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["diary"],
                "summary": "List saved meals",
                "parameters": [
                    {"type": "string", "description": "Start of range", "name": "from", "in": "query"},
                    {"type": "string", "description": "End of range", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}}
                }
            }
        },
        "/api/v1/logs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "List transition log entries",
                "parameters": [
                    {"type": "string", "description": "Start of range", "name": "from", "in": "query"},
                    {"type": "string", "description": "End of range", "name": "to", "in": "query"},
                    {"type": "string", "description": "Entry type", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/smartcloth.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "smartcloth.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "smartcloth.StatusResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "handlers.authCredentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "handlers.ButtonRequest": {
            "type": "object",
            "required": ["kind"],
            "properties": {"kind": {"type": "string", "example": "group"}, "id": {"type": "integer", "example": 3}}
        },
        "handlers.ScaleRequest": {
            "type": "object",
            "required": ["grams"],
            "properties": {"grams": {"type": "number", "example": 250}}
        },
        "models.DeviceState": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "state": {"type": "string"},
                "prev_state": {"type": "string"},
                "last_valid_state": {"type": "string"},
                "last_event": {"type": "string"},
                "screen": {"type": "string"},
                "group": {"type": "string"},
                "processing": {"type": "string"},
                "sticky_error": {"type": "boolean"},
                "scale_grams": {"type": "number"},
                "updated_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SmartCloth device API",
	Description:      "Drives and inspects the SmartCloth meal-weighing appliance.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
