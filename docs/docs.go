// Package docs registers the OpenAPI document served at /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "tags": ["events"],
                "summary": "Home payload",
                "responses": {"200": {"description": "featured events and categories"}}
            }
        },
        "/events": {
            "get": {
                "tags": ["events"],
                "summary": "List events",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "events and pagination"}}
            },
            "post": {
                "tags": ["events"],
                "summary": "Create a new event",
                "responses": {
                    "201": {"description": "created event"},
                    "400": {"description": "bad_request"},
                    "401": {"description": "unauthorized"},
                    "403": {"description": "forbidden"}
                }
            }
        },
        "/events/{eventID}": {
            "get": {
                "tags": ["events"],
                "summary": "Get an event by ID",
                "parameters": [{"name": "eventID", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "the event"},
                    "404": {"description": "not_found"}
                }
            }
        },
        "/events/{eventID}/register": {
            "post": {
                "tags": ["events"],
                "summary": "Register for an event",
                "parameters": [{"name": "eventID", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "201": {"description": "the registration"},
                    "401": {"description": "unauthorized"},
                    "404": {"description": "not_found"},
                    "409": {"description": "conflict"}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["events"],
                "summary": "Personal dashboard",
                "responses": {
                    "200": {"description": "the dashboard"},
                    "401": {"description": "unauthorized"}
                }
            }
        },
        "/calendar": {
            "get": {
                "tags": ["events"],
                "summary": "Events for a month",
                "parameters": [
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "month", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "events in the month"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "responses": {
                    "200": {"description": "the logged-in user"},
                    "401": {"description": "unauthorized"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new account",
                "responses": {
                    "201": {"description": "the created user"},
                    "400": {"description": "bad_request"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {"204": {"description": "no content"}}
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Get the session user",
                "responses": {
                    "200": {"description": "the session user"},
                    "401": {"description": "unauthorized"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "EventHub API",
	Description:      "Event discovery and registration service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
