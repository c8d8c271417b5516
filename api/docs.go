// Package api holds the generated Swagger specification.
// Code generated by swag; edits here are overwritten by `swag init`.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register a new account",
                "parameters": [
                    {
                        "description": "Account details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.registerRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "user", "schema": {"$ref": "#/definitions/http.authResponse"}},
                    "400": {"description": "error, fields", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "409": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Authenticate with email and password",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.loginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "user", "schema": {"$ref": "#/definitions/http.authResponse"}},
                    "400": {"description": "error, fields", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "401": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Close the current session",
                "responses": {
                    "204": {"description": "session cookie cleared"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.userResponse"}},
                    "401": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Update profile",
                "parameters": [
                    {
                        "description": "Fields to change",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.updateMeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.userResponse"}},
                    "400": {"description": "error, fields", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "401": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/applications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Applications"],
                "summary": "List applications",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Zero-based page index", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Page size, capped at 100", "name": "size", "in": "query"},
                    {"type": "string", "default": "id,desc", "description": "Sort as field,asc|desc", "name": "sort", "in": "query"},
                    {"enum": ["APPLIED", "INTERVIEW", "OFFER", "REJECTED"], "type": "string", "description": "Filter by status", "name": "status", "in": "query"},
                    {"type": "boolean", "description": "Follow-up on or before today", "name": "followUpDue", "in": "query"},
                    {"type": "boolean", "description": "Follow-up strictly before today", "name": "followUpOverdue", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.pageResponse-http_applicationResponse"}},
                    "400": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "401": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Applications"],
                "summary": "Create an application",
                "parameters": [
                    {
                        "description": "Application details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.upsertApplicationRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.applicationResponse"}},
                    "400": {"description": "error, fields", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "401": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/applications/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Applications"],
                "summary": "Fetch an application",
                "parameters": [
                    {"type": "integer", "description": "Application ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.applicationResponse"}},
                    "401": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "404": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Applications"],
                "summary": "Replace an application",
                "parameters": [
                    {"type": "integer", "description": "Application ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Application details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.upsertApplicationRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.applicationResponse"}},
                    "400": {"description": "error, fields", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "401": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "404": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Applications"],
                "summary": "Delete an application",
                "parameters": [
                    {"type": "integer", "description": "Application ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "deleted"},
                    "401": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "404": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/applications/{id}/status": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Applications"],
                "summary": "Move an application to a new status",
                "parameters": [
                    {"type": "integer", "description": "Application ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Target status",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.updateStatusRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.applicationResponse"}},
                    "400": {"description": "error, fields", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "401": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "404": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/applications/{id}/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Applications"],
                "summary": "Status transition history",
                "parameters": [
                    {"type": "integer", "description": "Application ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.historyEntryResponse"}}
                    },
                    "401": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "404": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "status, uptime, version", "schema": {"$ref": "#/definitions/http.healthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "status, uptime, version, checks", "schema": {"$ref": "#/definitions/http.healthResponse"}},
                    "503": {"description": "status, uptime, version, checks - service not ready", "schema": {"$ref": "#/definitions/http.healthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.registerRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "http.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "http.updateMeRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "avatarUrl": {"type": "string"},
                "language": {"type": "string"},
                "theme": {"type": "string"},
                "sidebarVisible": {"type": "boolean"}
            }
        },
        "http.upsertApplicationRequest": {
            "type": "object",
            "properties": {
                "company": {"type": "string"},
                "role": {"type": "string"},
                "status": {"type": "string"},
                "priority": {"type": "string"},
                "appliedDate": {"type": "string"},
                "followUpDate": {"type": "string"},
                "notes": {"type": "string"},
                "jobUrl": {"type": "string"},
                "salary": {"type": "string"}
            }
        },
        "http.updateStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "http.userResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "avatarUrl": {"type": "string"},
                "language": {"type": "string"},
                "theme": {"type": "string"},
                "sidebarVisible": {"type": "boolean"}
            }
        },
        "http.authResponse": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/http.userResponse"}
            }
        },
        "http.applicationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "company": {"type": "string"},
                "role": {"type": "string"},
                "status": {"type": "string"},
                "priority": {"type": "string"},
                "appliedDate": {"type": "string"},
                "followUpDate": {"type": "string"},
                "notes": {"type": "string"},
                "jobUrl": {"type": "string"},
                "salary": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "http.historyEntryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "fromStatus": {"type": "string"},
                "toStatus": {"type": "string"},
                "changedAt": {"type": "string"}
            }
        },
        "http.pageResponse-http_applicationResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"$ref": "#/definitions/http.applicationResponse"}},
                "totalElements": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "number": {"type": "integer"},
                "size": {"type": "integer"},
                "first": {"type": "boolean"},
                "last": {"type": "boolean"},
                "empty": {"type": "boolean"},
                "numberOfElements": {"type": "integer"}
            }
        },
        "http.healthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"},
                "checks": {"$ref": "#/definitions/http.healthChecks"}
            }
        },
        "http.healthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "JobTrack API",
	Description:      "Personal job application tracker with cookie-based JWT sessions and an append-only status transition ledger per application.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
