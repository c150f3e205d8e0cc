// Package docs registers the Breeze swagger document.
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
        "/ai": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Submit a natural-language task request",
                "parameters": [
                    {
                        "description": "Prompt",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.submitReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "Clarification or dispatched task"},
                    "400": {"description": "Empty prompt", "schema": {"$ref": "#/definitions/http.errorResp"}},
                    "422": {"description": "Task operation failed", "schema": {"$ref": "#/definitions/http.errorResp"}},
                    "429": {"description": "Too many requests"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.errorResp"}},
                    "503": {"description": "All providers exhausted", "schema": {"$ref": "#/definitions/http.errorResp"}}
                }
            }
        },
        "/ai/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Conversation transcript for the current session",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ai/session": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Reset the conversation",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "string", "name": "projectId", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [
                    {
                        "description": "Task",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.createReq"}
                    }
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Delete every task of a project",
                "parameters": [{"type": "string", "name": "projectId", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/tasks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Task detail",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Update a task",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Changed fields",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.updateReq"}
                    }
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Soft-delete a task",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/projects": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "List projects",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Create a project",
                "parameters": [
                    {
                        "description": "Project",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/project.createReq"}
                    }
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/projects/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Project detail",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Soft-delete a project and its tasks",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/notes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Notes"],
                "summary": "List notes",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Notes"],
                "summary": "Create a note",
                "parameters": [
                    {
                        "description": "Note",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/note.noteReq"}
                    }
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/notes/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Notes"],
                "summary": "Update a note",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Changed fields",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/note.noteReq"}
                    }
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Notes"],
                "summary": "Soft-delete a note",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    },
    "definitions": {
        "http.submitReq": {
            "type": "object",
            "properties": {"prompt": {"type": "string"}}
        },
        "http.errorResp": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}}
        },
        "http.createReq": {
            "type": "object",
            "required": ["title", "description", "dueDate", "priority"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "dueDate": {"type": "string", "example": "2026-10-20"},
                "priority": {"type": "string", "enum": ["high", "medium", "low"]},
                "projectId": {"type": "string"}
            }
        },
        "http.updateReq": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "dueDate": {"type": "string"},
                "priority": {"type": "string", "enum": ["high", "medium", "low"]},
                "completed": {"type": "boolean"},
                "tracked": {"type": "boolean"}
            }
        },
        "project.createReq": {
            "type": "object",
            "required": ["name", "description", "status"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["Active", "Completed", "On Hold"]}
            }
        },
        "note.noteReq": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Breeze API",
	Description:      "Task management with a multi-provider AI assistant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
