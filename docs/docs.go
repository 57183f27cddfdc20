// Package docs holds the generated OpenAPI document served at /swagger/*.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/auth/user/changePassword": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Change password",
                "parameters": [
                    {
                        "description": "Old and new password",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.changePasswordRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/auth/user/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.loginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/auth/user/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "Registration details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.registerRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/auth/user/{userId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Get a user by id",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/auth/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "List all users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.userResponse"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/booking/add": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Add a booking",
                "parameters": [
                    {
                        "description": "Booking details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.addBookingRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.bookingEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/booking/delete/{bookingId}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Cancel a booking",
                "parameters": [
                    {"type": "string", "description": "Booking id", "name": "bookingId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/booking/edit/{bookingId}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Edit a booking",
                "parameters": [
                    {"type": "string", "description": "Booking id", "name": "bookingId", "in": "path", "required": true},
                    {
                        "description": "Updated fields",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.updateBookingRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.bookingEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/booking/getAll": {
            "get": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "List all bookings",
                "parameters": [
                    {"type": "string", "description": "Exact date filter (2006-01-02)", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.bookingResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/booking/getAllById/{userId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "List bookings for a user",
                "parameters": [
                    {"type": "string", "description": "Owner user id", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.bookingResponse"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/booking/{bookingId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Get a booking by id",
                "parameters": [
                    {"type": "string", "description": "Booking id", "name": "bookingId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.bookingEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.addBookingRequest": {
            "type": "object",
            "required": ["date", "numberOfPeople", "time", "userId"],
            "properties": {
                "date": {"type": "string"},
                "numberOfPeople": {"type": "integer"},
                "time": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "handler.bookingEnvelope": {
            "type": "object",
            "properties": {
                "booking": {"$ref": "#/definitions/handler.bookingResponse"},
                "message": {"type": "string"}
            }
        },
        "handler.bookingResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "id": {"type": "string"},
                "numberOfPeople": {"type": "integer"},
                "time": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "handler.changePasswordRequest": {
            "type": "object",
            "properties": {
                "newPassword": {"type": "string"},
                "oldPassword": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "accessToken": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "role": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.updateBookingRequest": {
            "type": "object",
            "required": ["date", "numberOfPeople", "time"],
            "properties": {
                "date": {"type": "string"},
                "numberOfPeople": {"type": "integer"},
                "time": {"type": "string"}
            }
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "role": {"type": "string"},
                "username": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Reservation API",
	Description:      "Restaurant reservation service: accounts, sessions and table bookings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
