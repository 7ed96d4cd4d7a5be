// Package docs registers the swagger document served at /swagger/*.
// It is maintained by hand alongside the handler annotations.
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
        "/accounts/all": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List all accounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/accounts/balance/{accountNumber}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get account balance",
                "parameters": [
                    {"type": "string", "description": "Account number", "name": "accountNumber", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/accounts/create/{customerId}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Create account",
                "parameters": [
                    {"type": "integer", "description": "Customer ID", "name": "customerId", "in": "path", "required": true},
                    {"type": "string", "description": "SAVINGS or CURRENT", "name": "accountType", "in": "query", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Account"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/services.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/accounts/qr/{accountNumber}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["image/png"],
                "tags": ["accounts"],
                "summary": "Account number QR code",
                "parameters": [
                    {"type": "string", "description": "Account number", "name": "accountNumber", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "PNG image", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/accounts/withPagination": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List accounts page by page",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Zero-based page", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/services.Response"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register customer",
                "parameters": [
                    {"description": "Registration request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/services.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/auth/roles/all": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "List roles",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/customers/all": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "List customers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/customers/{customerId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Get customer",
                "parameters": [
                    {"type": "integer", "description": "Customer ID", "name": "customerId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Customer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Delete customer with accounts and history",
                "parameters": [
                    {"type": "integer", "description": "Customer ID", "name": "customerId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/customers/{customerId}/addAddress": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Add address",
                "parameters": [
                    {"type": "integer", "description": "Customer ID", "name": "customerId", "in": "path", "required": true},
                    {"description": "Address", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AddressRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Address"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/customers/{customerId}/getAddresses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "List addresses",
                "parameters": [
                    {"type": "integer", "description": "Customer ID", "name": "customerId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/reports/generate-report": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Monthly transaction report",
                "parameters": [
                    {"type": "integer", "description": "Month (1-12)", "name": "month", "in": "query", "required": true},
                    {"type": "integer", "description": "Year", "name": "year", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/transactions/deposit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Deposit",
                "parameters": [
                    {"description": "Deposit request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.TransactionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TransactionResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/transactions/history/{accountNumber}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Transaction history",
                "parameters": [
                    {"type": "string", "description": "Account number", "name": "accountNumber", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        },
        "/transactions/withdraw": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Withdraw",
                "parameters": [
                    {"description": "Withdrawal request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.TransactionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TransactionResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/services.Response"}}
                }
            }
        }
    },
    "definitions": {
        "models.Account": {
            "type": "object",
            "properties": {
                "accountNumber": {"type": "string"},
                "accountType": {"type": "string"},
                "balance": {"type": "string", "example": "0.00"},
                "createdAt": {"type": "string"},
                "customerId": {"type": "integer"},
                "id": {"type": "integer"}
            }
        },
        "models.Address": {
            "type": "object",
            "properties": {
                "addressLine1": {"type": "string"},
                "addressLine2": {"type": "string"},
                "addressType": {"type": "string"},
                "city": {"type": "string"},
                "country": {"type": "string"},
                "id": {"type": "integer"},
                "postalCode": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "models.AddressRequest": {
            "type": "object",
            "required": ["addressLine1", "addressType"],
            "properties": {
                "addressLine1": {"type": "string", "example": "1 Main St"},
                "addressLine2": {"type": "string"},
                "addressType": {"type": "string", "enum": ["HOME", "OFFICE"], "example": "HOME"},
                "city": {"type": "string", "example": "Springfield"},
                "country": {"type": "string"},
                "postalCode": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "models.Customer": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "id": {"type": "integer"},
                "phoneNumber": {"type": "string"},
                "roles": {"type": "array", "items": {"type": "string"}},
                "username": {"type": "string"}
            }
        },
        "models.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "example": "s3cret-pass"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "models.LoginResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "roles": {"type": "array", "items": {"type": "string"}},
                "token": {"type": "string"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "models.RegisterRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "fullName": {"type": "string", "example": "Alice Smith"},
                "password": {"type": "string", "example": "s3cret-pass"},
                "phoneNumber": {"type": "string", "example": "+15550100"},
                "role": {"type": "string", "example": "CUSTOMER"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "models.TransactionRequest": {
            "type": "object",
            "required": ["accountNumber"],
            "properties": {
                "accountNumber": {"type": "string", "example": "3f2a9c1e-7b4"},
                "amount": {"type": "string", "example": "100.00"},
                "description": {"type": "string", "example": "Salary"}
            }
        },
        "models.TransactionResult": {
            "type": "object",
            "properties": {
                "accountNumber": {"type": "string"},
                "amount": {"type": "string"},
                "balanceAfter": {"type": "string"},
                "description": {"type": "string"},
                "transactionId": {"type": "integer"},
                "transactionTime": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "services.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string", "example": "Deposit successful"},
                "status": {"type": "integer", "example": 200}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Core Banking Backend API",
	Description:      "Customer, account and ledger API for a core banking system",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
