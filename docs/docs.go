// Package docs registers the OpenAPI description served at /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {
            "get": {
                "tags": ["ops"], "summary": "Liveness and database readiness",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["auth"], "summary": "Create a customer account",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/user.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/user.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"], "summary": "Exchange credentials for a token",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/user.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/user.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/auth/admin/login": {
            "post": {
                "tags": ["auth"], "summary": "Login restricted to administrators",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/user.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/user.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "The caller's profile",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/user.User"}}}
            }
        },
        "/users/profile": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["users"], "summary": "The caller's profile",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/user.User"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Change name, phone or address fields",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/user.ProfileUpdate"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/user.User"}}}
            }
        },
        "/products": {
            "get": {
                "tags": ["products"], "summary": "List the catalog",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "boolean", "name": "available", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/product.ListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Add a product (admin)",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/product.CreateProductRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/product.Product"}}}
            }
        },
        "/products/{id}": {
            "get": {
                "tags": ["products"], "summary": "One product with its customizations",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/product.Product"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Partially update a product (admin)",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/product.UpdateProductRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/product.Product"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Delete a product never ordered (admin)",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/products/category/{category}": {
            "get": {
                "tags": ["products"], "summary": "List one category",
                "parameters": [{"type": "string", "name": "category", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/product.ListResponse"}}}
            }
        },
        "/products/{id}/customizations": {
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Add a size, milk or extra option (admin)",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/product.CreateCustomizationRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/product.Customization"}}}
            }
        },
        "/orders": {
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Place an order; prices come from the catalog",
                "parameters": [
                    {"type": "string", "name": "Idempotency-Key", "in": "header"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/order.CreateOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/order.Order"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "409": {"description": "Duplicate request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "422": {"description": "Product unavailable", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/orders/mine": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Caller's orders, newest first",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/main.OrderList"}}}
            }
        },
        "/orders/{id}": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "One order (owner or admin)",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Order"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/orders/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Move an order along its lifecycle (admin)",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/order.UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Order"}},
                    "409": {"description": "Invalid transition", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/orders/{id}/cancel": {
            "patch": {
                "security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Cancel a pending order",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Order"}},
                    "409": {"description": "Not pending", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/admin/orders": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "All orders (admin)",
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "customer_id", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/main.OrderList"}}}
            }
        },
        "/admin/orders/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Move an order along its lifecycle (admin)",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/order.UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Order"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "409": {"description": "Invalid transition", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/admin/stats": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Order and catalog totals (admin)",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/main.AdminStats"}}}
            }
        },
        "/cart/quote": {
            "post": {
                "tags": ["cart"], "summary": "Price a cart, delivery fee included",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/main.CartQuoteRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/main.CartQuote"}}}
            }
        }
    },
    "definitions": {
        "httpx.HTTPError": {"type": "object", "properties": {"error": {"type": "string", "example": "not found"}}},
        "user.RegisterRequest": {"type": "object", "properties": {
            "email": {"type": "string"}, "password": {"type": "string"}, "name": {"type": "string"},
            "phone": {"type": "string"}, "address": {"type": "string"}, "city": {"type": "string"}, "postal_code": {"type": "string"}
        }},
        "user.LoginRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "user.ProfileUpdate": {"type": "object", "properties": {
            "name": {"type": "string"}, "phone": {"type": "string"}, "address": {"type": "string"},
            "city": {"type": "string"}, "postal_code": {"type": "string"}
        }},
        "user.User": {"type": "object", "properties": {
            "id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"}, "phone": {"type": "string"},
            "roles": {"type": "array", "items": {"type": "string"}},
            "address": {"type": "string"}, "city": {"type": "string"}, "postal_code": {"type": "string"},
            "created_at": {"type": "string"}, "updated_at": {"type": "string"}
        }},
        "user.AuthResponse": {"type": "object", "properties": {"user": {"$ref": "#/definitions/user.User"}, "token": {"type": "string"}}},
        "product.Customization": {"type": "object", "properties": {
            "id": {"type": "string"}, "product_id": {"type": "string"},
            "type": {"type": "string", "enum": ["size", "milk", "extra"]}, "name": {"type": "string"}, "price_add": {"type": "string"}
        }},
        "product.Product": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"},
            "price": {"type": "string", "example": "4.00"}, "image": {"type": "string"}, "category": {"type": "string"},
            "is_available": {"type": "boolean"},
            "customizations": {"type": "array", "items": {"$ref": "#/definitions/product.Customization"}},
            "created_at": {"type": "string"}, "updated_at": {"type": "string"}
        }},
        "product.ListResponse": {"type": "object", "properties": {
            "q": {"type": "string"}, "category": {"type": "string"}, "limit": {"type": "integer"}, "offset": {"type": "integer"},
            "items": {"type": "array", "items": {"$ref": "#/definitions/product.Product"}}
        }},
        "product.CreateProductRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "description": {"type": "string"}, "price": {"type": "string", "example": "4.00"},
            "image": {"type": "string"}, "category": {"type": "string"}, "is_available": {"type": "boolean"}
        }},
        "product.UpdateProductRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "description": {"type": "string"}, "price": {"type": "string"},
            "image": {"type": "string"}, "category": {"type": "string"}, "is_available": {"type": "boolean"}
        }},
        "product.CreateCustomizationRequest": {"type": "object", "properties": {
            "type": {"type": "string", "example": "size"}, "name": {"type": "string"}, "price_add": {"type": "string", "example": "0.75"}
        }},
        "order.CustomizationRef": {"type": "object", "properties": {"type": {"type": "string"}, "name": {"type": "string"}}},
        "order.CreateOrderItem": {"type": "object", "properties": {
            "product_id": {"type": "string"}, "quantity": {"type": "integer", "example": 2},
            "customizations": {"type": "array", "items": {"$ref": "#/definitions/order.CustomizationRef"}},
            "notes": {"type": "string"}
        }},
        "order.CreateOrderRequest": {"type": "object", "properties": {
            "delivery_address": {"type": "string"},
            "items": {"type": "array", "items": {"$ref": "#/definitions/order.CreateOrderItem"}}
        }},
        "order.UpdateStatusRequest": {"type": "object", "properties": {
            "status": {"type": "string", "enum": ["PENDING", "CONFIRMED", "PREPARING", "READY", "DELIVERED", "CANCELLED"]}
        }},
        "order.Item": {"type": "object", "properties": {
            "id": {"type": "string"}, "order_id": {"type": "string"}, "product_id": {"type": "string"},
            "quantity": {"type": "integer"}, "price": {"type": "string"}, "customizations": {"type": "string"}
        }},
        "order.Customer": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "phone": {"type": "string"}}},
        "order.Order": {"type": "object", "properties": {
            "id": {"type": "string"}, "customer_id": {"type": "string"},
            "status": {"type": "string"}, "total_price": {"type": "string", "example": "10.5"},
            "delivery_address": {"type": "string"},
            "items": {"type": "array", "items": {"$ref": "#/definitions/order.Item"}},
            "customer": {"$ref": "#/definitions/order.Customer"},
            "created_at": {"type": "string"}, "updated_at": {"type": "string"}
        }},
        "main.OrderList": {"type": "object", "properties": {
            "status": {"type": "string"}, "limit": {"type": "integer"}, "offset": {"type": "integer"},
            "items": {"type": "array", "items": {"$ref": "#/definitions/order.Order"}}
        }},
        "main.AdminStats": {"type": "object", "properties": {
            "total_orders": {"type": "integer"}, "total_products": {"type": "integer"}, "total_revenue": {"type": "string"},
            "recent_orders": {"type": "array", "items": {"$ref": "#/definitions/order.Order"}}
        }},
        "main.CartQuoteRequest": {"type": "object", "properties": {
            "items": {"type": "array", "items": {"$ref": "#/definitions/order.CreateOrderItem"}}
        }},
        "main.CartQuote": {"type": "object", "properties": {
            "items_count": {"type": "integer"}, "subtotal": {"type": "string"}, "delivery_fee": {"type": "string"}, "total": {"type": "string"},
            "lines": {"type": "array", "items": {"type": "object"}}
        }}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Coffee Orders API",
	Description:      "Catalog, accounts, cart quotes and the order lifecycle.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
