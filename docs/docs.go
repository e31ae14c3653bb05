// Package docs holds the swagger document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Returns the health status of the API",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}}
                }
            }
        },
        "/api/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "API banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MessageResponse"}}
                }
            }
        },
        "/api/business-plan": {
            "get": {
                "description": "Returns the content of the currently active business plan",
                "produces": ["application/json"],
                "tags": ["business-plan"],
                "summary": "Get the active business plan",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BusinessPlanResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Stores a new plan and makes it the active one. Earlier plans are kept but deactivated.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["business-plan"],
                "summary": "Create a business plan",
                "parameters": [
                    {"description": "Plan content", "name": "plan", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.PlanContent"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.CreatePlanResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/business-plan/{id}": {
            "put": {
                "description": "Overwrites the content of an existing plan. The active plan does not change.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["business-plan"],
                "summary": "Replace a plan's content",
                "parameters": [
                    {"type": "string", "description": "Plan ID", "name": "id", "in": "path", "required": true},
                    {"description": "Plan content", "name": "plan", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.PlanContent"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/images": {
            "get": {
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "List images in a category",
                "parameters": [
                    {"type": "string", "description": "equipment, emoped or battery", "name": "category", "in": "query", "required": true},
                    {"type": "string", "description": "Only images for this item", "name": "itemId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ImageListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Stores an image for a product category. The declared content type must be image/*.\nAlso served at /images/upload, which accepts image_type and item_id as field names.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Upload an image",
                "parameters": [
                    {"type": "file", "description": "Image file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "equipment, emoped or battery", "name": "category", "in": "formData", "required": true},
                    {"type": "string", "description": "Item the image belongs to", "name": "itemId", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ImageUploadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/images/{id}": {
            "get": {
                "description": "Streams the stored bytes as an attachment named after the original upload, with the content type recorded at upload.",
                "produces": ["image/jpeg", "image/png", "image/webp", "image/gif"],
                "tags": ["images"],
                "summary": "Download an image",
                "parameters": [
                    {"type": "string", "description": "Image ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Delete an image",
                "parameters": [
                    {"type": "string", "description": "Image ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.BusinessPlanResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/models.PlanContent"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "models.CreatePlanResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "models.ImageAsset": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"},
                "id": {"type": "string"},
                "item_id": {"type": "string"},
                "mimetype": {"type": "string"},
                "original_name": {"type": "string"},
                "size": {"type": "integer"},
                "type": {"type": "string", "enum": ["equipment", "emoped", "battery"]},
                "uploaded_at": {"type": "string"}
            }
        },
        "models.ImageListResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.ImageAsset"}},
                "success": {"type": "boolean", "example": true}
            }
        },
        "models.ImageUploadResponse": {
            "type": "object",
            "properties": {
                "imageId": {"type": "string"},
                "imageUrl": {"type": "string"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "E-Moped Business Plan API"}
            }
        },
        "models.PlanContent": {
            "type": "object",
            "required": ["investment_summary", "risks"],
            "properties": {
                "business_model": {"type": "object"},
                "executive_summary": {"type": "object"},
                "financial_data": {"type": "object"},
                "investment_summary": {"type": "array", "items": {"type": "object"}},
                "operations": {"type": "object"},
                "products": {"type": "object"},
                "risks": {"type": "array", "items": {"type": "object"}}
            }
        },
        "models.SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "E-Moped Business Plan API",
	Description:      "Serves the active e-moped business plan and stores product images for it.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
