// Package docs holds the OpenAPI description served at /swagger.
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
                "tags": ["health"],
                "summary": "API info and health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/products": {
            "get": {
                "description": "Without a search term, lists every product. Otherwise resolves the term by SKU, model name or full name and returns the product's knowledge record.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products or look one up",
                "parameters": [
                    {"type": "string", "description": "Product SKU", "name": "sku", "in": "query"},
                    {"type": "string", "description": "Model name", "name": "model", "in": "query"},
                    {"type": "string", "description": "Free-text product name", "name": "query", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductListResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/faq": {
            "get": {
                "description": "Ranks the FAQ entries of the product against the question. Without a question, returns the whole FAQ. When nothing matches, answers holds every entry and matched is false.",
                "produces": ["application/json"],
                "tags": ["support"],
                "summary": "Search a product's FAQ",
                "parameters": [
                    {"type": "string", "description": "Product SKU", "name": "sku", "in": "query"},
                    {"type": "string", "description": "Model name", "name": "model", "in": "query"},
                    {"type": "string", "description": "Question (alias: q)", "name": "question", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FAQSearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/troubleshoot": {
            "get": {
                "description": "Ranks the troubleshooting entries of the product against the issue description. When nothing matches, every entry is returned with a general-tips message.",
                "produces": ["application/json"],
                "tags": ["support"],
                "summary": "Troubleshoot a product issue",
                "parameters": [
                    {"type": "string", "description": "Product SKU", "name": "sku", "in": "query"},
                    {"type": "string", "description": "Model name", "name": "model", "in": "query"},
                    {"type": "string", "description": "Issue description (alias: problem)", "name": "issue", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TroubleshootingSearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/install": {
            "get": {
                "description": "Ranks the installation topics of the product against the topic. Without a topic, returns every topic with the product documents.",
                "produces": ["application/json"],
                "tags": ["support"],
                "summary": "Get installation guides",
                "parameters": [
                    {"type": "string", "description": "Product SKU", "name": "sku", "in": "query"},
                    {"type": "string", "description": "Model name", "name": "model", "in": "query"},
                    {"type": "string", "description": "Installation topic", "name": "topic", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.InstallationSearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/issues": {
            "post": {
                "description": "Records a support issue. Accepts either a plain body or a voice-assistant tool call (message.toolCallList); tool calls are answered in-band with results[].",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["issues"],
                "summary": "Log a support issue",
                "parameters": [
                    {"description": "Issue", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LogIssueRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LogIssueResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/reload": {
            "post": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Reload the knowledge base",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReloadResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "query": {"type": "string"}}
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "version": {"type": "string"},
                "status": {"type": "string"},
                "products_loaded": {"type": "integer"},
                "endpoints": {"type": "object", "additionalProperties": {"type": "string"}},
                "support": {"$ref": "#/definitions/dto.SupportContact"}
            }
        },
        "dto.SupportContact": {
            "type": "object",
            "properties": {"phone": {"type": "string"}, "website": {"type": "string"}}
        },
        "dto.ProductSummary": {
            "type": "object",
            "properties": {
                "sku": {"type": "string"},
                "model": {"type": "string"},
                "name": {"type": "string"},
                "category": {"type": "string"}
            }
        },
        "dto.ProductListResponse": {
            "type": "object",
            "properties": {
                "products": {"type": "array", "items": {"$ref": "#/definitions/dto.ProductSummary"}},
                "count": {"type": "integer"}
            }
        },
        "dto.FAQItem": {
            "type": "object",
            "properties": {"question": {"type": "string"}, "answer": {"type": "string"}, "score": {"type": "integer"}}
        },
        "dto.FAQSearchResponse": {
            "type": "object",
            "properties": {
                "product": {"type": "string"},
                "question": {"type": "string"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/dto.FAQItem"}},
                "matched": {"type": "boolean"}
            }
        },
        "models.CauseSolution": {
            "type": "object",
            "properties": {"cause": {"type": "string"}, "solution": {"type": "string"}}
        },
        "dto.TroubleshootingItem": {
            "type": "object",
            "properties": {
                "issue": {"type": "string"},
                "symptoms": {"type": "string"},
                "causes_solutions": {"type": "array", "items": {"$ref": "#/definitions/models.CauseSolution"}},
                "score": {"type": "integer"}
            }
        },
        "dto.TroubleshootingSearchResponse": {
            "type": "object",
            "properties": {
                "product": {"type": "string"},
                "issue": {"type": "string"},
                "message": {"type": "string"},
                "troubleshooting": {"type": "array", "items": {"$ref": "#/definitions/dto.TroubleshootingItem"}},
                "matched": {"type": "boolean"},
                "support": {"type": "object"}
            }
        },
        "dto.InstallationItem": {
            "type": "object",
            "properties": {
                "topic": {"type": "string"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "score": {"type": "integer"}
            }
        },
        "dto.InstallationSearchResponse": {
            "type": "object",
            "properties": {
                "product": {"type": "string"},
                "topic": {"type": "string"},
                "guides": {"type": "array", "items": {"$ref": "#/definitions/dto.InstallationItem"}},
                "matched": {"type": "boolean"},
                "documents": {"type": "object"}
            }
        },
        "dto.LogIssueRequest": {
            "type": "object",
            "properties": {
                "sku": {"type": "string"},
                "issue": {"type": "string"},
                "caller_info": {"type": "string"},
                "severity": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "dto.LogIssueResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "issue": {"type": "object"}
            }
        },
        "dto.ReloadResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "products_loaded": {"type": "integer"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Product Support Knowledge API",
	Description:      "FAQ, troubleshooting and installation lookups over per-product knowledge records, plus support issue logging.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
