// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

// Package docs registers the OpenAPI document served at /swagger/doc.json.
//
// The document mirrors the swag annotations on the handlers in internal/api.
// Regenerate with: swag init -g cmd/server/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/dailymoma/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/artwork": {
            "get": {
                "description": "Returns two artworks chosen deterministically for the calendar date. Always answers 200; when the date is invalid or the list is unusable the response carries source \"sample\" and an error message.",
                "produces": ["application/json"],
                "tags": ["Artwork"],
                "summary": "Get the artworks of the day",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Calendar date (YYYY-MM-DD or RFC 3339)",
                        "name": "date",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Selected artworks (source moma or sample)",
                        "schema": {"$ref": "#/definitions/models.ArtworkResponse"}
                    }
                }
            }
        },
        "/image": {
            "get": {
                "description": "Returns a placeholder image URL for a collection object ID.",
                "produces": ["application/json"],
                "tags": ["Artwork"],
                "summary": "Resolve an artwork image URL",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection object ID",
                        "name": "objectId",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Image URL",
                        "schema": {"$ref": "#/definitions/models.ImageResponse"}
                    },
                    "400": {
                        "description": "Missing or invalid object ID",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Get service health",
                "responses": {
                    "200": {
                        "description": "Health status",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Kubernetes liveness probe",
                "responses": {
                    "200": {
                        "description": "Service is alive",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Kubernetes readiness probe",
                "responses": {
                    "200": {
                        "description": "Service is ready",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    },
                    "503": {
                        "description": "Warm-up in progress",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        },
        "/health/performance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Get request latency statistics",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Number of recent requests to include (values above 100 are capped)",
                        "name": "recent",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Performance statistics",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    },
                    "400": {
                        "description": "Invalid recent parameter",
                        "schema": {"$ref": "#/definitions/models.APIResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "models.Artwork": {
            "type": "object",
            "properties": {
                "Title": {"type": "string"},
                "Artist": {"description": "A name, or an ordered list of names"},
                "Date": {"type": "string"},
                "Medium": {"type": "string"},
                "Department": {"type": "string"},
                "Classification": {"type": "string"},
                "ObjectID": {"description": "Collection identifier (string or number)"}
            }
        },
        "models.CacheInfo": {
            "type": "object",
            "properties": {
                "cached": {"type": "boolean"},
                "cacheAge": {"type": "integer", "description": "Minutes since the list was loaded"}
            }
        },
        "models.ArtworkResponse": {
            "type": "object",
            "properties": {
                "artwork1": {"$ref": "#/definitions/models.Artwork"},
                "artwork2": {"$ref": "#/definitions/models.Artwork"},
                "totalArtworks": {"type": "integer"},
                "source": {"type": "string", "enum": ["moma", "sample"]},
                "date": {"type": "string", "example": "2024-09-01"},
                "cacheInfo": {"$ref": "#/definitions/models.CacheInfo"},
                "error": {"type": "string"}
            }
        },
        "models.ImageResponse": {
            "type": "object",
            "properties": {
                "imageUrl": {"type": "string"},
                "source": {"type": "string"},
                "objectId": {"type": "string"},
                "note": {"type": "string"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "data": {},
                "metadata": {"type": "object"},
                "error": {"$ref": "#/definitions/models.APIError"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Daily MoMA API",
	Description:      "Two artworks from the Museum of Modern Art collection, chosen deterministically for each calendar day.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
