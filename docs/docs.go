// Package docs registra el OpenAPI que sirve /swagger/doc.json.
// Refleja las anotaciones swag de cmd/api/main.go y de los handlers en internal/domain;
// docs_test.go falla si se desincronizan.
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
        "/api/auth/google/callback": {
            "get": {
                "description": "Intercambia el code, hace upsert del perfil (best-effort) y setea la cookie de sesión.",
                "tags": [
                    "auth"
                ],
                "summary": "Callback OAuth de Google",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Authorization code",
                        "name": "code",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "State",
                        "name": "state",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "See Other"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/users.errorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/users.errorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/users.errorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/users.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/google/login": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Iniciar sesión con Google",
                "responses": {
                    "302": {
                        "description": "Found"
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/users.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Cerrar sesión",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/auth/session": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Sesión actual",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.sessionResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/users.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/beta-registrations": {
            "post": {
                "description": "Valida el formulario, evita duplicados por email, persiste con status=pending y envía (loguea) un email de agradecimiento. Si el email falla la registración se mantiene y outcome=registered_notify_failed.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "beta"
                ],
                "summary": "Registrarse en la beta",
                "parameters": [
                    {
                        "description": "Formulario beta",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/registrations.createRegistrationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Ya registrado",
                        "schema": {
                            "$ref": "#/definitions/registrations.createRegistrationResponse"
                        }
                    },
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/registrations.createRegistrationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/registrations.errorResponse"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/registrations.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/registrations.errorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/registrations.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/beta-registrations/{email}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "beta"
                ],
                "summary": "Ver registración por email",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Email",
                        "name": "email",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/registrations.registrationResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/registrations.errorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/registrations.errorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/registrations.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/registrations.errorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/registrations.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/beta-registrations/{id}/status": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "beta"
                ],
                "summary": "Aprobar / rechazar registración",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Registration ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Nuevo estado",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/registrations.updateStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/registrations.errorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/registrations.errorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/registrations.errorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/registrations.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pets/explore": {
            "get": {
                "description": "Genera pets de display (se regeneran en cada request).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Galería de pets",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Cantidad (1..16, default 16)",
                        "name": "count",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/pets.petResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/pets.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pets/hatch": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Pet sorteado para el hatch",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petResponse"
                        }
                    }
                }
            }
        },
        "/api/submit-email": {
            "post": {
                "description": "Guarda el email en beta_emails con source=website_download. Si ya existe responde \"Welcome back!\".",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "beta"
                ],
                "summary": "Dejar email para la beta",
                "parameters": [
                    {
                        "description": "Email",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/betaemails.submitEmailRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/betaemails.submitEmailResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/betaemails.errorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/betaemails.errorResponse"
                        }
                    },
                    "405": {
                        "description": "Method Not Allowed",
                        "schema": {
                            "$ref": "#/definitions/betaemails.errorResponse"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/betaemails.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/betaemails.errorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/betaemails.errorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "betaemails.errorResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "betaemails.submitEmailRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                }
            }
        },
        "betaemails.submitEmailResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                },
                "alreadyExists": {
                    "type": "boolean"
                }
            }
        },
        "pets.errorResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "background": {
                    "type": "string"
                },
                "traits": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "rarity": {
                    "type": "string"
                }
            }
        },
        "registrations.createRegistrationRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "discord_username": {
                    "type": "string"
                },
                "telegram_handle": {
                    "type": "string"
                },
                "playstyle": {
                    "type": "string",
                    "enum": [
                        "Pet Collector",
                        "Cozy Observer",
                        "Tap To Connect",
                        "Other"
                    ]
                },
                "playstyle_other": {
                    "type": "string"
                },
                "discovery_source": {
                    "type": "string"
                },
                "discovery_source_other": {
                    "type": "string"
                },
                "game_genres": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "game_genres_other": {
                    "type": "string"
                }
            }
        },
        "registrations.createRegistrationResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "outcome": {
                    "type": "string"
                },
                "alreadyExists": {
                    "type": "boolean"
                },
                "notificationSent": {
                    "type": "boolean"
                },
                "registration": {
                    "$ref": "#/definitions/registrations.registrationResponse"
                }
            }
        },
        "registrations.errorResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "field": {
                    "type": "string"
                }
            }
        },
        "registrations.registrationResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "discord_username": {
                    "type": "string"
                },
                "telegram_handle": {
                    "type": "string"
                },
                "playstyle": {
                    "type": "string"
                },
                "playstyle_other": {
                    "type": "string"
                },
                "discovery_source": {
                    "type": "string"
                },
                "discovery_source_other": {
                    "type": "string"
                },
                "game_genres": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "game_genres_other": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "welcome_email_sent": {
                    "type": "boolean"
                }
            }
        },
        "registrations.updateStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "approved",
                        "rejected"
                    ]
                }
            }
        },
        "users.errorResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "users.sessionResponse": {
            "type": "object",
            "properties": {
                "user_id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "expires_at": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SoPets Web API",
	Description:      "Backend del sitio de SoPets: registro beta, captura de emails, login con Google y mascotas de muestra.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
