// Package docs registers the OpenAPI description served under /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Create an account",
                "responses": {
                    "201": {"description": "token and user"},
                    "400": {"description": "validation error"},
                    "409": {"description": "email already registered"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in with email and password",
                "responses": {
                    "200": {"description": "token and user"},
                    "401": {"description": "invalid credentials"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Clear the session cookie",
                "responses": {"200": {"description": "logged out"}}
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "user"},
                    "404": {"description": "user not found"}
                }
            }
        },
        "/exams/generate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["exams"],
                "summary": "Build an exam from the question bank, the generator or the local fallback set",
                "responses": {
                    "201": {"description": "exam_id, exam, questions and source"},
                    "400": {"description": "validation error"},
                    "500": {"description": "not enough questions or generation failed"}
                }
            }
        },
        "/exams": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["exams"],
                "summary": "List the caller's exams, newest first",
                "responses": {"200": {"description": "exams with question_count"}}
            }
        },
        "/exams/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["exams"],
                "summary": "Exam with its ordered questions",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "exam and questions"},
                    "404": {"description": "exam not found"}
                }
            }
        },
        "/exams/{id}/submit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["exams"],
                "summary": "Score a submission and credit the leaderboard",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "session_id, score, analytics, percentage, detailedResults"},
                    "400": {"description": "answers is not an array"},
                    "404": {"description": "exam not found"}
                }
            }
        },
        "/badges": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["badges"],
                "summary": "Badge catalog with the caller's earned and claimed state",
                "responses": {"200": {"description": "badges"}}
            }
        },
        "/badges/claim": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["badges"],
                "summary": "Claim an earned badge",
                "responses": {
                    "200": {"description": "badge and animation"},
                    "404": {"description": "badge not found or already claimed"}
                }
            }
        },
        "/leaderboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["leaderboard"],
                "summary": "Top users by total points",
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "rankings"}}
            }
        },
        "/question-bank/questions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["question-bank"],
                "summary": "Random sample of active bank questions",
                "responses": {"200": {"description": "questions"}}
            }
        },
        "/question-bank/subjects": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["question-bank"],
                "summary": "Distinct subjects",
                "responses": {"200": {"description": "subjects"}}
            }
        },
        "/question-bank/topics": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["question-bank"],
                "summary": "Distinct topics of a subject",
                "responses": {"200": {"description": "topics"}}
            }
        },
        "/ai-quiz": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["ai-quiz"],
                "summary": "Preview generated questions without saving them",
                "responses": {
                    "201": {"description": "questions"},
                    "503": {"description": "generation service unavailable"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Quizee API",
	Description:      "Exam practice backend: exam generation, scoring, leaderboard and badges.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
