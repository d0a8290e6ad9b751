package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "LifeHub API Documentation",
        "title": "LifeHub API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api/v1",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register",
                "description": "Create an account and receive a token pair",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Account created"},
                    "409": {"description": "Email or username already taken"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "User Login",
                "description": "Login with email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Token pair"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Refresh token pair",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "New token pair"},
                    "401": {"description": "Invalid refresh token"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Logout",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Logged out"}
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Task list"}}
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create task",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Task created"}}
            }
        },
        "/tasks/buckets": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks grouped into planning buckets",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Today, overdue, this week, completed and inbox buckets"}}
            }
        },
        "/tasks/reorder": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Persist manual task order",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Order saved"}}
            }
        },
        "/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get task",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Task"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Update task",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Updated task"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete task",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/tasks/{id}/complete": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Complete or reopen task",
                "description": "Completing a recurring task spawns its next occurrence",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Updated task"}, "404": {"description": "Not found"}}
            }
        },
        "/habits": {
            "get": {
                "tags": ["Habits"],
                "summary": "List habits with day history",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Habits with trailing-window history"}}
            },
            "post": {
                "tags": ["Habits"],
                "summary": "Create habit",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Habit created"}}
            }
        },
        "/habits/{id}": {
            "get": {
                "tags": ["Habits"],
                "summary": "Get habit",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Habit"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Habits"],
                "summary": "Update habit",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Updated habit"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Habits"],
                "summary": "Delete habit",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/habits/{id}/days/{date}": {
            "put": {
                "tags": ["Habits"],
                "summary": "Set habit day status",
                "description": "Status none removes the record, skip and full upsert it",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Day record"}, "400": {"description": "Invalid status or date"}}
            }
        },
        "/addictions": {
            "get": {
                "tags": ["Addictions"],
                "summary": "List addictions with reset history",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Addictions with in-window reset dates"}}
            },
            "post": {
                "tags": ["Addictions"],
                "summary": "Create addiction tracker",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Addiction created"}}
            }
        },
        "/addictions/{id}": {
            "get": {
                "tags": ["Addictions"],
                "summary": "Get addiction",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Addiction"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Addictions"],
                "summary": "Update addiction",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Updated addiction"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Addictions"],
                "summary": "Delete addiction",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/addictions/{id}/resets/{date}": {
            "put": {
                "tags": ["Addictions"],
                "summary": "Record a reset on a day",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Reset recorded"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Addictions"],
                "summary": "Remove the latest reset of a day",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Reset removed"}, "404": {"description": "Not found"}}
            }
        },
        "/goals": {
            "get": {
                "tags": ["Goals"],
                "summary": "List goals",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Goal list"}}
            },
            "post": {
                "tags": ["Goals"],
                "summary": "Create goal",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Goal created"}}
            }
        },
        "/goals/{id}": {
            "get": {
                "tags": ["Goals"],
                "summary": "Get goal",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Goal"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Goals"],
                "summary": "Update goal",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Updated goal"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Goals"],
                "summary": "Delete goal",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and JWT token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "LifeHub API",
	Description:      "LifeHub API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
