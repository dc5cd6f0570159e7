// Package docs 保存 swagger 接口描述，注解变化时需同步修改 docTemplate
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
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["认证"],
                "summary": "注册新用户",
                "parameters": [
                    {"description": "用户注册信息", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "创建成功", "schema": {"$ref": "#/definitions/util.Response"}},
                    "400": {"description": "请求参数错误", "schema": {"$ref": "#/definitions/util.Response"}},
                    "409": {"description": "邮箱已被注册", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["认证"],
                "summary": "用户登录",
                "parameters": [
                    {"description": "登录信息", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "登录成功", "schema": {"$ref": "#/definitions/service.LoginResult"}},
                    "400": {"description": "缺少邮箱或密码", "schema": {"$ref": "#/definitions/util.Response"}},
                    "401": {"description": "邮箱或密码错误", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/logout": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["认证"],
                "summary": "退出登录",
                "responses": {
                    "200": {"description": "已退出", "schema": {"$ref": "#/definitions/util.Response"}},
                    "401": {"description": "未授权", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/profile": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["用户"],
                "summary": "获取个人资料",
                "responses": {
                    "200": {"description": "成功", "schema": {"$ref": "#/definitions/service.Profile"}},
                    "401": {"description": "未授权", "schema": {"$ref": "#/definitions/util.Response"}},
                    "404": {"description": "用户不存在", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/upload-photo": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["用户"],
                "summary": "上传头像",
                "parameters": [
                    {"type": "file", "description": "头像文件", "name": "photo", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "上传成功", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "文件缺失或类型不允许", "schema": {"$ref": "#/definitions/util.Response"}},
                    "401": {"description": "未授权", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/uploads/{filename}": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["用户"],
                "summary": "读取已上传的文件",
                "parameters": [
                    {"type": "string", "description": "存储文件名", "name": "filename", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "文件内容", "schema": {"type": "file"}},
                    "404": {"description": "文件不存在", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/generate-quiz": {
            "get": {
                "description": "各变体的路由后缀为 \"\"、-12maths、-12biology、-12arts、-12commerce；生成失败时返回空列表",
                "produces": ["application/json"],
                "tags": ["测验"],
                "summary": "生成测验题目",
                "responses": {
                    "200": {"description": "题目列表", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/service.Question"}}}}
                }
            }
        },
        "/evaluate-quiz": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "10th 返回 suggestion/reason，12th 变体返回 primary_suggestion/primary_reason/alternate_suggestions",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["测验"],
                "summary": "评估测验作答",
                "parameters": [
                    {"description": "作答内容", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.EvaluateRequest"}}
                ],
                "responses": {
                    "200": {"description": "评估结果", "schema": {"$ref": "#/definitions/service.SubjectSuggestionPayload"}},
                    "400": {"description": "没有作答", "schema": {"$ref": "#/definitions/util.Response"}},
                    "401": {"description": "未授权", "schema": {"$ref": "#/definitions/util.Response"}},
                    "500": {"description": "评估失败", "schema": {"$ref": "#/definitions/service.SubjectSuggestionPayload"}}
                }
            }
        },
        "/user-quiz-results": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "按时间倒序返回，可用 quiz_type 过滤",
                "produces": ["application/json"],
                "tags": ["测验"],
                "summary": "查询历史测验结果",
                "parameters": [
                    {"enum": ["10th", "12th_science_maths", "12th_science_biology", "12th_arts", "12th_commerce"], "type": "string", "description": "测验类型", "name": "quiz_type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "历史结果", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/service.QuizResultView"}}}},
                    "400": {"description": "未知的测验类型", "schema": {"$ref": "#/definitions/util.Response"}},
                    "401": {"description": "未授权", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/quiz-variants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["测验"],
                "summary": "列出支持的测验变体",
                "responses": {
                    "200": {"description": "变体列表", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/service.QuizVariant"}}}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "检查服务和数据库状态",
                "produces": ["application/json"],
                "tags": ["系统"],
                "summary": "健康检查",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        }
    },
    "definitions": {
        "controller.EvaluateRequest": {
            "type": "object",
            "properties": {"answers": {"type": "object"}}
        },
        "controller.LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "controller.RegisterRequest": {
            "type": "object",
            "properties": {
                "birthday": {"type": "string", "example": "2008-05-14"},
                "email": {"type": "string", "maxLength": 255},
                "full_name": {"type": "string", "maxLength": 100},
                "password": {"type": "string", "maxLength": 128},
                "standard": {"type": "string", "maxLength": 20}
            }
        },
        "model.AlternateSuggestion": {
            "type": "object",
            "properties": {"career": {"type": "string"}, "reason": {"type": "string"}}
        },
        "service.LoginResult": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "user_id": {"type": "integer"}}
        },
        "service.Profile": {
            "type": "object",
            "properties": {
                "birthday": {"type": "string"},
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "id": {"type": "integer"},
                "profile_photo": {"type": "string"},
                "standard": {"type": "string"}
            }
        },
        "service.Question": {
            "type": "object",
            "properties": {"options": {"type": "array", "items": {"type": "string"}}, "question": {"type": "string"}}
        },
        "service.QuizResultView": {
            "type": "object",
            "properties": {
                "alternate_suggestions": {"type": "array", "items": {"$ref": "#/definitions/model.AlternateSuggestion"}},
                "answers": {"type": "object"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "quiz_type": {"type": "string"},
                "reason": {"type": "string"},
                "suggestion": {"type": "string"}
            }
        },
        "service.QuizVariant": {
            "type": "object",
            "properties": {
                "careers": {"type": "array", "items": {"type": "string"}},
                "quiz_type": {"type": "string"},
                "route_suffix": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "service.SubjectSuggestionPayload": {
            "type": "object",
            "properties": {
                "alternate_suggestions": {"type": "array", "items": {"$ref": "#/definitions/model.AlternateSuggestion"}},
                "msg": {"type": "string"},
                "primary_reason": {"type": "string"},
                "primary_suggestion": {"type": "string"}
            }
        },
        "util.Response": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "msg": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Career Compass 后端 API",
	Description:      "学生职业规划测验平台的后端服务器。",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
