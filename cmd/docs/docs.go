// Package docs holds the OpenAPI description served under /swagger.
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
        "/accounts": {
            "post": {
                "tags": [
                    "accounts"
                ],
                "summary": "Create account",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Account"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "get": {
                "tags": [
                    "accounts"
                ],
                "summary": "List accounts",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListAccountsResponse"
                        }
                    }
                }
            }
        },
        "/accounts/{id}": {
            "get": {
                "tags": [
                    "accounts"
                ],
                "summary": "Get by ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Account"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "accounts"
                ],
                "summary": "Remove (absent ids are ignored)",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "patch": {
                "tags": [
                    "accounts"
                ],
                "summary": "Update",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Account"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/assistant/chat-completion": {
            "post": {
                "tags": [
                    "assistant"
                ],
                "summary": "Chat-completion proxy",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Conversation",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ChatCompletionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Upstream completion, or text/event-stream when stream is true"
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "502": {
                        "description": "Upstream error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Assistant unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/assistant/messages": {
            "post": {
                "tags": [
                    "assistant"
                ],
                "summary": "Assistant widget reply",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Widget session identifier",
                        "name": "X-Session-ID",
                        "in": "header"
                    },
                    {
                        "description": "Conversation so far",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AssistantReplyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AssistantReplyResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "A reply is already in progress for this session",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/budgets": {
            "post": {
                "tags": [
                    "budgets"
                ],
                "summary": "Create budget",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateBudgetRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Budget"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "get": {
                "tags": [
                    "budgets"
                ],
                "summary": "List budgets",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListBudgetsResponse"
                        }
                    }
                }
            }
        },
        "/budgets/{id}": {
            "get": {
                "tags": [
                    "budgets"
                ],
                "summary": "Get by ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Budget"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "budgets"
                ],
                "summary": "Remove (absent ids are ignored)",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "patch": {
                "tags": [
                    "budgets"
                ],
                "summary": "Update",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateBudgetRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Budget"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/currencies": {
            "get": {
                "tags": [
                    "currencies"
                ],
                "summary": "List all currencies",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.CurrencyResponse"
                            }
                        }
                    }
                }
            }
        },
        "/currencies/convert": {
            "get": {
                "tags": [
                    "currencies"
                ],
                "summary": "Convert an amount into the selected currency",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Amount",
                        "name": "amount",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Source currency code (default USD)",
                        "name": "from",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ConvertResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid amount",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/currencies/format": {
            "get": {
                "tags": [
                    "currencies"
                ],
                "summary": "Format a USD amount in the selected currency",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "USD amount",
                        "name": "amount",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.FormatResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid amount",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/currencies/selected": {
            "get": {
                "tags": [
                    "currencies"
                ],
                "summary": "Get the selected display currency",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CurrencyResponse"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "currencies"
                ],
                "summary": "Select the display currency",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Currency code",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SetSelectedCurrencyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CurrencyResponse"
                        }
                    },
                    "400": {
                        "description": "Unknown currency code",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/currencies/{code}": {
            "get": {
                "tags": [
                    "currencies"
                ],
                "summary": "Get a currency by code",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Currency Code (3 letters)",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CurrencyResponse"
                        }
                    },
                    "404": {
                        "description": "Currency not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Dashboard overview",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DashboardResponse"
                        }
                    }
                }
            }
        },
        "/dashboard/budgets": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Budget progress",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Month (YYYY-MM)",
                        "name": "month",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.BudgetOverview"
                        }
                    }
                }
            }
        },
        "/dashboard/cash-flow": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Monthly cash flow",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Trailing months to include (0 = all)",
                        "name": "months",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.MonthlyCashFlow"
                            }
                        }
                    }
                }
            }
        },
        "/dashboard/expenses-by-category": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Expenses by category",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.CategoryAmount"
                            }
                        }
                    }
                }
            }
        },
        "/dashboard/net-worth": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Net worth",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.NetWorth"
                        }
                    }
                }
            }
        },
        "/invoices": {
            "post": {
                "tags": [
                    "invoices"
                ],
                "summary": "Create invoice",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateInvoiceRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Invoice"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "get": {
                "tags": [
                    "invoices"
                ],
                "summary": "List invoices",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "draft, sent or paid",
                        "name": "status",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListInvoicesResponse"
                        }
                    }
                }
            }
        },
        "/invoices/{id}": {
            "get": {
                "tags": [
                    "invoices"
                ],
                "summary": "Get by ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Invoice"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "invoices"
                ],
                "summary": "Remove (absent ids are ignored)",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/invoices/{id}/status": {
            "put": {
                "tags": [
                    "invoices"
                ],
                "summary": "Move an invoice through its lifecycle",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Invoice ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New status",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateInvoiceStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Invoice"
                        }
                    },
                    "400": {
                        "description": "Invalid status",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Invoice not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Transition not allowed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reports": {
            "post": {
                "tags": [
                    "reports"
                ],
                "summary": "Create report",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateReportRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Report"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "List reports",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "balance-sheet, profit-loss or cash-flow",
                        "name": "type",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListReportsResponse"
                        }
                    }
                }
            }
        },
        "/reports/{id}": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Get by ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Report"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "reports"
                ],
                "summary": "Remove (absent ids are ignored)",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/transactions": {
            "post": {
                "tags": [
                    "transactions"
                ],
                "summary": "Create transaction",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateTransactionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Transaction"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "get": {
                "tags": [
                    "transactions"
                ],
                "summary": "List transactions",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Category",
                        "name": "category",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "income or expense",
                        "name": "type",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Month (YYYY-MM)",
                        "name": "month",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Account name or account ID",
                        "name": "account",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Case-insensitive text to find in the description",
                        "name": "search",
                        "in": "query",
                        "required": false
                    },
                    {
                        "maximum": 100,
                        "minimum": 1,
                        "type": "integer",
                        "description": "Page size (1-100), all when omitted",
                        "name": "limit",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Cursor from the previous page",
                        "name": "nextToken",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListTransactionsResponse"
                        }
                    }
                }
            }
        },
        "/transactions/suggest-category": {
            "get": {
                "tags": [
                    "transactions"
                ],
                "summary": "Suggest a category for a description",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Transaction description",
                        "name": "description",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuggestCategoryResponse"
                        }
                    }
                }
            }
        },
        "/transactions/{id}": {
            "get": {
                "tags": [
                    "transactions"
                ],
                "summary": "Get by ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Transaction"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "transactions"
                ],
                "summary": "Remove (absent ids are ignored)",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "patch": {
                "tags": [
                    "transactions"
                ],
                "summary": "Update",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateTransactionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Transaction"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Account": {
            "type": "object",
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "accountType": {
                    "type": "string"
                },
                "balance": {
                    "type": "string",
                    "format": "decimal"
                },
                "currencyCode": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                }
            }
        },
        "domain.Budget": {
            "type": "object",
            "properties": {
                "budgetID": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "limit": {
                    "type": "string",
                    "format": "decimal"
                },
                "color": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                }
            }
        },
        "domain.BudgetOverview": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string"
                },
                "budgets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.BudgetStatus"
                    }
                },
                "totalBudgeted": {
                    "type": "string",
                    "format": "decimal"
                },
                "totalSpent": {
                    "type": "string",
                    "format": "decimal"
                },
                "totalRemaining": {
                    "type": "string",
                    "format": "decimal"
                }
            }
        },
        "domain.BudgetStatus": {
            "type": "object",
            "properties": {
                "budgetID": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "limit": {
                    "type": "string",
                    "format": "decimal"
                },
                "color": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "spent": {
                    "type": "string",
                    "format": "decimal"
                },
                "remaining": {
                    "type": "string",
                    "format": "decimal"
                },
                "percentUsed": {
                    "type": "string",
                    "format": "decimal"
                },
                "overBudget": {
                    "type": "boolean"
                }
            }
        },
        "domain.CategoryAmount": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal"
                }
            }
        },
        "domain.Invoice": {
            "type": "object",
            "properties": {
                "invoiceID": {
                    "type": "string"
                },
                "clientName": {
                    "type": "string"
                },
                "clientEmail": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "dueDate": {
                    "type": "string",
                    "format": "date"
                },
                "template": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                }
            }
        },
        "domain.MonthlyCashFlow": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string"
                },
                "income": {
                    "type": "string",
                    "format": "decimal"
                },
                "expense": {
                    "type": "string",
                    "format": "decimal"
                },
                "net": {
                    "type": "string",
                    "format": "decimal"
                }
            }
        },
        "domain.NetWorth": {
            "type": "object",
            "properties": {
                "totalAssets": {
                    "type": "string",
                    "format": "decimal"
                },
                "totalLiabilities": {
                    "type": "string",
                    "format": "decimal"
                },
                "netWorth": {
                    "type": "string",
                    "format": "decimal"
                }
            }
        },
        "domain.Report": {
            "type": "object",
            "properties": {
                "reportID": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "generatedAt": {
                    "type": "string"
                },
                "data": {
                    "type": "object"
                }
            }
        },
        "domain.Transaction": {
            "type": "object",
            "properties": {
                "transactionID": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date"
                },
                "description": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "type": {
                    "type": "string"
                },
                "account": {
                    "type": "string"
                },
                "accountID": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                }
            }
        },
        "dto.AssistantReplyRequest": {
            "type": "object",
            "properties": {
                "messages": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ChatMessage"
                    }
                }
            }
        },
        "dto.AssistantReplyResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "$ref": "#/definitions/dto.ChatMessage"
                }
            }
        },
        "dto.ChatCompletionRequest": {
            "type": "object",
            "properties": {
                "messages": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ChatMessage"
                    }
                },
                "stream": {
                    "type": "boolean"
                }
            }
        },
        "dto.ChatMessage": {
            "type": "object",
            "properties": {
                "role": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                }
            }
        },
        "dto.ConvertResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "from": {
                    "type": "string"
                },
                "to": {
                    "type": "string"
                },
                "result": {
                    "type": "string",
                    "format": "decimal"
                }
            }
        },
        "dto.CreateAccountRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "accountType": {
                    "type": "string"
                },
                "balance": {
                    "type": "string",
                    "format": "decimal"
                },
                "currencyCode": {
                    "type": "string"
                }
            }
        },
        "dto.CreateBudgetRequest": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "limit": {
                    "type": "string",
                    "format": "decimal"
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "dto.CreateInvoiceRequest": {
            "type": "object",
            "properties": {
                "clientName": {
                    "type": "string"
                },
                "clientEmail": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "dueDate": {
                    "type": "string",
                    "format": "date"
                },
                "template": {
                    "type": "string"
                }
            }
        },
        "dto.CreateReportRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "data": {
                    "type": "object"
                }
            }
        },
        "dto.CreateTransactionRequest": {
            "type": "object",
            "required": [
                "amount",
                "date",
                "description"
            ],
            "properties": {
                "date": {
                    "type": "string",
                    "format": "date"
                },
                "description": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "account": {
                    "type": "string"
                },
                "accountID": {
                    "type": "string"
                }
            }
        },
        "dto.CurrencyResponse": {
            "type": "object",
            "properties": {
                "currencyCode": {
                    "type": "string"
                },
                "symbol": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "rate": {
                    "type": "string",
                    "format": "decimal"
                },
                "selected": {
                    "type": "boolean"
                }
            }
        },
        "dto.BudgetOverviewView": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string"
                },
                "budgets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.BudgetStatusView"
                    }
                },
                "totalBudgeted": {
                    "$ref": "#/definitions/dto.MoneyView"
                },
                "totalSpent": {
                    "$ref": "#/definitions/dto.MoneyView"
                },
                "totalRemaining": {
                    "$ref": "#/definitions/dto.MoneyView"
                }
            }
        },
        "dto.BudgetStatusView": {
            "type": "object",
            "properties": {
                "budgetID": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "limit": {
                    "$ref": "#/definitions/dto.MoneyView"
                },
                "spent": {
                    "$ref": "#/definitions/dto.MoneyView"
                },
                "remaining": {
                    "$ref": "#/definitions/dto.MoneyView"
                },
                "percentUsed": {
                    "type": "string",
                    "format": "decimal"
                },
                "overBudget": {
                    "type": "boolean"
                }
            }
        },
        "dto.CashFlowView": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string"
                },
                "income": {
                    "$ref": "#/definitions/dto.MoneyView"
                },
                "expense": {
                    "$ref": "#/definitions/dto.MoneyView"
                },
                "net": {
                    "$ref": "#/definitions/dto.MoneyView"
                }
            }
        },
        "dto.CategoryView": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "amount": {
                    "$ref": "#/definitions/dto.MoneyView"
                }
            }
        },
        "dto.DashboardResponse": {
            "type": "object",
            "properties": {
                "currencyCode": {
                    "type": "string"
                },
                "month": {
                    "type": "string"
                },
                "netWorth": {
                    "$ref": "#/definitions/dto.MoneyView"
                },
                "totalAssets": {
                    "$ref": "#/definitions/dto.MoneyView"
                },
                "totalLiabilities": {
                    "$ref": "#/definitions/dto.MoneyView"
                },
                "monthlyIncome": {
                    "$ref": "#/definitions/dto.MoneyView"
                },
                "monthlyExpense": {
                    "$ref": "#/definitions/dto.MoneyView"
                },
                "ytdProfit": {
                    "$ref": "#/definitions/dto.MoneyView"
                },
                "cashFlow": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CashFlowView"
                    }
                },
                "expensesByCategory": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CategoryView"
                    }
                },
                "budgets": {
                    "$ref": "#/definitions/dto.BudgetOverviewView"
                },
                "recentTransactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Transaction"
                    }
                }
            }
        },
        "dto.FormatResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "currencyCode": {
                    "type": "string"
                },
                "formatted": {
                    "type": "string"
                }
            }
        },
        "dto.ListAccountsResponse": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Account"
                    }
                }
            }
        },
        "dto.ListBudgetsResponse": {
            "type": "object",
            "properties": {
                "budgets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Budget"
                    }
                }
            }
        },
        "dto.ListInvoicesResponse": {
            "type": "object",
            "properties": {
                "invoices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Invoice"
                    }
                }
            }
        },
        "dto.ListReportsResponse": {
            "type": "object",
            "properties": {
                "reports": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Report"
                    }
                }
            }
        },
        "dto.ListTransactionsResponse": {
            "type": "object",
            "properties": {
                "nextToken": {
                    "type": "string"
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Transaction"
                    }
                }
            }
        },
        "dto.MoneyView": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "converted": {
                    "type": "string",
                    "format": "decimal"
                },
                "formatted": {
                    "type": "string"
                }
            }
        },
        "dto.SetSelectedCurrencyRequest": {
            "type": "object",
            "properties": {
                "currencyCode": {
                    "type": "string"
                }
            }
        },
        "dto.SuggestCategoryResponse": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateAccountRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "balance": {
                    "type": "string",
                    "format": "decimal"
                },
                "currencyCode": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateBudgetRequest": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "limit": {
                    "type": "string",
                    "format": "decimal"
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateInvoiceStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateTransactionRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "format": "date"
                },
                "description": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal"
                },
                "account": {
                    "type": "string"
                },
                "accountID": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	Schemes:          []string{},
	Title:            "Finance Dashboard API",
	Description:      "Accounts, transactions, invoices, budgets, reports, currency conversion and the assistant proxy.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
