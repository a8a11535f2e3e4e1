// Package api registers the OpenAPI description served at /docs.
//
// The paths are generated from the handler annotations with
// "swag init -g main.go -o api --parseInternal".
package api

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
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/root.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/organizations": {
            "post": {
                "description": "Creates a new organization. The currency defaults to the configured default currency",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Organizations"
                ],
                "summary": "Create organization",
                "parameters": [
                    {
                        "description": "Organization",
                        "name": "organization",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.OrganizationInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Organization"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Organizations"
                ],
                "summary": "Get organization",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Organization"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/accounts": {
            "get": {
                "description": "Returns the chart of accounts, ordered by account number",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Get accounts",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-array_models_Account"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Create account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Account",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.AccountInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Account"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/accounts/{id}": {
            "patch": {
                "description": "Updates an account. Accounts with bookings can only change name and active state",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Update account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Account",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.AccountUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Account"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/attachments/{id}": {
            "delete": {
                "tags": [
                    "Vouchers"
                ],
                "summary": "Delete attachment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "423": {
                        "description": "Locked",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/audit-log": {
            "get": {
                "description": "Returns the audit log of the organization, newest entries first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Organizations"
                ],
                "summary": "Get audit log",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Filter by entity type, e.g. Voucher",
                        "name": "entityType",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by entity ID",
                        "name": "entityId",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by action, e.g. voucher.create",
                        "name": "action",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first entry returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of entries to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-ledger_AuditPage"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/bookings/batch-assign": {
            "post": {
                "description": "Assigns an earmark, a budget or tags to all bookings matching the filter. Bookings in closed fiscal years are skipped",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bookings"
                ],
                "summary": "Assign bookings",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Assignment",
                        "name": "assignment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BatchAssignRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-ledger_BatchResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/budgets": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budgets",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-array_models_Budget"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Create budget",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Budget",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.BudgetInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Budget"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/budgets/{id}/usage": {
            "get": {
                "description": "Returns the usage of a budget and the remaining amount below its ceiling. Without a year, the year of the budget is used",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budget usage",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Fiscal year",
                        "name": "year",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-ledger_Usage"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/dues": {
            "get": {
                "description": "Lists the fee of each member for each period of the range and whether it is paid",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reconciliation"
                ],
                "summary": "Get dues",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "MONTHLY, QUARTERLY or YEARLY",
                        "name": "interval",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "First period key",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Last period key, defaults to from",
                        "name": "to",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Glob on member name and number",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-array_ledger_DueEntry"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/earmarks": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Earmarks"
                ],
                "summary": "Get earmarks",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-array_models_Earmark"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Earmarks"
                ],
                "summary": "Create earmark",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Earmark",
                        "name": "earmark",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.EarmarkInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Earmark"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/earmarks/{id}/usage": {
            "get": {
                "description": "Returns credits, debits and the resulting usage of an earmark. Credits count positive, debits negative",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Earmarks"
                ],
                "summary": "Get earmark usage",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Fiscal year",
                        "name": "year",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-ledger_Usage"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/export": {
            "get": {
                "description": "Exports all resources of the organization, keyed by resource type",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Organizations"
                ],
                "summary": "Export organization",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-map_string_array_object"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/fiscal-years": {
            "get": {
                "description": "Returns all years with vouchers or an explicit state, newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fiscal years"
                ],
                "summary": "Get fiscal years",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-array_ledger_YearStatus"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/fiscal-years/{year}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fiscal years"
                ],
                "summary": "Get fiscal year",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Fiscal year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-ledger_YearStatus"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/fiscal-years/{year}/close": {
            "post": {
                "description": "Closes the year. Vouchers of closed years cannot be changed",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fiscal years"
                ],
                "summary": "Close fiscal year",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Fiscal year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-ledger_YearStatus"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/fiscal-years/{year}/export": {
            "get": {
                "description": "Returns a snapshot of the year with all vouchers and the usage of earmarks and budgets",
                "produces": [
                    "application/json",
                    "application/yaml"
                ],
                "tags": [
                    "Fiscal years"
                ],
                "summary": "Export fiscal year",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Fiscal year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "json or yaml",
                        "name": "format",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ledger.YearExport"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/fiscal-years/{year}/preview": {
            "get": {
                "description": "Returns the totals of the year by account, sphere and earmark together with warnings about inconsistent vouchers",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fiscal years"
                ],
                "summary": "Preview year closing",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Fiscal year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-ledger_YearPreview"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/fiscal-years/{year}/reopen": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fiscal years"
                ],
                "summary": "Reopen fiscal year",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Fiscal year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-ledger_YearStatus"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/invoice-payments/{id}": {
            "delete": {
                "description": "Deletes a payment and returns the invoice with its updated settlement status",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Invoices"
                ],
                "summary": "Delete invoice payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID of the payment",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Invoice"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/invoices": {
            "get": {
                "description": "Returns a page of invoices ordered by due date",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Invoices"
                ],
                "summary": "Get invoices",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "OPEN, PARTIAL or PAID",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Only unpaid invoices due before today",
                        "name": "overdue",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first invoice returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of invoices to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-ledger_InvoicePage"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Invoices"
                ],
                "summary": "Create invoice",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Invoice",
                        "name": "invoice",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.InvoiceInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Invoice"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/invoices/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Invoices"
                ],
                "summary": "Get invoice",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Invoice"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/invoices/{id}/payments": {
            "post": {
                "description": "Records a (partial) payment and updates the settlement status of the invoice",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Invoices"
                ],
                "summary": "Record invoice payment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Payment",
                        "name": "payment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.InvoicePaymentInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Invoice"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/members": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Members"
                ],
                "summary": "Get members",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Glob on name and number",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-array_models_Member"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Members"
                ],
                "summary": "Create member",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Member",
                        "name": "member",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.MemberInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Member"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/members/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Members"
                ],
                "summary": "Get member",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Member"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/members/{id}/history": {
            "get": {
                "description": "Returns the latest payments of the member, oldest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Members"
                ],
                "summary": "Get payment history",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of records. Defaults to 50.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-array_ledger_PaymentRecord"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/members/{id}/payments": {
            "put": {
                "description": "Records the payment of the member's fee for a period. Marking a period again updates its record",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Members"
                ],
                "summary": "Mark period paid",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Payment. The member ID is taken from the path",
                        "name": "payment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.MarkPaidInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-ledger_PaymentRecord"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/members/{id}/payments/{periodKey}": {
            "delete": {
                "description": "Removes the payment record of the period. Periods without a record are ignored",
                "tags": [
                    "Members"
                ],
                "summary": "Unmark period",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Period key, e.g. 2024-03, 2024-Q1 or 2024",
                        "name": "periodKey",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/members/{id}/status": {
            "get": {
                "description": "Returns whether the member is up to date with the fees as of today",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Members"
                ],
                "summary": "Get member status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-ledger_MemberStatus"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/suggestions": {
            "get": {
                "description": "Ranks vouchers that may be the payment of a member's fee for a period",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reconciliation"
                ],
                "summary": "Get voucher suggestions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Name of the member",
                        "name": "memberName",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Expected amount",
                        "name": "amount",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Period key",
                        "name": "periodKey",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-array_ledger_Suggestion"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/tags": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tags"
                ],
                "summary": "Get tags",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-array_models_Tag"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tags"
                ],
                "summary": "Create tag",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Tag",
                        "name": "tag",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.TagInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Tag"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/vouchers": {
            "get": {
                "description": "Returns a page of vouchers ordered by date and number",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Vouchers"
                ],
                "summary": "Get vouchers",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Filter by fiscal year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Vouchers on or after this date (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Vouchers on or before this date (YYYY-MM-DD)",
                        "name": "until",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by voucher type",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by tax sphere",
                        "name": "sphere",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by payment method",
                        "name": "paymentMethod",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Search in description, counterparty and booking memos",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Vouchers with a booking with this tag",
                        "name": "tag",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Vouchers with a booking with this earmark",
                        "name": "earmark",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Vouchers with a booking with this budget",
                        "name": "budget",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Vouchers with a booking on this account",
                        "name": "account",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first voucher returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of vouchers to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-ledger_VoucherPage"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a balanced voucher with its bookings and assigns the next number of its fiscal year",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Vouchers"
                ],
                "summary": "Create voucher",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Voucher",
                        "name": "voucher",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.VoucherInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Voucher"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "423": {
                        "description": "Locked",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/vouchers/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Vouchers"
                ],
                "summary": "Get voucher",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Voucher"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Vouchers"
                ],
                "summary": "Delete voucher",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "423": {
                        "description": "Locked",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates a voucher. If lines are sent, they replace all bookings",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Vouchers"
                ],
                "summary": "Update voucher",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Voucher",
                        "name": "voucher",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.VoucherUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Voucher"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "423": {
                        "description": "Locked",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/vouchers/{id}/attachments": {
            "post": {
                "description": "Records the metadata of a file stored for the voucher",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Vouchers"
                ],
                "summary": "Attach file",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Attachment",
                        "name": "attachment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ledger.AttachmentInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Attachment"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "423": {
                        "description": "Locked",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{organizationId}/vouchers/{id}/reverse": {
            "post": {
                "description": "Creates a voucher with mirrored bookings, dated today, that cancels the voucher",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Vouchers"
                ],
                "summary": "Reverse voucher",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "organizationId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.Response-models_Voucher"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "423": {
                        "description": "Locked",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "httputil.HTTPError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "This HTTP method is not allowed for the endpoint you called"
                }
            }
        },
        "ledger.AccountInput": {
            "type": "object",
            "properties": {
                "active": {
                    "description": "Defaults to true",
                    "type": "boolean"
                },
                "name": {
                    "type": "string",
                    "example": "Bank"
                },
                "number": {
                    "type": "string",
                    "example": "1200"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.AccountType"
                        }
                    ],
                    "example": "ASSET"
                }
            }
        },
        "ledger.AccountTotals": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string"
                },
                "credit": {
                    "type": "string"
                },
                "debit": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "net": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                }
            }
        },
        "ledger.AccountUpdate": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "type": {
                    "$ref": "#/definitions/models.AccountType"
                }
            }
        },
        "ledger.AmountView": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "display": {
                    "type": "string",
                    "example": "\u20ac100.00"
                }
            }
        },
        "ledger.AssignTarget": {
            "type": "object",
            "properties": {
                "budgetId": {
                    "type": "string"
                },
                "earmarkId": {
                    "type": "string"
                },
                "tagIds": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "ledger.AttachmentInput": {
            "type": "object",
            "properties": {
                "filename": {
                    "type": "string",
                    "example": "receipt.pdf"
                },
                "mimeType": {
                    "type": "string",
                    "example": "application/pdf"
                },
                "size": {
                    "type": "integer",
                    "example": 48213
                },
                "storagePath": {
                    "type": "string",
                    "example": "2024/03/receipt.pdf"
                }
            }
        },
        "ledger.AuditPage": {
            "type": "object",
            "properties": {
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.AuditLog"
                    }
                },
                "limit": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "ledger.BatchFilter": {
            "type": "object",
            "properties": {
                "from": {
                    "type": "string"
                },
                "paymentMethod": {
                    "$ref": "#/definitions/models.PaymentMethod"
                },
                "search": {
                    "description": "Matches voucher description, counterparty and booking memo",
                    "type": "string"
                },
                "sphere": {
                    "$ref": "#/definitions/models.Sphere"
                },
                "type": {
                    "$ref": "#/definitions/models.VoucherType"
                },
                "until": {
                    "type": "string"
                }
            }
        },
        "ledger.BatchResult": {
            "type": "object",
            "properties": {
                "skipped": {
                    "description": "Bookings in closed fiscal years",
                    "type": "integer"
                },
                "updated": {
                    "type": "integer"
                }
            }
        },
        "ledger.BookingLine": {
            "type": "object",
            "properties": {
                "accountId": {
                    "description": "Account the line is posted to",
                    "type": "string",
                    "example": "a4b3ad4a-0e2b-4f77-a1e5-0a3a5a5d1c4e"
                },
                "budgetId": {
                    "type": "string"
                },
                "credit": {
                    "description": "Credit amount. Exactly one of debit and credit must be set",
                    "type": "string",
                    "example": "100.00"
                },
                "debit": {
                    "description": "Debit amount. Exactly one of debit and credit must be set",
                    "type": "string",
                    "example": "100.00"
                },
                "earmarkId": {
                    "type": "string"
                },
                "memo": {
                    "type": "string",
                    "example": "Hall rent March"
                },
                "tagIds": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "taxCode": {
                    "type": "string",
                    "example": "VAT19"
                }
            }
        },
        "ledger.BudgetInput": {
            "type": "object",
            "properties": {
                "ceiling": {
                    "type": "string",
                    "example": "1500.00"
                },
                "label": {
                    "type": "string",
                    "example": "Regatta 2024"
                },
                "year": {
                    "type": "integer",
                    "example": 2024
                }
            }
        },
        "ledger.BudgetSummary": {
            "type": "object",
            "properties": {
                "ceiling": {
                    "$ref": "#/definitions/ledger.AmountView"
                },
                "label": {
                    "type": "string"
                },
                "remaining": {
                    "$ref": "#/definitions/ledger.AmountView"
                },
                "usage": {
                    "$ref": "#/definitions/ledger.AmountView"
                }
            }
        },
        "ledger.DueEntry": {
            "type": "object",
            "properties": {
                "due": {
                    "type": "string",
                    "example": "10.00"
                },
                "memberId": {
                    "type": "string"
                },
                "memberName": {
                    "type": "string"
                },
                "memberNumber": {
                    "type": "string"
                },
                "paid": {
                    "type": "boolean"
                },
                "payment": {
                    "$ref": "#/definitions/models.MemberPayment"
                },
                "periodKey": {
                    "type": "string",
                    "example": "2024-03"
                },
                "periodStart": {
                    "type": "string"
                }
            }
        },
        "ledger.EarmarkInput": {
            "type": "object",
            "properties": {
                "active": {
                    "description": "Defaults to true",
                    "type": "boolean"
                },
                "code": {
                    "type": "string",
                    "example": "YOUTH"
                },
                "color": {
                    "type": "string",
                    "example": "#2b8a3e"
                },
                "name": {
                    "type": "string",
                    "example": "Youth work"
                }
            }
        },
        "ledger.EarmarkSummary": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "code": {
                    "type": "string"
                },
                "credit": {
                    "$ref": "#/definitions/ledger.AmountView"
                },
                "debit": {
                    "$ref": "#/definitions/ledger.AmountView"
                },
                "name": {
                    "type": "string"
                },
                "usage": {
                    "$ref": "#/definitions/ledger.AmountView"
                }
            }
        },
        "ledger.EarmarkTotals": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "credit": {
                    "type": "string"
                },
                "debit": {
                    "type": "string"
                },
                "earmarkId": {
                    "description": "Nil for bookings without an earmark",
                    "type": "string"
                },
                "net": {
                    "type": "string"
                }
            }
        },
        "ledger.ExportedBooking": {
            "type": "object",
            "properties": {
                "account": {
                    "type": "string"
                },
                "accountName": {
                    "type": "string"
                },
                "budget": {
                    "description": "Label of the budget",
                    "type": "string"
                },
                "credit": {
                    "$ref": "#/definitions/ledger.AmountView"
                },
                "debit": {
                    "$ref": "#/definitions/ledger.AmountView"
                },
                "earmark": {
                    "description": "Code of the earmark",
                    "type": "string"
                },
                "memo": {
                    "type": "string"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "taxCode": {
                    "type": "string"
                }
            }
        },
        "ledger.ExportedVoucher": {
            "type": "object",
            "properties": {
                "attachments": {
                    "type": "integer"
                },
                "bookings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.ExportedBooking"
                    }
                },
                "counterparty": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "paymentMethod": {
                    "$ref": "#/definitions/models.PaymentMethod"
                },
                "reference": {
                    "type": "string"
                },
                "reversalOf": {
                    "description": "Reference of the reversed voucher",
                    "type": "string"
                },
                "sphere": {
                    "$ref": "#/definitions/models.Sphere"
                },
                "type": {
                    "$ref": "#/definitions/models.VoucherType"
                }
            }
        },
        "ledger.InvoiceInput": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "250.00"
                },
                "budgetId": {
                    "type": "string"
                },
                "category": {
                    "type": "string",
                    "example": "Equipment"
                },
                "counterparty": {
                    "type": "string",
                    "example": "Sports equipment Ltd."
                },
                "dueDate": {
                    "type": "string",
                    "example": "2024-04-30T00:00:00Z"
                },
                "earmarkId": {
                    "type": "string"
                },
                "sphere": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Sphere"
                        }
                    ],
                    "example": "PURPOSE"
                }
            }
        },
        "ledger.InvoicePage": {
            "type": "object",
            "properties": {
                "invoices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Invoice"
                    }
                },
                "limit": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "ledger.InvoicePaymentInput": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "date": {
                    "type": "string",
                    "example": "2024-04-12T00:00:00Z"
                },
                "voucherId": {
                    "type": "string"
                }
            }
        },
        "ledger.MarkPaidInput": {
            "type": "object",
            "properties": {
                "amount": {
                    "description": "Defaults to the fee of the member",
                    "type": "string",
                    "example": "10.00"
                },
                "interval": {
                    "description": "Defaults to the interval of the member",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Interval"
                        }
                    ],
                    "example": "MONTHLY"
                },
                "memberId": {
                    "type": "string"
                },
                "paidAt": {
                    "description": "Defaults to now",
                    "type": "string"
                },
                "periodKey": {
                    "type": "string",
                    "example": "2024-03"
                },
                "verified": {
                    "type": "boolean"
                },
                "voucherId": {
                    "type": "string"
                }
            }
        },
        "ledger.MemberInput": {
            "type": "object",
            "properties": {
                "exitDate": {
                    "type": "string"
                },
                "fee": {
                    "type": "string",
                    "example": "10.00"
                },
                "interval": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Interval"
                        }
                    ],
                    "example": "MONTHLY"
                },
                "joinDate": {
                    "type": "string",
                    "example": "2023-01-15T00:00:00Z"
                },
                "name": {
                    "type": "string",
                    "example": "Jane Doe"
                },
                "number": {
                    "type": "string",
                    "example": "M-0042"
                }
            }
        },
        "ledger.MemberState": {
            "type": "string",
            "enum": [
                "OK",
                "OVERDUE"
            ],
            "x-enum-varnames": [
                "MemberOK",
                "MemberOverdue"
            ]
        },
        "ledger.MemberStatus": {
            "type": "object",
            "properties": {
                "lastPaidAt": {
                    "type": "string"
                },
                "lastPaidPeriod": {
                    "type": "string",
                    "example": "2024-01"
                },
                "memberId": {
                    "type": "string"
                },
                "nextDue": {
                    "description": "Start of the first unpaid period. Not set for members that left and paid everything",
                    "type": "string"
                },
                "overdueCount": {
                    "type": "integer",
                    "example": 2
                },
                "overduePeriods": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "2024-02",
                        "2024-03"
                    ]
                },
                "state": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/ledger.MemberState"
                        }
                    ],
                    "example": "OVERDUE"
                }
            }
        },
        "ledger.OrganizationInput": {
            "type": "object",
            "properties": {
                "currency": {
                    "description": "ISO 4217 code. Defaults to the configured currency",
                    "type": "string",
                    "example": "EUR"
                },
                "name": {
                    "type": "string",
                    "example": "Rowing Club 1887"
                }
            }
        },
        "ledger.PaymentRecord": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "discrepancy": {
                    "description": "Amount paid minus the fee of the member",
                    "type": "string",
                    "example": "0.00"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "interval": {
                    "$ref": "#/definitions/types.Interval"
                },
                "memberId": {
                    "type": "string"
                },
                "paidAt": {
                    "type": "string"
                },
                "periodKey": {
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "verified": {
                    "type": "boolean"
                },
                "voucherId": {
                    "type": "string"
                },
                "voucherReference": {
                    "type": "string",
                    "example": "2024-17"
                }
            }
        },
        "ledger.SphereTotals": {
            "type": "object",
            "properties": {
                "credit": {
                    "type": "string"
                },
                "debit": {
                    "type": "string"
                },
                "net": {
                    "type": "string"
                },
                "sphere": {
                    "$ref": "#/definitions/models.Sphere"
                }
            }
        },
        "ledger.Suggestion": {
            "type": "object",
            "properties": {
                "amountScore": {
                    "type": "integer",
                    "example": 2
                },
                "counterparty": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "gross": {
                    "description": "Sum of the debits of the voucher",
                    "type": "string",
                    "example": "10.00"
                },
                "linkedPeriods": {
                    "description": "Periods already marked paid with the voucher",
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "nameScore": {
                    "type": "integer",
                    "example": 2
                },
                "reference": {
                    "type": "string",
                    "example": "2024-17"
                },
                "score": {
                    "type": "integer",
                    "example": 4
                },
                "voucherId": {
                    "type": "string"
                }
            }
        },
        "ledger.TagInput": {
            "type": "object",
            "properties": {
                "color": {
                    "type": "string",
                    "example": "#e8590c"
                },
                "name": {
                    "type": "string",
                    "example": "Donation"
                }
            }
        },
        "ledger.Usage": {
            "type": "object",
            "properties": {
                "bookings": {
                    "description": "Number of bookings referencing the earmark or budget",
                    "type": "integer"
                },
                "budgetId": {
                    "type": "string"
                },
                "ceiling": {
                    "description": "Ceiling of the budget, if any",
                    "type": "string"
                },
                "credit": {
                    "type": "string"
                },
                "debit": {
                    "type": "string"
                },
                "earmarkId": {
                    "type": "string"
                },
                "remaining": {
                    "description": "Ceiling plus usage, if a ceiling is set",
                    "type": "string"
                },
                "usage": {
                    "type": "string"
                },
                "year": {
                    "description": "Year the usage is scoped to",
                    "type": "integer"
                }
            }
        },
        "ledger.VoucherInput": {
            "type": "object",
            "properties": {
                "counterparty": {
                    "type": "string",
                    "example": "Town hall"
                },
                "date": {
                    "description": "Date of the voucher. Only the calendar day is used",
                    "type": "string",
                    "example": "2024-03-01T00:00:00Z"
                },
                "description": {
                    "type": "string",
                    "example": "Hall rent"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.BookingLine"
                    }
                },
                "paymentMethod": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.PaymentMethod"
                        }
                    ],
                    "example": "BANK"
                },
                "sphere": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Sphere"
                        }
                    ],
                    "example": "IDEAL"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.VoucherType"
                        }
                    ],
                    "example": "RECEIPT"
                }
            }
        },
        "ledger.VoucherPage": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "vouchers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Voucher"
                    }
                }
            }
        },
        "ledger.VoucherUpdate": {
            "type": "object",
            "properties": {
                "counterparty": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "lines": {
                    "description": "Replaces all bookings if set",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.BookingLine"
                    }
                },
                "paymentMethod": {
                    "$ref": "#/definitions/models.PaymentMethod"
                },
                "sphere": {
                    "$ref": "#/definitions/models.Sphere"
                },
                "type": {
                    "$ref": "#/definitions/models.VoucherType"
                }
            }
        },
        "ledger.Warning": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "reference": {
                    "type": "string",
                    "example": "2024-17"
                },
                "voucherId": {
                    "type": "string"
                }
            }
        },
        "ledger.YearExport": {
            "type": "object",
            "properties": {
                "budgets": {
                    "description": "Budgets of the year",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.BudgetSummary"
                    }
                },
                "currency": {
                    "type": "string"
                },
                "earmarks": {
                    "description": "Usage within the year",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.EarmarkSummary"
                    }
                },
                "generatedAt": {
                    "type": "string"
                },
                "organization": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/ledger.YearStatus"
                },
                "totalCredit": {
                    "$ref": "#/definitions/ledger.AmountView"
                },
                "totalDebit": {
                    "$ref": "#/definitions/ledger.AmountView"
                },
                "vouchers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.ExportedVoucher"
                    }
                }
            }
        },
        "ledger.YearPreview": {
            "type": "object",
            "properties": {
                "byAccount": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.AccountTotals"
                    }
                },
                "byEarmark": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.EarmarkTotals"
                    }
                },
                "bySphere": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.SphereTotals"
                    }
                },
                "closed": {
                    "type": "boolean"
                },
                "totalCredit": {
                    "type": "string"
                },
                "totalDebit": {
                    "type": "string"
                },
                "voucherCount": {
                    "type": "integer"
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.Warning"
                    }
                },
                "year": {
                    "type": "integer"
                }
            }
        },
        "ledger.YearStatus": {
            "type": "object",
            "properties": {
                "closed": {
                    "type": "boolean"
                },
                "closedAt": {
                    "type": "string"
                },
                "year": {
                    "type": "integer",
                    "example": 2024
                }
            }
        },
        "models.Account": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "name": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "organizationId": {
                    "type": "string"
                },
                "type": {
                    "$ref": "#/definitions/models.AccountType"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.AccountType": {
            "type": "string",
            "enum": [
                "ASSET",
                "LIABILITY",
                "INCOME",
                "EXPENSE"
            ],
            "x-enum-varnames": [
                "AccountAsset",
                "AccountLiability",
                "AccountIncome",
                "AccountExpense"
            ]
        },
        "models.Attachment": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "filename": {
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "mimeType": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                },
                "storagePath": {
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "voucherId": {
                    "type": "string"
                }
            }
        },
        "models.AuditLog": {
            "type": "object",
            "properties": {
                "action": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "entityId": {
                    "type": "string"
                },
                "entityType": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "organizationId": {
                    "type": "string"
                },
                "payload": {
                    "type": "object"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "models.Booking": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string"
                },
                "budgetId": {
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "credit": {
                    "type": "string"
                },
                "debit": {
                    "type": "string"
                },
                "earmarkId": {
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "memo": {
                    "type": "string"
                },
                "position": {
                    "description": "Order of the line within the voucher",
                    "type": "integer"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Tag"
                    }
                },
                "taxCode": {
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "voucherId": {
                    "type": "string"
                }
            }
        },
        "models.Budget": {
            "type": "object",
            "properties": {
                "ceiling": {
                    "description": "Optional upper limit for the spending",
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "label": {
                    "type": "string"
                },
                "organizationId": {
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "year": {
                    "type": "integer"
                }
            }
        },
        "models.Earmark": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "code": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "name": {
                    "type": "string"
                },
                "organizationId": {
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.Invoice": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "budgetId": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "counterparty": {
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "dueDate": {
                    "type": "string"
                },
                "earmarkId": {
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "organizationId": {
                    "type": "string"
                },
                "payments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.InvoicePayment"
                    }
                },
                "sphere": {
                    "$ref": "#/definitions/models.Sphere"
                },
                "status": {
                    "$ref": "#/definitions/models.InvoiceStatus"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.InvoicePayment": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "date": {
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "invoiceId": {
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "voucherId": {
                    "type": "string"
                }
            }
        },
        "models.InvoiceStatus": {
            "type": "string",
            "enum": [
                "OPEN",
                "PARTIAL",
                "PAID"
            ],
            "x-enum-varnames": [
                "InvoiceOpen",
                "InvoicePartial",
                "InvoicePaid"
            ]
        },
        "models.Member": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "exitDate": {
                    "type": "string"
                },
                "fee": {
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "interval": {
                    "$ref": "#/definitions/types.Interval"
                },
                "joinDate": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "organizationId": {
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.MemberPayment": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "interval": {
                    "$ref": "#/definitions/types.Interval"
                },
                "memberId": {
                    "type": "string"
                },
                "paidAt": {
                    "type": "string"
                },
                "periodKey": {
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "verified": {
                    "type": "boolean"
                },
                "voucherId": {
                    "type": "string"
                }
            }
        },
        "models.Organization": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "currency": {
                    "description": "ISO 4217 code used to display amounts",
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "name": {
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.PaymentMethod": {
            "type": "string",
            "enum": [
                "CASH",
                "BANK"
            ],
            "x-enum-varnames": [
                "PaymentCash",
                "PaymentBank"
            ]
        },
        "models.Sphere": {
            "type": "string",
            "enum": [
                "IDEAL",
                "PURPOSE",
                "ASSET",
                "BUSINESS"
            ],
            "x-enum-varnames": [
                "SphereIdeal",
                "SpherePurpose",
                "SphereAsset",
                "SphereBusiness"
            ]
        },
        "models.Tag": {
            "type": "object",
            "properties": {
                "color": {
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "name": {
                    "type": "string"
                },
                "organizationId": {
                    "type": "string"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.Voucher": {
            "type": "object",
            "properties": {
                "attachments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Attachment"
                    }
                },
                "bookings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Booking"
                    }
                },
                "counterparty": {
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "number": {
                    "type": "integer"
                },
                "organizationId": {
                    "type": "string"
                },
                "paymentMethod": {
                    "$ref": "#/definitions/models.PaymentMethod"
                },
                "reversalOfId": {
                    "type": "string"
                },
                "sphere": {
                    "$ref": "#/definitions/models.Sphere"
                },
                "type": {
                    "$ref": "#/definitions/models.VoucherType"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "year": {
                    "description": "Year of Date, the scope of Number",
                    "type": "integer"
                }
            }
        },
        "models.VoucherType": {
            "type": "string",
            "enum": [
                "RECEIPT",
                "INVOICE",
                "JOURNAL"
            ],
            "x-enum-varnames": [
                "VoucherReceipt",
                "VoucherInvoice",
                "VoucherJournal"
            ]
        },
        "root.Links": {
            "type": "object",
            "properties": {
                "docs": {
                    "description": "Swagger API documentation",
                    "type": "string",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "description": "Healthz endpoint",
                    "type": "string",
                    "example": "https://example.com/api/healthz"
                },
                "metrics": {
                    "description": "Endpoint returning Prometheus metrics",
                    "type": "string",
                    "example": "https://example.com/api/metrics"
                },
                "organizations": {
                    "description": "Endpoint to create organizations",
                    "type": "string",
                    "example": "https://example.com/api/v1/organizations"
                },
                "version": {
                    "description": "Endpoint returning the version of the backend",
                    "type": "string",
                    "example": "https://example.com/api/version"
                }
            }
        },
        "root.Response": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/root.Links"
                }
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "description": "the running version of the backend",
                    "type": "string",
                    "example": "1.1.0"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data object for the version endpoint",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.VersionObject"
                        }
                    ]
                }
            }
        },
        "types.Interval": {
            "type": "string",
            "enum": [
                "MONTHLY",
                "QUARTERLY",
                "YEARLY"
            ],
            "x-enum-varnames": [
                "Monthly",
                "Quarterly",
                "Yearly"
            ]
        },
        "v1.BatchAssignRequest": {
            "type": "object",
            "properties": {
                "filter": {
                    "$ref": "#/definitions/ledger.BatchFilter"
                },
                "onlyWithout": {
                    "description": "Only update bookings that have no value for the target yet",
                    "type": "boolean"
                },
                "target": {
                    "$ref": "#/definitions/ledger.AssignTarget"
                }
            }
        },
        "v1.Response-array_ledger_DueEntry": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.DueEntry"
                    }
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-array_ledger_PaymentRecord": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.PaymentRecord"
                    }
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-array_ledger_Suggestion": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.Suggestion"
                    }
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-array_ledger_YearStatus": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ledger.YearStatus"
                    }
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-array_models_Account": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Account"
                    }
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-array_models_Budget": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Budget"
                    }
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-array_models_Earmark": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Earmark"
                    }
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-array_models_Member": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Member"
                    }
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-array_models_Tag": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Tag"
                    }
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-ledger_AuditPage": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/ledger.AuditPage"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-ledger_BatchResult": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/ledger.BatchResult"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-ledger_InvoicePage": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/ledger.InvoicePage"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-ledger_MemberStatus": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/ledger.MemberStatus"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-ledger_PaymentRecord": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/ledger.PaymentRecord"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-ledger_Usage": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/ledger.Usage"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-ledger_VoucherPage": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/ledger.VoucherPage"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-ledger_YearPreview": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/ledger.YearPreview"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-ledger_YearStatus": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/ledger.YearStatus"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-map_string_array_object": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "type": "object"
                        }
                    }
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-models_Account": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Account"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-models_Attachment": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Attachment"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-models_Budget": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Budget"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-models_Earmark": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Earmark"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-models_Invoice": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Invoice"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-models_Member": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Member"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-models_Organization": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Organization"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-models_Tag": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Tag"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.Response-models_Voucher": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/models.Voucher"
                },
                "error": {
                    "type": "string",
                    "example": "the fiscal year is closed: 2023 is closed for organization 8a8fc0d9-d14a-4a5b-9ea6-2bc8ba3b3ab6"
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "invalid input: the voucher is not balanced"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
