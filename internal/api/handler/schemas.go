package handler

import (
	"github.com/99minutos/user-roles-api/internal/api/validation"
	"github.com/99minutos/user-roles-api/internal/core/domain"
)

// Body field names, shared by the schemas and the handlers reading them.
const (
	fieldName           = "name"
	fieldDescription    = "description"
	fieldFirstNames     = "firstNames"
	fieldLastNames      = "lastNames"
	fieldIdentification = "identification"
	fieldEmail          = "email"
	fieldRoleID         = "roleId"
)

// CreateRoleSchema validates POST /roles bodies.
var CreateRoleSchema = validation.Schema{
	Name: "CreateRole",
	Fields: []validation.Field{
		{
			Name:            fieldName,
			Aliases:         []string{"nombre"},
			Required:        true,
			RequiredMessage: "role name is required",
			TypeMessage:     "role name must be text",
			Rules: []validation.Rule{
				{Tag: "max=50", Message: "role name must not exceed 50 characters"},
			},
		},
		{
			Name:        fieldDescription,
			Aliases:     []string{"descripcion"},
			TypeMessage: "description must be text",
			Rules: []validation.Rule{
				{Tag: "max=200", Message: "description must not exceed 200 characters"},
			},
		},
	},
}

// CreateUserSchema validates POST /users bodies.
var CreateUserSchema = validation.Schema{
	Name: "CreateUser",
	Fields: []validation.Field{
		{
			Name:            fieldFirstNames,
			Aliases:         []string{"nombres"},
			Required:        true,
			RequiredMessage: "first names are required",
			TypeMessage:     "first names must be text",
			Rules: []validation.Rule{
				{Tag: "max=100", Message: "first names must not exceed 100 characters"},
			},
		},
		{
			Name:            fieldLastNames,
			Aliases:         []string{"apellidos"},
			Required:        true,
			RequiredMessage: "last names are required",
			TypeMessage:     "last names must be text",
			Rules: []validation.Rule{
				{Tag: "max=100", Message: "last names must not exceed 100 characters"},
			},
		},
		{
			Name:            fieldIdentification,
			Aliases:         []string{"identificacion"},
			Required:        true,
			RequiredMessage: "identification is required",
			TypeMessage:     "identification must be text",
			Rules: []validation.Rule{
				{Tag: "max=20", Message: "identification must not exceed 20 characters"},
			},
		},
		{
			Name:            fieldEmail,
			Required:        true,
			RequiredMessage: "email is required",
			TypeMessage:     "email must be a valid email address",
			Lowercase:       true,
			Rules: []validation.Rule{
				{Tag: "email", Message: "email must be a valid email address"},
				{Tag: "max=100", Message: "email must not exceed 100 characters"},
			},
		},
		{
			Name:            fieldRoleID,
			Aliases:         []string{"rolId"},
			Required:        true,
			RequiredMessage: "role id is required",
			TypeMessage:     "role id must be text",
			Rules: []validation.Rule{
				{Tag: "objectid", Message: "role id must be a valid 24-character hexadecimal id"},
			},
		},
	},
}

// --- Request / Response types (documentation and responses) ---

type createRoleRequest struct {
	Name        string `json:"name" example:"Admin"`
	Description string `json:"description,omitempty" example:"Full access"`
}

type createUserRequest struct {
	FirstNames     string `json:"firstNames" example:"Ana"`
	LastNames      string `json:"lastNames" example:"Diaz"`
	Identification string `json:"identification" example:"123"`
	Email          string `json:"email" example:"a@x.com"`
	RoleID         string `json:"roleId" example:"65a1b2c3d4e5f6a7b8c9d0e1"`
}

type createRoleResponse struct {
	Message string       `json:"message"`
	Role    *domain.Role `json:"role"`
}

type createUserResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// ErrorResponse is the envelope returned on every 4xx/5xx response.
// Errors is only present for validation failures.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}
