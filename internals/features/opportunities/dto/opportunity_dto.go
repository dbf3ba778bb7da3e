// file: internals/features/opportunities/dto/opportunity_dto.go
package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type CreateOpportunityRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (r *CreateOpportunityRequest) Validate() error { return validate.Struct(r) }

type UpdateOpportunityRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=200"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateOpportunityRequest) Validate() error { return validate.Struct(r) }

type CreateCommitteeRequest struct {
	OpportunityID uuid.UUID `json:"opportunity_id" validate:"required"`
	Name          string    `json:"name" validate:"required,max=200"`
	IsOpen        *bool     `json:"is_open,omitempty"`
}

func (r *CreateCommitteeRequest) Validate() error { return validate.Struct(r) }

type UpdateCommitteeRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,max=200"`
	IsOpen *bool   `json:"is_open,omitempty"`
}

func (r *UpdateCommitteeRequest) Validate() error { return validate.Struct(r) }
