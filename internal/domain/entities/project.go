package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Project represents a project entity
type Project struct {
	ID              uuid.UUID   `json:"id"`
	Authority       string      `json:"authority"`
	ProjectID       string      `json:"projectId"`
	ProjectTreasury string      `json:"projectTreasury"`
	RoyaltyWallet   null.String `json:"royaltyWallet,omitempty"`
	RoyaltyBps      uint16      `json:"royaltyBps"`
	LastActivityTs  int64       `json:"lastActivityTs"`
	IsActive        bool        `json:"isActive"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// HasRoyaltyWallet reports whether royalty fees are payable for this project
func (p *Project) HasRoyaltyWallet() bool {
	return p.RoyaltyWallet.Valid && p.RoyaltyWallet.String != ""
}
