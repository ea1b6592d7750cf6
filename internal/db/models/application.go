package models

import (
	"encoding/json"
	"time"
)

type ApplicationStatus string

func (s ApplicationStatus) String() string {
	return string(s)
}

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type Application struct {
	ID              int               `json:"id" pg:",pk"`
	UserID          int               `json:"user_id" pg:",notnull"`
	User            *User             `json:"user" pg:"rel:has-one"`
	Nickname        string            `json:"nickname" pg:",notnull"`
	Telegram        string            `json:"telegram" pg:",notnull"`
	Category        string            `json:"category" pg:",notnull"`
	Description     string            `json:"description" pg:",notnull"`
	Links           *string           `json:"links"`
	Avatar          *string           `json:"avatar"`
	Status          ApplicationStatus `json:"status" pg:",notnull,default:'pending'"`
	RejectionReason *string           `json:"rejection_reason"`
	ProcessedAt     *time.Time        `json:"processed_at"`
	ProcessedBy     *int              `json:"processed_by"`
	CreatedAt       time.Time         `json:"created_at" pg:"default:now()"`
	UpdatedAt       time.Time         `json:"updated_at" pg:"default:now()"`
}

// ParsedLinks decodes the stored links payload. Anything that is not a JSON
// list of strings yields no links.
func (a *Application) ParsedLinks() []string {
	if a.Links == nil || *a.Links == "" {
		return nil
	}

	var links []string
	if err := json.Unmarshal([]byte(*a.Links), &links); err != nil {
		return nil
	}

	return links
}

func (a *Application) HasAvatar() bool {
	return a.Avatar != nil && *a.Avatar != ""
}
