package models

import (
	"time"
)

const (
	DefaultMemberActivity = "Постоянная"
	DefaultMemberSkill    = "Добавлен через заявку"
)

type Member struct {
	ID          int       `json:"id" pg:",pk"`
	Nickname    string    `json:"nickname" pg:",notnull"`
	Username    string    `json:"username"`
	Category    string    `json:"category"`
	Role        string    `json:"role"`
	Description string    `json:"description"`
	Avatar      *string   `json:"avatar"`
	Verified    bool      `json:"verified" pg:",notnull,use_zero"`
	Pinned      bool      `json:"pinned" pg:",notnull,use_zero"`
	Scam        bool      `json:"scam" pg:",notnull,use_zero"`
	Project     string    `json:"project"`
	Telegram    string    `json:"telegram"`
	JoinDate    time.Time `json:"join_date" pg:"type:date"`
	Activity    string    `json:"activity"`
	Details     string    `json:"details"`
	Skills      []string  `json:"skills" pg:"type:text"`
	CreatedAt   time.Time `json:"created_at" pg:"default:now()"`
	UpdatedAt   time.Time `json:"updated_at" pg:"default:now()"`
}
