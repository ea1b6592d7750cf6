package snapshot

import (
	"bytes"
	"encoding/json"
	"time"

	"fame_list/internal"
	"fame_list/internal/db/models"
)

// Entry is one member as the static front end reads it.
type Entry struct {
	ID          int      `json:"id"`
	Nickname    string   `json:"nickname"`
	Username    string   `json:"username"`
	Category    string   `json:"category"`
	Role        string   `json:"role"`
	Description string   `json:"description"`
	Avatar      *string  `json:"avatar"`
	Verified    bool     `json:"verified"`
	Pinned      bool     `json:"pinned"`
	Scam        bool     `json:"scam"`
	Project     string   `json:"project"`
	Telegram    string   `json:"telegram"`
	JoinDate    string   `json:"joinDate"`
	Activity    string   `json:"activity"`
	Details     string   `json:"details"`
	Skills      []string `json:"skills"`
}

// NewEntry maps a member row. A missing join date is reported as today.
func NewEntry(member *models.Member, today time.Time) Entry {
	joinDate := member.JoinDate
	if joinDate.IsZero() {
		joinDate = today
	}

	skills := member.Skills
	if skills == nil {
		skills = []string{}
	}

	return Entry{
		ID:          member.ID,
		Nickname:    member.Nickname,
		Username:    member.Username,
		Category:    member.Category,
		Role:        member.Role,
		Description: member.Description,
		Avatar:      member.Avatar,
		Verified:    member.Verified,
		Pinned:      member.Pinned,
		Scam:        member.Scam,
		Project:     member.Project,
		Telegram:    member.Telegram,
		JoinDate:    internal.Format(joinDate),
		Activity:    member.Activity,
		Details:     member.Details,
		Skills:      skills,
	}
}

func NewEntries(members []*models.Member, today time.Time) []Entry {
	entries := make([]Entry, 0, len(members))
	for _, member := range members {
		entries = append(entries, NewEntry(member, today))
	}
	return entries
}

// Encode renders entries as two-space indented JSON with non-ASCII and HTML
// characters left as they are and no trailing newline.
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}

	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(entries); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}
