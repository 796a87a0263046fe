package models

import "time"

// SkillRole tags a skill listing as something the owner teaches or wants
// to learn. The role is fixed at creation.
type SkillRole string

const (
	SkillRoleTeach SkillRole = "teach"
	SkillRoleLearn SkillRole = "learn"
)

// Valid reports whether r is one of the two known roles.
func (r SkillRole) Valid() bool {
	return r == SkillRoleTeach || r == SkillRoleLearn
}

// Skill is a listing owned by exactly one user.
type Skill struct {
	ID          string
	OwnerID     string
	Role        SkillRole
	Name        string
	Description string
	Category    string
	CreatedAt   time.Time
}
