package goal

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Goal struct {
	Id            ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId        ulid.ULID  `gorm:"type:varchar(26);index:idx_goals_user_id;not null" json:"userId"`
	Name          string     `gorm:"type:varchar(255);not null" json:"name"`
	TargetAmount  float64    `gorm:"type:decimal(15,2);not null" json:"targetAmount"`
	CurrentAmount float64    `gorm:"type:decimal(15,2);not null;default:0" json:"currentAmount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	IsCompleted   bool       `gorm:"not null;default:false" json:"isCompleted"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Goal) TableName() string {
	return "goals"
}

// Progress devolve o avanço em fração [0, 1].
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	progress := g.CurrentAmount / g.TargetAmount
	if progress > 1 {
		return 1
	}
	return progress
}
