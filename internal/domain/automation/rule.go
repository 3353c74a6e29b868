package automation

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Rule liga exatamente um gatilho a exatamente uma ação. O mapeamento para a
// linha persistida (tipo + configuração jsonb por variante) vive na camada de
// infraestrutura.
type Rule struct {
	Id            ulid.ULID
	UserId        ulid.ULID
	Name          string
	Description   string
	IsActive      bool
	Trigger       Trigger
	Action        Action
	LastTriggered *time.Time
	TriggerCount  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
