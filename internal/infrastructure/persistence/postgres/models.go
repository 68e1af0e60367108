package postgres

// OperatorModel é o model GORM para operadores do back-office.
// As listas de override são serializadas como JSON na própria linha: elas são
// pequenas, limitadas pelo catálogo e sempre lidas junto com o operador.
type OperatorModel struct {
	ID                 string   `gorm:"type:uuid;primary_key"`
	Email              string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name               string   `gorm:"type:varchar(500);not null"`
	Role               string   `gorm:"type:varchar(50);not null;index"`
	AddedPermissions   []string `gorm:"serializer:json;type:text"`
	RemovedPermissions []string `gorm:"serializer:json;type:text"`
	CreatedAt          int64    `gorm:"autoCreateTime;index"`
	UpdatedAt          int64    `gorm:"autoUpdateTime"`
	DeletedAt          *int64   `gorm:"index"` // Soft delete
}

func (OperatorModel) TableName() string {
	return "operators"
}
