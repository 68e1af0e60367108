package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/netpro-backend/internal/domain/authz"
	"github.com/rafabene/netpro-backend/internal/domain/entities"
	"github.com/rafabene/netpro-backend/internal/domain/repositories"
	"github.com/rafabene/netpro-backend/internal/domain/valueobjects"
)

// OperatorRepository implementa repositories.OperatorRepository
type OperatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository cria um novo OperatorRepository
func NewOperatorRepository(db *gorm.DB) repositories.OperatorRepository {
	return &OperatorRepository{db: db}
}

func (r *OperatorRepository) Create(ctx context.Context, operator *entities.Operator) error {
	model := r.toModel(operator)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	operator.ID = model.ID
	return nil
}

func (r *OperatorRepository) FindByID(ctx context.Context, id string) (*entities.Operator, error) {
	var model OperatorModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *OperatorRepository) FindByEmail(ctx context.Context, email string) (*entities.Operator, error) {
	var model OperatorModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	if err := db.Where("email = ? AND deleted_at IS NULL", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *OperatorRepository) Update(ctx context.Context, operator *entities.Operator) error {
	model := r.toModel(operator)

	db := r.getDB(ctx)
	return db.Save(model).Error
}

func (r *OperatorRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&OperatorModel{}).Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", now).Error
}

func (r *OperatorRepository) List(ctx context.Context, filters repositories.OperatorFilters) ([]*entities.Operator, error) {
	var models []*OperatorModel

	db := r.getDB(ctx)
	query := db.Model(&OperatorModel{})

	// Soft delete: ignorar registros deletados
	query = query.Where("deleted_at IS NULL")

	// Aplicar filtros
	if filters.Role != nil {
		query = query.Where("role = ?", string(*filters.Role))
	}

	// Paginação
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	query = query.Order("name").Limit(pageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// getDB extrai DB do contexto (para suportar transações)
func (r *OperatorRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *OperatorRepository) toModel(operator *entities.Operator) *OperatorModel {
	var deletedAt *int64
	if operator.DeletedAt != nil {
		ts := operator.DeletedAt.Unix()
		deletedAt = &ts
	}

	return &OperatorModel{
		ID:                 operator.ID,
		Email:              operator.Email.String(),
		Name:               operator.Name,
		Role:               string(operator.Role),
		AddedPermissions:   toStrings(operator.AddedPermissions),
		RemovedPermissions: toStrings(operator.RemovedPermissions),
		CreatedAt:          operator.CreatedAt.Unix(),
		UpdatedAt:          operator.UpdatedAt.Unix(),
		DeletedAt:          deletedAt,
	}
}

func (r *OperatorRepository) toEntity(model *OperatorModel) (*entities.Operator, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	return &entities.Operator{
		ID:                 model.ID,
		Email:              email,
		Name:               model.Name,
		Role:               authz.Role(model.Role),
		AddedPermissions:   toPermissions(model.AddedPermissions),
		RemovedPermissions: toPermissions(model.RemovedPermissions),
		CreatedAt:          time.Unix(model.CreatedAt, 0),
		UpdatedAt:          time.Unix(model.UpdatedAt, 0),
		DeletedAt:          deletedAt,
	}, nil
}

func (r *OperatorRepository) toEntities(models []*OperatorModel) ([]*entities.Operator, error) {
	operators := make([]*entities.Operator, 0, len(models))

	for _, model := range models {
		operator, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		operators = append(operators, operator)
	}

	return operators, nil
}

func toStrings(perms []authz.Permission) []string {
	result := make([]string, len(perms))
	for i, p := range perms {
		result[i] = string(p)
	}
	return result
}

func toPermissions(values []string) []authz.Permission {
	result := make([]authz.Permission, len(values))
	for i, v := range values {
		result[i] = authz.Permission(v)
	}
	return result
}
