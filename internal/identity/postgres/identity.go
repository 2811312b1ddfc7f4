package postgres

import (
	"context"

	identityDatamodel "github.com/govflow/govflow/internal/core/datamodel/identity"
	"github.com/govflow/govflow/internal/identity"
	"gorm.io/gorm"
)

// IdentityRepository implements the identity.Repository interface using GORM
type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) identity.Repository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) GetUserByID(ctx context.Context, id string) (*identity.User, error) {
	var user identityDatamodel.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, identity.ErrUserNotFound
		}
		return nil, err
	}
	return identity.FromDataModel(&user), nil
}

func (r *IdentityRepository) GetDepartmentByID(ctx context.Context, id string) (*identity.Department, error) {
	var dept identityDatamodel.Department
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dept).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, identity.ErrRecipientNotFound
		}
		return nil, err
	}
	return identity.DepartmentFromDataModel(&dept), nil
}

func (r *IdentityRepository) ListUsers(ctx context.Context) ([]*identity.User, error) {
	var users []*identityDatamodel.User
	err := r.db.WithContext(ctx).Order("name ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}

	result := make([]*identity.User, len(users))
	for i, u := range users {
		result[i] = identity.FromDataModel(u)
	}
	return result, nil
}

func (r *IdentityRepository) ListDepartments(ctx context.Context) ([]*identity.Department, error) {
	var departments []*identityDatamodel.Department
	err := r.db.WithContext(ctx).Order("name ASC").Find(&departments).Error
	if err != nil {
		return nil, err
	}

	result := make([]*identity.Department, len(departments))
	for i, d := range departments {
		result[i] = identity.DepartmentFromDataModel(d)
	}
	return result, nil
}
