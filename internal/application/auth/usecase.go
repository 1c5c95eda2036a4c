package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/ignaciodev/inventario-api/internal/application/dto"
	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
	"github.com/ignaciodev/inventario-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y user-info.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password y genera un JWT con el scope resuelto
// (empresa del empleado o flag de superusuario).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyIDOrEmpty(), user.IsSuperuser, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	info, err := uc.userInfo(ctx, user.Username, user.CompanyIDOrEmpty(), user.IsSuperuser)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *info}, nil
}

// UserInfo devuelve username y razón social de la empresa del caller, o
// "Sin Empresa" cuando no tiene una asociada. La ausencia de empresa es un
// estado definido, no un error.
func (uc *AuthUseCase) UserInfo(ctx context.Context, userID string) (*dto.UserInfoDTO, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.userInfo(ctx, user.Username, user.CompanyIDOrEmpty(), user.IsSuperuser)
}

func (uc *AuthUseCase) userInfo(ctx context.Context, username, companyID string, isSuperuser bool) (*dto.UserInfoDTO, error) {
	info := &dto.UserInfoDTO{Username: username, Empresa: "Sin Empresa", IsSuperuser: isSuperuser}
	if companyID == "" {
		return info, nil
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company != nil {
		info.Empresa = company.RazonSocial
	}
	return info, nil
}
