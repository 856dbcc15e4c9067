package service

import (
	"context"
	"errors"
	"fmt"
	"showtracker/configs"
	"showtracker/internal/repository"
	"showtracker/model"
	errorHandler "showtracker/pkg/error"
	"showtracker/util"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
)

const minPasswordLength = 6

type IAccountService interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.TokenRes, error)
	Login(ctx context.Context, req model.LoginReq) (*model.TokenRes, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokenRes, error)
	Logout(ctx context.Context, identity *model.Identity) error
	ChangePassword(ctx context.Context, identity *model.Identity, req model.ChangePasswordReq) error
	Authenticate(ctx context.Context, accessToken string) (*model.Identity, error)
}

// IIdentityVerifier resolves tokens issued by an external identity provider.
type IIdentityVerifier interface {
	VerifyIdToken(ctx context.Context, idToken string) (*model.Identity, error)
}

type AccountService struct {
	accountRepo  repository.IAccountRepository
	cacheService ICacheService
	verifier     IIdentityVerifier
}

func NewAccountService(accountRepo repository.IAccountRepository, cacheService ICacheService, verifier IIdentityVerifier) *AccountService {
	return &AccountService{
		accountRepo:  accountRepo,
		cacheService: cacheService,
		verifier:     verifier,
	}
}

//------------------------------------------
//------------------------------------------

func validateNewPassword(password string, confirm string) error {
	if password != confirm {
		return model.ErrPasswordMismatch
	}
	if len(password) < minPasswordLength {
		return model.ErrWeakPassword
	}
	return nil
}

func (a *AccountService) Register(ctx context.Context, req model.RegisterReq) (*model.TokenRes, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, model.ErrMissingFields
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, model.ErrInvalidEmail
	}
	if err := validateNewPassword(req.Password, req.ConfirmPassword); err != nil {
		return nil, err
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()
	account := &model.Account{
		Id:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         model.UserRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = a.accountRepo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	return a.issueTokens(account)
}

func (a *AccountService) Login(ctx context.Context, req model.LoginReq) (*model.TokenRes, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, model.ErrMissingFields
	}

	account, err := a.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.CheckPassword(account.PasswordHash, req.Password) {
		return nil, model.ErrInvalidCredentials
	}

	return a.issueTokens(account)
}

// Refresh rotates the session: the old session id is revoked and a new token
// pair is issued for the current state of the account.
func (a *AccountService) Refresh(ctx context.Context, refreshToken string) (*model.TokenRes, error) {
	_, claims, err := util.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, model.ErrInvalidToken
	}
	if a.sessionRevoked(ctx, claims.SessionId) {
		return nil, model.ErrInvalidToken
	}

	account, err := a.accountRepo.GetAccountById(ctx, claims.UserId)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, model.ErrInvalidToken
		}
		return nil, err
	}

	a.revokeSession(ctx, claims.SessionId)
	return a.issueTokens(account)
}

func (a *AccountService) Logout(ctx context.Context, identity *model.Identity) error {
	if _, err := requireUser(identity); err != nil {
		return err
	}
	if identity.Provider == model.FirebaseProvider {
		return nil
	}
	return a.cacheService.RevokeSession(ctx, identity.SessionId, configs.GetConfigs().RefreshTokenTTL)
}

// ChangePassword re-checks the current password before writing the new hash.
func (a *AccountService) ChangePassword(ctx context.Context, identity *model.Identity, req model.ChangePasswordReq) error {
	userId, err := requireUser(identity)
	if err != nil {
		return err
	}
	if identity.Provider == model.FirebaseProvider {
		return model.ErrUnsupportedProvider
	}
	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		return model.ErrMissingFields
	}
	if err = validateNewPassword(req.NewPassword, req.ConfirmPassword); err != nil {
		return err
	}

	account, err := a.accountRepo.GetAccountById(ctx, userId)
	if err != nil {
		return err
	}
	if !util.CheckPassword(account.PasswordHash, req.CurrentPassword) {
		return model.ErrWrongPassword
	}

	hash, err := util.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return a.accountRepo.UpdatePasswordHash(ctx, userId, hash)
}

// Authenticate resolves an access token to the caller. Tokens this service
// did not sign are handed to the external verifier when one is configured.
func (a *AccountService) Authenticate(ctx context.Context, accessToken string) (*model.Identity, error) {
	if accessToken == "" {
		return nil, model.ErrUnauthenticated
	}

	_, claims, err := util.VerifyToken(accessToken)
	if err != nil {
		if a.verifier != nil {
			identity, verifyErr := a.verifier.VerifyIdToken(ctx, accessToken)
			if verifyErr == nil {
				return identity, nil
			}
		}
		return nil, model.ErrInvalidToken
	}
	if claims.UserId == "" || a.sessionRevoked(ctx, claims.SessionId) {
		return nil, model.ErrInvalidToken
	}

	return &model.Identity{
		UserId:      claims.UserId,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
		Role:        model.Role(claims.Role),
		SessionId:   claims.SessionId,
		Provider:    model.LocalProvider,
	}, nil
}

//------------------------------------------
//------------------------------------------

func (a *AccountService) issueTokens(account *model.Account) (*model.TokenRes, error) {
	tokens, err := util.CreateTokens(util.TokenSubject{
		UserId:      account.Id,
		Email:       account.Email,
		DisplayName: account.DisplayName,
		Role:        string(account.Role),
		SessionId:   uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("create tokens: %w", err)
	}
	return &model.TokenRes{
		AccessToken:      tokens.AccessToken,
		AccessExpiresAt:  tokens.AccessExpiresAt,
		RefreshToken:     tokens.RefreshToken,
		RefreshExpiresAt: tokens.RefreshExpiresAt,
		Account:          account,
	}, nil
}

// sessionRevoked fails open when the blacklist is unreachable.
func (a *AccountService) sessionRevoked(ctx context.Context, sessionId string) bool {
	if sessionId == "" {
		return true
	}
	revoked, err := a.cacheService.IsSessionRevoked(ctx, sessionId)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on session lookup: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return false
	}
	return revoked
}

func (a *AccountService) revokeSession(ctx context.Context, sessionId string) {
	// RevokeSession reports its own failures
	_ = a.cacheService.RevokeSession(ctx, sessionId, configs.GetConfigs().RefreshTokenTTL)
}
