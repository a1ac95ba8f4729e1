package user

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"cookus-server/domain"
	"cookus-server/entities"
	"cookus-server/internal/utils/mailing"
	"cookus-server/internal/utils/storage"
	"cookus-server/pkg/jwt"
	"cookus-server/pkg/verification"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const refreshTokenTTL = 14 * 24 * time.Hour

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.ProfileResponse, error)
		Login(ctx context.Context, req domain.LoginRequest, userAgent string) (domain.AuthResponse, error)
		RefreshToken(ctx context.Context, req domain.RefreshRequest, userAgent string) (domain.AuthResponse, error)
		Logout(ctx context.Context, userID string) error

		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.ProfileResponse, error)
		DeleteAccount(ctx context.Context, userID string, req domain.DeleteAccountRequest) error
		UploadProfileImage(ctx context.Context, userID string, req domain.UploadProfileImageRequest) (string, error)

		SendVerificationCode(ctx context.Context, req domain.SendCodeRequest) error
		VerifyCode(ctx context.Context, req domain.VerifyCodeRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	}

	userService struct {
		repo       UserRepository
		jwtService jwt.JWTService
		codes      *verification.Store
		s3         storage.AwsS3
	}
)

func NewUserService(repo UserRepository, jwtService jwt.JWTService, codes *verification.Store, s3 storage.AwsS3) UserService {
	return &userService{
		repo:       repo,
		jwtService: jwtService,
		codes:      codes,
		s3:         s3,
	}
}

func hashJTI(jti string) string {
	sum := sha256.Sum256([]byte(jti))
	return hex.EncodeToString(sum[:])
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.ProfileResponse, error) {
	exists, err := s.repo.CheckUserExists(ctx, req.ID, req.Email)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	if exists {
		return domain.ProfileResponse{}, domain.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	user := entities.User{
		ID:           req.ID,
		UserName:     req.UserName,
		Email:        req.Email,
		Password:     string(hashed),
		Gender:       req.Gender,
		Goal:         req.Goal,
		CookingLevel: req.CookingLevel,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return domain.ProfileResponse{}, fmt.Errorf("invalid date_of_birth: %w", err)
		}
		user.DateOfBirth = dob
	}

	if err := s.repo.CreateUser(ctx, &user); err != nil {
		return domain.ProfileResponse{}, err
	}
	return profileResponse(&user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest, userAgent string) (domain.AuthResponse, error) {
	user, err := s.repo.GetUserByID(ctx, req.ID)
	if err != nil {
		return domain.AuthResponse{}, domain.ErrCredentialsInvalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrCredentialsInvalid
	}
	return s.issueTokens(ctx, user, userAgent)
}

func (s *userService) issueTokens(ctx context.Context, user *entities.User, userAgent string) (domain.AuthResponse, error) {
	accessToken := s.jwtService.GenerateTokenUser(user.ID, domain.RoleUser)

	refreshToken, jti, err := s.jwtService.GenerateRefreshToken(user.ID, refreshTokenTTL)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	row := entities.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		JTIHash:   hashJTI(jti),
		UserAgent: userAgent,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateRefreshToken(ctx, &row); err != nil {
		return domain.AuthResponse{}, err
	}

	return domain.AuthResponse{
		UserID:       user.ID,
		UserName:     user.UserName,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken rotates the refresh token: the presented token is
// revoked and a fresh pair is issued. A replayed token misses the
// stored hash and fails.
func (s *userService) RefreshToken(ctx context.Context, req domain.RefreshRequest, userAgent string) (domain.AuthResponse, error) {
	sub, jti, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	row, err := s.repo.GetRefreshToken(ctx, sub, hashJTI(jti))
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if err := s.repo.RevokeRefreshToken(ctx, row.ID.String()); err != nil {
		return domain.AuthResponse{}, err
	}

	user, err := s.repo.GetUserByID(ctx, sub)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return s.issueTokens(ctx, user, userAgent)
}

func (s *userService) Logout(ctx context.Context, userID string) error {
	return s.repo.RevokeAllRefreshTokens(ctx, userID)
}

func profileResponse(user *entities.User) domain.ProfileResponse {
	dob := ""
	if !user.DateOfBirth.IsZero() {
		dob = user.DateOfBirth.Format("2006-01-02")
	}
	return domain.ProfileResponse{
		UserID:       user.ID,
		UserName:     user.UserName,
		Email:        user.Email,
		Gender:       user.Gender,
		DateOfBirth:  dob,
		Goal:         user.Goal,
		CookingLevel: user.CookingLevel,
		ImageURL:     user.ImageURL,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	return profileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.ProfileResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	if req.UserName != "" {
		user.UserName = req.UserName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Goal > 0 {
		user.Goal = req.Goal
	}
	if req.CookingLevel != "" {
		user.CookingLevel = req.CookingLevel
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return domain.ProfileResponse{}, err
	}
	return profileResponse(user), nil
}

func (s *userService) DeleteAccount(ctx context.Context, userID string, req domain.DeleteAccountRequest) error {
	if req.Password != req.PasswordConfirm {
		return domain.ErrPasswordMismatch
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.ErrCredentialsInvalid
	}

	if err := s.repo.SoftDeleteUser(ctx, userID); err != nil {
		return err
	}
	return s.repo.RevokeAllRefreshTokens(ctx, userID)
}

func (s *userService) UploadProfileImage(ctx context.Context, userID string, req domain.UploadProfileImageRequest) (string, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	url, err := s.s3.UploadFile(ctx, "profile", req.Image)
	if err != nil {
		return "", err
	}

	user.ImageURL = url
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return url, nil
}

func (s *userService) SendVerificationCode(ctx context.Context, req domain.SendCodeRequest) error {
	if req.Purpose == "reset" {
		if _, err := s.repo.GetUserByEmail(ctx, req.Email); err != nil {
			return err
		}
	}

	code := verification.GenerateCode(6)
	s.codes.Put(req.Purpose, req.Email, code)

	return mailing.SendVerificationCode(req.Email, code)
}

func (s *userService) VerifyCode(ctx context.Context, req domain.VerifyCodeRequest) error {
	code, ok := s.codes.Get(req.Purpose, req.Email)
	if !ok || code != req.Code {
		return domain.ErrVerificationInvalid
	}
	// signup codes are single use; reset codes stay until the password
	// actually changes
	if req.Purpose == "signup" {
		s.codes.Pop(req.Purpose, req.Email)
	}
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	code, ok := s.codes.Pop("reset", req.Email)
	if !ok || code != req.Code {
		return domain.ErrVerificationInvalid
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return err
	}
	return s.repo.RevokeAllRefreshTokens(ctx, user.ID)
}
